package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd), so fonts are
// found whether the binary runs from the repo root or from cmd/dotcube.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find resolves a font preference to a file path. An existing path is returned as is;
// otherwise search is matched (fuzzily) against fonts under dirs, preferring a "Regular" face.
// Returns os.ErrNotExist when nothing matches.
func Find(search string, dirs []string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", os.ErrNotExist
	}
	if _, err := os.Stat(search); err == nil {
		return search, nil
	}
	norm := normalizeForMatch(strings.TrimSuffix(search, filepath.Ext(search)))
	type match struct{ rel, full string }
	var matches []match
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				matches = append(matches, match{rel: rel, full: filepath.Join(base, filepath.FromSlash(rel))})
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m.rel), "regular") {
			return m.full, nil
		}
	}
	return matches[0].full, nil
}
