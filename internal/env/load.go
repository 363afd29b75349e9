package env

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ConfigPathVar names the variable that overrides the preferences file location.
const ConfigPathVar = "DOTCUBE_CONFIG"

// Parse reads KEY=VALUE lines. Empty lines and lines starting with # are skipped, an optional
// "export " prefix is dropped, and matching surrounding quotes are removed from values.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		vars[key] = value
	}
	return vars, scanner.Err()
}

// Load reads the given file (e.g. ".env") and sets an environment variable for each entry that
// is not already set, so the real environment wins over the file.
// The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	vars, err := Parse(f)
	if err != nil {
		return err
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		_ = os.Setenv(k, v)
	}
	return nil
}

// ConfigPath returns the preferences path: flagValue if non-empty, else $DOTCUBE_CONFIG,
// else fallback.
func ConfigPath(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(ConfigPathVar); v != "" {
		return v
	}
	return fallback
}
