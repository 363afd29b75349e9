package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	writeFile(t, filepath.Join(dir, "Mono.OTF"))
	writeFile(t, filepath.Join(dir, "readme.txt"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Mono.OTF"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))

	got, err := Find("inter", []string{dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	got, err = Find("Inter Bold.ttf", []string{dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"), got)

	_, err = Find("Comic", []string{dir})
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = Find("", []string{dir})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.ttf")
	writeFile(t, path)
	got, err := Find(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}
