package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	vars, err := Parse(strings.NewReader(`
# comment
DOTCUBE_CONFIG="conf/a.yaml"
export MODE='tui'
=nokey
broken
SPACED = value with spaces
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"DOTCUBE_CONFIG": "conf/a.yaml",
		"MODE":           "tui",
		"SPACED":         "value with spaces",
	}, vars)
}

func TestLoadKeepsExistingEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTCUBE_TEST_A=file\nDOTCUBE_TEST_B=file\n"), 0644))
	t.Setenv("DOTCUBE_TEST_A", "env")
	t.Setenv("DOTCUBE_TEST_B", "")
	require.NoError(t, os.Unsetenv("DOTCUBE_TEST_B"))

	require.NoError(t, Load(path))
	assert.Equal(t, "env", os.Getenv("DOTCUBE_TEST_A"))
	assert.Equal(t, "file", os.Getenv("DOTCUBE_TEST_B"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "absent.env")))
}

func TestConfigPath(t *testing.T) {
	t.Setenv(ConfigPathVar, "from-env.yaml")
	assert.Equal(t, "flag.yaml", ConfigPath("flag.yaml", "default.yaml"))
	assert.Equal(t, "from-env.yaml", ConfigPath("", "default.yaml"))

	t.Setenv(ConfigPathVar, "")
	assert.Equal(t, "default.yaml", ConfigPath("", "default.yaml"))
}
