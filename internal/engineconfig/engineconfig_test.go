package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"dotcube/internal/lattice"
	"dotcube/internal/params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadKeepsParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "dotcube.yaml")
	want := Default()
	want.ShowFPS = true
	want.Params.Axis = params.RotateYZ
	want.Params.Spacing = 8
	want.Params.Wireframe = true

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "axis: rotateYZ")
}

func TestLoadPartialFileClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid_visible: true\nparams:\n  spacing: 0\n  axis: rotateX\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.GridVisible)
	assert.Equal(t, 1, p.Params.Spacing)
	assert.Equal(t, params.RotateX, p.Params.Axis)
	assert.Equal(t, params.Default().Size, p.Params.Size)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params:\n  axis: sideways\n"), 0644))

	p, err := Load(path)
	assert.ErrorIs(t, err, params.ErrUnknownAxis)
	assert.Equal(t, Default(), p)
}

func TestLoadNonFiniteParamsAreClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params:\n  size: .nan\n  speed: .inf\n  radius: -.inf\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, params.SizeRange.Min, p.Params.Size)
	assert.Equal(t, params.SpeedRange.Max, p.Params.Speed)
	assert.Equal(t, params.RadiusRange.Min, p.Params.Radius)
	assert.Positive(t, lattice.Count(p.Params.Size, p.Params.Spacing))
	assert.NotPanics(t, func() { lattice.Generate(p.Params.Size, p.Params.Spacing) })
}
