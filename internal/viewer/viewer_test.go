package viewer

import (
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dotcube/internal/commands"
	"dotcube/internal/engineconfig"
	"dotcube/internal/logger"
	"dotcube/internal/params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewer(t *testing.T) (*Viewer, *commands.Registry, *logger.Logger) {
	t.Helper()
	lines := logger.New("")
	v := New(engineconfig.Default(), filepath.Join(t.TempDir(), "dotcube.yaml"), slog.New(lines.Handler(slog.LevelInfo)))
	reg := commands.NewRegistry()
	v.Register(reg)
	return v, reg, lines
}

func run(t *testing.T, reg *commands.Registry, line string) error {
	t.Helper()
	args, ok := commands.Parse(line)
	require.True(t, ok, line)
	return reg.Execute(args)
}

func TestNumberCommandsGoThroughPanel(t *testing.T) {
	v, reg, _ := newTestViewer(t)

	require.NoError(t, run(t, reg, "cmd size 120"))
	require.NoError(t, run(t, reg, "cmd spacing 0"))
	require.NoError(t, run(t, reg, "cmd speed 25"))
	require.NoError(t, run(t, reg, "cmd radius 999"))

	p := v.Params()
	assert.Equal(t, float32(120), p.Size)
	assert.Equal(t, 1, p.Spacing, "spacing is clamped to at least 1")
	assert.Equal(t, float32(25), p.Speed)
	assert.Equal(t, params.RadiusRange.Max, p.Radius)
	assert.Equal(t, float32(120), v.Panel.Size.Value)

	assert.Error(t, run(t, reg, "cmd size"))
	assert.Error(t, run(t, reg, "cmd size big"))
}

func TestNumberCommandsRejectNonFinite(t *testing.T) {
	v, reg, _ := newTestViewer(t)
	before := v.Params()

	for _, line := range []string{"cmd size NaN", "cmd size +Inf", "cmd spacing nan", "cmd radius -inf"} {
		assert.Error(t, run(t, reg, line), line)
	}
	assert.Equal(t, before, v.Params())
	assert.NotPanics(t, func() { v.Points() })
}

func TestNonFiniteConfigDoesNotBreakLattice(t *testing.T) {
	prefs := engineconfig.Default()
	prefs.Params.Size = float32(math.NaN())
	prefs.Params.Radius = float32(math.Inf(1))

	v := New(prefs, filepath.Join(t.TempDir(), "dotcube.yaml"), slog.New(logger.New("").Handler(slog.LevelInfo)))
	assert.Equal(t, params.SizeRange.Min, v.Params().Size)
	assert.Equal(t, params.RadiusRange.Max, v.Params().Radius)
	assert.NotPanics(t, func() {
		assert.Len(t, v.Points(), 216)
	})
}

func TestAxisAndSwitches(t *testing.T) {
	v, reg, _ := newTestViewer(t)

	require.NoError(t, run(t, reg, "cmd axis rotateXZ"))
	assert.Equal(t, params.RotateXZ, v.Params().Axis)
	assert.ErrorIs(t, run(t, reg, "cmd axis diagonal"), params.ErrUnknownAxis)

	require.NoError(t, run(t, reg, "cmd wireframe"))
	assert.True(t, v.Params().Wireframe)
	require.NoError(t, run(t, reg, "cmd wireframe off"))
	assert.False(t, v.Params().Wireframe)
	assert.Error(t, run(t, reg, "cmd wireframe maybe"))

	require.NoError(t, run(t, reg, "cmd fps on"))
	require.NoError(t, run(t, reg, "cmd grid"))
	assert.True(t, v.Prefs.ShowFPS)
	assert.True(t, v.Prefs.GridVisible)
	assert.False(t, v.Prefs.ShowMemAlloc)
}

func TestPointsAreMemoized(t *testing.T) {
	v, reg, _ := newTestViewer(t)
	first := v.Points()
	assert.Len(t, first, 216)

	require.NoError(t, run(t, reg, "cmd radius 20"))
	require.NoError(t, run(t, reg, "cmd axis rotateY"))
	second := v.Points()
	assert.Same(t, &first[0], &second[0], "radius and axis do not regenerate the lattice")

	require.NoError(t, run(t, reg, "cmd spacing 2"))
	assert.Len(t, v.Points(), 27)
}

func TestRotationRestartsOnChange(t *testing.T) {
	v, reg, _ := newTestViewer(t)
	v.Advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, v.Clock().Elapsed())

	require.NoError(t, run(t, reg, "cmd radius 12"))
	assert.Equal(t, 2*time.Second, v.Clock().Elapsed())

	require.NoError(t, run(t, reg, "cmd speed 20"))
	assert.Equal(t, time.Duration(0), v.Clock().Elapsed())
	assert.Equal(t, 5*time.Second, v.Clock().Animation().Period)
}

func TestSaveAndReset(t *testing.T) {
	v, reg, lines := newTestViewer(t)
	require.NoError(t, run(t, reg, "cmd spacing 7"))
	require.NoError(t, run(t, reg, "cmd save"))

	saved, err := engineconfig.Load(v.configPath)
	require.NoError(t, err)
	assert.Equal(t, 7, saved.Params.Spacing)

	require.NoError(t, run(t, reg, "cmd reset"))
	assert.Equal(t, params.Default(), v.Params())

	joined := strings.Join(lines.Lines(), "\n")
	assert.Contains(t, joined, "lattice changed")
	assert.Contains(t, joined, "points=512")
	assert.Contains(t, joined, "preferences saved")
}

func TestHelpListsCommands(t *testing.T) {
	_, reg, lines := newTestViewer(t)
	require.NoError(t, run(t, reg, "cmd help"))
	joined := strings.Join(lines.Lines(), "\n")
	for _, name := range []string{"size <n>", "axis <", "wireframe [on|off]", "reset", "save"} {
		assert.Contains(t, joined, "cmd "+name)
	}
}
