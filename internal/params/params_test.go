package params

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxisRoundTrip(t *testing.T) {
	for _, a := range Axes() {
		got, err := ParseAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

func TestParseAxisUnknown(t *testing.T) {
	_, err := ParseAxis("spin")
	assert.ErrorIs(t, err, ErrUnknownAxis)
}

func TestAxisNextCycles(t *testing.T) {
	a := Rotate
	seen := map[Axis]bool{}
	for range Axes() {
		seen[a] = true
		a = a.Next()
	}
	assert.Equal(t, Rotate, a)
	assert.Len(t, seen, len(Axes()))
	assert.Equal(t, Rotate, Axis(42).Next())
}

func TestAxisSpins(t *testing.T) {
	x, y, z := Rotate.Spins()
	assert.True(t, x && y && z)
	x, y, z = RotateXZ.Spins()
	assert.Equal(t, []bool{true, false, true}, []bool{x, y, z})
	x, y, z = RotateY.Spins()
	assert.Equal(t, []bool{false, true, false}, []bool{x, y, z})
}

func TestAxisText(t *testing.T) {
	b, err := RotateYZ.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "rotateYZ", string(b))

	var a Axis
	require.NoError(t, a.UnmarshalText([]byte("rotateZ")))
	assert.Equal(t, RotateZ, a)
	assert.Error(t, a.UnmarshalText([]byte("sideways")))

	_, err = Axis(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownAxis)
}

func TestClamp(t *testing.T) {
	p := RenderParameters{Size: 9000, Spacing: 0, Speed: -1, Radius: 100, Axis: Axis(99)}
	got := p.Clamp()
	assert.Equal(t, SizeRange.Max, got.Size)
	assert.Equal(t, 1, got.Spacing)
	assert.Equal(t, SpeedRange.Min, got.Speed)
	assert.Equal(t, RadiusRange.Max, got.Radius)
	assert.Equal(t, Rotate, got.Axis)

	assert.Equal(t, Default(), Default().Clamp())
}

func TestClampNonFinite(t *testing.T) {
	assert.Equal(t, SizeRange.Min, SizeRange.Clamp(math32.NaN()))
	assert.Equal(t, SizeRange.Max, SizeRange.Clamp(math32.Inf(1)))
	assert.Equal(t, SizeRange.Min, SizeRange.Clamp(math32.Inf(-1)))

	got := RenderParameters{Size: math32.NaN(), Spacing: 5, Speed: math32.NaN(), Radius: math32.NaN()}.Clamp()
	assert.Equal(t, SizeRange.Min, got.Size)
	assert.Equal(t, SpeedRange.Min, got.Speed)
	assert.Equal(t, RadiusRange.Min, got.Radius)
}

func TestSizeRangeStaysPositive(t *testing.T) {
	assert.Greater(t, SizeRange.Min, float32(0))
	assert.Equal(t, SizeRange.Min, RenderParameters{Size: 0, Spacing: 1}.Clamp().Size)
}

func TestSameLatticeIgnoresRadiusAndAxis(t *testing.T) {
	a := Default()
	b := a
	b.Radius = 30
	b.Axis = RotateX
	b.Speed = 40
	assert.True(t, a.SameLattice(b))
	assert.False(t, a.SameAnimation(b))

	b.Spacing = 3
	assert.False(t, a.SameLattice(b))
}
