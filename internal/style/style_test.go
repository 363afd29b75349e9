package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
/* panel chrome */
.panel { background: #202020; border: #444; width: 260px; left: 2%; top: 16 }
#title, .label { color: #fff; padding: 6px }
.label { color: #0f08; font-size: 18 }
@media screen { .ignored { color: #123 } }
div.nested { color: #abc }
`

func TestParseKeepsSimpleSelectors(t *testing.T) {
	sheet, err := Parse(sample)
	require.NoError(t, err)

	var selectors []string
	for _, r := range sheet.Rules {
		selectors = append(selectors, r.Selector)
	}
	assert.Equal(t, []string{".panel", "#title", ".label", ".label"}, selectors)
}

func TestResolveLaterRulesWin(t *testing.T) {
	sheet, err := Parse(sample)
	require.NoError(t, err)

	props := sheet.Resolve("label", "")
	assert.Equal(t, "#0f08", props["color"])
	assert.Equal(t, "6px", props["padding"])

	assert.Equal(t, "#fff", sheet.Resolve("", "title")["color"])
	assert.Empty(t, sheet.Resolve("missing", "none"))

	var nilSheet *Stylesheet
	assert.Empty(t, nilSheet.Resolve("panel", ""))
}

func TestCompute(t *testing.T) {
	sheet, err := Parse(sample)
	require.NoError(t, err)

	panel := Compute(sheet.Resolve("panel", ""))
	assert.Equal(t, color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 255}, panel.Background)
	assert.True(t, panel.HasBorder)
	assert.Equal(t, int32(260), panel.Width)
	assert.Equal(t, int32(2), panel.LeftPct)
	assert.Equal(t, int32(-1), panel.TopPct)
	assert.Equal(t, int32(16), panel.Top)

	label := Compute(sheet.Resolve("label", ""))
	assert.Equal(t, color.RGBA{G: 255, A: 0x88}, label.Color)
	assert.Equal(t, int32(6), label.Padding)
	assert.Equal(t, int32(18), label.FontSize)
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#1a2B3c")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}, c)

	c, ok = ParseHexColor("#0f08")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{G: 255, A: 0x88}, c)

	c, ok = ParseHexColor("#fff")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c)

	for _, bad := range []string{"", "red", "#12", "#12345", "#zzz"} {
		_, ok := ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestParsePxAndPct(t *testing.T) {
	n, ok := ParsePx(" 12px ")
	assert.True(t, ok)
	assert.Equal(t, int32(12), n)
	_, ok = ParsePx("em")
	assert.False(t, ok)

	p, ok := ParsePct("50%")
	assert.True(t, ok)
	assert.Equal(t, int32(50), p)
	_, ok = ParsePct("150%")
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches(".a", "a", ""))
	assert.False(t, Matches(".a", "", "a"))
	assert.True(t, Matches("#a", "", "a"))
	assert.False(t, Matches("a", "a", "a"))
	assert.False(t, Matches(".", "", ""))
}
