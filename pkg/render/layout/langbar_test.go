package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/statcards/pkg/stats"
)

func TestLanguageBarWidthsFitBudget(t *testing.T) {
	sets := [][]float64{
		{100},
		{50, 50},
		{33.33, 33.33, 33.34},
		{40, 20, 15, 10, 10, 5},
		{16.67, 16.67, 16.67, 16.67, 16.66, 16.66},
		{99.9, 0.1},
	}
	for _, percents := range sets {
		langs := make([]stats.Language, len(percents))
		for i, p := range percents {
			langs[i] = stats.Language{Name: "L", Color: "#000", Percent: p}
		}
		l := LanguageBar(langs)
		require.Len(t, l.Segments, len(percents))

		sum := 0.0
		for _, s := range l.Segments {
			// Rendered widths are rounded to two decimals.
			sum += math.Round(s.Width*100) / 100
		}
		assert.LessOrEqual(t, sum, BarMaxWidth+float64(len(percents)), "percents %v", percents)
	}
}

func TestLanguageBarSegmentsAreContiguous(t *testing.T) {
	langs := []stats.Language{{Percent: 60}, {Percent: 30}, {Percent: 10}}
	l := LanguageBar(langs)
	assert.InDelta(t, BarLeft, l.Segments[0].X, 1e-9)
	for i := 1; i < len(l.Segments); i++ {
		prev := l.Segments[i-1]
		assert.InDelta(t, prev.X+prev.Width, l.Segments[i].X, 1e-9)
	}
	assert.InDelta(t, 165.0, l.Segments[0].Width, 1e-9)
}

func TestLanguageBarLegendColumns(t *testing.T) {
	langs := make([]stats.Language, 6)
	l := LanguageBar(langs)
	require.Len(t, l.Legend, 6)

	wantX := []int{20, 20, 20, 175, 175, 175}
	wantY := []int{93, 117, 141, 93, 117, 141}
	for i, e := range l.Legend {
		assert.Equal(t, wantX[i], e.DotX, "entry %d", i)
		assert.Equal(t, wantY[i], e.DotY, "entry %d", i)
		assert.Equal(t, e.DotX+18, e.TextX)
		assert.Equal(t, e.DotY+11, e.TextY)
	}
}
