package layout

import "github.com/matzehuels/statcards/pkg/stats"

// Language bar geometry in pixels.
const (
	BarMaxWidth = 275.0
	BarLeft     = 20.0
	BarY        = 61
	BarHeight   = 10

	legendLeftX   = 20
	legendRightX  = 175
	legendTopY    = 93
	legendStep    = 24
	legendColumn  = 3
	legendTextDX  = 18
	legendTextDY  = 11
	LegendDotSide = 12
)

// Segment is one slice of the stacked bar.
type Segment struct {
	X, Width float64
	Color    string
}

// LegendEntry is one positioned legend row.
type LegendEntry struct {
	DotX, DotY   int
	TextX, TextY int
	Name         string
	Color        string
	Percent      float64
}

// LanguageBarLayout is the computed geometry of a languages card.
type LanguageBarLayout struct {
	Segments []Segment
	Legend   []LegendEntry
}

// LanguageBar stacks one segment per language edge to edge from the left
// margin, scaled so 100 percent spans BarMaxWidth. The first three legend
// rows fill the left column and the rest the right one.
func LanguageBar(langs []stats.Language) LanguageBarLayout {
	l := LanguageBarLayout{
		Segments: make([]Segment, 0, len(langs)),
		Legend:   make([]LegendEntry, 0, len(langs)),
	}

	x := BarLeft
	for _, lang := range langs {
		w := BarMaxWidth * (lang.Percent / 100)
		l.Segments = append(l.Segments, Segment{X: x, Width: w, Color: lang.Color})
		x += w
	}

	y := legendTopY
	for i, lang := range langs {
		dotX := legendLeftX
		if i >= legendColumn {
			dotX = legendRightX
		}
		l.Legend = append(l.Legend, LegendEntry{
			DotX:    dotX,
			DotY:    y,
			TextX:   dotX + legendTextDX,
			TextY:   y + legendTextDY,
			Name:    lang.Name,
			Color:   lang.Color,
			Percent: lang.Percent,
		})
		if i == legendColumn-1 {
			y = legendTopY
		} else {
			y += legendStep
		}
	}
	return l
}
