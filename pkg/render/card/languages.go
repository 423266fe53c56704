package card

import (
	"github.com/matzehuels/statcards/pkg/render/layout"
	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

const (
	languagesWidth  = 315
	languagesHeight = 170
	languagesTitle  = "Most used languages"
)

type languagesView struct {
	layout.LanguageBarLayout
	Palette       theme.Palette
	Width, Height int
	Title         string
	BarWidth      float64
	BarX          float64
	BarY          int
	BarHeight     int
	DotSide       int
}

// Languages renders a ranked language bar with its two-column legend.
func Languages(langs []stats.Language, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	v := languagesView{
		LanguageBarLayout: layout.LanguageBar(langs),
		Palette:           r.theme.Palette,
		Width:             languagesWidth,
		Height:            languagesHeight,
		Title:             languagesTitle,
		BarWidth:          layout.BarMaxWidth,
		BarX:              layout.BarLeft,
		BarY:              layout.BarY,
		BarHeight:         layout.BarHeight,
		DotSide:           layout.LegendDotSide,
	}
	return r.execute(templates, "languages", v)
}
