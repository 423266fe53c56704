package card

import (
	"github.com/matzehuels/statcards/pkg/render/layout"
	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

type activityView struct {
	layout.CalendarLayout
	Palette    theme.Palette
	Title      string
	CellSide   int
	CellRadius int
	WeekdayX   int
}

// Activity renders a contribution calendar for user.
func Activity(cal stats.Calendar, user string, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	l := layout.Calendar(cal, r.title, r.theme)

	v := activityView{
		CalendarLayout: l,
		Palette:        r.theme.Palette,
		CellSide:       layout.CellSide,
		CellRadius:     layout.CellRadius,
		WeekdayX:       layout.WeekdayLabelX,
	}
	if r.title {
		v.Title = "Contributions by " + user
	}
	return r.execute(templates, "activity", v)
}
