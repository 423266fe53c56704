package layout

import (
	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

// Calendar geometry in pixels.
const (
	CellSize      = 16
	CellSide      = 12
	CellRadius    = 2
	CalendarLeft  = 50
	WeekdayLabelX = 20

	baseWithTitle    = 67
	baseWithoutTitle = 35
	heightWithTitle  = 195
	heightNoTitle    = 163

	monthLabelLift   = 6
	weekdayFirstDrop = 28
	weekdayStep      = 32
	monthSpanCap     = 4
	longMonthKicker  = 5
	shortMonthNudge  = 8
)

var weekdayLabels = [...]string{"Mon", "Wed", "Fri"}

// Cell is a positioned calendar day.
type Cell struct {
	X, Y    int
	Fill    string
	Weekday int
	Count   int
	Date    string
}

// MonthLabel is a positioned month name.
type MonthLabel struct {
	Name string
	X    int
}

// WeekdayLabel is a positioned weekday legend entry.
type WeekdayLabel struct {
	Name string
	Y    int
}

// CalendarLayout is the computed geometry of an activity card.
type CalendarLayout struct {
	Width, Height int
	BaseY         int
	MonthLabelY   int
	Cells         []Cell
	Months        []MonthLabel
	Weekdays      []WeekdayLabel
}

// Calendar sweeps the calendar left to right, top to bottom. A day's y is
// the base offset plus its weekday row; the last weekday closes the column.
// Cell fills are recolored through th.
func Calendar(cal stats.Calendar, withTitle bool, th theme.Theme) CalendarLayout {
	base, height := baseWithoutTitle, heightNoTitle
	if withTitle {
		base, height = baseWithTitle, heightWithTitle
	}

	l := CalendarLayout{
		Height:      height,
		BaseY:       base,
		MonthLabelY: base - monthLabelLift,
		Cells:       make([]Cell, 0, cal.DayCount()),
		Months:      make([]MonthLabel, 0, len(cal.Months)),
	}

	x, lastX := CalendarLeft, CalendarLeft
	monthX := CalendarLeft
	prevSingleWeek := false

	for _, m := range cal.Months {
		for _, w := range m.Weeks {
			for _, d := range w.Days {
				wd := clampWeekday(d.Weekday)
				lastX = x
				l.Cells = append(l.Cells, Cell{
					X:       x,
					Y:       base + wd*CellSize,
					Fill:    th.CalendarColor(d.Color),
					Weekday: wd,
					Count:   d.Count,
					Date:    d.Date,
				})
				if wd == 6 {
					x += CellSize
				}
			}
		}

		labelX := monthX
		if prevSingleWeek {
			labelX += shortMonthNudge
		}
		l.Months = append(l.Months, MonthLabel{Name: m.Name, X: labelX})

		weeks := len(m.Weeks)
		prevSingleWeek = weeks == 1
		monthX += CellSize * min(weeks, monthSpanCap)
		if weeks > monthSpanCap {
			monthX += longMonthKicker
		}
	}

	l.Width = lastX + 2*CellSize

	y := base + weekdayFirstDrop
	for _, name := range weekdayLabels {
		l.Weekdays = append(l.Weekdays, WeekdayLabel{Name: name, Y: y})
		y += weekdayStep
	}
	return l
}

func clampWeekday(wd int) int {
	switch {
	case wd < 0:
		return 0
	case wd > 6:
		return 6
	}
	return wd
}
