package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

func mustTheme(t *testing.T, name string) theme.Theme {
	t.Helper()
	th, err := theme.Lookup(name)
	require.NoError(t, err)
	return th
}

// buildCalendar produces a month-grouped calendar of n consecutive days
// starting on weekday first, splitting months every perMonth days.
func buildCalendar(n, first, perMonth int) stats.Calendar {
	var cal stats.Calendar
	var month *stats.Month
	var week stats.Week
	flushWeek := func() {
		if month != nil && len(week.Days) > 0 {
			month.Weeks = append(month.Weeks, week)
		}
		week = stats.Week{}
	}
	for i := 0; i < n; i++ {
		if i%perMonth == 0 {
			flushWeek()
			if month != nil {
				cal.Months = append(cal.Months, *month)
			}
			id := i / perMonth
			month = &stats.Month{Name: fmt.Sprintf("M%d", id), FirstDay: fmt.Sprintf("2024-%02d-01", id+1)}
		}
		wd := (first + i) % 7
		week.Days = append(week.Days, stats.Day{Weekday: wd, Count: i, Color: "#ebedf0"})
		if wd == 6 {
			flushWeek()
		}
	}
	flushWeek()
	if month != nil {
		cal.Months = append(cal.Months, *month)
	}
	return cal
}

func TestCalendarCellYWithinColumn(t *testing.T) {
	th := mustTheme(t, "dark")
	for _, withTitle := range []bool{true, false} {
		for _, first := range []int{0, 3, 6} {
			cal := buildCalendar(200, first, 30)
			l := Calendar(cal, withTitle, th)
			require.Len(t, l.Cells, 200)
			for _, c := range l.Cells {
				assert.GreaterOrEqual(t, c.Y, l.BaseY)
				assert.LessOrEqual(t, c.Y, l.BaseY+6*CellSize)
			}
		}
	}
}

func TestCalendarWeekdaySixAdvancesColumn(t *testing.T) {
	l := Calendar(buildCalendar(100, 2, 31), true, mustTheme(t, "dark"))
	for i := 0; i < len(l.Cells)-1; i++ {
		cur, next := l.Cells[i], l.Cells[i+1]
		if cur.Weekday == 6 {
			assert.Equal(t, cur.X+CellSize, next.X, "cell %d", i)
			assert.Equal(t, l.BaseY, next.Y, "cell %d", i)
		} else {
			assert.Equal(t, cur.X, next.X, "cell %d", i)
		}
	}
}

func TestCalendarDimensions(t *testing.T) {
	th := mustTheme(t, "dark")

	l := Calendar(buildCalendar(14, 0, 31), true, th)
	assert.Equal(t, 195, l.Height)
	assert.Equal(t, 67, l.BaseY)
	assert.Equal(t, 61, l.MonthLabelY)
	// Two full columns: the last day sits in the second column.
	assert.Equal(t, CalendarLeft+CellSize+2*CellSize, l.Width)

	l = Calendar(buildCalendar(14, 0, 31), false, th)
	assert.Equal(t, 163, l.Height)
	assert.Equal(t, 35, l.BaseY)
}

func TestCalendarWeekdayLegend(t *testing.T) {
	l := Calendar(stats.Calendar{}, true, mustTheme(t, "dark"))
	require.Len(t, l.Weekdays, 3)
	assert.Equal(t, WeekdayLabel{"Mon", 95}, l.Weekdays[0])
	assert.Equal(t, WeekdayLabel{"Wed", 127}, l.Weekdays[1])
	assert.Equal(t, WeekdayLabel{"Fri", 159}, l.Weekdays[2])
	assert.Equal(t, CalendarLeft+2*CellSize, l.Width)
}

func TestCalendarMonthLabels(t *testing.T) {
	cal := stats.Calendar{Months: []stats.Month{
		{Name: "Jan", Weeks: make([]stats.Week, 5)},
		{Name: "Feb", Weeks: make([]stats.Week, 1)},
		{Name: "Mar", Weeks: make([]stats.Week, 3)},
		{Name: "Apr", Weeks: make([]stats.Week, 2)},
	}}
	l := Calendar(cal, true, mustTheme(t, "dark"))
	require.Len(t, l.Months, 4)
	assert.Equal(t, 50, l.Months[0].X)
	// 4 capped columns plus the long-month kicker.
	assert.Equal(t, 50+64+5, l.Months[1].X)
	// Feb spanned one column, so Mar is nudged.
	assert.Equal(t, 50+64+5+16+8, l.Months[2].X)
	assert.Equal(t, 50+64+5+16+48, l.Months[3].X)
}

func TestCalendarRecolorsThroughTheme(t *testing.T) {
	th := mustTheme(t, "dracula")
	cal := stats.Calendar{Months: []stats.Month{{
		Name: "Jan",
		Weeks: []stats.Week{{Days: []stats.Day{
			{Weekday: 0, Color: "#ebedf0"},
			{Weekday: 1, Color: "#216e39"},
			{Weekday: 2, Color: "#abcdef"},
		}}},
	}}}
	l := Calendar(cal, true, th)
	require.Len(t, l.Cells, 3)
	assert.Equal(t, th.ActivityColor(theme.Inactive), l.Cells[0].Fill)
	assert.Equal(t, th.ActivityColor(theme.VeryHigh), l.Cells[1].Fill)
	assert.Equal(t, "#abcdef", l.Cells[2].Fill)
}
