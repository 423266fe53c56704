package normalize

import (
	"strings"

	"github.com/matzehuels/statcards/pkg/integrations/github"
	"github.com/matzehuels/statcards/pkg/stats"
)

// groupMonths scans the calendar's days in order and assigns each to the
// month whose first day shares its YYYY-MM prefix. Days without a month are
// skipped. A month change in the middle of a week closes that partial week
// in the old month; the rest of the week opens the new one.
func groupMonths(cal github.Calendar) stats.Calendar {
	var (
		out  stats.Calendar
		cur  *stats.Month
		week []stats.Day
	)
	closeWeek := func() {
		if cur != nil && len(week) > 0 {
			cur.Weeks = append(cur.Weeks, stats.Week{Days: week})
		}
		week = nil
	}

	for _, w := range cal.Weeks {
		for _, d := range w.ContributionDays {
			prefix := monthPrefix(d.Date)
			m, ok := findMonth(cal.Months, prefix)
			if !ok {
				continue
			}
			if cur == nil || cur.FirstDay != m.FirstDay {
				closeWeek()
				if cur != nil {
					out.Months = append(out.Months, *cur)
				}
				cur = &stats.Month{Name: m.Name, FirstDay: m.FirstDay}
			}
			week = append(week, stats.Day{
				Weekday: d.Weekday,
				Count:   d.ContributionCount,
				Color:   d.Color,
				Date:    prefix,
			})
		}
		closeWeek()
	}
	if cur != nil {
		out.Months = append(out.Months, *cur)
	}
	return out
}

func monthPrefix(date string) string {
	if len(date) > 7 {
		return date[:7]
	}
	return date
}

func findMonth(months []github.CalendarMonth, prefix string) (github.CalendarMonth, bool) {
	if prefix == "" {
		return github.CalendarMonth{}, false
	}
	for _, m := range months {
		if strings.HasPrefix(m.FirstDay, prefix) {
			return m, true
		}
	}
	return github.CalendarMonth{}, false
}
