// ABOUTME: ASCII month calendar of scheduled communications
// ABOUTME: Marks days with pending or completed work and lists them below the grid
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/commtrack/views"
)

// RenderCalendar draws a Monday-first month grid. Days with pending work
// get '*', days where everything is done get '+', and ref's day is prefixed with '['.
func RenderCalendar(year int, month time.Month, days map[int][]views.CalendarEvent, ref time.Time) string {
	var out strings.Builder

	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	out.WriteString(fmt.Sprintf("%s %d\n", month, year))
	out.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")

	offset := (int(first.Weekday()) + 6) % 7
	out.WriteString(strings.Repeat("    ", offset))

	lastDay := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= lastDay; day++ {
		out.WriteString(calendarCell(day, days[day], sameDay(ref, year, month, day)))
		if (offset+day)%7 == 0 {
			out.WriteString("\n")
		}
	}
	if (offset+lastDay)%7 != 0 {
		out.WriteString("\n")
	}

	var keys []int
	for day := range days {
		keys = append(keys, day)
	}
	sort.Ints(keys)

	if len(keys) > 0 {
		out.WriteString("\n")
	}
	for _, day := range keys {
		for _, ev := range days[day] {
			status := "pending"
			if ev.Communication.Completed {
				status = "done"
			}
			out.WriteString(fmt.Sprintf("  %2d %s %s - %s (%s)\n",
				day, MethodGlyph(ev.Communication.MethodID), ev.CompanyName, ev.MethodName, status))
		}
	}

	return out.String()
}

func calendarCell(day int, events []views.CalendarEvent, today bool) string {
	mark := " "
	if len(events) > 0 {
		mark = "+"
		for _, ev := range events {
			if !ev.Communication.Completed {
				mark = "*"
				break
			}
		}
	}
	if today {
		return fmt.Sprintf("[%2d%s", day, mark)
	}
	return fmt.Sprintf(" %2d%s", day, mark)
}

func sameDay(ref time.Time, year int, month time.Month, day int) bool {
	y, m, d := ref.Date()
	return y == year && m == month && d == day
}
