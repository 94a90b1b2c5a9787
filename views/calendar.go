package views

import (
	"time"

	"github.com/harperreed/commtrack/models"
)

// CalendarEvent is a communication placed on the calendar.
type CalendarEvent struct {
	Communication models.Communication
	CompanyName   string
	MethodName    string
}

// CalendarMonth groups communications of existing companies by day of month.
func CalendarMonth(companies []models.Company, comms []models.Communication, year int, month time.Month, loc *time.Location) map[int][]CalendarEvent {
	if loc == nil {
		loc = time.Local
	}
	days := make(map[int][]CalendarEvent)
	for _, c := range WithExistingCompany(comms, companies) {
		d, ok := dateOf(c, loc)
		if !ok {
			continue
		}
		d = d.In(loc)
		if d.Year() != year || d.Month() != month {
			continue
		}
		days[d.Day()] = append(days[d.Day()], CalendarEvent{
			Communication: c,
			CompanyName:   CompanyName(companies, c.CompanyID),
			MethodName:    models.MethodName(c.MethodID),
		})
	}
	return days
}
