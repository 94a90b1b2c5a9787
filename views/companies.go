// ABOUTME: Company-level derived views for the dashboard grid
// ABOUTME: Row status, search and sort, and per-company overview rows
package views

import (
	"sort"
	"strings"
	"time"

	"github.com/harperreed/commtrack/models"
)

// Status is the dashboard highlight for a company.
type Status string

const (
	StatusNone     Status = "none"
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due-today"
	StatusOnTrack  Status = "on-track"
)

// CompanyStatus classifies a company by its next pending communication.
// Overdue wins over due today, so an item dated earlier today is overdue.
func CompanyStatus(comms []models.Communication, companyID string, ref time.Time) Status {
	next, ok := NextPending(comms, companyID, ref.Location())
	if !ok {
		return StatusNone
	}
	d, ok := dateOf(next, ref.Location())
	if !ok {
		return StatusNone
	}
	switch {
	case d.Before(ref):
		return StatusOverdue
	case sameDay(d.In(ref.Location()), ref):
		return StatusDueToday
	default:
		return StatusOnTrack
	}
}

// Sort orders for SearchCompanies.
const (
	SortByName           = "name"
	SortByCommunications = "communications"
)

// SearchCompanies filters by a case-insensitive name match and sorts by name,
// or by number of recent completed communications (most first).
func SearchCompanies(companies []models.Company, comms []models.Communication, query, sortBy string) []models.Company {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Company{}
	for _, c := range companies {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}

	if sortBy == SortByCommunications {
		counts := make(map[string]int, len(out))
		for _, c := range out {
			counts[c.ID] = len(LastCompleted(comms, c.ID, LastCompletedLimit, time.Local))
		}
		sort.SliceStable(out, func(i, j int) bool {
			return counts[out[i].ID] > counts[out[j].ID]
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// CompanyRow is one line of the company overview.
type CompanyRow struct {
	Company       models.Company         `json:"company"`
	LastCompleted []models.Communication `json:"lastCompleted"`
	Next          *models.Communication  `json:"next,omitempty"`
	Status        Status                 `json:"status"`
}

// CompanyOverview builds the dashboard grid rows.
func CompanyOverview(companies []models.Company, comms []models.Communication, query, sortBy string, ref time.Time) []CompanyRow {
	var rows []CompanyRow
	for _, c := range SearchCompanies(companies, comms, query, sortBy) {
		row := CompanyRow{
			Company:       c,
			LastCompleted: LastCompleted(comms, c.ID, LastCompletedLimit, ref.Location()),
			Status:        CompanyStatus(comms, c.ID, ref),
		}
		if next, ok := NextPending(comms, c.ID, ref.Location()); ok {
			row.Next = &next
		}
		rows = append(rows, row)
	}
	return rows
}

// Notifications groups the pending work shown in the notification panel.
type Notifications struct {
	Overdue  []models.Communication `json:"overdue"`
	DueToday []models.Communication `json:"dueToday"`
	Upcoming []models.Communication `json:"upcoming"`
}

// BuildNotifications applies the time-window selectors to communications
// whose company still exists.
func BuildNotifications(companies []models.Company, comms []models.Communication, ref time.Time) Notifications {
	live := WithExistingCompany(comms, companies)
	return Notifications{
		Overdue:  Overdue(live, ref),
		DueToday: DueToday(live, ref),
		Upcoming: Upcoming(live, ref),
	}
}

// CompanyName returns the company name or "Unknown Company".
func CompanyName(companies []models.Company, id string) string {
	for _, c := range companies {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown Company"
}
