// ABOUTME: Derived views over the entity store state
// ABOUTME: Overdue, due-today, upcoming, and per-company history selectors
package views

import (
	"sort"
	"time"

	"github.com/harperreed/commtrack/models"
)

// UpcomingWindow is how far ahead Upcoming looks.
const UpcomingWindow = 7

// LastCompletedLimit is how many completed communications the dashboard shows per company.
const LastCompletedLimit = 5

func dateOf(c models.Communication, loc *time.Location) (time.Time, bool) {
	d, err := models.ParseDate(c.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func filter(comms []models.Communication, keep func(models.Communication) bool) []models.Communication {
	out := []models.Communication{}
	for _, c := range comms {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Overdue returns pending communications dated strictly before ref.
func Overdue(comms []models.Communication, ref time.Time) []models.Communication {
	return filter(comms, func(c models.Communication) bool {
		if c.Completed {
			return false
		}
		d, ok := dateOf(c, ref.Location())
		return ok && d.Before(ref)
	})
}

// DueToday returns pending communications on ref's calendar day.
func DueToday(comms []models.Communication, ref time.Time) []models.Communication {
	return filter(comms, func(c models.Communication) bool {
		if c.Completed {
			return false
		}
		d, ok := dateOf(c, ref.Location())
		return ok && sameDay(d.In(ref.Location()), ref)
	})
}

// Upcoming returns pending communications strictly between ref and ref+7 days.
func Upcoming(comms []models.Communication, ref time.Time) []models.Communication {
	end := ref.AddDate(0, 0, UpcomingWindow)
	return filter(comms, func(c models.Communication) bool {
		if c.Completed {
			return false
		}
		d, ok := dateOf(c, ref.Location())
		return ok && d.After(ref) && d.Before(end)
	})
}

// LastCompleted returns up to n completed communications for a company,
// newest first. Dates without a zone are read in loc.
func LastCompleted(comms []models.Communication, companyID string, n int, loc *time.Location) []models.Communication {
	done := filter(comms, func(c models.Communication) bool {
		return c.CompanyID == companyID && c.Completed
	})
	sortByDate(done, true, loc)
	if n >= 0 && len(done) > n {
		done = done[:n]
	}
	return done
}

// NextPending returns the earliest pending communication for a company.
// Periodicity plays no part in it. Dates without a zone are read in loc.
func NextPending(comms []models.Communication, companyID string, loc *time.Location) (models.Communication, bool) {
	pending := filter(comms, func(c models.Communication) bool {
		return c.CompanyID == companyID && !c.Completed
	})
	if len(pending) == 0 {
		return models.Communication{}, false
	}
	sortByDate(pending, false, loc)
	return pending[0], true
}

// WithExistingCompany drops communications whose company no longer exists.
func WithExistingCompany(comms []models.Communication, companies []models.Company) []models.Communication {
	known := make(map[string]bool, len(companies))
	for _, c := range companies {
		known[c.ID] = true
	}
	return filter(comms, func(c models.Communication) bool {
		return known[c.CompanyID]
	})
}

// CountByMethod is a live count of communications per method.
func CountByMethod(comms []models.Communication) map[models.MethodID]int {
	counts := make(map[models.MethodID]int)
	for _, c := range comms {
		counts[c.MethodID]++
	}
	return counts
}

// sortByDate sorts in place by date only; equal dates keep collection order.
func sortByDate(comms []models.Communication, descending bool, loc *time.Location) {
	sort.SliceStable(comms, func(i, j int) bool {
		a, _ := dateOf(comms[i], loc)
		b, _ := dateOf(comms[j], loc)
		if descending {
			return a.After(b)
		}
		return a.Before(b)
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
