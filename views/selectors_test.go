// ABOUTME: Tests for derived view selectors
// ABOUTME: Covers time windows, completion filtering and stable date ordering
package views

import (
	"testing"
	"time"

	"github.com/harperreed/commtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return models.FormatDate(ref.AddDate(0, 0, offset))
}

func ids(comms []models.Communication) []string {
	out := []string{}
	for _, c := range comms {
		out = append(out, c.ID)
	}
	return out
}

func TestYesterdayIsOverdueOnly(t *testing.T) {
	comms := []models.Communication{{ID: "y", CompanyID: "acme", Date: day(-1)}}

	assert.Equal(t, []string{"y"}, ids(Overdue(comms, ref)))
	assert.Empty(t, DueToday(comms, ref))
	assert.Empty(t, Upcoming(comms, ref))
}

func TestOverdueExcludesCompleted(t *testing.T) {
	comms := []models.Communication{
		{ID: "old-done", Date: day(-30), Completed: true},
		{ID: "old", Date: day(-30)},
		{ID: "future-done", Date: day(3), Completed: true},
	}
	assert.Equal(t, []string{"old"}, ids(Overdue(comms, ref)))
}

func TestDueToday(t *testing.T) {
	comms := []models.Communication{
		{ID: "today", Date: day(0)},
		{ID: "today-later", Date: day(0) + "T18:00"},
		{ID: "today-done", Date: day(0), Completed: true},
		{ID: "tomorrow", Date: day(1)},
	}
	assert.Equal(t, []string{"today", "today-later"}, ids(DueToday(comms, ref)))
}

func TestUpcomingWindow(t *testing.T) {
	comms := []models.Communication{
		{ID: "tomorrow", Date: day(1)},
		{ID: "six", Date: day(6)},
		{ID: "seven", Date: day(7)},
		{ID: "eight", Date: day(8)},
		{ID: "done", Date: day(2), Completed: true},
	}
	// Day seven is local midnight, which is before ref+7d at noon.
	assert.Equal(t, []string{"tomorrow", "six", "seven"}, ids(Upcoming(comms, ref)))
}

func TestUnparseableDatesMatchNothing(t *testing.T) {
	comms := []models.Communication{{ID: "bad", Date: "soon"}}
	assert.Empty(t, Overdue(comms, ref))
	assert.Empty(t, DueToday(comms, ref))
	assert.Empty(t, Upcoming(comms, ref))
}

func TestLastCompletedNewestFirstLimitFive(t *testing.T) {
	var comms []models.Communication
	for i := 1; i <= 7; i++ {
		comms = append(comms, models.Communication{
			ID: string(rune('a' + i - 1)), CompanyID: "acme", Date: day(-i), Completed: true,
		})
	}
	comms = append(comms, models.Communication{ID: "other", CompanyID: "globex", Date: day(0), Completed: true})
	comms = append(comms, models.Communication{ID: "pending", CompanyID: "acme", Date: day(0)})

	got := LastCompleted(comms, "acme", LastCompletedLimit, time.UTC)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
}

func TestLastCompletedStableOnTies(t *testing.T) {
	comms := []models.Communication{
		{ID: "first", CompanyID: "acme", Date: day(-1), Completed: true},
		{ID: "second", CompanyID: "acme", Date: day(-1), Completed: true},
		{ID: "newer", CompanyID: "acme", Date: day(0), Completed: true},
	}
	assert.Equal(t, []string{"newer", "first", "second"}, ids(LastCompleted(comms, "acme", 5, time.UTC)))
}

func TestNextPendingIgnoresPeriodicity(t *testing.T) {
	company := models.Company{ID: "acme", CommunicationPeriodicity: 7}
	comms := []models.Communication{
		{ID: "last", CompanyID: company.ID, Date: day(-10), Completed: true},
		{ID: "later", CompanyID: company.ID, Date: day(20)},
		{ID: "soon", CompanyID: company.ID, Date: day(2)},
	}

	next, ok := NextPending(comms, company.ID, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "soon", next.ID)

	_, ok = NextPending(comms[:1], company.ID, time.UTC)
	assert.False(t, ok)
}

func TestNextPendingStableOnTies(t *testing.T) {
	comms := []models.Communication{
		{ID: "first", CompanyID: "acme", Date: day(1)},
		{ID: "second", CompanyID: "acme", Date: day(1)},
	}
	next, _ := NextPending(comms, "acme", time.UTC)
	assert.Equal(t, "first", next.ID)
}

func TestWithExistingCompany(t *testing.T) {
	companies := []models.Company{{ID: "acme"}}
	comms := []models.Communication{{ID: "keep", CompanyID: "acme"}, {ID: "orphan", CompanyID: "gone"}}
	assert.Equal(t, []string{"keep"}, ids(WithExistingCompany(comms, companies)))
}

func TestCountByMethod(t *testing.T) {
	comms := []models.Communication{
		{MethodID: models.MethodEmail},
		{MethodID: models.MethodEmail},
		{MethodID: models.MethodPhoneCall},
	}
	counts := CountByMethod(comms)
	assert.Equal(t, 2, counts[models.MethodEmail])
	assert.Equal(t, 1, counts[models.MethodPhoneCall])
	assert.Equal(t, 0, counts[models.MethodOther])
}

func TestNextPendingReadsZonelessDatesInGivenLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	comms := []models.Communication{
		{ID: "utc-morning", CompanyID: "acme", Date: "2025-01-02T10:00:00Z"},
		{ID: "local-noon", CompanyID: "acme", Date: "2025-01-02T12:00"},
	}

	next, ok := NextPending(comms, "acme", time.UTC)
	require.True(t, ok)
	assert.Equal(t, "utc-morning", next.ID)

	// 12:00 in Tokyo is 03:00 UTC, ahead of the 10:00 UTC entry.
	next, _ = NextPending(comms, "acme", tokyo)
	assert.Equal(t, "local-noon", next.ID)
}
