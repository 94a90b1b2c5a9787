// ABOUTME: Tests for the MCP tool handlers
// ABOUTME: Validation, not-found results and tracker side effects
package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)

func setupTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	return tracker.NewInMemory(tracker.WithClock(func() time.Time { return ref }))
}

func addAcme(t *testing.T, tr *tracker.Tracker) CompanyOutput {
	t.Helper()
	_, out, err := NewCompanyHandlers(tr).AddCompany(context.Background(), nil, AddCompanyInput{
		Name:         "Acme",
		Location:     "Pune",
		Emails:       []string{"hi@acme.test"},
		PhoneNumbers: []string{"555-1234"},
	})
	require.NoError(t, err)
	return out
}

func TestAddCompany(t *testing.T) {
	tr := setupTracker(t)
	out := addAcme(t, tr)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, models.DefaultPeriodicity, out.CommunicationPeriodicity)
	assert.Len(t, tr.Companies(), 1)
}

func TestAddCompanyValidation(t *testing.T) {
	h := NewCompanyHandlers(setupTracker(t))

	_, _, err := h.AddCompany(context.Background(), nil, AddCompanyInput{Name: "Acme", Location: "Pune"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, _, err = h.AddCompany(context.Background(), nil, AddCompanyInput{
		Name: "Acme", Location: "Pune", Emails: []string{"not-an-email"}, PhoneNumbers: []string{"1"},
	})
	assert.ErrorContains(t, err, "invalid email")
}

func TestUpdateCompany(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	h := NewCompanyHandlers(tr)

	_, out, err := h.UpdateCompany(context.Background(), nil, UpdateCompanyInput{CompanyID: acme.ID, Location: "Mumbai"})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", out.Location)
	assert.Equal(t, "Acme", out.Name)

	_, _, err = h.UpdateCompany(context.Background(), nil, UpdateCompanyInput{CompanyID: "ghost", Name: "x"})
	assert.ErrorContains(t, err, "company not found")
}

func TestDeleteCompanyCascades(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	ch := NewCommunicationHandlers(tr)
	_, _, err := ch.AddCommunication(context.Background(), nil, AddCommunicationInput{
		CompanyID: acme.ID, MethodID: "email", Date: "2025-01-02",
	})
	require.NoError(t, err)

	_, out, err := NewCompanyHandlers(tr).DeleteCompany(context.Background(), nil, DeleteCompanyInput{CompanyID: acme.ID})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, 1, out.CommunicationsRemoved)
	assert.Empty(t, tr.Communications())

	_, out, err = NewCompanyHandlers(tr).DeleteCompany(context.Background(), nil, DeleteCompanyInput{CompanyID: acme.ID})
	require.NoError(t, err)
	assert.False(t, out.Found)
}

func TestFindCompanies(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	ch := NewCommunicationHandlers(tr)
	_, _, _ = ch.AddCommunication(context.Background(), nil, AddCommunicationInput{CompanyID: acme.ID, MethodID: "email", Date: "2025-01-01"})

	h := NewCompanyHandlers(tr)
	_, out, err := h.FindCompanies(context.Background(), nil, FindCompaniesInput{Query: "ac"})
	require.NoError(t, err)
	require.Len(t, out.Companies, 1)
	assert.Equal(t, "overdue", out.Companies[0].Status)

	_, out, err = h.FindCompanies(context.Background(), nil, FindCompaniesInput{Query: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, out.Companies)

	_, _, err = h.FindCompanies(context.Background(), nil, FindCompaniesInput{SortBy: "size"})
	assert.Error(t, err)
}

func TestAddCommunication(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	h := NewCommunicationHandlers(tr)

	_, out, err := h.AddCommunication(context.Background(), nil, AddCommunicationInput{
		CompanyID: acme.ID, MethodID: "phone-call", Date: "2025-01-05", Notes: "intro call",
	})
	require.NoError(t, err)
	assert.Len(t, out.ID, 26)
	assert.Equal(t, "Acme", out.CompanyName)
	assert.Equal(t, "Phone Call", out.MethodName)
	assert.Equal(t, 1, tr.Metrics().CommunicationMethodFrequency[models.MethodPhoneCall])

	_, _, err = h.AddCommunication(context.Background(), nil, AddCommunicationInput{CompanyID: acme.ID, MethodID: "fax", Date: "2025-01-05"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, _, err = h.AddCommunication(context.Background(), nil, AddCommunicationInput{CompanyID: "ghost", MethodID: "email", Date: "2025-01-05"})
	assert.ErrorContains(t, err, "company not found")
}

func TestUpdateCommunication(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	h := NewCommunicationHandlers(tr)
	_, c, err := h.AddCommunication(context.Background(), nil, AddCommunicationInput{CompanyID: acme.ID, MethodID: "email", Date: "2025-01-05"})
	require.NoError(t, err)

	done := true
	_, out, err := h.UpdateCommunication(context.Background(), nil, UpdateCommunicationInput{
		CommunicationID: c.ID, Date: "2025-01-06", Completed: &done,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", out.Date)
	assert.True(t, out.Completed)
	// Editing is not an engagement.
	assert.Equal(t, models.EffectivenessDefault, tr.Metrics().EngagementEffectiveness[models.MethodEmail])

	_, _, err = h.UpdateCommunication(context.Background(), nil, UpdateCommunicationInput{CommunicationID: "ghost"})
	assert.ErrorContains(t, err, "communication not found")
}

func TestCompleteAndDeleteCommunication(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	h := NewCommunicationHandlers(tr)
	_, c, _ := h.AddCommunication(context.Background(), nil, AddCommunicationInput{CompanyID: acme.ID, MethodID: "email", Date: "2025-01-02"})

	_, out, err := h.CompleteCommunication(context.Background(), nil, CommunicationIDInput{CommunicationID: c.ID})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, 60, tr.Metrics().EngagementEffectiveness[models.MethodEmail])

	_, out, err = h.CompleteCommunication(context.Background(), nil, CommunicationIDInput{CommunicationID: "ghost"})
	require.NoError(t, err)
	assert.False(t, out.Found)

	_, out, err = h.DeleteCommunication(context.Background(), nil, CommunicationIDInput{CommunicationID: c.ID})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Empty(t, tr.Communications())
}

func TestBulkComplete(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	h := NewCommunicationHandlers(tr)
	_, a, _ := h.AddCommunication(context.Background(), nil, AddCommunicationInput{CompanyID: acme.ID, MethodID: "email", Date: "2025-01-02"})

	_, out, err := h.BulkCompleteCommunications(context.Background(), nil, BulkCompleteInput{CommunicationIDs: []string{"ghost", a.ID}})
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, out.Completed)
	assert.Equal(t, []string{"ghost"}, out.Missing)

	_, _, err = h.BulkCompleteCommunications(context.Background(), nil, BulkCompleteInput{})
	assert.Error(t, err)
}

func TestListNotifications(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	h := NewCommunicationHandlers(tr)
	for _, d := range []string{"2025-01-01", "2025-01-04", "2025-02-01"} {
		_, _, err := h.AddCommunication(context.Background(), nil, AddCommunicationInput{CompanyID: acme.ID, MethodID: "email", Date: d})
		require.NoError(t, err)
	}

	_, out, err := h.ListNotifications(context.Background(), nil, ListNotificationsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Overdue, 1)
	assert.Empty(t, out.DueToday)
	assert.Len(t, out.Upcoming, 1)

	_, out, err = h.ListNotifications(context.Background(), nil, ListNotificationsInput{CompanyID: "other"})
	require.NoError(t, err)
	assert.Empty(t, out.Overdue)
}

func TestReportHandlers(t *testing.T) {
	tr := setupTracker(t)
	h := NewReportHandlers(tr)

	_, score, err := h.RecordEngagement(context.Background(), nil, RecordEngagementInput{MethodID: "other", Successful: false})
	require.NoError(t, err)
	assert.Equal(t, 45, score.Effectiveness)

	_, _, err = h.RecordEngagement(context.Background(), nil, RecordEngagementInput{MethodID: "fax"})
	assert.Error(t, err)

	_, report, err := h.GetReport(context.Background(), nil, GetReportInput{})
	require.NoError(t, err)
	require.Len(t, report.Methods, 5)
	assert.Equal(t, "linkedin-post", report.Methods[0].MethodID)
	assert.Equal(t, 45, report.Methods[4].Effectiveness)
	assert.Equal(t, 0, report.Total)
}

func TestVizHandlers(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	h := NewVizHandlers(tr)

	_, graph, err := h.GenerateGraph(context.Background(), nil, GenerateGraphInput{CompanyID: acme.ID})
	require.NoError(t, err)
	assert.Contains(t, graph.DOTSource, "Acme")

	_, _, err = h.GenerateGraph(context.Background(), nil, GenerateGraphInput{CompanyID: "ghost"})
	assert.Error(t, err)

	_, dash, err := h.GetDashboard(context.Background(), nil, GetDashboardInput{})
	require.NoError(t, err)
	assert.Contains(t, dash.Text, "1 companies")
}
