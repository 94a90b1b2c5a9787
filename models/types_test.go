// ABOUTME: Tests for tracker data models
// ABOUTME: Validates method lookup, metric defaults, date parsing and form validation
package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCompany() Company {
	return Company{
		Name:                     "Acme Corp",
		Location:                 "Berlin",
		LinkedInProfile:          "https://www.linkedin.com/company/acme",
		Emails:                   []string{"hello@acme.com"},
		PhoneNumbers:             []string{"+49 30 1234"},
		CommunicationPeriodicity: 7,
	}
}

func TestDefaultCommunicationMethodsOrder(t *testing.T) {
	methods := DefaultCommunicationMethods()
	require.Len(t, methods, 5)

	for i, m := range methods {
		assert.Equal(t, i+1, m.Sequence)
	}
	assert.Equal(t, MethodEmail, methods[2].ID)
	assert.True(t, methods[2].IsMandatory)

	// Callers get a copy
	methods[0].Name = "changed"
	assert.Equal(t, "LinkedIn Post", DefaultCommunicationMethods()[0].Name)
}

func TestMethodName(t *testing.T) {
	assert.Equal(t, "Phone Call", MethodName(MethodPhoneCall))
	assert.Equal(t, "Unknown Method", MethodName("fax"))
}

func TestDefaultReportingMetrics(t *testing.T) {
	m := DefaultReportingMetrics()
	for _, method := range DefaultCommunicationMethods() {
		assert.Equal(t, 0, m.CommunicationMethodFrequency[method.ID])
		assert.Equal(t, 50, m.EngagementEffectiveness[method.ID])
	}
	assert.Equal(t, CommunicationTrends{}, m.CommunicationTrends)
}

func TestReportingMetricsCloneIsIndependent(t *testing.T) {
	m := DefaultReportingMetrics()
	c := m.Clone()
	c.CommunicationMethodFrequency[MethodEmail] = 9
	assert.Equal(t, 0, m.CommunicationMethodFrequency[MethodEmail])
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)

	d, err := ParseDate("2025-01-03", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, loc), d)

	d, err = ParseDate("2025-01-03T10:30", loc)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	d, err = ParseDate("2025-01-03T10:30:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("next tuesday", loc)
	assert.Error(t, err)
}

func TestCompanyValidate(t *testing.T) {
	c := validCompany()
	require.NoError(t, c.Validate())

	tests := []struct {
		name   string
		mutate func(*Company)
	}{
		{"missing name", func(c *Company) { c.Name = " " }},
		{"missing location", func(c *Company) { c.Location = "" }},
		{"bad linkedin", func(c *Company) { c.LinkedInProfile = "acme" }},
		{"no emails", func(c *Company) { c.Emails = nil }},
		{"bad email", func(c *Company) { c.Emails = []string{"not-an-email"} }},
		{"no phones", func(c *Company) { c.PhoneNumbers = nil }},
		{"zero periodicity", func(c *Company) { c.CommunicationPeriodicity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCompany()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestCompanyValidateOptionalLinkedIn(t *testing.T) {
	c := validCompany()
	c.LinkedInProfile = ""
	assert.NoError(t, c.Validate())
}

func TestCommunicationValidate(t *testing.T) {
	c := Communication{CompanyID: "c1", MethodID: MethodEmail, Date: "2025-01-03"}
	require.NoError(t, c.Validate())

	c.MethodID = "carrier-pigeon"
	assert.ErrorIs(t, c.Validate(), ErrValidation)

	c = Communication{CompanyID: "c1", MethodID: MethodEmail, Date: "soon"}
	assert.ErrorIs(t, c.Validate(), ErrValidation)

	c = Communication{MethodID: MethodEmail, Date: "2025-01-03"}
	assert.ErrorIs(t, c.Validate(), ErrValidation)
}

func TestNewCommunicationIDIsUnique(t *testing.T) {
	a := NewCommunicationID()
	b := NewCommunicationID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 26)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b,,c "))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , "))
}
