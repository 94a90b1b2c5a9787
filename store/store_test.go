// ABOUTME: Tests for the in-memory entity store
// ABOUTME: Covers upsert, no-op misses, cascade delete and completion semantics
package store

import (
	"testing"

	"github.com/harperreed/commtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) *Store {
	t.Helper()
	s := New()
	s.CreateCompany(models.Company{ID: "acme", Name: "Acme", Emails: []string{"a@acme.com"}})
	s.CreateCompany(models.Company{ID: "globex", Name: "Globex"})
	s.CreateCommunication(models.Communication{ID: "m1", CompanyID: "acme", MethodID: models.MethodEmail, Date: "2025-01-01"})
	s.CreateCommunication(models.Communication{ID: "m2", CompanyID: "globex", MethodID: models.MethodPhoneCall, Date: "2025-01-02"})
	s.CreateCommunication(models.Communication{ID: "m3", CompanyID: "acme", MethodID: models.MethodOther, Date: "2025-01-03"})
	return s
}

func TestInitialState(t *testing.T) {
	s := New()
	assert.Empty(t, s.Companies())
	assert.Empty(t, s.Communications())
	assert.Equal(t, models.DefaultCommunicationMethods(), s.Methods())
}

func TestCreateCompanyGeneratesID(t *testing.T) {
	s := New()
	res := s.CreateCompany(models.Company{Name: "No ID"})

	assert.True(t, res.Created)
	assert.NotEmpty(t, res.ID)

	c, ok := s.Company(res.ID)
	require.True(t, ok)
	assert.Equal(t, "No ID", c.Name)
}

func TestCreateCompanyUpserts(t *testing.T) {
	s := New()
	s.CreateCompany(models.Company{ID: "acme", Name: "Acme"})
	res := s.CreateCompany(models.Company{ID: "acme", Name: "Acme Industries"})

	assert.True(t, res.Found)
	assert.False(t, res.Created)
	require.Len(t, s.Companies(), 1)
	assert.Equal(t, "Acme Industries", s.Companies()[0].Name)
}

func TestUpdateCompanyMissIsNoop(t *testing.T) {
	s := seed(t)
	before := s.State()

	res := s.UpdateCompany(models.Company{ID: "nobody", Name: "Ghost"})

	assert.False(t, res.Found)
	assert.Equal(t, before, s.State())
}

func TestUpdateCompany(t *testing.T) {
	s := seed(t)
	res := s.UpdateCompany(models.Company{ID: "globex", Name: "Globex Corp", CommunicationPeriodicity: 14})

	assert.True(t, res.Found)
	c, _ := s.Company("globex")
	assert.Equal(t, "Globex Corp", c.Name)
	assert.Equal(t, 14, c.CommunicationPeriodicity)
}

func TestDeleteCompanyCascades(t *testing.T) {
	s := seed(t)
	res := s.DeleteCompany("acme")

	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Removed)

	require.Len(t, s.Companies(), 1)
	assert.Equal(t, "globex", s.Companies()[0].ID)

	comms := s.Communications()
	require.Len(t, comms, 1)
	assert.Equal(t, "m2", comms[0].ID)
}

func TestDeleteCompanyLeavesOthersUntouched(t *testing.T) {
	s := seed(t)
	globex, _ := s.Company("globex")
	m2, _ := s.Communication("m2")

	s.DeleteCompany("acme")

	c, ok := s.Company("globex")
	require.True(t, ok)
	assert.Equal(t, globex, c)
	m, ok := s.Communication("m2")
	require.True(t, ok)
	assert.Equal(t, m2, m)
}

func TestDeleteUnknownCompanyStillRemovesOrphans(t *testing.T) {
	s := New()
	s.CreateCommunication(models.Communication{ID: "orphan", CompanyID: "gone"})

	res := s.DeleteCompany("gone")

	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Removed)
	assert.Empty(t, s.Communications())
}

func TestCreateCommunicationUpserts(t *testing.T) {
	s := New()
	s.CreateCommunication(models.Communication{ID: "x", CompanyID: "acme", Notes: "first"})
	_, res := s.CreateCommunication(models.Communication{ID: "x", CompanyID: "acme", Notes: "second"})

	assert.False(t, res.Created)
	comms := s.Communications()
	require.Len(t, comms, 1)
	assert.Equal(t, "second", comms[0].Notes)
}

func TestCreateCommunicationGeneratesID(t *testing.T) {
	s := New()
	c, res := s.CreateCommunication(models.Communication{CompanyID: "acme"})

	assert.True(t, res.Created)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, c.ID, res.ID)
}

func TestUpdateCommunicationMiss(t *testing.T) {
	s := seed(t)
	res := s.UpdateCommunication(models.Communication{ID: "nope"})
	assert.False(t, res.Found)
	assert.Len(t, s.Communications(), 3)
}

func TestDeleteCommunication(t *testing.T) {
	s := seed(t)

	res := s.DeleteCommunication("m2")
	assert.True(t, res.Found)

	res = s.DeleteCommunication("m2")
	assert.False(t, res.Found)

	ids := []string{}
	for _, c := range s.Communications() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"m1", "m3"}, ids)
}

func TestCompleteCommunicationIsIdempotent(t *testing.T) {
	s := seed(t)

	s.CompleteCommunication("m1")
	once := s.State()
	s.CompleteCommunication("m1")

	assert.Equal(t, once, s.State())
	m, _ := s.Communication("m1")
	assert.True(t, m.Completed)
}

func TestCompleteCommunicationMiss(t *testing.T) {
	s := seed(t)
	assert.False(t, s.CompleteCommunication("missing").Found)
}

func TestBulkCompleteEqualsSequential(t *testing.T) {
	bulk := seed(t)
	seq := seed(t)

	res := bulk.BulkCompleteCommunications([]string{"m3", "missing", "m1"})
	seq.CompleteCommunication("m3")
	seq.CompleteCommunication("m1")

	assert.Equal(t, seq.State(), bulk.State())
	assert.Equal(t, []string{"m3", "m1"}, res.Completed)
	assert.Equal(t, []string{"missing"}, res.Missing)
}

func TestReadersGetCopies(t *testing.T) {
	s := seed(t)

	companies := s.Companies()
	companies[0].Emails[0] = "changed@example.com"
	comms := s.Communications()
	comms[0].Completed = true

	c, _ := s.Company("acme")
	assert.Equal(t, "a@acme.com", c.Emails[0])
	m, _ := s.Communication("m1")
	assert.False(t, m.Completed)
}

func TestResetAndReplace(t *testing.T) {
	s := seed(t)
	st := s.State()

	s.Reset()
	assert.Equal(t, InitialState(), s.State())

	st.CommunicationMethods = nil
	s.Replace(st)
	assert.Len(t, s.Companies(), 2)
	assert.Len(t, s.Communications(), 3)
	assert.Equal(t, models.DefaultCommunicationMethods(), s.Methods())
}
