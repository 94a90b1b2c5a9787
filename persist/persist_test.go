// ABOUTME: Tests for snapshot persistence over the charm and SQLite backends
// ABOUTME: Round trips, version mismatch discard, and undecodable blobs
package persist

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/harperreed/commtrack/charm"
	"github.com/harperreed/commtrack/db"
	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sqliteKV(t *testing.T) KV {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.InitSchema(conn))
	return db.NewKVStore(conn)
}

func charmKV(t *testing.T) KV {
	t.Helper()
	c, cleanup := charm.NewTestClient(t)
	t.Cleanup(cleanup)
	return c
}

func sampleState() (store.State, models.ReportingMetrics) {
	s := store.New()
	res := s.CreateCompany(models.Company{
		ID: "acme", Name: "Acme", Location: "Pune",
		Emails: []string{"hi@acme.test"}, PhoneNumbers: []string{"555"},
		CommunicationPeriodicity: 14,
	})
	s.CreateCommunication(models.Communication{
		ID: "c1", CompanyID: res.ID, MethodID: models.MethodEmail, Date: "2025-01-02",
	})

	m := models.DefaultReportingMetrics()
	m.CommunicationMethodFrequency[models.MethodEmail] = 3
	m.EngagementEffectiveness[models.MethodEmail] = 70
	m.CommunicationTrends = models.CommunicationTrends{Total: 3, Overdue: 1, Completed: 1}
	return s.State(), m
}

func TestRoundTripBothBackends(t *testing.T) {
	backends := map[string]func(*testing.T) KV{
		"charm":  charmKV,
		"sqlite": sqliteKV,
	}
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			p := New(open(t), zaptest.NewLogger(t))
			st, m := sampleState()

			require.NoError(t, p.Save(st, m))

			snap, ok, err := p.Load()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, SchemaVersion, snap.Version)
			assert.Equal(t, st, snap.App)
			assert.Equal(t, m, snap.Reporting)
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	p := New(sqliteKV(t), nil)

	_, ok, err := p.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadDiscardsOtherVersion(t *testing.T) {
	kv := sqliteKV(t)
	require.NoError(t, kv.Set([]byte(RootKey), []byte(`{"version":2,"app":{"companies":[{"id":"x"}]}}`)))

	p := New(kv, zaptest.NewLogger(t))
	_, ok, err := p.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadDiscardsGarbage(t *testing.T) {
	kv := charmKV(t)
	require.NoError(t, kv.Set([]byte(RootKey), []byte(`not json`)))

	p := New(kv, zaptest.NewLogger(t))
	_, ok, err := p.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeVersionMismatch(t *testing.T) {
	_, err := Decode([]byte(`{"version":0}`))
	assert.True(t, errors.Is(err, ErrVersionMismatch))
}

func TestDecodeFillsEmptyCollections(t *testing.T) {
	snap, err := Decode([]byte(`{"version":1,"app":{},"reporting":{}}`))
	require.NoError(t, err)
	assert.NotNil(t, snap.App.Companies)
	assert.NotNil(t, snap.App.Communications)
}

func TestEncodeShape(t *testing.T) {
	st, m := sampleState()
	data, err := Encode(st, m)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"version":1`)
	assert.Contains(t, s, `"app":{"companies":[`)
	assert.Contains(t, s, `"communicationMethods":[`)
	assert.Contains(t, s, `"reporting":{"communicationMethodFrequency":{`)
}

func TestClear(t *testing.T) {
	p := New(charmKV(t), nil)
	st, m := sampleState()
	require.NoError(t, p.Save(st, m))
	require.NoError(t, p.Clear())

	_, ok, err := p.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}
