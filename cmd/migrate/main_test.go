package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/commtrack/charm"
	"github.com/harperreed/commtrack/db"
	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/persist"
	"github.com/harperreed/commtrack/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteKV(t *testing.T) *db.KVStore {
	t.Helper()
	database, err := db.OpenDatabase(filepath.Join(t.TempDir(), "commtrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return db.NewKVStore(database)
}

func seed(t *testing.T, kv persist.KV) {
	t.Helper()
	st := store.InitialState()
	st.Companies = []models.Company{{ID: "c1", Name: "Acme", Location: "Pune"}}
	require.NoError(t, persist.New(kv, nil).Save(st, models.DefaultReportingMetrics()))
}

func TestMigrateCharmToSQLite(t *testing.T) {
	src, cleanup := charm.NewTestClient(t)
	defer cleanup()
	seed(t, src)
	dst := sqliteKV(t)

	snap, err := migrate(src, dst, false, false)
	require.NoError(t, err)
	assert.Len(t, snap.App.Companies, 1)

	loaded, ok, err := persist.New(dst, nil).Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Acme", loaded.App.Companies[0].Name)
}

func TestMigrateDryRunWritesNothing(t *testing.T) {
	src := sqliteKV(t)
	seed(t, src)
	dst := sqliteKV(t)

	_, err := migrate(src, dst, true, false)
	require.NoError(t, err)

	data, err := dst.Get([]byte(persist.RootKey))
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMigrateRefusesToOverwrite(t *testing.T) {
	src := sqliteKV(t)
	seed(t, src)
	dst := sqliteKV(t)
	seed(t, dst)

	_, err := migrate(src, dst, false, false)
	assert.ErrorContains(t, err, "-force")

	_, err = migrate(src, dst, false, true)
	assert.NoError(t, err)
}

func TestMigrateRejectsBadSource(t *testing.T) {
	src := sqliteKV(t)
	dst := sqliteKV(t)

	_, err := migrate(src, dst, false, false)
	assert.ErrorContains(t, err, "no saved data")

	require.NoError(t, src.Set([]byte(persist.RootKey), []byte(`{"version":99}`)))
	_, err = migrate(src, dst, false, false)
	assert.ErrorIs(t, err, persist.ErrVersionMismatch)
}

func TestBackupFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, backupFile(filepath.Join(dir, "missing.db")))

	path := filepath.Join(dir, "commtrack.db")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	require.NoError(t, backupFile(path))

	matches, err := filepath.Glob(path + ".backup.*")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
