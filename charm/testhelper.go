// ABOUTME: Badger-backed charm client for tests
// ABOUTME: Same Client surface with no server, identity or sync

package charm

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v3"
)

// badgerBackend stores keys in a local badger directory.
type badgerBackend struct {
	db *badger.DB
}

func (b *badgerBackend) Get(key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

func (b *badgerBackend) Set(key, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (b *badgerBackend) Delete(key []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (b *badgerBackend) Keys() ([][]byte, error) {
	var keys [][]byte
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}

func (b *badgerBackend) Sync() error { return nil }

func (b *badgerBackend) Reset() error {
	return b.db.DropAll()
}

// NewTestClient opens a client on a badger directory under t.TempDir().
// Auto-sync is off and the settings file lives in the same directory.
func NewTestClient(t *testing.T) (*Client, func()) {
	t.Helper()

	dir := t.TempDir()
	db, err := badger.Open(badger.DefaultOptions(filepath.Join(dir, AppName)).WithLogger(nil))
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}

	c := &Client{
		db:       &badgerBackend{db: db},
		config:   &Config{Host: "localhost", path: filepath.Join(dir, settingsFile)},
		identity: func() (string, error) { return "", errors.New("test client has no charm identity") },
		close:    db.Close,
	}

	cleanup := func() {
		if err := c.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	}
	return c, cleanup
}
