// ABOUTME: Versioned snapshot persistence of store state and reporting metrics
// ABOUTME: Writes one JSON blob under a fixed key in any byte key-value backend
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/store"
	"go.uber.org/zap"
)

const (
	// RootKey is the key the snapshot lives under.
	RootKey = "persist:root"

	// SchemaVersion is the snapshot version this build reads and writes.
	SchemaVersion = 1
)

// ErrVersionMismatch is returned by Decode for snapshots of another version.
var ErrVersionMismatch = errors.New("snapshot version mismatch")

// KV is the byte store snapshots are written to. Get returns a nil value
// and a nil error when the key does not exist.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Snapshot is the persisted document.
type Snapshot struct {
	Version   int                     `json:"version"`
	App       store.State             `json:"app"`
	Reporting models.ReportingMetrics `json:"reporting"`
}

// Encode marshals state and metrics at the current schema version.
func Encode(st store.State, metrics models.ReportingMetrics) ([]byte, error) {
	return json.Marshal(Snapshot{
		Version:   SchemaVersion,
		App:       st,
		Reporting: metrics,
	})
}

// Decode unmarshals a snapshot and rejects other versions.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != SchemaVersion {
		return Snapshot{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, snap.Version, SchemaVersion)
	}
	if snap.App.Companies == nil {
		snap.App.Companies = []models.Company{}
	}
	if snap.App.Communications == nil {
		snap.App.Communications = []models.Communication{}
	}
	return snap, nil
}

// Persister saves and loads snapshots through a KV backend.
type Persister struct {
	kv     KV
	logger *zap.Logger
}

func New(kv KV, logger *zap.Logger) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Persister{kv: kv, logger: logger}
}

// Save writes the snapshot, replacing the previous one.
func (p *Persister) Save(st store.State, metrics models.ReportingMetrics) error {
	data, err := Encode(st, metrics)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := p.kv.Set([]byte(RootKey), data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot. ok is false when nothing usable is stored:
// no key, an undecodable blob, or another schema version. Those blobs are
// discarded with a warning rather than failing startup.
func (p *Persister) Load() (snap Snapshot, ok bool, err error) {
	data, err := p.kv.Get([]byte(RootKey))
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if data == nil {
		return Snapshot{}, false, nil
	}

	snap, err = Decode(data)
	if err != nil {
		p.logger.Warn("discarding persisted snapshot", zap.Error(err))
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Clear removes the stored snapshot.
func (p *Persister) Clear() error {
	if err := p.kv.Delete([]byte(RootKey)); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
