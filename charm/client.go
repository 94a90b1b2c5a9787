// ABOUTME: Charm KV client wrapper used as the snapshot backend
// ABOUTME: Missing keys read as nil, writes sync to the charm server when enabled

package charm

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

// backend is the part of charm kv the client relies on.
type backend interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Keys() ([][]byte, error)
	Sync() error
	Reset() error
}

// Client wraps charm KV with config and sync helpers.
type Client struct {
	mu       sync.RWMutex
	db       backend
	config   *Config
	identity func() (string, error)
	close    func() error
}

// NewClient opens the commtrack KV database.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	_ = os.Setenv("CHARM_HOST", cfg.Host)

	db, err := kv.OpenWithDefaults(AppName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	// Pull remote changes before the first read
	if cfg.AutoSync {
		_ = db.Sync()
	}

	return &Client{
		db:       db,
		config:   cfg,
		identity: remoteID,
	}, nil
}

func remoteID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// Close releases the backing store when it can be closed. charm kv keeps
// badger open until the process exits.
func (c *Client) Close() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}

func (c *Client) Config() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// ID returns the charm user ID for this device.
func (c *Client) ID() (string, error) {
	return c.identity()
}

// Sync performs a manual sync with the charm server.
func (c *Client) Sync() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Sync()
}

// Get retrieves a value by key. A missing key returns nil, nil.
func (c *Client) Get(key []byte) ([]byte, error) {
	c.mu.RLock()
	value, err := c.db.Get(key)
	c.mu.RUnlock()
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	return value, err
}

// Set stores a value and syncs if enabled.
func (c *Client) Set(key, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.db.Set(key, value); err != nil {
		return err
	}
	c.syncLocked()
	return nil
}

// Delete removes a key and syncs if enabled.
func (c *Client) Delete(key []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.db.Delete(key); err != nil {
		return err
	}
	c.syncLocked()
	return nil
}

// syncLocked pushes a write when auto-sync is on. Failures leave the local
// copy authoritative until the next manual sync.
func (c *Client) syncLocked() {
	if c.config.AutoSync {
		_ = c.db.Sync()
	}
}

func (c *Client) Keys() ([][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db.Keys()
}

// Reset wipes all data from the KV store.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Reset()
}
