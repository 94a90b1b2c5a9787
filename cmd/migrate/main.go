// ABOUTME: Copies the saved commtrack snapshot between storage backends.
// ABOUTME: Provides dry-run, overwrite protection and SQLite backup before writing.

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/harperreed/commtrack/charm"
	"github.com/harperreed/commtrack/config"
	"github.com/harperreed/commtrack/db"
	"github.com/harperreed/commtrack/persist"
)

func main() {
	from := flag.String("from", config.BackendCharm, "Source backend: charm or sqlite")
	to := flag.String("to", config.BackendSQLite, "Target backend: charm or sqlite")
	dbPath := flag.String("db", db.DefaultPath(), "SQLite database path")
	dryRun := flag.Bool("dry-run", false, "Show what would happen without making changes")
	backup := flag.Bool("backup", true, "Back up the SQLite file before writing to it")
	force := flag.Bool("force", false, "Overwrite a target that already holds data")
	flag.Parse()

	if *from == *to {
		log.Fatal("Error: -from and -to must name different backends")
	}

	if *backup && *to == config.BackendSQLite && !*dryRun {
		if err := backupFile(*dbPath); err != nil {
			log.Fatalf("Backup failed: %v", err)
		}
	}

	src, closeSrc, err := openKV(*from, *dbPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *from, err)
	}
	defer func() { _ = closeSrc() }()

	dst, closeDst, err := openKV(*to, *dbPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *to, err)
	}
	defer func() { _ = closeDst() }()

	snap, err := migrate(src, dst, *dryRun, *force)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	prefix := ""
	if *dryRun {
		prefix = "[DRY RUN] Would copy "
	} else {
		prefix = "Copied "
	}
	log.Printf("%s%d companies and %d communications from %s to %s",
		prefix, len(snap.App.Companies), len(snap.App.Communications), *from, *to)
}

func openKV(backend, dbPath string) (persist.KV, func() error, error) {
	switch backend {
	case config.BackendSQLite:
		database, err := db.OpenDatabase(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return db.NewKVStore(database), database.Close, nil
	case config.BackendCharm:
		cfg, err := charm.LoadConfig()
		if err != nil {
			return nil, nil, err
		}
		client, err := charm.NewClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// migrate copies the root snapshot from src to dst. The snapshot must decode
// with the current schema version, and an existing target is only replaced
// with force.
func migrate(src, dst persist.KV, dryRun, force bool) (persist.Snapshot, error) {
	key := []byte(persist.RootKey)

	data, err := src.Get(key)
	if err != nil {
		return persist.Snapshot{}, fmt.Errorf("failed to read source: %w", err)
	}
	if data == nil {
		return persist.Snapshot{}, errors.New("source has no saved data")
	}

	snap, err := persist.Decode(data)
	if err != nil {
		return persist.Snapshot{}, fmt.Errorf("source snapshot is not usable: %w", err)
	}

	existing, err := dst.Get(key)
	if err != nil {
		return persist.Snapshot{}, fmt.Errorf("failed to read target: %w", err)
	}
	if existing != nil && !force {
		return persist.Snapshot{}, errors.New("target already holds data; use -force to overwrite it")
	}

	if dryRun {
		return snap, nil
	}
	if err := dst.Set(key, data); err != nil {
		return persist.Snapshot{}, fmt.Errorf("failed to write target: %w", err)
	}
	return snap, nil
}

// backupFile copies path aside with a timestamp suffix. A missing file is not an error.
func backupFile(path string) error {
	input, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read database: %w", err)
	}

	backupPath := fmt.Sprintf("%s.backup.%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, input, 0644); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	log.Printf("Backup created: %s", backupPath)
	return nil
}
