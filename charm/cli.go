// ABOUTME: CLI commands for the charm storage backend
// ABOUTME: Status, manual sync, auto-sync toggle, and full wipe of local data

package charm

import (
	"flag"
	"fmt"
	"io"
)

// StatusCommand shows sync configuration, identity and key count.
func StatusCommand(c *Client, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("storage status", flag.ContinueOnError)
	fs.SetOutput(w)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := c.Config()
	fmt.Fprintln(w, "Charm Storage Status")
	fmt.Fprintln(w, "────────────────────")
	fmt.Fprintf(w, "Server:    %s\n", cfg.Host)
	fmt.Fprintf(w, "Auto-sync: %v\n", cfg.AutoSync)

	if id, err := c.ID(); err != nil {
		fmt.Fprintln(w, "Status:    Not connected")
	} else {
		fmt.Fprintln(w, "Status:    Connected")
		fmt.Fprintf(w, "ID:        %s\n", id)
	}

	keys, err := c.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	fmt.Fprintf(w, "Keys:      %d\n", len(keys))
	return nil
}

// SyncCommand performs an immediate sync.
func SyncCommand(c *Client, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("storage sync", flag.ContinueOnError)
	fs.SetOutput(w)
	verbose := fs.Bool("verbose", false, "Show verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintln(w, "Syncing with server...")
	}
	if err := c.Sync(); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	fmt.Fprintln(w, "✓ Synced")
	return nil
}

// AutoSyncCommand enables or disables auto-sync in the charm config file.
func AutoSyncCommand(c *Client, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("storage auto-sync", flag.ContinueOnError)
	fs.SetOutput(w)
	enable := fs.Bool("enable", false, "Enable auto-sync")
	disable := fs.Bool("disable", false, "Disable auto-sync")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *enable == *disable {
		fmt.Fprintln(w, "Usage: commtrack storage auto-sync --enable|--disable")
		return nil
	}

	if err := c.Config().SetAutoSync(*enable); err != nil {
		return fmt.Errorf("failed to save auto-sync setting: %w", err)
	}
	if *enable {
		fmt.Fprintln(w, "✓ Auto-sync enabled")
	} else {
		fmt.Fprintln(w, "✓ Auto-sync disabled")
	}
	return nil
}

// WipeCommand deletes every key in the local store.
func WipeCommand(c *Client, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("storage wipe", flag.ContinueOnError)
	fs.SetOutput(w)
	confirm := fs.Bool("confirm", false, "Confirm data wipe")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*confirm {
		fmt.Fprintln(w, "WARNING: This will delete ALL local data!")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "To confirm, run:")
		fmt.Fprintln(w, "  commtrack storage wipe --confirm")
		return nil
	}

	if err := c.Reset(); err != nil {
		return fmt.Errorf("failed to reset KV store: %w", err)
	}
	fmt.Fprintln(w, "✓ All data wiped")
	return nil
}
