// ABOUTME: Storage subcommand routing for the charm backend
// ABOUTME: Dispatches status, sync, auto-sync and wipe to the charm package
package cli

import (
	"fmt"
	"io"

	"github.com/harperreed/commtrack/charm"
)

// StorageCommand runs a charm storage subcommand.
func StorageCommand(client *charm.Client, out io.Writer, args []string) error {
	if client == nil {
		return fmt.Errorf("storage commands require the charm backend (storage.backend = %q)", "charm")
	}
	if len(args) == 0 {
		return fmt.Errorf("storage requires a subcommand: status, sync, auto-sync or wipe")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "status":
		return charm.StatusCommand(client, out, rest)
	case "sync":
		return charm.SyncCommand(client, out, rest)
	case "auto-sync":
		return charm.AutoSyncCommand(client, out, rest)
	case "wipe":
		return charm.WipeCommand(client, out, rest)
	default:
		return fmt.Errorf("unknown storage command: %s", sub)
	}
}
