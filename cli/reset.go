// ABOUTME: Reset command for clearing tracked data
// ABOUTME: Requires --confirm or an interactive yes on a terminal
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harperreed/commtrack/tracker"
	"golang.org/x/term"
)

// confirm asks before a destructive action. Tests swap it out.
var confirm = terminalConfirm

func terminalConfirm(action string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing to %s without --confirm: stdin is not a terminal", action)
	}

	fmt.Fprintf(os.Stderr, "This will %s. Type 'yes' to continue: ", action)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "yes", nil
}

// ResetCommand clears all companies, communications and counters, or just
// the counters with --reporting-only.
func ResetCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.SetOutput(out)
	confirmed := fs.Bool("confirm", false, "Skip the confirmation prompt")
	reportingOnly := fs.Bool("reporting-only", false, "Reset reporting counters and keep companies")
	if err := fs.Parse(args); err != nil {
		return err
	}

	action := "delete every company, communication and reporting counter"
	if *reportingOnly {
		action = "reset all reporting counters"
	}

	if !*confirmed {
		ok, err := confirm(action)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Reset cancelled")
			return nil
		}
	}

	if *reportingOnly {
		if err := t.ResetReporting(); err != nil {
			return fmt.Errorf("failed to reset reporting: %w", err)
		}
		fmt.Fprintln(out, "✓ Reporting counters reset")
		return nil
	}

	if err := t.ResetAll(); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}
	fmt.Fprintln(out, "✓ All data reset")
	return nil
}
