// ABOUTME: Visualization CLI commands
// ABOUTME: Handles viz dashboard, calendar and graph generation commands
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/viz"
)

// VizDashboardCommand prints the ASCII dashboard.
func VizDashboardCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	stats := viz.GenerateDashboardStats(t.State(), t.Metrics(), t.Now())
	fmt.Fprint(out, viz.RenderDashboard(stats))
	return nil
}

// VizCalendarCommand prints a month calendar, the current month by default.
func VizCalendarCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("viz calendar", flag.ContinueOnError)
	fs.SetOutput(out)
	month := fs.String("month", "", "Month as YYYY-MM (default: current month)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := t.Now()
	year, mon, err := parseMonth(*month, now)
	if err != nil {
		return err
	}

	fmt.Fprint(out, viz.RenderCalendar(year, mon, t.Calendar(year, mon), now))
	return nil
}

func parseMonth(value string, now time.Time) (int, time.Month, error) {
	if value == "" {
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q: want YYYY-MM", value)
	}
	return parsed.Year(), parsed.Month(), nil
}

// VizGraphCommand generates a company/communication graph in DOT format.
// With a company ID it is limited to that company.
func VizGraphCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("viz graph", flag.ContinueOnError)
	fs.SetOutput(out)
	output := fs.String("output", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	generator := viz.NewGraphGenerator(t.State(), t.Now())

	var dot string
	var err error
	if fs.NArg() > 0 {
		dot, err = generator.GenerateCompanyGraph(fs.Arg(0))
	} else {
		dot, err = generator.GenerateCompleteGraph()
	}
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("failed to write graph: %w", err)
		}
		fmt.Fprintf(out, "✓ Wrote %s (%d bytes)\n", *output, len(dot))
		return nil
	}

	fmt.Fprintln(out, dot)
	return nil
}
