// ABOUTME: Reporting CLI commands
// ABOUTME: Shows metric tables and exports them as CSV files or an Excel workbook
package cli

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/harperreed/commtrack/export"
	"github.com/harperreed/commtrack/tracker"
)

// ReportShowCommand prints the three metric tables
func ReportShowCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("report show", flag.ContinueOnError)
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	m := t.Metrics()
	tables := []struct {
		title  string
		header string
		rows   []export.MetricRow
	}{
		{"COMMUNICATION METHOD FREQUENCY", "METHOD\tFREQUENCY", export.FrequencyRows(m)},
		{"ENGAGEMENT EFFECTIVENESS", "METHOD\tEFFECTIVENESS", export.EffectivenessRows(m)},
		{"COMMUNICATION TRENDS", "METRIC\tVALUE", export.TrendRows(m)},
	}

	for i, table := range tables {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, table.title)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, table.header)
		for _, row := range table.rows {
			fmt.Fprintf(w, "%s\t%d\n", row.Label, row.Value)
		}
		_ = w.Flush()
	}
	return nil
}

// ReportExportCSVCommand writes the metric tables and the company and
// communication tables as CSV files.
func ReportExportCSVCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("report export-csv", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", ".", "Output directory")
	metricsOnly := fs.Bool("metrics-only", false, "Skip the company and communication tables")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths, err := export.WriteReportCSVs(*dir, t.Metrics())
	if err != nil {
		return err
	}
	if !*metricsOnly {
		st := t.State()
		data, err := export.WriteDataCSVs(*dir, st.Companies, st.Communications)
		if err != nil {
			return err
		}
		paths = append(paths, data...)
	}

	for _, p := range paths {
		fmt.Fprintf(out, "✓ Wrote %s\n", p)
	}
	return nil
}

// ReportExportXLSXCommand writes the report workbook
func ReportExportXLSXCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("report export-xlsx", flag.ContinueOnError)
	fs.SetOutput(out)
	output := fs.String("output", "", "Output file (default: communication_report_<timestamp>.xlsx)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := t.Now()
	path := *output
	if path == "" {
		path = export.WorkbookFileName(now)
	}

	if err := export.SaveReportWorkbook(path, t.Metrics(), now); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Wrote %s\n", path)
	return nil
}
