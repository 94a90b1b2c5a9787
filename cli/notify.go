// ABOUTME: Notification CLI command
// ABOUTME: Lists overdue, due-today and upcoming communications
package cli

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/views"
	"github.com/harperreed/commtrack/viz"
)

// NotifyCommand prints the notification panel
func NotifyCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("notify", flag.ContinueOnError)
	fs.SetOutput(out)
	companyID := fs.String("company", "", "Only show this company")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n := t.Notifications()
	companies := t.Companies()

	sections := []struct {
		icon  string
		title string
		comms []models.Communication
	}{
		{"🔴", "OVERDUE", n.Overdue},
		{"🟡", "DUE TODAY", n.DueToday},
		{"🟢", "UPCOMING (next 7 days)", n.Upcoming},
	}

	total := 0
	for _, s := range sections {
		var comms []models.Communication
		for _, c := range s.comms {
			if *companyID == "" || c.CompanyID == *companyID {
				comms = append(comms, c)
			}
		}
		total += len(comms)

		fmt.Fprintf(out, "%s %s (%d)\n", s.icon, s.title, len(comms))
		if len(comms) == 0 {
			fmt.Fprintln(out, "  nothing")
			fmt.Fprintln(out)
			continue
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, c := range comms {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				viz.MethodGlyph(c.MethodID), c.Date, views.CompanyName(companies, c.CompanyID),
				models.MethodName(c.MethodID), c.ID)
		}
		_ = w.Flush()
		fmt.Fprintln(out)
	}

	if total == 0 {
		fmt.Fprintln(out, "✓ Nothing needs attention")
	}
	return nil
}
