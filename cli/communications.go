// ABOUTME: Communication CLI commands
// ABOUTME: Scheduling, editing, completing and scoring communications
package cli

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/views"
)

// AddCommunicationCommand schedules (or logs) a communication with a company
func AddCommunicationCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("add-communication", flag.ContinueOnError)
	fs.SetOutput(out)
	companyID := fs.String("company", "", "Company ID (required)")
	method := fs.String("method", string(models.MethodEmail), "Method: linkedin-post, linkedin-message, email, phone-call, other")
	date := fs.String("date", "", "Date, YYYY-MM-DD or RFC3339 (required)")
	notes := fs.String("notes", "", "Notes about the communication")
	completed := fs.Bool("completed", false, "Record it as already completed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	comm := models.Communication{
		CompanyID: *companyID,
		MethodID:  models.MethodID(*method),
		Date:      *date,
		Notes:     *notes,
		Completed: *completed,
	}
	if err := comm.Validate(); err != nil {
		return err
	}
	company, ok := t.Company(comm.CompanyID)
	if !ok {
		return fmt.Errorf("company not found: %s", comm.CompanyID)
	}
	comm.ID = models.NewCommunicationID()

	saved, _, err := t.CreateCommunication(comm)
	if err != nil {
		return fmt.Errorf("failed to create communication: %w", err)
	}

	fmt.Fprintf(out, "✓ Communication scheduled: %s with %s on %s (ID: %s)\n",
		models.MethodName(saved.MethodID), company.Name, saved.Date, saved.ID)
	return nil
}

// ListCommunicationsCommand lists communications, optionally for one company
func ListCommunicationsCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("list-communications", flag.ContinueOnError)
	fs.SetOutput(out)
	companyID := fs.String("company", "", "Filter by company ID")
	pendingOnly := fs.Bool("pending", false, "Show only pending communications")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := t.State()
	var comms []models.Communication
	for _, c := range st.Communications {
		if *companyID != "" && c.CompanyID != *companyID {
			continue
		}
		if *pendingOnly && c.Completed {
			continue
		}
		comms = append(comms, c)
	}

	if len(comms) == 0 {
		fmt.Fprintln(out, "No communications found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tMETHOD\tCOMPANY\tSTATUS\tID")
	fmt.Fprintln(w, "----\t------\t-------\t------\t--")
	for _, c := range comms {
		status := "pending"
		if c.Completed {
			status = "done"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.Date, models.MethodName(c.MethodID), views.CompanyName(st.Companies, c.CompanyID), status, c.ID)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nTotal: %d communication(s)\n", len(comms))
	return nil
}

// UpdateCommunicationCommand edits a communication in place. Flags must come before the ID.
func UpdateCommunicationCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("update-communication", flag.ContinueOnError)
	fs.SetOutput(out)
	method := fs.String("method", "", "Communication method")
	date := fs.String("date", "", "Date, YYYY-MM-DD or RFC3339")
	notes := fs.String("notes", "", "Notes about the communication")
	completed := fs.Bool("completed", false, "Completion flag")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("communication ID required")
	}
	id := fs.Arg(0)

	comm, ok := t.Communication(id)
	if !ok {
		return fmt.Errorf("communication not found: %s", id)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["method"] {
		comm.MethodID = models.MethodID(*method)
	}
	if set["date"] {
		comm.Date = *date
	}
	if set["notes"] {
		comm.Notes = *notes
	}
	if set["completed"] {
		comm.Completed = *completed
	}
	if err := comm.Validate(); err != nil {
		return err
	}

	if _, err := t.UpdateCommunication(comm); err != nil {
		return fmt.Errorf("failed to update communication: %w", err)
	}
	fmt.Fprintf(out, "✓ Communication updated: %s\n", comm.ID)
	return nil
}

// DeleteCommunicationCommand removes one communication
func DeleteCommunicationCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("communication ID required")
	}

	res, err := t.DeleteCommunication(args[0])
	if err != nil {
		return fmt.Errorf("failed to delete communication: %w", err)
	}
	if !res.Found {
		fmt.Fprintf(out, "No communication with ID %s\n", args[0])
		return nil
	}
	fmt.Fprintln(out, "✓ Communication deleted")
	return nil
}

// CompleteCommand marks one communication completed
func CompleteCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("communication ID required")
	}

	res, err := t.CompleteCommunication(args[0])
	if err != nil {
		return fmt.Errorf("failed to complete communication: %w", err)
	}
	if !res.Found {
		fmt.Fprintf(out, "No communication with ID %s\n", args[0])
		return nil
	}
	fmt.Fprintln(out, "✓ Communication completed")
	return nil
}

// BulkCompleteCommand marks every given communication completed
func BulkCompleteCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one communication ID required")
	}

	res, err := t.BulkCompleteCommunications(args)
	if err != nil {
		return fmt.Errorf("failed to complete communications: %w", err)
	}

	fmt.Fprintf(out, "✓ %d communication(s) completed\n", len(res.Completed))
	for _, id := range res.Missing {
		fmt.Fprintf(out, "  not found: %s\n", id)
	}
	return nil
}

// EngagementCommand records the outcome of an engagement for a method
func EngagementCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("engagement", flag.ContinueOnError)
	fs.SetOutput(out)
	method := fs.String("method", "", "Communication method (required)")
	failed := fs.Bool("failed", false, "Record an unsuccessful engagement")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id := models.MethodID(*method)
	if _, ok := models.LookupMethod(id); !ok {
		return fmt.Errorf("unknown method: %q", *method)
	}

	score, err := t.RecordEngagement(id, !*failed)
	if err != nil {
		return fmt.Errorf("failed to record engagement: %w", err)
	}
	fmt.Fprintf(out, "✓ %s effectiveness: %d\n", models.MethodName(id), score)
	return nil
}
