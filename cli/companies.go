// ABOUTME: Company CLI commands
// ABOUTME: Human-friendly commands for managing tracked companies
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

// AddCompanyCommand adds a new company
func AddCompanyCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("add-company", flag.ContinueOnError)
	fs.SetOutput(out)
	name := fs.String("name", "", "Company name (required)")
	location := fs.String("location", "", "Company location (required)")
	linkedin := fs.String("linkedin", "", "LinkedIn page URL")
	emails := fs.String("emails", "", "Comma-separated email addresses (required)")
	phones := fs.String("phones", "", "Comma-separated phone numbers (required)")
	comments := fs.String("comments", "", "Comments about the company")
	periodicity := fs.Int("periodicity", models.DefaultPeriodicity, "Desired days between communications")
	if err := fs.Parse(args); err != nil {
		return err
	}

	company := models.Company{
		Name:                     *name,
		Location:                 *location,
		LinkedInProfile:          *linkedin,
		Emails:                   models.SplitList(*emails),
		PhoneNumbers:             models.SplitList(*phones),
		Comments:                 *comments,
		CommunicationPeriodicity: *periodicity,
	}
	if err := company.Validate(); err != nil {
		return err
	}

	res, err := t.CreateCompany(company)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	fmt.Fprintf(out, "✓ Company created: %s (ID: %s)\n", company.Name, res.ID)
	fmt.Fprintf(out, "  Location: %s\n", company.Location)
	fmt.Fprintf(out, "  Cadence:  every %d days\n", company.CommunicationPeriodicity)
	return nil
}

// ListCompaniesCommand lists companies with their next communication
func ListCompaniesCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("list-companies", flag.ContinueOnError)
	fs.SetOutput(out)
	query := fs.String("query", "", "Search by name")
	sortBy := fs.String("sort", views.SortByName, "Sort by name or communications")
	limit := fs.Int("limit", 50, "Maximum results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sortBy != views.SortByName && *sortBy != views.SortByCommunications {
		return fmt.Errorf("invalid --sort: %s", *sortBy)
	}

	rows := t.Overview(*query, *sortBy)
	if len(rows) == 0 {
		fmt.Fprintln(out, "No companies found")
		return nil
	}
	if len(rows) > *limit {
		rows = rows[:*limit]
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLOCATION\tSTATUS\tNEXT\tID")
	fmt.Fprintln(w, "----\t--------\t------\t----\t--")

	for _, row := range rows {
		next := "-"
		if row.Next != nil {
			next = fmt.Sprintf("%s %s", row.Next.Date, models.MethodName(row.Next.MethodID))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.Company.Name, row.Company.Location, row.Status, next, row.Company.ID)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nTotal: %d company(ies)\n", len(rows))
	return nil
}

// UpdateCompanyCommand edits an existing company. Flags must come before the ID.
func UpdateCompanyCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("update-company", flag.ContinueOnError)
	fs.SetOutput(out)
	name := fs.String("name", "", "Company name")
	location := fs.String("location", "", "Company location")
	linkedin := fs.String("linkedin", "", "LinkedIn page URL")
	emails := fs.String("emails", "", "Replacement comma-separated email addresses")
	phones := fs.String("phones", "", "Replacement comma-separated phone numbers")
	comments := fs.String("comments", "", "Comments about the company")
	periodicity := fs.Int("periodicity", 0, "Desired days between communications")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("company ID required")
	}
	id := fs.Arg(0)

	company, ok := t.Company(id)
	if !ok {
		return fmt.Errorf("company not found: %s", id)
	}

	if *name != "" {
		company.Name = *name
	}
	if *location != "" {
		company.Location = *location
	}
	if *linkedin != "" {
		company.LinkedInProfile = *linkedin
	}
	if *emails != "" {
		company.Emails = models.SplitList(*emails)
	}
	if *phones != "" {
		company.PhoneNumbers = models.SplitList(*phones)
	}
	if *comments != "" {
		company.Comments = *comments
	}
	if *periodicity != 0 {
		company.CommunicationPeriodicity = *periodicity
	}
	if err := company.Validate(); err != nil {
		return err
	}

	if _, err := t.UpdateCompany(company); err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	fmt.Fprintf(out, "✓ Company updated: %s\n", company.Name)
	return nil
}

// DeleteCompanyCommand removes a company and its communications
func DeleteCompanyCommand(t *tracker.Tracker, out io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("company ID required")
	}

	res, err := t.DeleteCompany(args[0])
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if !res.Found {
		fmt.Fprintf(out, "No company with ID %s\n", args[0])
		return nil
	}

	fmt.Fprintf(out, "✓ Company deleted (%d communication(s) removed)\n", res.Removed)
	return nil
}
