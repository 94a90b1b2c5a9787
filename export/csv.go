// ABOUTME: CSV exports of companies, communications and reporting metric tables
// ABOUTME: One header row then one row per record, list fields joined with ';'
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harperreed/commtrack/models"
)

// Report file names, one per metric table.
const (
	FrequencyReportFile     = "communication_method_frequency_report.csv"
	EffectivenessReportFile = "engagement_effectiveness_report.csv"
	TrendsReportFile        = "communication_trends_report.csv"

	CompaniesFile      = "companies.csv"
	CommunicationsFile = "communications.csv"
)

const listSeparator = ";"

var (
	companyHeader       = []string{"id", "name", "location", "linkedinProfile", "emails", "phoneNumbers", "comments", "communicationPeriodicity"}
	communicationHeader = []string{"id", "companyId", "companyName", "methodId", "methodName", "date", "notes", "completed"}
)

// MetricRow is one row of a metric table.
type MetricRow struct {
	Label string
	Value int
}

// FrequencyRows lists every method with its communication count.
func FrequencyRows(m models.ReportingMetrics) []MetricRow {
	var rows []MetricRow
	for _, method := range models.DefaultCommunicationMethods() {
		rows = append(rows, MetricRow{Label: method.Name, Value: m.CommunicationMethodFrequency[method.ID]})
	}
	return rows
}

// EffectivenessRows lists every method with its score. Missing scores read as 0.
func EffectivenessRows(m models.ReportingMetrics) []MetricRow {
	var rows []MetricRow
	for _, method := range models.DefaultCommunicationMethods() {
		rows = append(rows, MetricRow{Label: method.Name, Value: m.EngagementEffectiveness[method.ID]})
	}
	return rows
}

// TrendRows lists the three trend counters.
func TrendRows(m models.ReportingMetrics) []MetricRow {
	return []MetricRow{
		{Label: "Total Communications", Value: m.CommunicationTrends.Total},
		{Label: "Overdue Communications", Value: m.CommunicationTrends.Overdue},
		{Label: "Completed Communications", Value: m.CommunicationTrends.Completed},
	}
}

func WriteCompaniesCSV(w io.Writer, companies []models.Company) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(companyHeader); err != nil {
		return err
	}
	for _, c := range companies {
		record := []string{
			c.ID,
			c.Name,
			c.Location,
			c.LinkedInProfile,
			strings.Join(c.Emails, listSeparator),
			strings.Join(c.PhoneNumbers, listSeparator),
			c.Comments,
			strconv.Itoa(c.CommunicationPeriodicity),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteCommunicationsCSV(w io.Writer, companies []models.Company, comms []models.Communication) error {
	names := make(map[string]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(communicationHeader); err != nil {
		return err
	}
	for _, c := range comms {
		name, ok := names[c.CompanyID]
		if !ok {
			name = "Unknown Company"
		}
		record := []string{
			c.ID,
			c.CompanyID,
			name,
			string(c.MethodID),
			models.MethodName(c.MethodID),
			c.Date,
			c.Notes,
			strconv.FormatBool(c.Completed),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMetricCSV(w io.Writer, header [2]string, rows []MetricRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header[:]); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Label, strconv.Itoa(r.Value)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteFrequencyCSV(w io.Writer, m models.ReportingMetrics) error {
	return writeMetricCSV(w, [2]string{"Method", "Frequency"}, FrequencyRows(m))
}

func WriteEffectivenessCSV(w io.Writer, m models.ReportingMetrics) error {
	return writeMetricCSV(w, [2]string{"Method", "Effectiveness"}, EffectivenessRows(m))
}

func WriteTrendsCSV(w io.Writer, m models.ReportingMetrics) error {
	return writeMetricCSV(w, [2]string{"Metric", "Value"}, TrendRows(m))
}

// WriteReportCSVs writes the three metric tables into dir and returns the paths.
func WriteReportCSVs(dir string, m models.ReportingMetrics) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer, models.ReportingMetrics) error
	}{
		{FrequencyReportFile, WriteFrequencyCSV},
		{EffectivenessReportFile, WriteEffectivenessCSV},
		{TrendsReportFile, WriteTrendsCSV},
	}

	var paths []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, func(w io.Writer) error { return f.write(w, m) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteDataCSVs writes the company and communication tables into dir.
func WriteDataCSVs(dir string, companies []models.Company, comms []models.Communication) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	companiesPath := filepath.Join(dir, CompaniesFile)
	if err := writeFile(companiesPath, func(w io.Writer) error { return WriteCompaniesCSV(w, companies) }); err != nil {
		return nil, err
	}
	commsPath := filepath.Join(dir, CommunicationsFile)
	if err := writeFile(commsPath, func(w io.Writer) error { return WriteCommunicationsCSV(w, companies, comms) }); err != nil {
		return []string{companiesPath}, err
	}
	return []string{companiesPath, commsPath}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
