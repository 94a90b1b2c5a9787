// ABOUTME: Excel report workbook with one sheet and native chart per metric table
// ABOUTME: Title sheet first, then frequency (bar), effectiveness (pie) and trends (column)
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/harperreed/commtrack/models"
	"github.com/xuri/excelize/v2"
)

const (
	ReportTitle = "Communication Reports"

	titleSheet         = "Report"
	frequencySheet     = "Method Frequency"
	effectivenessSheet = "Effectiveness"
	trendsSheet        = "Trends"
)

// WorkbookFileName is the default file name for a report generated at t.
func WorkbookFileName(t time.Time) string {
	return fmt.Sprintf("communication_report_%s.xlsx", t.UTC().Format("20060102T150405Z"))
}

type metricSheet struct {
	name      string
	title     string
	header    [2]string
	rows      []MetricRow
	chartType excelize.ChartType
}

// BuildReportWorkbook lays out the report. The caller owns the returned file.
func BuildReportWorkbook(m models.ReportingMetrics, generated time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", titleSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 20}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}
	if err := f.SetCellValue(titleSheet, "A1", ReportTitle); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to set title: %w", err)
	}
	if err := f.SetCellStyle(titleSheet, "A1", "A1", titleStyle); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to style title: %w", err)
	}
	if err := f.SetCellValue(titleSheet, "A2", "Generated "+generated.Format(time.RFC3339)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to set timestamp: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := []metricSheet{
		{frequencySheet, "Communication Method Frequency", [2]string{"Method", "Frequency"}, FrequencyRows(m), excelize.Bar},
		{effectivenessSheet, "Engagement Effectiveness", [2]string{"Method", "Effectiveness"}, EffectivenessRows(m), excelize.Pie},
		{trendsSheet, "Communication Trends", [2]string{"Metric", "Value"}, TrendRows(m), excelize.Col},
	}
	for _, s := range sheets {
		if err := addMetricSheet(f, s, headerStyle); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func addMetricSheet(f *excelize.File, s metricSheet, headerStyle int) error {
	if _, err := f.NewSheet(s.name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
	}

	if err := f.SetSheetRow(s.name, "A1", &[]any{s.header[0], s.header[1]}); err != nil {
		return fmt.Errorf("failed to write header on %s: %w", s.name, err)
	}
	if err := f.SetCellStyle(s.name, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header on %s: %w", s.name, err)
	}
	for i, r := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(s.name, cell, &[]any{r.Label, r.Value}); err != nil {
			return fmt.Errorf("failed to write row on %s: %w", s.name, err)
		}
	}
	if err := f.SetColWidth(s.name, "A", "A", 28); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	last := len(s.rows) + 1
	chart := &excelize.Chart{
		Type: s.chartType,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", s.name),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", s.name, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", s.name, last),
		}},
		Title: []excelize.RichTextRun{{Text: s.title}},
	}
	if err := f.AddChart(s.name, "D2", chart); err != nil {
		return fmt.Errorf("failed to add chart on %s: %w", s.name, err)
	}
	return nil
}

// WriteReportWorkbook streams the workbook to w.
func WriteReportWorkbook(w io.Writer, m models.ReportingMetrics, generated time.Time) error {
	f, err := BuildReportWorkbook(m, generated)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveReportWorkbook writes the workbook to path.
func SaveReportWorkbook(path string, m models.ReportingMetrics, generated time.Time) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteReportWorkbook(w, m, generated)
	})
}
