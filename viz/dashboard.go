// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII overview of companies, pending work and reporting metrics
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/store"
	"github.com/harperreed/commtrack/views"
)

type DashboardStats struct {
	TotalCompanies      int
	TotalCommunications int
	Pending             int

	Overdue  []AttentionItem
	DueToday []AttentionItem
	Upcoming []AttentionItem

	Metrics models.ReportingMetrics
}

// AttentionItem is a pending communication with its company resolved.
type AttentionItem struct {
	Company string
	Method  models.MethodID
	Date    string
}

func GenerateDashboardStats(st store.State, metrics models.ReportingMetrics, ref time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalCompanies:      len(st.Companies),
		TotalCommunications: len(st.Communications),
		Metrics:             metrics,
	}
	for _, c := range st.Communications {
		if !c.Completed {
			stats.Pending++
		}
	}

	n := views.BuildNotifications(st.Companies, st.Communications, ref)
	stats.Overdue = attentionItems(st.Companies, n.Overdue)
	stats.DueToday = attentionItems(st.Companies, n.DueToday)
	stats.Upcoming = attentionItems(st.Companies, n.Upcoming)
	return stats
}

func attentionItems(companies []models.Company, comms []models.Communication) []AttentionItem {
	items := make([]AttentionItem, 0, len(comms))
	for _, c := range comms {
		items = append(items, AttentionItem{
			Company: views.CompanyName(companies, c.CompanyID),
			Method:  c.MethodID,
			Date:    c.Date,
		})
	}
	return items
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  COMMTRACK DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  🏢 %d companies  📨 %d communications  ⏳ %d pending\n\n",
		stats.TotalCompanies, stats.TotalCommunications, stats.Pending))

	out.WriteString("METHOD FREQUENCY\n")
	renderMethodBars(&out, stats.Metrics.CommunicationMethodFrequency, 0)
	out.WriteString("\n")

	out.WriteString("ENGAGEMENT EFFECTIVENESS\n")
	renderMethodBars(&out, stats.Metrics.EngagementEffectiveness, models.EffectivenessMax)
	out.WriteString("\n")

	t := stats.Metrics.CommunicationTrends
	out.WriteString("TRENDS\n")
	out.WriteString(fmt.Sprintf("  total %d  overdue %d  completed %d\n\n", t.Total, t.Overdue, t.Completed))

	if len(stats.Overdue) > 0 || len(stats.DueToday) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		for _, item := range stats.Overdue {
			out.WriteString(fmt.Sprintf("  ⚠️  %s %s overdue since %s\n", MethodGlyph(item.Method), item.Company, item.Date))
		}
		for _, item := range stats.DueToday {
			out.WriteString(fmt.Sprintf("  📅 %s %s due today\n", MethodGlyph(item.Method), item.Company))
		}
		out.WriteString("\n")
	}

	if len(stats.Upcoming) > 0 {
		out.WriteString("UPCOMING\n")
		for _, item := range stats.Upcoming {
			out.WriteString(fmt.Sprintf("  %s %s on %s\n", MethodGlyph(item.Method), item.Company, item.Date))
		}
	}

	return out.String()
}

// renderMethodBars draws one 10-block bar per method. scale 0 means scale
// to the largest value.
func renderMethodBars(out *strings.Builder, values map[models.MethodID]int, scale int) {
	if scale == 0 {
		for _, v := range values {
			if v > scale {
				scale = v
			}
		}
	}
	if scale == 0 {
		scale = 1
	}

	for _, method := range models.DefaultCommunicationMethods() {
		v := values[method.ID]

		barLength := (v * 10) / scale
		if barLength > 10 {
			barLength = 10
		}
		if barLength < 0 {
			barLength = 0
		}

		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)
		out.WriteString(fmt.Sprintf("  %-17s %s  %3d\n", method.Name, bar, v))
	}
}
