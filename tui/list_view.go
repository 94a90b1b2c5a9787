package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/views"
	"github.com/harperreed/commtrack/viz"
)

func (m Model) renderListView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("COMMTRACK"))
	s.WriteString("\n\n")

	// Tabs
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.searching || m.searchQuery != "" {
		if m.tab == TabCompanies {
			s.WriteString("/ " + m.searchInput.View())
			s.WriteString("\n\n")
		}
	}

	switch m.tab {
	case TabCompanies:
		s.WriteString(m.renderCompaniesTable())
	case TabNotifications:
		s.WriteString(m.renderNotificationsTable())
	case TabCalendar:
		s.WriteString(m.renderCalendarView())
	case TabReports:
		s.WriteString(m.renderReportsView())
	}
	s.WriteString("\n")

	if m.message != "" {
		s.WriteString("\n")
		s.WriteString(messageStyle.Render(m.message))
		s.WriteString("\n")
	}

	// Help
	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	var rendered []string

	for i, tab := range tabNames {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) companyRows() []views.CompanyRow {
	return m.tracker.Overview(m.searchQuery, views.SortByName)
}

func (m Model) tableHeight() int {
	if h := m.height - 12; h > 3 {
		return h
	}
	return 3
}

func (m Model) renderCompaniesTable() string {
	rows := m.companyRows()
	if len(rows) == 0 {
		if m.searchQuery != "" {
			return "No companies match your search"
		}
		return "No companies yet. Press n to add one."
	}

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Location", Width: 16},
		{Title: "Status", Width: 10},
		{Title: "Next", Width: 24},
		{Title: "Last Completed", Width: 24},
	}

	var tableRows []table.Row
	for _, row := range rows {
		next := "-"
		if row.Next != nil {
			next = fmt.Sprintf("%s %s", viz.MethodGlyph(row.Next.MethodID), row.Next.Date)
		}
		last := "-"
		if len(row.LastCompleted) > 0 {
			lc := row.LastCompleted[0]
			last = fmt.Sprintf("%s %s", viz.MethodGlyph(lc.MethodID), lc.Date)
		}

		tableRows = append(tableRows, table.Row{
			row.Company.Name,
			row.Company.Location,
			string(row.Status),
			next,
			last,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	// Set selected row
	if m.selectedRow < len(tableRows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderReportsView() string {
	metrics := m.tracker.Metrics()
	var s strings.Builder

	s.WriteString(sectionStyle.Render("Method frequency"))
	s.WriteString("\n")
	for _, method := range models.DefaultCommunicationMethods() {
		s.WriteString(fmt.Sprintf("  %s %-17s %3d\n", viz.MethodGlyph(method.ID), method.Name,
			metrics.CommunicationMethodFrequency[method.ID]))
	}

	s.WriteString("\n")
	s.WriteString(sectionStyle.Render("Engagement effectiveness"))
	s.WriteString("\n")
	for _, method := range models.DefaultCommunicationMethods() {
		s.WriteString(fmt.Sprintf("  %s %-17s %3d\n", viz.MethodGlyph(method.ID), method.Name,
			metrics.EngagementEffectiveness[method.ID]))
	}

	t := metrics.CommunicationTrends
	s.WriteString("\n")
	s.WriteString(sectionStyle.Render("Trends"))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("  total %d  overdue %d  completed %d\n", t.Total, t.Overdue, t.Completed))

	return s.String()
}

func (m Model) renderListHelp() string {
	help := []string{"Tab: Switch tabs"}
	switch m.tab {
	case TabCompanies:
		if m.searching {
			return helpStyle.Render("Enter: Apply search • Esc: Clear search")
		}
		help = append(help, "↑/↓: Navigate", "Enter: View details", "/: Search", "n: New company")
	case TabNotifications:
		help = append(help, "↑/↓: Navigate", "Space: Mark", "c: Complete", "b: Complete marked")
	case TabCalendar:
		help = append(help, "←/→: Change month")
	}
	help = append(help, "q: Quit")
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) rowCount() int {
	switch m.tab {
	case TabCompanies:
		return len(m.companyRows())
	case TabNotifications:
		return len(m.notificationItems())
	}
	return 0
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		m.selectedRow = 0
		m.message = ""
	case "shift+tab":
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		m.selectedRow = 0
		m.message = ""
	}

	switch m.tab {
	case TabCompanies:
		return m.handleCompanyListKeys(msg)
	case TabNotifications:
		return m.handleNotificationKeys(msg)
	case TabCalendar:
		return m.handleCalendarKeys(msg)
	}
	return m, nil
}

func (m Model) handleCompanyListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		rows := m.companyRows()
		if m.selectedRow < len(rows) {
			m.selectedID = rows[m.selectedRow].Company.ID
			m.viewMode = ViewDetail
		}
	case "/":
		m.searching = true
		m.searchInput.Focus()
	case "n":
		m.selectedID = ""
		m.initCompanyForm()
		m.viewMode = ViewEdit
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.selectedRow = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.selectedRow = 0
	return m, cmd
}
