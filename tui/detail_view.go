package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/views"
	"github.com/harperreed/commtrack/viz"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("COMPANY"))
	s.WriteString("\n\n")

	s.WriteString(m.renderCompanyDetail())
	s.WriteString("\n")

	if m.message != "" {
		s.WriteString(messageStyle.Render(m.message))
		s.WriteString("\n")
	}

	// Help
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderCompanyDetail() string {
	company, ok := m.tracker.Company(m.selectedID)
	if !ok {
		return fmt.Sprintf("Error: company not found: %s", m.selectedID)
	}
	comms := m.tracker.Communications()

	var s strings.Builder

	s.WriteString(m.renderField("Name", company.Name))
	s.WriteString(m.renderField("Location", company.Location))
	s.WriteString(m.renderField("LinkedIn", company.LinkedInProfile))
	s.WriteString(m.renderField("Emails", strings.Join(company.Emails, ", ")))
	s.WriteString(m.renderField("Phones", strings.Join(company.PhoneNumbers, ", ")))
	s.WriteString(m.renderField("Cadence", fmt.Sprintf("every %d days", company.CommunicationPeriodicity)))
	s.WriteString(m.renderField("Status", string(views.CompanyStatus(comms, company.ID, m.tracker.Now()))))
	s.WriteString(m.renderField("Comments", company.Comments))

	loc := m.tracker.Now().Location()
	if next, ok := views.NextPending(comms, company.ID, loc); ok {
		s.WriteString(m.renderField("Next", communicationLine(next)))
	}

	s.WriteString("\n")
	s.WriteString(sectionStyle.Render("LAST COMPLETED"))
	s.WriteString("\n")
	last := views.LastCompleted(comms, company.ID, views.LastCompletedLimit, loc)
	if len(last) == 0 {
		s.WriteString("  none\n")
	}
	for _, c := range last {
		s.WriteString("  • " + communicationLine(c) + "\n")
	}

	return s.String()
}

func communicationLine(c models.Communication) string {
	line := fmt.Sprintf("%s %s %s", c.Date, viz.MethodGlyph(c.MethodID), models.MethodName(c.MethodID))
	if c.Notes != "" {
		line += ": " + c.Notes
	}
	return line
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s\n",
		fieldLabelStyle.Render(label+":"),
		fieldValueStyle.Render(value))
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"Esc: Back",
		"e: Edit",
		"a: Add communication",
		"d: Delete",
		"g: View graph",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.message = ""
	case "e":
		m.initCompanyForm()
		m.viewMode = ViewEdit
	case "a":
		m.initCommunicationForm()
		m.viewMode = ViewEdit
	case "d":
		m.viewMode = ViewConfirmDelete
	case "g":
		if err := m.generateGraph(); err != nil {
			m.setErr(err)
			return m, nil
		}
		m.viewMode = ViewGraph
	}

	return m, nil
}
