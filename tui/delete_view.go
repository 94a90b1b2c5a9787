// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Confirms deletion of a company and its communications
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	company, ok := m.tracker.Company(m.selectedID)
	if !ok {
		return fmt.Sprintf("Error loading company: %s", m.selectedID)
	}

	count := 0
	for _, c := range m.tracker.Communications() {
		if c.CompanyID == company.ID {
			count++
		}
	}

	title := warningStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	message := "Are you sure you want to delete this company?"
	entityInfo := fmt.Sprintf("\nCOMPANY: %s\n%d communication(s) will be removed", company.Name, count)
	warning := "\nThis action cannot be undone!"

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		entityInfo,
		warning,
		"",
		buttons,
	)

	box := confirmBoxStyle.Render(content)

	// Center the box on screen
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		res, err := m.tracker.DeleteCompany(m.selectedID)
		m.viewMode = ViewList
		m.selectedID = ""
		m.selectedRow = 0
		if err != nil {
			m.setErr(err)
			return m, nil
		}
		m.message = fmt.Sprintf("✓ Company deleted (%d communication(s) removed)", res.Removed)
	case "n", "N", "esc":
		m.viewMode = ViewDetail
	}

	return m, nil
}
