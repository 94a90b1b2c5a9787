package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/commtrack/models"
)

// Company form field order.
const (
	companyName = iota
	companyLocation
	companyLinkedIn
	companyEmails
	companyPhones
	companyPeriodicity
	companyComments
)

// Communication form field order.
const (
	commMethod = iota
	commDate
	commNotes
)

func (m Model) renderEditView() string {
	var s strings.Builder

	// Title
	switch {
	case m.formKind == FormCommunication:
		s.WriteString(titleStyle.Render("NEW COMMUNICATION"))
	case m.selectedID == "":
		s.WriteString(titleStyle.Render("NEW COMPANY"))
	default:
		s.WriteString(titleStyle.Render("EDIT COMPANY"))
	}
	s.WriteString("\n\n")

	// Form fields
	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(warningStyle.Render(m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString("\n")

	// Help
	s.WriteString(m.renderEditHelp())

	return s.String()
}

func (m Model) renderEditHelp() string {
	help := []string{
		"Tab: Next field",
		"Enter: Save",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

// leaveEdit returns to the view the form was opened from.
func (m *Model) leaveEdit() {
	m.err = nil
	if m.selectedID == "" {
		m.viewMode = ViewList
	} else {
		m.viewMode = ViewDetail
	}
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveEdit()
		return m, nil
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		msgText, err := m.saveForm()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.message = msgText
		m.leaveEdit()
		return m, nil
	}

	// Update current input
	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func newInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	return input
}

func (m *Model) initCompanyForm() {
	inputs := make([]textinput.Model, 7)
	inputs[companyName] = newInput("Name", 100)
	inputs[companyLocation] = newInput("Location", 100)
	inputs[companyLinkedIn] = newInput("LinkedIn URL (optional)", 200)
	inputs[companyEmails] = newInput("Emails, comma-separated", 300)
	inputs[companyPhones] = newInput("Phone numbers, comma-separated", 200)
	inputs[companyPeriodicity] = newInput("Days between communications", 4)
	inputs[companyComments] = newInput("Comments", 500)

	inputs[companyPeriodicity].SetValue(strconv.Itoa(models.DefaultPeriodicity))

	// If editing, populate fields
	if company, ok := m.tracker.Company(m.selectedID); ok {
		inputs[companyName].SetValue(company.Name)
		inputs[companyLocation].SetValue(company.Location)
		inputs[companyLinkedIn].SetValue(company.LinkedInProfile)
		inputs[companyEmails].SetValue(strings.Join(company.Emails, ", "))
		inputs[companyPhones].SetValue(strings.Join(company.PhoneNumbers, ", "))
		inputs[companyPeriodicity].SetValue(strconv.Itoa(company.CommunicationPeriodicity))
		inputs[companyComments].SetValue(company.Comments)
	}

	m.formKind = FormCompany
	m.formInputs = inputs
	m.focusIndex = 0
	m.err = nil
	m.updateFormFocus()
}

func (m *Model) initCommunicationForm() {
	inputs := make([]textinput.Model, 3)
	inputs[commMethod] = newInput("Method: linkedin-post, linkedin-message, email, phone-call, other", 20)
	inputs[commDate] = newInput("Date (YYYY-MM-DD)", 25)
	inputs[commNotes] = newInput("Notes", 500)

	inputs[commMethod].SetValue(string(models.MethodEmail))
	inputs[commDate].SetValue(models.FormatDate(m.tracker.Now()))

	m.formKind = FormCommunication
	m.formInputs = inputs
	m.focusIndex = 0
	m.err = nil
	m.updateFormFocus()
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m Model) value(i int) string {
	return strings.TrimSpace(m.formInputs[i].Value())
}

// saveForm validates and applies the form, returning a status message.
func (m Model) saveForm() (string, error) {
	if m.formKind == FormCommunication {
		return m.saveCommunication()
	}
	return m.saveCompany()
}

func (m Model) saveCompany() (string, error) {
	periodicity, err := strconv.Atoi(m.value(companyPeriodicity))
	if err != nil {
		return "", fmt.Errorf("communicationPeriodicity: must be a whole number of days: %w", models.ErrValidation)
	}

	company := models.Company{
		ID:                       m.selectedID,
		Name:                     m.value(companyName),
		Location:                 m.value(companyLocation),
		LinkedInProfile:          m.value(companyLinkedIn),
		Emails:                   models.SplitList(m.value(companyEmails)),
		PhoneNumbers:             models.SplitList(m.value(companyPhones)),
		Comments:                 m.value(companyComments),
		CommunicationPeriodicity: periodicity,
	}
	if err := company.Validate(); err != nil {
		return "", err
	}

	if m.selectedID == "" {
		if _, err := m.tracker.CreateCompany(company); err != nil {
			return "", err
		}
		return "✓ Company created: " + company.Name, nil
	}
	if _, err := m.tracker.UpdateCompany(company); err != nil {
		return "", err
	}
	return "✓ Company updated", nil
}

func (m Model) saveCommunication() (string, error) {
	comm := models.Communication{
		ID:        models.NewCommunicationID(),
		CompanyID: m.selectedID,
		MethodID:  models.MethodID(m.value(commMethod)),
		Date:      m.value(commDate),
		Notes:     m.value(commNotes),
	}
	if err := comm.Validate(); err != nil {
		return "", err
	}

	if _, _, err := m.tracker.CreateCommunication(comm); err != nil {
		return "", err
	}
	return fmt.Sprintf("✓ %s scheduled for %s", models.MethodName(comm.MethodID), comm.Date), nil
}
