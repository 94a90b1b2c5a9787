// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen dashboard for companies, notifications, calendar and reports
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/harperreed/commtrack/tracker"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewEdit
	ViewGraph
	ViewConfirmDelete
)

// Tab is one of the top-level list tabs
type Tab int

const (
	TabCompanies Tab = iota
	TabNotifications
	TabCalendar
	TabReports
)

var tabNames = []string{"Companies", "Notifications", "Calendar", "Reports"}

// FormKind says what the edit view is editing
type FormKind int

const (
	FormCompany FormKind = iota
	FormCommunication
)

// Model is the main bubbletea model
type Model struct {
	tracker  *tracker.Tracker
	viewMode ViewMode
	tab      Tab

	// List view state
	selectedRow int
	searchQuery string
	searching   bool
	searchInput textinput.Model

	// Notifications tab: ids marked for bulk completion
	marked map[string]bool

	// Calendar tab: first day of the displayed month
	calendarMonth time.Time

	// Detail view state
	selectedID string

	// Edit view state
	formKind   FormKind
	formInputs []textinput.Model
	focusIndex int

	// Graph view state
	graphDOT string

	// Status line shown under the tabs
	message string

	// UI state
	width  int
	height int
	err    error
}

// NewModel creates a new TUI model
func NewModel(t *tracker.Tracker) Model {
	now := t.Now()
	search := textinput.New()
	search.Placeholder = "Search companies"
	search.CharLimit = 100

	return Model{
		tracker:       t,
		viewMode:      ViewList,
		tab:           TabCompanies,
		searchInput:   search,
		marked:        map[string]bool{},
		calendarMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		width:         80,
		height:        24,
	}
}

// Run starts the TUI on the current terminal.
func Run(t *tracker.Tracker) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal")
	}

	_, err := tea.NewProgram(NewModel(t), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewEdit:
		return m.renderEditView()
	case ViewGraph:
		return m.renderGraphView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry owns every key except ctrl+c.
	typing := m.viewMode == ViewEdit || (m.viewMode == ViewList && m.searching)

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if !typing {
			return m, tea.Quit
		}
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewGraph:
		return m.handleGraphKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// setErr records err for the status line.
func (m *Model) setErr(err error) {
	m.err = err
	if err != nil {
		m.message = "Error: " + err.Error()
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)
