package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/commtrack/viz"
)

func (m Model) renderCalendarView() string {
	year, month := m.calendarMonth.Year(), m.calendarMonth.Month()
	return viz.RenderCalendar(year, month, m.tracker.Calendar(year, month), m.tracker.Now())
}

func (m Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
	case "right", "l":
		m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
	}
	return m, nil
}
