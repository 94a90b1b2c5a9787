// ABOUTME: TUI view for pending communications
// ABOUTME: Lists overdue, due-today and upcoming items with single and bulk completion
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/views"
	"github.com/harperreed/commtrack/viz"
)

type notificationItem struct {
	Section       string
	Communication models.Communication
}

func (m Model) notificationItems() []notificationItem {
	n := m.tracker.Notifications()

	var items []notificationItem
	add := func(section string, comms []models.Communication) {
		for _, c := range comms {
			items = append(items, notificationItem{Section: section, Communication: c})
		}
	}
	add("🔴 Overdue", n.Overdue)
	add("🟡 Today", n.DueToday)
	add("🟢 Upcoming", n.Upcoming)
	return items
}

func (m Model) renderNotificationsTable() string {
	items := m.notificationItems()
	if len(items) == 0 {
		return "✓ Nothing needs attention"
	}
	companies := m.tracker.Companies()

	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "When", Width: 12},
		{Title: "Date", Width: 12},
		{Title: "Company", Width: 24},
		{Title: "Method", Width: 20},
	}

	var rows []table.Row
	for _, item := range items {
		mark := "[ ]"
		if m.marked[item.Communication.ID] {
			mark = "[x]"
		}
		rows = append(rows, table.Row{
			mark,
			item.Section,
			item.Communication.Date,
			views.CompanyName(companies, item.Communication.CompanyID),
			fmt.Sprintf("%s %s", viz.MethodGlyph(item.Communication.MethodID), models.MethodName(item.Communication.MethodID)),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) handleNotificationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.notificationItems()

	switch msg.String() {
	case " ", "space":
		if m.selectedRow < len(items) {
			id := items[m.selectedRow].Communication.ID
			if m.marked[id] {
				delete(m.marked, id)
			} else {
				m.marked[id] = true
			}
		}
	case "c":
		if m.selectedRow < len(items) {
			id := items[m.selectedRow].Communication.ID
			if _, err := m.tracker.CompleteCommunication(id); err != nil {
				m.setErr(err)
				return m, nil
			}
			delete(m.marked, id)
			m.message = "✓ Communication completed"
			m.clampRow()
		}
	case "b":
		if len(m.marked) == 0 {
			m.message = "Mark items with space first"
			return m, nil
		}
		var ids []string
		for _, item := range items {
			if id := item.Communication.ID; m.marked[id] {
				ids = append(ids, id)
				delete(m.marked, id)
			}
		}
		res, err := m.tracker.BulkCompleteCommunications(ids)
		if err != nil {
			m.setErr(err)
			return m, nil
		}
		m.message = fmt.Sprintf("✓ %d communication(s) completed", len(res.Completed))
		m.clampRow()
	}
	return m, nil
}

// clampRow keeps the cursor inside the list after rows disappear.
func (m *Model) clampRow() {
	if n := m.rowCount(); m.selectedRow >= n {
		m.selectedRow = max(n-1, 0)
	}
}
