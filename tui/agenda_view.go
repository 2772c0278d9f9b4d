// ABOUTME: TUI view for the follow-up agenda
// ABOUTME: Displays late, due-today, and upcoming leads in one table
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
)

func (m Model) renderAgendaView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PROXVENDA"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")
	s.WriteString(m.renderAgendaTable())
	s.WriteString("\n")
	s.WriteString(m.renderHelp())

	return s.String()
}

func (m Model) renderAgendaTable() string {
	buckets := crm.Triage(m.state.Leads, m.now)

	columns := []table.Column{
		{Title: "Status", Width: 6},
		{Title: "Name", Width: 25},
		{Title: "Type", Width: 12},
		{Title: "Follow-up", Width: 12},
		{Title: "Days since", Width: 10},
	}

	var rows []table.Row
	appendBucket := func(indicator string, leads []models.Lead) {
		for i := range leads {
			lead := &leads[i]
			followup := "-"
			if !lead.InterestDate.IsZero() {
				followup = lead.InterestDate.Format("2006-01-02")
			}
			rows = append(rows, table.Row{
				indicator,
				lead.Name,
				lead.Type.Label(),
				followup,
				fmt.Sprintf("%d", crm.DaysSinceContact(lead, m.now)),
			})
		}
	}
	appendBucket("🔴", buckets.Late)
	appendBucket("🟡", buckets.Today)
	appendBucket("🟢", buckets.Upcoming)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}
