// ABOUTME: TUI views for the funnel and the script library
// ABOUTME: Renders stage-grouped leads and stored message templates
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/harperreed/proxvenda/crm"
)

func (m Model) renderFunnelView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PROXVENDA"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	for _, stage := range m.state.Stages {
		leads := crm.LeadsByStage(m.state, stage.ID)
		s.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%d)", stage.Name, len(leads))))
		s.WriteString("\n")
		for i := range leads {
			lead := &leads[i]
			s.WriteString(fmt.Sprintf("  • %s - %s", lead.Name, lead.Type.Label()))
			if lead.Value > 0 {
				s.WriteString(fmt.Sprintf(" (R$ %.2f)", lead.Value))
			}
			if len(lead.Objections) > 0 {
				s.WriteString(" ⚠")
			}
			s.WriteString("\n")
		}
		s.WriteString("\n")
	}

	s.WriteString(m.renderHelp())
	return s.String()
}

func (m Model) renderTemplatesView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PROXVENDA"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")
	s.WriteString(m.renderTemplatesTable())
	s.WriteString("\n")
	s.WriteString(m.renderHelp())

	return s.String()
}

func (m Model) renderTemplatesTable() string {
	columns := []table.Column{
		{Title: "Title", Width: 28},
		{Title: "Content", Width: 50},
	}

	var rows []table.Row
	for _, tpl := range m.state.Templates {
		content := tpl.Content
		if len([]rune(content)) > 47 {
			content = string([]rune(content)[:44]) + "..."
		}
		rows = append(rows, table.Row{tpl.Title, content})
	}

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
