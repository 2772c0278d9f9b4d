// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Read-only full-screen browser for the funnel, agenda, and scripts
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/proxvenda/models"
)

// ViewTab is the active top-level tab
type ViewTab int

const (
	TabAgenda ViewTab = iota
	TabFunnel
	TabTemplates
)

// Model is the main bubbletea model. It works on a state snapshot loaded
// once at startup; edits happen through the CLI or MCP tools.
type Model struct {
	state *models.AppState
	now   time.Time

	tab         ViewTab
	selectedRow int

	// UI state
	width  int
	height int
}

// NewModel creates a new TUI model over a state snapshot.
func NewModel(state *models.AppState) Model {
	return Model{
		state:  state,
		now:    time.Now(),
		tab:    TabAgenda,
		width:  80,
		height: 24,
	}
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
	switch m.tab {
	case TabAgenda:
		return m.renderAgendaView()
	case TabFunnel:
		return m.renderFunnelView()
	case TabTemplates:
		return m.renderTemplatesView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % 3
		m.selectedRow = 0
		return m, nil
	case "shift+tab", "left", "h":
		m.tab = (m.tab + 2) % 3
		m.selectedRow = 0
		return m, nil
	case "down", "j":
		m.selectedRow++
		return m, nil
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil
	}
	return m, nil
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

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

func (m Model) renderTabs() string {
	tabs := []string{"Agenda", "Funnel", "Templates"}
	var rendered []string

	for i, tab := range tabs {
		if ViewTab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderHelp() string {
	return helpStyle.Render("tab: switch view • j/k: move • q: quit")
}
