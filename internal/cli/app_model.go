package cli

import (
	"strings"

	"github.com/alexanderramin/quadra/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack; the matrix view sits at the bottom and
// wizard forms are pushed on top of it.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}
	m.viewStack = []View{newMatrixView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

	case summaryResultMsg, spinner.TickMsg:
		// The matrix view at the bottom of the stack owns the summary
		// display slot. Deliver these even when a wizard is on top, so
		// the slot always terminates in success or error text.
		updated, cmd := m.viewStack[0].Update(msg)
		m.viewStack[0] = updated.(View)
		return m, cmd

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case refreshViewMsg:
		// Broadcast so views below a form re-derive their buckets.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	header := formatter.StyleHeader.Render("quadra") + formatter.Dim(" · "+m.breadcrumb())
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 1)))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		sep,
		v.View(),
		m.helpBar(v),
	)
}

func (m appModel) breadcrumb() string {
	parts := make([]string, len(m.viewStack))
	for i, v := range m.viewStack {
		parts[i] = v.Title()
	}
	return strings.Join(parts, " › ")
}

func (m appModel) helpBar(v View) string {
	var hints []string
	for _, b := range v.ShortHelp() {
		h := b.Help()
		hints = append(hints, formatter.StyleFg.Render(h.Key)+formatter.Dim(" "+h.Desc))
	}
	return formatter.Dim("  ") + strings.Join(hints, formatter.Dim("  ·  "))
}
