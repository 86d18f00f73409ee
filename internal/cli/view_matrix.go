package cli

import (
	"context"

	"github.com/alexanderramin/quadra/internal/cli/formatter"
	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/alexanderramin/quadra/internal/matrix"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// summaryPhase tracks the state of the summary display slot. The slot
// always ends in either summaryDone or summaryFailed; a completed or
// failed request never leaves it loading.
type summaryPhase int

const (
	summaryIdle summaryPhase = iota
	summaryLoading
	summaryDone
	summaryFailed
)

// summaryResultMsg delivers the outcome of a summary request back to
// the event loop that owns the display slot.
type summaryResultMsg struct {
	gen  int
	text string
	err  error
}

// matrixView is the home screen: the four-quadrant grid plus the
// summary pane.
type matrixView struct {
	state   *SharedState
	buckets matrix.Buckets

	// Cursor: the focused quadrant and the selected row within it.
	focused domain.Quadrant
	cursor  int

	// Summary display slot. Each request bumps summaryGen; a result
	// tagged with a stale generation is dropped, and starting a new
	// request cancels the superseded one. Newest request wins.
	phase         summaryPhase
	summaryText   string
	summaryGen    int
	cancelSummary context.CancelFunc
	spin          spinner.Model
}

func newMatrixView(state *SharedState) *matrixView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	v := &matrixView{
		state:   state,
		focused: domain.QuadrantDo,
		spin:    sp,
	}
	v.reload()
	return v
}

func (v *matrixView) ID() ViewID    { return ViewMatrix }
func (v *matrixView) Title() string { return "Matrix" }

func (v *matrixView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next quadrant")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select task")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summarize")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *matrixView) Init() tea.Cmd {
	return nil
}

// reload re-derives the buckets from the store and clamps the cursor.
// Buckets are never cached across mutations.
func (v *matrixView) reload() {
	v.buckets = matrix.Partition(v.state.App.Store.List())
	bucket := v.buckets.ByQuadrant(v.focused)
	if v.cursor >= len(bucket) {
		v.cursor = len(bucket) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// selectedTask returns the task under the cursor, or nil.
func (v *matrixView) selectedTask() *domain.Task {
	bucket := v.buckets.ByQuadrant(v.focused)
	if len(bucket) == 0 || v.cursor >= len(bucket) {
		return nil
	}
	return bucket[v.cursor]
}

func (v *matrixView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case refreshViewMsg:
		v.reload()
		return v, nil

	case summaryResultMsg:
		if msg.gen != v.summaryGen {
			// A newer request superseded this one; drop the result.
			return v, nil
		}
		if v.cancelSummary != nil {
			// Release the completed request's context.
			v.cancelSummary()
			v.cancelSummary = nil
		}
		if msg.err != nil {
			v.phase = summaryFailed
			v.summaryText = summaryErrorText(msg.err)
		} else {
			v.phase = summaryDone
			v.summaryText = msg.text
		}
		return v, nil

	case spinner.TickMsg:
		if v.phase != summaryLoading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *matrixView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return v, tea.Quit

	case "tab":
		v.focusQuadrant(1)
		return v, nil

	case "shift+tab":
		v.focusQuadrant(-1)
		return v, nil

	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case "down", "j":
		if v.cursor < len(v.buckets.ByQuadrant(v.focused))-1 {
			v.cursor++
		}
		return v, nil

	case "a":
		return v, pushView(newTaskFormView(v.state))

	case "x":
		if t := v.selectedTask(); t != nil {
			v.state.App.Store.Remove(t.ID)
			v.reload()
		}
		return v, nil

	case "s":
		return v, v.startSummary()
	}

	return v, nil
}

func (v *matrixView) focusQuadrant(step int) {
	for i, q := range domain.Quadrants {
		if q == v.focused {
			next := (i + step + len(domain.Quadrants)) % len(domain.Quadrants)
			v.focused = domain.Quadrants[next]
			break
		}
	}
	v.cursor = 0
}

// startSummary launches a summary request for a snapshot of the
// current tasks. Any in-flight request is cancelled and its eventual
// result ignored.
func (v *matrixView) startSummary() tea.Cmd {
	if v.state.App.Store.Len() == 0 {
		v.phase = summaryFailed
		v.summaryText = "Add a task before requesting a summary."
		return nil
	}

	if v.cancelSummary != nil {
		v.cancelSummary()
	}

	ctx, cancel := context.WithCancel(context.Background())
	v.cancelSummary = cancel
	v.summaryGen++
	v.phase = summaryLoading

	gen := v.summaryGen
	tasks := v.state.App.Store.List()
	svc := v.state.App.Summaries

	request := func() tea.Msg {
		text, err := svc.Summarize(ctx, tasks)
		return summaryResultMsg{gen: gen, text: text, err: err}
	}
	return tea.Batch(v.spin.Tick, request)
}

// ── rendering ────────────────────────────────────────────────────────────────

const summaryPaneHeight = 7

func (v *matrixView) View() string {
	gridH := v.state.ContentHeight() - summaryPaneHeight
	if gridH < 10 {
		gridH = 10
	}
	width := v.state.Width
	if width < 40 {
		width = 40
	}

	cursors := map[domain.Quadrant]int{
		domain.QuadrantDo:       -1,
		domain.QuadrantPlan:     -1,
		domain.QuadrantDelegate: -1,
		domain.QuadrantDelete:   -1,
	}
	if len(v.buckets.ByQuadrant(v.focused)) > 0 {
		cursors[v.focused] = v.cursor
	}

	grid := formatter.Grid(v.buckets, width, gridH, cursors, v.focused)
	return lipgloss.JoinVertical(lipgloss.Left, grid, v.summaryPane(width))
}

func (v *matrixView) summaryPane(width int) string {
	var body string
	switch v.phase {
	case summaryIdle:
		body = formatter.Dim("Press s for an AI summary of the matrix.")
	case summaryLoading:
		body = v.spin.View() + " Summarizing…"
	case summaryDone:
		body = v.summaryText
	case summaryFailed:
		body = formatter.StyleRed.Render(v.summaryText)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(formatter.ColorDim).
		Width(width).
		Render(formatter.Header("Summary") + "\n" + body)
}
