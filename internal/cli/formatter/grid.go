package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/alexanderramin/quadra/internal/matrix"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FormatAxis renders an axis score without a trailing ".0" for whole
// values: 7 stays "7", 7.5 stays "7.5".
func FormatAxis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Pane renders one quadrant as a bordered box of the given outer size.
// cursor is the index of the highlighted task, or -1 for none. focused
// controls the border accent.
func Pane(q domain.Quadrant, tasks []*domain.Task, width, height int, cursor int, focused bool) string {
	accent := QuadrantStyle(q)

	borderColor := ColorDim
	if focused {
		borderColor = ColorHeader
	}

	title := fmt.Sprintf("%s · %d", q.Label(), len(tasks))
	lines := []string{accent.Bold(true).Render(title), Dim(q.Describe())}

	innerWidth := width - 4 // border + padding
	if innerWidth < 1 {
		innerWidth = 1
	}

	if len(tasks) == 0 {
		lines = append(lines, "", Dim("empty"))
	}
	for i, t := range tasks {
		marker := "  "
		row := fmt.Sprintf("%s %s", t.Name, Dim(FormatAxis(t.Importance)+"/"+FormatAxis(t.Urgency)))
		if i == cursor {
			marker = StyleHeader.Render("❯ ")
			row = StyleBold.Render(t.Name) + " " + Dim(FormatAxis(t.Importance)+"/"+FormatAxis(t.Urgency))
		}
		lines = append(lines, ansi.Truncate(marker+row, innerWidth, "…"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2)

	return box.Render(strings.Join(lines, "\n"))
}

// Grid lays the four quadrant panes out as a 2x2 block filling the
// given terminal size. cursors maps each quadrant to its highlighted
// row (-1 for none); focused names the quadrant owning the cursor.
func Grid(b matrix.Buckets, width, height int, cursors map[domain.Quadrant]int, focused domain.Quadrant) string {
	paneW := width / 2
	paneH := height / 2
	if paneW < 12 {
		paneW = 12
	}
	if paneH < 5 {
		paneH = 5
	}

	pane := func(q domain.Quadrant) string {
		return Pane(q, b.ByQuadrant(q), paneW, paneH, cursors[q], q == focused)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, pane(domain.QuadrantDo), pane(domain.QuadrantPlan))
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, pane(domain.QuadrantDelegate), pane(domain.QuadrantDelete))
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// PlainMatrix renders the four quadrants as unstyled text, used on
// non-interactive stdout.
func PlainMatrix(b matrix.Buckets) string {
	var sb strings.Builder
	for _, q := range domain.Quadrants {
		bucket := b.ByQuadrant(q)
		fmt.Fprintf(&sb, "%s (%s)\n", strings.ToUpper(q.Label()), q.Describe())
		if len(bucket) == 0 {
			sb.WriteString("  none\n")
		}
		for _, t := range bucket {
			fmt.Fprintf(&sb, "  %s  [%s/%s]\n", t.Name, FormatAxis(t.Importance), FormatAxis(t.Urgency))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
