package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/quadra/internal/cli/formatter"
	"github.com/alexanderramin/quadra/internal/matrix"
	"github.com/alexanderramin/quadra/internal/store"
	"github.com/alexanderramin/quadra/internal/summary"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// App holds the wired dependencies used by CLI commands and views.
type App struct {
	Store     *store.TaskStore
	Summaries summary.Service

	// IsInteractive reports whether stdout is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "quadra" command. Running it bare
// starts the TUI on a terminal or prints the matrix otherwise.
func NewRootCmd(app *App) *cobra.Command {
	if app.IsInteractive == nil {
		app.IsInteractive = func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		}
	}

	root := &cobra.Command{
		Use:   "quadra",
		Short: "Eisenhower-matrix task grid with AI summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				fmt.Fprint(cmd.OutOrStdout(), formatter.PlainMatrix(matrix.Partition(app.Store.List())))
				return nil
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newMatrixCmd(app),
		newVersionCmd(),
	)

	return root
}

// newMatrixCmd prints the current grid as plain text, for scripting.
func newMatrixCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the four quadrants as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.PlainMatrix(matrix.Partition(app.Store.List())))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quadra version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quadra %s\n", Version)
		},
	}
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
