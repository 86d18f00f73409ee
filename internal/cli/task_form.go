package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/quadra/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newTaskFormView creates the add-task wizard: a name plus the two
// axis scores. Both axes default to the scale midpoint.
func newTaskFormView(state *SharedState) View {
	name := ""
	importance := formatDefaultAxis()
	urgency := formatDefaultAxis()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What needs doing?").
				Value(&name).
				Validate(validateTaskName),
			huh.NewInput().
				Title("Importance (1–10)").
				Placeholder(importance).
				Value(&importance).
				Validate(validateAxis),
			huh.NewInput().
				Title("Urgency (1–10)").
				Placeholder(urgency).
				Value(&urgency).
				Validate(validateAxis),
		),
	).WithTheme(quadraHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			imp, _ := parseAxis(importance)
			urg, _ := parseAxis(urgency)
			// Validation already ran; a store error here means a raced
			// blank name, which the form cannot produce.
			_, _ = state.App.Store.Add(name, imp, urg)
			return nil
		}
	}

	return newWizardView(state, "Add Task", form, done)
}

func formatDefaultAxis() string {
	return strconv.FormatFloat(domain.AxisMidpoint, 'f', -1, 64)
}

func validateTaskName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter a task name")
	}
	return nil
}

// validateAxis accepts values on the 1–10 scale in half-point steps.
func validateAxis(s string) error {
	v, err := parseAxis(s)
	if err != nil {
		return fmt.Errorf("enter a number between 1 and 10")
	}
	if v < domain.AxisMin || v > domain.AxisMax {
		return fmt.Errorf("must be between 1 and 10")
	}
	if math.Mod(v*2, 1) != 0 {
		return fmt.Errorf("use whole or half points (e.g. 7 or 7.5)")
	}
	return nil
}

func parseAxis(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
