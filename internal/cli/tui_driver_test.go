package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/alexanderramin/quadra/internal/store"
	"github.com/alexanderramin/quadra/internal/teatest"
)

// TestDriver wraps teatest.Driver with quadra-specific inspection
// methods for appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and
// drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	d := teatest.New(t, newAppModel(app), 120, 40)
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// matrixView returns the bottom-of-stack matrix view.
func (d *TestDriver) matrixView() *matrixView {
	return d.appModel().viewStack[0].(*matrixView)
}

// ── fixtures ─────────────────────────────────────────────────────────────────

// fakeSummaries is a controllable summary.Service double.
type fakeSummaries struct {
	text  string
	err   error
	calls int
	seen  []*domain.Task
}

func (f *fakeSummaries) Summarize(_ context.Context, tasks []*domain.Task) (string, error) {
	f.calls++
	f.seen = tasks
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testApp(t *testing.T) (*App, *fakeSummaries) {
	t.Helper()
	fake := &fakeSummaries{text: "Concentrate on the Do quadrant."}
	return &App{
		Store:         store.New(),
		Summaries:     fake,
		IsInteractive: func() bool { return true },
	}, fake
}

func seedTasks(t *testing.T, app *App) {
	t.Helper()
	mustAdd := func(name string, imp, urg float64) {
		if _, err := app.Store.Add(name, imp, urg); err != nil {
			t.Fatalf("seeding task %q: %v", name, err)
		}
	}
	mustAdd("Fix prod incident", 9, 9)
	mustAdd("Quarterly plan", 8, 2)
	mustAdd("Forward meeting invite", 2, 8)
	mustAdd("Tidy downloads folder", 1, 1)
}
