package summary

import (
	"strings"
	"testing"

	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/alexanderramin/quadra/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(name string, importance, urgency float64) *domain.Task {
	return &domain.Task{ID: name, Name: name, Importance: importance, Urgency: urgency}
}

func TestBuildPrompt_ListsEveryQuadrant(t *testing.T) {
	b := matrix.Partition([]*domain.Task{
		task("Ship release", 9, 9),
		task("Write design doc", 8, 2),
		task("Chase invoice", 2, 8),
	})

	p := BuildPrompt(b)

	assert.Contains(t, p.User, "Do (urgent and important) — 1 task(s): Ship release")
	assert.Contains(t, p.User, "Plan (important, not urgent) — 1 task(s): Write design doc")
	assert.Contains(t, p.User, "Delegate (urgent, not important) — 1 task(s): Chase invoice")
	assert.Contains(t, p.User, "Delete (neither urgent nor important) — 0 task(s): none")
}

func TestBuildPrompt_EmptyCollection(t *testing.T) {
	p := BuildPrompt(matrix.Partition(nil))

	// All four quadrants render the explicit placeholder.
	assert.Equal(t, 4, strings.Count(p.User, ": none"))
}

func TestBuildPrompt_JoinsNamesInOrder(t *testing.T) {
	b := matrix.Partition([]*domain.Task{
		task("alpha", 9, 9),
		task("beta", 8, 8),
		task("gamma", 7, 7),
	})

	p := BuildPrompt(b)
	assert.Contains(t, p.User, "3 task(s): alpha, beta, gamma")
}

func TestBuildPrompt_NamesPassThroughVerbatim(t *testing.T) {
	name := `review "Q3 budget" — überarbeiten, 完了`
	p := BuildPrompt(matrix.Partition([]*domain.Task{task(name, 9, 9)}))

	assert.Contains(t, p.User, name)
}

func TestBuildPrompt_SystemShape(t *testing.T) {
	p := BuildPrompt(matrix.Buckets{})

	require.NotEmpty(t, p.System)
	assert.Contains(t, p.System, "productivity strategist")
	assert.Contains(t, p.System, "120 words")
	assert.Contains(t, p.System, "ONLY the quadrant data")
}
