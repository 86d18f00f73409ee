package summary

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/alexanderramin/quadra/internal/matrix"
)

// Prompt is the two-message input for the summarization call.
type Prompt struct {
	System string
	User   string
}

const systemPrompt = `You are a pragmatic productivity strategist reviewing a user's Eisenhower matrix.

Write a short strategic summary of the current task distribution: where the user's attention is concentrated, what looks neglected, and the single most useful next move.

RULES:
1. Use ONLY the quadrant data supplied by the user. Never invent tasks.
2. Keep the summary under 120 words.
3. Plain text only: no headings, no bullet lists, no markdown.
4. Address the user directly and stay concrete.`

// BuildPrompt renders the four quadrant buckets into the system/user
// message pair. Task names pass through verbatim; an empty quadrant is
// listed as "none" rather than omitted.
func BuildPrompt(b matrix.Buckets) Prompt {
	var u strings.Builder
	u.WriteString("Current Eisenhower matrix:\n")
	for _, q := range domain.Quadrants {
		bucket := b.ByQuadrant(q)
		fmt.Fprintf(&u, "\n%s (%s) — %d task(s): %s", q.Label(), q.Describe(), len(bucket), joinNames(bucket))
	}

	return Prompt{System: systemPrompt, User: u.String()}
}

func joinNames(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return "none"
	}
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
