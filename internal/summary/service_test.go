package summary

import (
	"context"
	"testing"

	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/alexanderramin/quadra/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatClient records the request it was handed and replies with a
// canned response.
type fakeChatClient struct {
	lastReq llm.ChatRequest
	calls   int
	text    string
	err     error
}

func (f *fakeChatClient) Complete(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Text: f.text}, nil
}

func TestSummarize_SendsBucketedPrompt(t *testing.T) {
	client := &fakeChatClient{text: "Focus on the Do quadrant."}
	svc := NewService(client)

	tasks := []*domain.Task{
		{ID: "1", Name: "A", Importance: 8, Urgency: 8},
		{ID: "2", Name: "B", Importance: 2, Urgency: 2},
	}

	text, err := svc.Summarize(context.Background(), tasks)

	require.NoError(t, err)
	assert.Equal(t, "Focus on the Do quadrant.", text)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.lastReq.System, "productivity strategist")
	assert.Contains(t, client.lastReq.User, "Do (urgent and important) — 1 task(s): A")
	assert.Contains(t, client.lastReq.User, "Delete (neither urgent nor important) — 1 task(s): B")
}

func TestSummarize_PropagatesClientError(t *testing.T) {
	client := &fakeChatClient{err: llm.ErrMissingCredential}
	svc := NewService(client)

	_, err := svc.Summarize(context.Background(), nil)

	assert.ErrorIs(t, err, llm.ErrMissingCredential)
}
