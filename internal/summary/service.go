// Package summary turns the current task grid into a one-shot AI
// strategy summary.
package summary

import (
	"context"

	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/alexanderramin/quadra/internal/llm"
	"github.com/alexanderramin/quadra/internal/matrix"
)

// Service produces strategic summaries of a task collection.
type Service interface {
	// Summarize partitions the tasks, builds the prompt, and performs
	// one completion call. The returned text is the model's output
	// verbatim.
	Summarize(ctx context.Context, tasks []*domain.Task) (string, error)
}

type service struct {
	client llm.ChatClient
}

// NewService creates a Service backed by a chat client.
func NewService(client llm.ChatClient) Service {
	return &service{client: client}
}

func (s *service) Summarize(ctx context.Context, tasks []*domain.Task) (string, error) {
	prompt := BuildPrompt(matrix.Partition(tasks))

	resp, err := s.client.Complete(ctx, llm.ChatRequest{
		System: prompt.System,
		User:   prompt.User,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
