package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest holds the two-message prompt for a completion call.
type ChatRequest struct {
	System string
	User   string
}

// ChatResponse holds the result of a completion call.
type ChatResponse struct {
	Text      string
	LatencyMs int64
}

// ChatClient sends one chat-completion exchange per call. There is no
// retry, no caching, and no deduplication of concurrent calls.
type ChatClient interface {
	// Complete sends the prompt and returns the first choice's text verbatim.
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type chatClient struct {
	cfg      ChatConfig
	http     *http.Client
	observer Observer
}

// NewChatClient creates a ChatClient for an OpenAI-compatible
// chat-completions endpoint.
func NewChatClient(cfg ChatConfig, observer Observer) ChatClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &chatClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// chatWireRequest is the JSON body POSTed to the completions endpoint.
type chatWireRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

// chatWireResponse is the JSON body of a successful completion.
type chatWireResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	resp, err := c.doRequest(ctx, req)
	c.observer.OnCallComplete(ChatCallEvent{
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	if err != nil {
		return nil, err
	}
	resp.LatencyMs = time.Since(start).Milliseconds()
	return resp, nil
}

func (c *chatClient) doRequest(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	// Credential check happens before anything touches the network.
	if c.cfg.Credential == "" {
		return nil, ErrMissingCredential
	}

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	body := chatWireRequest{
		Model: c.cfg.Model,
		Messages: []Message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: c.cfg.Temperature,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Credential)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &StatusError{Status: httpResp.StatusCode}
	}

	var resp chatWireResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoContent
	}

	return &ChatResponse{Text: resp.Choices[0].Message.Content}, nil
}
