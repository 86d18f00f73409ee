package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/quadra/internal/llm"
)

// summaryErrorText maps every summary-flow error variant to a short
// user-facing message. No variant is fatal; the text replaces the
// summary in the display slot.
func summaryErrorText(err error) string {
	var statusErr *llm.StatusError
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		return "No API key configured. Add api_key to your quadra config file."
	case errors.Is(err, llm.ErrInvalidEndpoint):
		return "The configured endpoint URL is invalid."
	case errors.Is(err, llm.ErrUnreachable):
		return "Could not reach the summarization service. Check your connection."
	case errors.As(err, &statusErr):
		return fmt.Sprintf("The summarization service returned an error (HTTP %d).", statusErr.Status)
	case errors.Is(err, llm.ErrNoContent):
		return "The summarization service returned an empty response."
	case errors.Is(err, llm.ErrDecode):
		return "The summarization response could not be read."
	default:
		return "Summary request failed. Please try again."
	}
}
