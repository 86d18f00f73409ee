package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indicates no API key is configured.
	// The client fails with this before any network attempt.
	ErrMissingCredential = errors.New("api credential missing")

	// ErrInvalidEndpoint indicates the configured endpoint URL could
	// not be parsed into a request.
	ErrInvalidEndpoint = errors.New("invalid endpoint url")

	// ErrUnreachable indicates a transport-level failure (DNS,
	// connection reset, timeout). The underlying cause is wrapped.
	ErrUnreachable = errors.New("chat endpoint unreachable")

	// ErrNoContent indicates a well-formed response carrying an empty
	// choices array.
	ErrNoContent = errors.New("chat response contained no choices")

	// ErrDecode indicates the response body could not be decoded into
	// the expected chat-completion shape.
	ErrDecode = errors.New("undecodable chat response")
)

// StatusError reports a non-2xx HTTP status from the chat endpoint.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat endpoint returned status %d", e.Status)
}

func errorCode(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "MISSING_CREDENTIAL"
	case errors.Is(err, ErrInvalidEndpoint):
		return "INVALID_ENDPOINT"
	case errors.Is(err, ErrUnreachable):
		return "UNREACHABLE"
	case errors.As(err, &statusErr):
		return "BAD_STATUS"
	case errors.Is(err, ErrNoContent):
		return "NO_CONTENT"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}
