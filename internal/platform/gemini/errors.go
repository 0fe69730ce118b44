package gemini

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey means no Gemini credential is configured. Checked before any
// network attempt; never retryable.
var ErrNoAPIKey = errors.New("gemini: no API key configured")

// UpstreamError wraps transport failures, timeouts, and quota or server
// errors from the Gemini API. Retry policy belongs to the caller.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemini upstream error: %v", e.Err)
	}
	return "gemini upstream error"
}

func (e *UpstreamError) Unwrap() error { return e.Err }
