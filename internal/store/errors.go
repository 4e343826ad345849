package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by storer implementations. Handlers branch on these
// with errors.Is; ErrUnauthorized in particular triggers the global
// clear-session-and-redirect policy.
var (
	ErrUnauthorized = errors.New("upstream rejected the session")
	ErrNotFound     = errors.New("resource not found")
)

// UpstreamError carries a non-2xx upstream response whose message should be
// surfaced to the user verbatim (validation failures, business rules).
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// UserMessage extracts a message suitable for a page banner: the upstream's own
// message when it provided one, otherwise the given fallback.
func UserMessage(err error, fallback string) string {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return fallback
}
