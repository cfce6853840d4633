package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure. The classification decides retry
// behavior and how callers report the failure.
type Kind int

const (
	// KindTransport is a network-level failure (timeout, reset). Retried.
	KindTransport Kind = iota
	// KindRateLimited is an HTTP 429. Retried with backoff.
	KindRateLimited
	// KindBlocked is an HTTP 403 anti-bot rejection. Never retried.
	KindBlocked
	// KindHTTP is any other non-2xx status. Retried, then surfaced.
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRateLimited:
		return "rate_limited"
	case KindBlocked:
		return "blocked"
	default:
		return "http"
	}
}

// Error is a classified fetch failure for one URL.
type Error struct {
	Kind   Kind
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBlocked:
		return fmt.Sprintf("blocked by anti-bot protection (403): %s", e.URL)
	case KindRateLimited:
		return fmt.Sprintf("rate limited (429): %s", e.URL)
	case KindTransport:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or KindTransport when err is
// not a fetch error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindTransport
}

// IsBlocked reports whether err is an anti-bot rejection.
func IsBlocked(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == KindBlocked
}
