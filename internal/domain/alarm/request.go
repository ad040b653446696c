package alarm

import (
	"errors"
	"fmt"
	"time"
)

// MaxMessageLength is the maximum accepted alarm message payload, in bytes.
const MaxMessageLength = 63

var (
	// ErrNonPositiveDuration is returned when the requested duration is zero or negative.
	ErrNonPositiveDuration = errors.New("duration must be positive")
	// ErrMessageTooLong is returned when the message exceeds MaxMessageLength bytes.
	ErrMessageTooLong = fmt.Errorf("message exceeds %d bytes", MaxMessageLength)
)

// Request is a pending countdown: a duration, a short message and the
// absolute instant at which it expires. ExpiresAt is computed once at
// submission and never changes afterwards.
type Request struct {
	// Seconds is the requested countdown duration.
	Seconds int
	// Message is the text reported alongside the countdown.
	Message string
	// ExpiresAt is the absolute expiry instant (submission time + Seconds).
	ExpiresAt time.Time
}

// NewRequest validates the pair and stamps the expiry instant relative to now.
func NewRequest(seconds int, message string, now time.Time) (*Request, error) {
	if seconds <= 0 {
		return nil, ErrNonPositiveDuration
	}

	if len(message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	return &Request{
		Seconds:   seconds,
		Message:   message,
		ExpiresAt: now.Add(time.Duration(seconds) * time.Second),
	}, nil
}

// Class returns the routing class derived from the parity of the expiry instant.
func (r *Request) Class() Class {
	return ClassOf(r.ExpiresAt)
}

// SecondsLeft returns the whole seconds remaining until expiry, truncated
// towards zero. It can be negative once the request has expired.
func (r *Request) SecondsLeft(now time.Time) int {
	return int(r.ExpiresAt.Sub(now) / time.Second)
}

// Expired reports whether the request's expiry instant has been reached.
func (r *Request) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// Clone returns a copy of the request to avoid leaking internal references.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}
