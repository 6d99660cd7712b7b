package kernel

import (
	"fmt"
	"strings"
)

// Reasons reported by InvariantError.
const (
	ReasonNegativeTimeAdvance = "invalid time advance"
	ReasonUnknownModel        = "unknown model"
	ReasonClockBackwards      = "clock went backwards"
	ReasonAborted             = "simulation aborted"
	ReasonNoModel             = "no model"
)

// InvariantError reports a failure detected by the kernel itself.
type InvariantError struct {
	Cause  error
	Reason string
	Detail string
	Clock  Time
}

func (e *InvariantError) Error() string {
	var b strings.Builder
	b.WriteString("devs kernel: ")
	b.WriteString(e.Reason)
	fmt.Fprintf(&b, " at t=%g", float64(e.Clock))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

func (e *InvariantError) Unwrap() error {
	return e.Cause
}

// Is matches any *InvariantError with the same Reason.
func (e *InvariantError) Is(target error) bool {
	if t, ok := target.(*InvariantError); ok {
		return t.Reason == e.Reason
	}
	return false
}

// ErrAborted matches the error returned by a simulator that already failed.
var ErrAborted = &InvariantError{Reason: ReasonAborted}
