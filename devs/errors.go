package devs

import (
	"errors"
	"strings"

	"github.com/inference-sim/hostdevs/devs/kernel"
)

// Op names the adapter operation that failed, by its host method name.
type Op string

const (
	OpDeltaInt  Op = "delta_int"
	OpDeltaExt  Op = "delta_ext"
	OpDeltaConf Op = "delta_conf"
	OpOutput    Op = "output_func"
	OpTa        Op = "ta"
	OpBind      Op = "bind"
)

// Kind categorizes an adapter failure.
type Kind string

const (
	// KindUnboundCallback: the host object or the callback slot is missing.
	KindUnboundCallback Kind = "unbound_callback"
	// KindHostRaised: the host callback set the error indicator.
	KindHostRaised Kind = "host_raised"
)

// Error is a structured adapter failure.
type Error struct {
	Kind   Kind
	Op     Op
	Model  string
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteString("] ")
	b.WriteString(string(e.Op))
	if e.Model != "" {
		b.WriteString(" on ")
		b.WriteString(e.Model)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	// ErrUnboundCallback matches every KindUnboundCallback failure.
	ErrUnboundCallback = &Error{Kind: KindUnboundCallback}
	// ErrHostRaised matches every KindHostRaised failure.
	ErrHostRaised = &Error{Kind: KindHostRaised}
)

// IsKernelInvariantViolation reports whether err originated in the kernel.
func IsKernelInvariantViolation(err error) bool {
	var inv *kernel.InvariantError
	return errors.As(err, &inv)
}
