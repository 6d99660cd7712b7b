package host

import (
	"fmt"
	"slices"
)

// Frame is one entry of a host call stack.
type Frame struct {
	Func string
	File string
	Line int
}

// ErrorState is a raised host error: its type name, its value and the host
// call stack at the point it was raised, outermost frame first.
type ErrorState struct {
	Type      string
	Value     *Value
	Traceback []Frame
}

// Release drops the reference held on the error value.
func (st ErrorState) Release() {
	XDecRef(st.Value)
}

// SetError sets the error indicator, taking over the caller's reference to
// value. An error already pending is replaced.
func (rt *Runtime) SetError(typ string, value *Value) {
	if rt.err != nil {
		rt.err.Release()
	}
	rt.err = &ErrorState{Type: typ, Value: value, Traceback: slices.Clone(rt.frames)}
}

// Raise sets the error indicator with a formatted string value.
func (rt *Runtime) Raise(typ, format string, args ...any) {
	rt.SetError(typ, rt.Str(fmt.Sprintf(format, args...)))
}

// Occurred reports whether the error indicator is set.
func (rt *Runtime) Occurred() bool {
	return rt.err != nil
}

// Fetch returns the pending error and clears the indicator. Ownership of the
// error value passes to the caller.
func (rt *Runtime) Fetch() (ErrorState, bool) {
	if rt.err == nil {
		return ErrorState{}, false
	}
	st := *rt.err
	rt.err = nil
	return st, true
}

// Clear discards any pending error.
func (rt *Runtime) Clear() {
	if st, ok := rt.Fetch(); ok {
		st.Release()
	}
}

// FormatException renders st with the runtime's formatter.
func (rt *Runtime) FormatException(st ErrorState) (string, error) {
	if rt.formatter == nil {
		return "", fmt.Errorf("no traceback formatter configured")
	}
	return rt.formatter.FormatException(st)
}
