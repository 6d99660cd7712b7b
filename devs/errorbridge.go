package devs

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/hostdevs/devs/host"
)

// ErrorBridge turns a pending host error into a diagnostic string.
type ErrorBridge struct {
	rt *host.Runtime
}

// NewErrorBridge creates a bridge over rt's error indicator.
func NewErrorBridge(rt *host.Runtime) ErrorBridge {
	return ErrorBridge{rt: rt}
}

// FetchAndFormat returns false if no host error is pending. Otherwise it
// fetches and clears the error and returns its message followed by the
// rendered traceback. If the traceback cannot be rendered the message alone
// is returned.
func (b ErrorBridge) FetchAndFormat() (string, bool) {
	if b.rt == nil || !b.rt.Occurred() {
		return "", false
	}
	st, _ := b.rt.Fetch()
	defer st.Release()

	var msg string
	if st.Value != nil {
		msg = st.Value.String()
	}
	trace, err := b.rt.FormatException(st)
	if err != nil {
		logrus.Debugf("could not render traceback for %s: %v", st.Type, err)
		return msg, true
	}
	return msg + "\n" + trace, true
}
