package devs

import (
	"github.com/inference-sim/hostdevs/devs/host"
	"github.com/inference-sim/hostdevs/devs/kernel"
	"github.com/inference-sim/hostdevs/devs/trace"
)

// TraceListener records simulation events into a trace.
type TraceListener struct {
	trace *trace.SimulationTrace
}

var _ Listener = (*TraceListener)(nil)

// NewTraceListener creates a listener writing to st.
func NewTraceListener(st *trace.SimulationTrace) *TraceListener {
	return &TraceListener{trace: st}
}

// OutputEvent implements kernel.Listener.
func (l *TraceListener) OutputEvent(model kernel.Atomic[*host.Value], pv PortValue, t Time) {
	value := "None"
	if pv.Value != nil {
		value = pv.Value.Repr()
	}
	l.trace.RecordOutput(trace.OutputRecord{
		Clock: float64(t),
		Model: modelName(model),
		Port:  int(pv.Port),
		Value: value,
	})
}

// StateChange implements kernel.Listener.
func (l *TraceListener) StateChange(model kernel.Atomic[*host.Value], t Time) {
	l.trace.RecordTransition(trace.TransitionRecord{
		Clock: float64(t),
		Model: modelName(model),
	})
}

func modelName(model kernel.Atomic[*host.Value]) string {
	if a, ok := model.(*Atomic); ok {
		return a.Name()
	}
	return "<model>"
}
