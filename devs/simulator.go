package devs

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/hostdevs/devs/host"
	"github.com/inference-sim/hostdevs/devs/kernel"
)

// Simulator executes a model bound at construction. Errors from adapter
// operations and from the kernel are returned exactly as raised. Once a step
// fails the simulation is over; later steps return kernel.ErrAborted.
type Simulator struct {
	base *kernel.Simulator[*host.Value]
}

// NewSimulator binds a single Atomic.
func NewSimulator(model *Atomic) (*Simulator, error) {
	return newSimulator(model)
}

// NewSimulatorFromModel binds any kernel model over host values.
func NewSimulatorFromModel(model Model) (*Simulator, error) {
	return newSimulator(model)
}

// NewSimulatorFromDigraph binds a Digraph.
func NewSimulatorFromDigraph(g *Digraph) (*Simulator, error) {
	if g == nil {
		return newSimulator(nil)
	}
	return newSimulator(g.base)
}

func newSimulator(model Model) (*Simulator, error) {
	base, err := kernel.NewSimulator(model)
	if err != nil {
		return nil, err
	}
	return &Simulator{base: base}, nil
}

// AddListener registers l to observe outputs and state changes.
func (s *Simulator) AddListener(l Listener) {
	s.base.AddListener(l)
}

// Clock returns the time of the last executed event.
func (s *Simulator) Clock() Time {
	return s.base.Clock
}

// NextEventTime returns the time of the next event, Infinity if none.
func (s *Simulator) NextEventTime() Time {
	return s.base.NextEventTime()
}

// ExecuteNextEvent executes one simulation step.
func (s *Simulator) ExecuteNextEvent() error {
	return s.base.ExecNextEvent()
}

// ExecuteUntil executes steps while the next event time is at most tEnd.
func (s *Simulator) ExecuteUntil(tEnd Time) error {
	logrus.Debugf("executing until t=%g (next event at t=%g)", float64(tEnd), float64(s.NextEventTime()))
	return s.base.ExecUntil(tEnd)
}
