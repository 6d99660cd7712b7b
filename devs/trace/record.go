// Package trace provides event-trace recording for simulation runs.
// It stores pure data and does not import devs or devs/kernel.
package trace

// OutputRecord captures one value emitted by a model.
type OutputRecord struct {
	Clock float64
	Model string
	Port  int
	Value string // repr of the emitted value
}

// TransitionRecord captures one completed state transition.
type TransitionRecord struct {
	Clock float64
	Model string
}
