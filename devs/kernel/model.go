package kernel

// Devs is implemented by every model a Simulator can drive. Exactly one of
// the two methods returns a non-nil result.
type Devs[V any] interface {
	TypeIsAtomic() Atomic[V]
	TypeIsNetwork() Network[V]
}

// Atomic is an indivisible model. Transition functions are called by the
// simulator only; the input bags they receive are read-only and owned by the
// simulator for the duration of the call.
type Atomic[V any] interface {
	Devs[V]

	// DeltaInt is the internal transition, applied when the model is
	// imminent and receives no input.
	DeltaInt() error
	// DeltaExt is the external transition, applied when input arrives e time
	// units after the model's last event and the model is not imminent.
	DeltaExt(e Time, xb *Bag[V]) error
	// DeltaConf is the confluent transition, applied when the model is
	// imminent and receives input at the same instant.
	DeltaConf(xb *Bag[V]) error
	// OutputFunc fills yb with the model's output. It is called on imminent
	// models just before their internal or confluent transition and must not
	// change model state.
	OutputFunc(yb *Bag[V]) error
	// Ta returns the time until the next internal event.
	Ta() (Time, error)
	// GCOutput releases values in a bag produced by OutputFunc. The simulator
	// calls it exactly once per produced bag, after routing has finished.
	GCOutput(g *Bag[V])
}

// Endpoint is one end of a coupling.
type Endpoint[V any] struct {
	Model Atomic[V]
	Port  Port
}

// Network is a model composed of atomic components and the couplings
// between them.
type Network[V any] interface {
	Devs[V]

	// Components returns the atomic components in registration order.
	Components() []Atomic[V]
	// Route returns the receivers of a value emitted by src on port.
	Route(src Atomic[V], port Port) []Endpoint[V]
}

// Listener observes a running simulation.
type Listener[V any] interface {
	// OutputEvent is called for every value produced by an imminent model,
	// before it is routed.
	OutputEvent(model Atomic[V], pv PortValue[V], t Time)
	// StateChange is called after a model completed a transition at time t.
	StateChange(model Atomic[V], t Time)
}
