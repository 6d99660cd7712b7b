// Package kernel is a small, generic DEVS simulation kernel.
//
// It knows nothing about where model behaviour comes from. Models implement
// Atomic (five behavioural operations plus an output garbage-collection hook)
// and are composed with a Digraph, which couples output ports to input ports.
// A Simulator drives either a single Atomic or a Network one event at a time:
//
//   - NextEventTime reports the earliest scheduled internal event (Infinity
//     when every component is passive).
//   - ExecNextEvent computes outputs of the imminent components, routes them
//     through the network, applies confluent/internal/external transitions and
//     finally hands every produced output bag back to its producer via GCOutput.
//   - ExecUntil repeats ExecNextEvent up to a time bound.
//
// The kernel is generic over the value type carried on ports, so the same code
// serves plain Go values in tests and host-runtime handles in package devs.
//
// Errors returned by model operations abort the current step and are returned
// to the caller unchanged. After such a failure the simulator refuses to run
// further steps. Failures detected by the kernel itself are *InvariantError.
package kernel
