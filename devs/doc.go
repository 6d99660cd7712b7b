// Package devs adapts models written against the host runtime (package
// devs/host) to the DEVS kernel (package devs/kernel).
//
// # Components
//
//   - ErrorBridge: reads and clears the host error indicator after a callback
//     and formats the diagnostic (message followed by the traceback).
//   - Atomic: a kernel atomic model backed by a host object and five callback
//     slots. NewAtomicFromObject binds the standard slots that dispatch to the
//     object's delta_int, delta_ext, delta_conf, output_func and ta methods.
//   - Digraph: composes Atomic models and couples their ports.
//   - Simulator: drives a single Atomic, a raw kernel model, or a Digraph.
//
// # Ownership
//
// Values crossing the boundary are *host.Value handles. A value placed in an
// output bag carries one reference owned by the bag; the kernel hands the bag
// back through Atomic.GCOutput exactly once, which releases those references.
// Input bags are borrowed for the duration of a transition.
//
// # Errors
//
// Operations fail with *Error: KindUnboundCallback when the object or the
// needed slot is missing (nothing is called), KindHostRaised when the host
// callback raised. Kernel failures are *kernel.InvariantError. The Simulator
// returns all of them unchanged; after a failure the simulation cannot be
// resumed.
package devs
