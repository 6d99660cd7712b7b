// Package testutil provides shared test infrastructure for the devs
// packages: a do-nothing host model class and method patching helpers.
package testutil

import (
	"math"
	"testing"

	"github.com/inference-sim/hostdevs/devs/host"
)

func returnNone(rt *host.Runtime, _ []*host.Value) *host.Value { return rt.None() }

// AtomicClass is a host model that does nothing: transitions are no-ops,
// output_func returns None and ta returns infinity.
var AtomicClass = &host.Class{
	Name: "TestAtomic",
	Methods: map[string]host.Func{
		"delta_int":   returnNone,
		"delta_ext":   returnNone,
		"delta_conf":  returnNone,
		"output_func": returnNone,
		"ta": func(rt *host.Runtime, _ []*host.Value) *host.Value {
			return rt.Float(math.Inf(1))
		},
	},
}

// NewAtomicObject creates an AtomicClass instance released at test cleanup.
func NewAtomicObject(t testing.TB, rt *host.Runtime) *host.Value {
	t.Helper()
	obj := rt.NewObject(AtomicClass)
	if obj == nil {
		t.Fatal("creating TestAtomic failed")
	}
	t.Cleanup(obj.DecRef)
	return obj
}

// Mock records calls to a patched host method.
type Mock struct {
	// Calls holds the repr of every argument, one slice per call.
	Calls [][]string
}

// CallCount returns the number of recorded calls.
func (m *Mock) CallCount() int { return len(m.Calls) }

// Called reports whether the mock ran at least once.
func (m *Mock) Called() bool { return len(m.Calls) > 0 }

// Patch replaces method name on obj with a recording function. ret builds
// the return value of each call; nil returns None.
func Patch(t testing.TB, obj *host.Value, name string, ret func(rt *host.Runtime) *host.Value) *Mock {
	t.Helper()
	m := &Mock{}
	fn := obj.Runtime().NewFunc(name, func(rt *host.Runtime, args []*host.Value) *host.Value {
		call := make([]string, len(args))
		for i, a := range args {
			call[i] = a.Repr()
		}
		m.Calls = append(m.Calls, call)
		if ret == nil {
			return rt.None()
		}
		return ret(rt)
	})
	if !obj.SetAttr(name, fn) {
		t.Fatalf("patching %s failed", name)
	}
	fn.DecRef()
	return m
}

// Float returns a ret function for Patch producing f.
func Float(f float64) func(rt *host.Runtime) *host.Value {
	return func(rt *host.Runtime) *host.Value { return rt.Float(f) }
}

// Pair returns a ret function for Patch producing the tuple (port, value).
func Pair(port, value int64) func(rt *host.Runtime) *host.Value {
	return func(rt *host.Runtime) *host.Value {
		p, v := rt.Int(port), rt.Int(value)
		defer p.DecRef()
		defer v.DecRef()
		return rt.Tuple(p, v)
	}
}

// Raises returns a ret function for Patch that raises typ with msg.
func Raises(typ, msg string) func(rt *host.Runtime) *host.Value {
	return func(rt *host.Runtime) *host.Value {
		rt.Raise(typ, "%s", msg)
		return nil
	}
}
