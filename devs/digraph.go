package devs

import (
	"github.com/inference-sim/hostdevs/devs/host"
	"github.com/inference-sim/hostdevs/devs/kernel"
)

// Digraph composes Atomic models. Duplicate components and self couplings
// are handled by the kernel digraph.
type Digraph struct {
	base *kernel.Digraph[*host.Value]
}

// NewDigraph creates an empty digraph.
func NewDigraph() *Digraph {
	return &Digraph{base: kernel.NewDigraph[*host.Value]()}
}

// Add registers model as a component. A nil model is ignored.
func (g *Digraph) Add(model *Atomic) {
	if model == nil {
		return
	}
	g.base.Add(model)
}

// Couple routes values src emits on srcPort to dst's dstPort.
// A coupling with a nil end is ignored.
func (g *Digraph) Couple(src *Atomic, srcPort Port, dst *Atomic, dstPort Port) {
	if src == nil || dst == nil {
		return
	}
	g.base.Couple(src, srcPort, dst, dstPort)
}

// Components returns a snapshot of the registered components.
func (g *Digraph) Components() []*Atomic {
	base := g.base.Components()
	out := make([]*Atomic, 0, len(base))
	for _, m := range base {
		if a, ok := m.(*Atomic); ok {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of components.
func (g *Digraph) Len() int {
	return len(g.base.Components())
}

// Base returns the kernel digraph.
func (g *Digraph) Base() *kernel.Digraph[*host.Value] {
	return g.base
}
