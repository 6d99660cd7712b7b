package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigraph_AddIgnoresDuplicates(t *testing.T) {
	g := NewDigraph[int]()
	a := newProbe(Infinity)
	g.Add(a)
	g.Add(a)
	g.Add(nil)
	assert.Len(t, g.Components(), 1)
}

func TestDigraph_CoupleAddsModelsAndFansOut(t *testing.T) {
	// GIVEN one source coupled to two receivers on the same output port
	g := NewDigraph[int]()
	src, b, c := newProbe(1), newProbe(Infinity), newProbe(Infinity)
	g.Couple(src, 0, b, 3)
	g.Couple(src, 0, c, 4)

	// THEN all three are components, in the order they were first seen
	assert.Equal(t, []Atomic[int]{src, b, c}, g.Components())
	// AND the output port routes to both receivers
	assert.Equal(t, []Endpoint[int]{{Model: b, Port: 3}, {Model: c, Port: 4}}, g.Route(src, 0))
	assert.Empty(t, g.Route(src, 1))
}

func TestDigraph_ComponentsIsSnapshot(t *testing.T) {
	g := NewDigraph[int]()
	g.Add(newProbe(1))
	snap := g.Components()
	g.Add(newProbe(2))
	assert.Len(t, snap, 1)
	assert.Len(t, g.Components(), 2)
}
