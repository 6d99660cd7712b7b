package devs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inference-sim/hostdevs/devs/host"
)

func TestDigraph_Components(t *testing.T) {
	rt := host.NewRuntime()
	g := NewDigraph()
	assert.Empty(t, g.Components())

	a, _ := newObjectAtomic(t, rt)
	b, _ := newObjectAtomic(t, rt)
	g.Add(a)
	g.Add(b)

	assert.Equal(t, []*Atomic{a, b}, g.Components())
	assert.Equal(t, 2, g.Len())
}

func TestDigraph_ComponentsSnapshot(t *testing.T) {
	rt := host.NewRuntime()
	g := NewDigraph()
	a, _ := newObjectAtomic(t, rt)
	g.Add(a)
	snap := g.Components()

	b, _ := newObjectAtomic(t, rt)
	g.Add(b)
	assert.Len(t, snap, 1)
}

func TestDigraph_CoupleFanOut(t *testing.T) {
	rt := host.NewRuntime()
	g := NewDigraph()
	src, _ := newObjectAtomic(t, rt)
	d1, _ := newObjectAtomic(t, rt)
	d2, _ := newObjectAtomic(t, rt)
	g.Couple(src, 0, d1, 0)
	g.Couple(src, 0, d2, 1)

	routes := g.Base().Route(src, 0)
	assert.Len(t, routes, 2)
	assert.Equal(t, 3, g.Len())
}

func TestDigraph_AddNilAndDuplicate_Ignored(t *testing.T) {
	rt := host.NewRuntime()
	g := NewDigraph()
	a, _ := newObjectAtomic(t, rt)

	g.Add(nil)
	g.Add(a)
	g.Add(a)

	assert.Equal(t, []*Atomic{a}, g.Components())
}

func TestDigraph_CoupleWithNilEnd_Ignored(t *testing.T) {
	// GIVEN one real model
	rt := host.NewRuntime()
	g := NewDigraph()
	a, _ := newObjectAtomic(t, rt)

	// WHEN it is coupled to and from nil
	g.Couple(nil, 0, a, 0)
	g.Couple(a, 0, nil, 0)

	// THEN nothing was registered
	assert.Empty(t, g.Components())
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Base().Route(a, 0))
}
