package kernel

import (
	"iter"
	"math"
)

// Time is simulation time, or a time advance. Infinity marks a passive model.
type Time float64

// Infinity is the passive sentinel: no internal event is scheduled.
var Infinity = Time(math.Inf(1))

// IsInfinite reports whether t is the passive sentinel.
func (t Time) IsInfinite() bool {
	return math.IsInf(float64(t), 1)
}

// Port identifies an input or output channel of a model.
type Port int

// PortValue is one signal on one channel.
type PortValue[V any] struct {
	Port  Port
	Value V
}

// Bag is an unordered multiset of port values. Duplicates are permitted and
// callers must not depend on iteration order.
type Bag[V any] struct {
	items []PortValue[V]
}

// NewBag creates an empty bag.
func NewBag[V any]() *Bag[V] {
	return &Bag[V]{}
}

// BagOf creates a bag holding the given port values.
func BagOf[V any](pvs ...PortValue[V]) *Bag[V] {
	b := &Bag[V]{items: make([]PortValue[V], 0, len(pvs))}
	b.items = append(b.items, pvs...)
	return b
}

// Insert adds a port value to the bag.
func (b *Bag[V]) Insert(pv PortValue[V]) {
	b.items = append(b.items, pv)
}

// Len returns the number of port values in the bag, counting duplicates.
func (b *Bag[V]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Empty reports whether the bag holds nothing.
func (b *Bag[V]) Empty() bool {
	return b.Len() == 0
}

// All iterates the bag contents.
func (b *Bag[V]) All() iter.Seq[PortValue[V]] {
	return func(yield func(PortValue[V]) bool) {
		if b == nil {
			return
		}
		for _, pv := range b.items {
			if !yield(pv) {
				return
			}
		}
	}
}

// Values returns a copy of the bag contents.
func (b *Bag[V]) Values() []PortValue[V] {
	if b == nil {
		return nil
	}
	out := make([]PortValue[V], len(b.items))
	copy(out, b.items)
	return out
}

// Clear empties the bag, zeroing the released slots.
func (b *Bag[V]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}
