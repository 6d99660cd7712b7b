package kernel

import (
	"container/heap"
	"slices"
)

// slot holds the simulator's bookkeeping for one atomic component.
type slot[V any] struct {
	model Atomic[V]
	tL    Time // time of last event
	tN    Time // time of next internal event
	order int  // registration order, the tie-breaker among simultaneous events
	index int  // position in the schedule heap

	input    *Bag[V]
	output   *Bag[V]
	imminent bool
}

// schedule is a priority queue of slots with deterministic ordering.
// Order by: next event time → registration order.
type schedule[V any] struct {
	slots []*slot[V]
}

func newSchedule[V any]() *schedule[V] {
	s := &schedule[V]{slots: make([]*slot[V], 0)}
	heap.Init(s)
	return s
}

// Len implements heap.Interface
func (s *schedule[V]) Len() int { return len(s.slots) }

// Less implements heap.Interface
func (s *schedule[V]) Less(i, j int) bool {
	si, sj := s.slots[i], s.slots[j]
	if si.tN != sj.tN {
		return si.tN < sj.tN
	}
	return si.order < sj.order
}

// Swap implements heap.Interface
func (s *schedule[V]) Swap(i, j int) {
	s.slots[i], s.slots[j] = s.slots[j], s.slots[i]
	s.slots[i].index = i
	s.slots[j].index = j
}

// Push implements heap.Interface
func (s *schedule[V]) Push(x any) {
	sl := x.(*slot[V])
	sl.index = len(s.slots)
	s.slots = append(s.slots, sl)
}

// Pop implements heap.Interface
func (s *schedule[V]) Pop() any {
	old := s.slots
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	s.slots = old[0 : n-1]
	item.index = -1
	return item
}

func (s *schedule[V]) insert(sl *slot[V]) {
	heap.Push(s, sl)
}

// update restores heap order after sl.tN changed.
func (s *schedule[V]) update(sl *slot[V]) {
	heap.Fix(s, sl.index)
}

// peek returns the slot with the earliest next event, or nil.
func (s *schedule[V]) peek() *slot[V] {
	if len(s.slots) == 0 {
		return nil
	}
	return s.slots[0]
}

// imminent returns every slot scheduled at t, in registration order.
func (s *schedule[V]) imminent(t Time) []*slot[V] {
	var out []*slot[V]
	var walk func(i int)
	walk = func(i int) {
		if i >= len(s.slots) || s.slots[i].tN != t {
			return
		}
		out = append(out, s.slots[i])
		walk(2*i + 1)
		walk(2*i + 2)
	}
	walk(0)
	slices.SortFunc(out, func(a, b *slot[V]) int { return a.order - b.order })
	return out
}
