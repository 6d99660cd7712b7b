package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_OrdersByTimeThenRegistration(t *testing.T) {
	// GIVEN slots inserted out of order, two sharing a timestamp
	s := newSchedule[int]()
	a := &slot[int]{tN: 3, order: 0}
	b := &slot[int]{tN: 1, order: 2}
	c := &slot[int]{tN: 1, order: 1}
	s.insert(a)
	s.insert(b)
	s.insert(c)

	// THEN the earliest time wins and registration order breaks the tie
	require.NotNil(t, s.peek())
	assert.Same(t, c, s.peek())
	assert.Equal(t, []*slot[int]{c, b}, s.imminent(1))
}

func TestSchedule_UpdateReordersHeap(t *testing.T) {
	s := newSchedule[int]()
	a := &slot[int]{tN: 1, order: 0}
	b := &slot[int]{tN: 2, order: 1}
	s.insert(a)
	s.insert(b)

	// WHEN the head is rescheduled later than the other slot
	a.tN = 5
	s.update(a)

	// THEN the other slot becomes the head
	assert.Same(t, b, s.peek())
	assert.Empty(t, s.imminent(1))
}

func TestSchedule_EmptyPeek(t *testing.T) {
	assert.Nil(t, newSchedule[int]().peek())
}
