package kernel

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"
)

// Simulator drives a model one event at a time. It is not safe for
// concurrent use.
type Simulator[V any] struct {
	// Clock is the time of the last executed event.
	Clock Time

	network   Network[V]
	sched     *schedule[V]
	slots     map[Atomic[V]]*slot[V]
	listeners []Listener[V]
	failure   error
}

// NewSimulator prepares model for simulation, querying the time advance of
// every atomic component at time zero.
func NewSimulator[V any](model Devs[V]) (*Simulator[V], error) {
	if model == nil {
		return nil, &InvariantError{Reason: ReasonNoModel}
	}
	s := &Simulator[V]{
		sched: newSchedule[V](),
		slots: make(map[Atomic[V]]*slot[V]),
	}

	var components []Atomic[V]
	if a := model.TypeIsAtomic(); a != nil {
		components = []Atomic[V]{a}
	} else if n := model.TypeIsNetwork(); n != nil {
		s.network = n
		components = n.Components()
	} else {
		return nil, &InvariantError{Reason: ReasonNoModel, Detail: fmt.Sprintf("%T is neither atomic nor a network", model)}
	}

	for i, m := range components {
		if _, dup := s.slots[m]; dup {
			continue
		}
		ta, err := m.Ta()
		if err != nil {
			return nil, err
		}
		if err := checkTimeAdvance(ta, 0); err != nil {
			return nil, err
		}
		sl := &slot[V]{model: m, tL: 0, tN: ta, order: i}
		s.slots[m] = sl
		s.sched.insert(sl)
	}
	return s, nil
}

// AddListener registers l to observe outputs and state changes.
func (s *Simulator[V]) AddListener(l Listener[V]) {
	s.listeners = append(s.listeners, l)
}

// NextEventTime returns the time of the next internal event, or Infinity.
func (s *Simulator[V]) NextEventTime() Time {
	sl := s.sched.peek()
	if sl == nil {
		return Infinity
	}
	return sl.tN
}

// ExecNextEvent executes the next event. It does nothing when every
// component is passive. An error from a model aborts the step and is
// returned as is; the simulator cannot be used afterwards.
func (s *Simulator[V]) ExecNextEvent() (err error) {
	if s.failure != nil {
		return &InvariantError{Reason: ReasonAborted, Clock: s.Clock, Cause: s.failure}
	}
	t := s.NextEventTime()
	if t.IsInfinite() {
		return nil
	}
	if t < s.Clock {
		return &InvariantError{Reason: ReasonClockBackwards, Clock: s.Clock, Detail: fmt.Sprintf("next event at %g", float64(t))}
	}
	s.Clock = t

	imminent := s.sched.imminent(t)
	activated := make([]*slot[V], 0, len(imminent))
	var produced []*slot[V]

	defer func() {
		for _, sl := range produced {
			sl.model.GCOutput(sl.output)
			sl.output = nil
		}
		for _, sl := range activated {
			sl.input = nil
			sl.imminent = false
		}
		if err != nil {
			s.failure = err
		}
	}()

	for _, sl := range imminent {
		sl.imminent = true
		activated = append(activated, sl)
	}

	logrus.Debugf("[t=%g] %d imminent model(s)", float64(t), len(imminent))

	// Output and routing
	for _, sl := range imminent {
		sl.output = NewBag[V]()
		produced = append(produced, sl)
		if err := sl.model.OutputFunc(sl.output); err != nil {
			return err
		}
		for pv := range sl.output.All() {
			for _, l := range s.listeners {
				l.OutputEvent(sl.model, pv, t)
			}
			if s.network == nil {
				continue
			}
			for _, ep := range s.network.Route(sl.model, pv.Port) {
				dst, ok := s.slots[ep.Model]
				if !ok {
					return &InvariantError{Reason: ReasonUnknownModel, Clock: t, Detail: fmt.Sprintf("coupled receiver %T was not a component when the simulator was created", ep.Model)}
				}
				if dst.input == nil {
					dst.input = NewBag[V]()
					if !dst.imminent {
						activated = append(activated, dst)
					}
				}
				dst.input.Insert(PortValue[V]{Port: ep.Port, Value: pv.Value})
			}
		}
	}

	// State transitions, in registration order
	slices.SortFunc(activated, func(a, b *slot[V]) int { return a.order - b.order })
	for _, sl := range activated {
		switch {
		case sl.imminent && sl.input != nil:
			err = sl.model.DeltaConf(sl.input)
		case sl.imminent:
			err = sl.model.DeltaInt()
		default:
			err = sl.model.DeltaExt(t-sl.tL, sl.input)
		}
		if err != nil {
			return err
		}
		ta, taErr := sl.model.Ta()
		if taErr != nil {
			return taErr
		}
		if taErr = checkTimeAdvance(ta, t); taErr != nil {
			return taErr
		}
		sl.tL = t
		sl.tN = t + ta
		s.sched.update(sl)
		for _, l := range s.listeners {
			l.StateChange(sl.model, t)
		}
	}
	return nil
}

// ExecUntil executes events while the next event time is at most tEnd.
func (s *Simulator[V]) ExecUntil(tEnd Time) error {
	for t := s.NextEventTime(); t <= tEnd && !t.IsInfinite(); t = s.NextEventTime() {
		if err := s.ExecNextEvent(); err != nil {
			return err
		}
	}
	return nil
}

func checkTimeAdvance(ta, clock Time) error {
	if math.IsNaN(float64(ta)) || ta < 0 {
		return &InvariantError{Reason: ReasonNegativeTimeAdvance, Clock: clock, Detail: fmt.Sprintf("ta() returned %g", float64(ta))}
	}
	return nil
}
