package txkit

import (
	"sync"

	"github.com/smartcontractkit/txkit/sdk"
	"github.com/smartcontractkit/txkit/types"
)

type observer struct {
	id int
	fn func(types.LifecycleStatus)
}

// Store holds the lifecycle status of one operation and notifies observers of every applied
// transition.
//
// Transitions are applied one at a time in the order they reach the store. A transition issued
// while notifications are being delivered, whether from an observer or from another goroutine,
// is queued and applied once the current delivery has completed.
type Store struct {
	lggr     sdk.Logger
	onStatus func(types.LifecycleStatus)

	mu         sync.Mutex
	current    types.LifecycleStatus
	queue      []types.LifecycleStatus
	delivering bool
	closed     bool
	observers  []observer
	nextID     int
}

// NewStore creates a store in the init status. onStatus may be nil.
func NewStore(lggr sdk.Logger, onStatus func(types.LifecycleStatus)) *Store {
	return &Store{
		lggr:     lggr,
		onStatus: onStatus,
		current:  types.NewStatus(types.StatusInit),
	}
}

// Status returns the current status.
func (s *Store) Status() types.LifecycleStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Subscribe registers an observer and returns a function removing it.
func (s *Store) Subscribe(fn func(types.LifecycleStatus)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Transition moves the store to next. Invalid transitions are logged and dropped, never
// returned as errors.
func (s *Store) Transition(next types.LifecycleStatus) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.lggr.Debugf("dropping transition to %s: store closed", next.Name)

		return
	}

	s.queue = append(s.queue, next)
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true

	for len(s.queue) > 0 && !s.closed {
		n := s.queue[0]
		s.queue = s.queue[1:]

		from := s.current.Name
		if !types.CanTransition(from, n.Name) {
			transitionsRejectedTotal.WithLabelValues(string(from), string(n.Name)).Inc()
			s.lggr.Warnf("rejecting lifecycle transition %s -> %s", from, n.Name)

			continue
		}

		s.current = n
		observers := append([]observer(nil), s.observers...)
		transitionsTotal.WithLabelValues(string(n.Name)).Inc()

		s.mu.Unlock()
		for _, o := range observers {
			if s.isClosed() {
				break
			}
			o.fn(n)
		}
		if s.onStatus != nil && !s.isClosed() {
			s.onStatus(n)
		}
		s.mu.Lock()
	}

	s.queue = nil
	s.delivering = false
	s.mu.Unlock()
}

func (s *Store) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Close stops every further notification. Queued transitions are discarded.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.observers = nil
}
