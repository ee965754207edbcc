package txkit

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcontractkit/txkit/types"
)

func newTestStore(t *testing.T, onStatus func(types.LifecycleStatus)) *Store {
	t.Helper()

	return NewStore(zap.NewNop().Sugar(), onStatus)
}

func TestStore_Transition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps []types.StatusName
		want  []types.StatusName
	}{
		{
			name:  "forward progression",
			steps: []types.StatusName{types.StatusTransactionIdle, types.StatusTransactionPending, types.StatusSuccess},
			want:  []types.StatusName{types.StatusTransactionIdle, types.StatusTransactionPending, types.StatusSuccess},
		},
		{
			name:  "backwards transition is dropped",
			steps: []types.StatusName{types.StatusTransactionPending, types.StatusTransactionIdle, types.StatusSuccess},
			want:  []types.StatusName{types.StatusTransactionPending, types.StatusSuccess},
		},
		{
			name:  "same status is dropped",
			steps: []types.StatusName{types.StatusTransactionIdle, types.StatusTransactionIdle},
			want:  []types.StatusName{types.StatusTransactionIdle},
		},
		{
			name:  "second terminal is dropped",
			steps: []types.StatusName{types.StatusTransactionPending, types.StatusSuccess, types.StatusError},
			want:  []types.StatusName{types.StatusTransactionPending, types.StatusSuccess},
		},
		{
			name:  "reset after error",
			steps: []types.StatusName{types.StatusError, types.StatusTransactionIdle, types.StatusTransactionPending},
			want:  []types.StatusName{types.StatusError, types.StatusTransactionIdle, types.StatusTransactionPending},
		},
		{
			name:  "never back to init",
			steps: []types.StatusName{types.StatusSuccess, types.StatusInit},
			want:  []types.StatusName{types.StatusSuccess},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []types.StatusName
			s := newTestStore(t, nil)
			s.Subscribe(func(st types.LifecycleStatus) { got = append(got, st.Name) })

			for _, name := range tt.steps {
				s.Transition(types.NewStatus(name))
			}

			assert.Empty(t, cmp.Diff(tt.want, got))
			assert.Equal(t, tt.want[len(tt.want)-1], s.Status().Name)
		})
	}
}

func TestStore_ObserversBeforeCallback(t *testing.T) {
	t.Parallel()

	var order []string
	s := newTestStore(t, func(types.LifecycleStatus) { order = append(order, "callback") })
	s.Subscribe(func(types.LifecycleStatus) { order = append(order, "first") })
	s.Subscribe(func(types.LifecycleStatus) { order = append(order, "second") })

	s.Transition(types.NewStatus(types.StatusTransactionIdle))

	assert.Equal(t, []string{"first", "second", "callback"}, order)
}

func TestStore_ReentrantTransitionIsDeferred(t *testing.T) {
	t.Parallel()

	var events []string
	s := newTestStore(t, nil)

	s.Subscribe(func(st types.LifecycleStatus) {
		events = append(events, "a:"+string(st.Name))
		if st.Name == types.StatusTransactionPending {
			s.Transition(types.NewSuccessStatus())
			// The nested transition has not been applied yet.
			assert.Equal(t, types.StatusTransactionPending, s.Status().Name)
		}
	})
	s.Subscribe(func(st types.LifecycleStatus) {
		events = append(events, "b:"+string(st.Name))
	})

	s.Transition(types.NewStatus(types.StatusTransactionPending))

	want := []string{
		"a:transactionPending",
		"b:transactionPending",
		"a:success",
		"b:success",
	}
	assert.Empty(t, cmp.Diff(want, events))
	assert.Equal(t, types.StatusSuccess, s.Status().Name)
}

func TestStore_Unsubscribe(t *testing.T) {
	t.Parallel()

	calls := 0
	s := newTestStore(t, nil)
	unsubscribe := s.Subscribe(func(types.LifecycleStatus) { calls++ })

	s.Transition(types.NewStatus(types.StatusTransactionIdle))
	unsubscribe()
	unsubscribe()
	s.Transition(types.NewStatus(types.StatusTransactionPending))

	assert.Equal(t, 1, calls)
	assert.Equal(t, types.StatusTransactionPending, s.Status().Name)
}

func TestStore_Close(t *testing.T) {
	t.Parallel()

	calls := 0
	s := newTestStore(t, func(types.LifecycleStatus) { calls++ })
	s.Subscribe(func(types.LifecycleStatus) { calls++ })

	s.Close()
	s.Transition(types.NewStatus(types.StatusTransactionIdle))

	assert.Zero(t, calls)
	assert.Equal(t, types.StatusInit, s.Status().Name)
}

func TestStore_CloseDuringDelivery(t *testing.T) {
	t.Parallel()

	callbacks := 0
	s := newTestStore(t, func(types.LifecycleStatus) { callbacks++ })

	s.Subscribe(func(types.LifecycleStatus) { s.Close() })

	s.Transition(types.NewStatus(types.StatusTransactionIdle))

	assert.Zero(t, callbacks)
	assert.Equal(t, types.StatusTransactionIdle, s.Status().Name)
}

func TestStore_ConcurrentTransitions(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		terminal int
	)
	s := newTestStore(t, func(st types.LifecycleStatus) {
		if st.Name.IsTerminal() {
			mu.Lock()
			terminal++
			mu.Unlock()
		}
	})
	s.Transition(types.NewStatus(types.StatusTransactionPending))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				s.Transition(types.NewSuccessStatus())
			} else {
				s.Transition(types.NewErrorStatus(&types.ErrorPayload{Code: types.ErrorCodeUnknown}))
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, terminal)
	assert.True(t, s.Status().Name.IsTerminal())
}
