package txkit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcontractkit/txkit/internal/testutils/chaintest"
	"github.com/smartcontractkit/txkit/sdk/mocks"
	"github.com/smartcontractkit/txkit/types"
)

type providerMocks struct {
	accounts *mocks.AccountProvider
	caps     *mocks.CapabilityProvider
	sender   *mocks.Sender
	receipts *mocks.ReceiptWatcher
	batches  *mocks.BatchWatcher
}

func newProviderMocks(t *testing.T) *providerMocks {
	t.Helper()

	return &providerMocks{
		accounts: mocks.NewAccountProvider(t),
		caps:     mocks.NewCapabilityProvider(t),
		sender:   mocks.NewSender(t),
		receipts: mocks.NewReceiptWatcher(t),
		batches:  mocks.NewBatchWatcher(t),
	}
}

func (m *providerMocks) config(calls []types.Call) Config {
	return Config{
		Chain:        chaintest.Chain1Selector,
		Accounts:     m.accounts,
		Capabilities: m.caps,
		Sender:       m.sender,
		Receipts:     m.receipts,
		Batches:      m.batches,
		Calls:        calls,
	}
}

// statusLog records everything the host callbacks receive.
type statusLog struct {
	mu        sync.Mutex
	names     []types.StatusName
	successes [][]types.Receipt
	errs      []*types.ErrorPayload
	done      chan struct{}
	once      sync.Once
}

func newStatusLog() *statusLog {
	return &statusLog{done: make(chan struct{})}
}

func (l *statusLog) options() Options {
	return Options{
		Logger: zap.NewNop().Sugar(),
		OnStatus: func(s types.LifecycleStatus) {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.names = append(l.names, s.Name)
		},
		OnSuccess: func(r []types.Receipt) {
			l.mu.Lock()
			l.successes = append(l.successes, r)
			l.mu.Unlock()
			l.once.Do(func() { close(l.done) })
		},
		OnError: func(e *types.ErrorPayload) {
			l.mu.Lock()
			l.errs = append(l.errs, e)
			l.mu.Unlock()
			l.once.Do(func() { close(l.done) })
		},
	}
}

func (l *statusLog) wait(t *testing.T) {
	t.Helper()

	select {
	case <-l.done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no terminal status reported")
	}
}

func (l *statusLog) statusNames() []types.StatusName {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]types.StatusName(nil), l.names...)
}

func newTestProvider(t *testing.T, cfg Config, opts Options) *Provider {
	t.Helper()

	p, err := NewProvider(t.Context(), cfg, opts)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, p.Close()) })

	return p
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	t.Run("initial calls make the operation idle", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		log := newStatusLog()
		p := newTestProvider(t, m.config(testCalls), log.options())

		assert.Equal(t, types.StatusTransactionIdle, p.Status().Name)
		assert.Equal(t, []types.StatusName{types.StatusTransactionIdle}, log.statusNames())
		assert.NotEmpty(t, p.ID())
	})

	t.Run("no calls stays in init", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		p := newTestProvider(t, m.config(nil), Options{Logger: zap.NewNop().Sugar()})

		assert.Equal(t, types.StatusInit, p.Status().Name)
	})

	t.Run("failure: missing collaborator", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		cfg := m.config(testCalls)
		cfg.Sender = nil

		_, err := NewProvider(t.Context(), cfg, Options{})
		require.ErrorContains(t, err, "Config.Sender")
	})

	t.Run("failure: invalid initial call", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)

		_, err := NewProvider(t.Context(), m.config([]types.Call{{}}), Options{})

		var target *InvalidCallError
		require.ErrorAs(t, err, &target)
	})
}

func TestProvider_Submit_Sequential(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
	m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(false).Once()
	for i, call := range testCalls {
		m.sender.EXPECT().SendSingle(mock.Anything, testAccount, call).Return(testHashes[i], nil).Once()
	}

	receipts := make(chan types.ReceiptEvent, 2)
	receipts <- types.ReceiptEvent{}
	receipts <- types.ReceiptEvent{Receipt: successReceipt(testHashes[2])}
	m.receipts.EXPECT().WatchReceipt(mock.Anything, testHashes[2]).Return(receipts, nil).Once()

	p := newTestProvider(t, m.config(testCalls), log.options())
	p.Submit(t.Context())
	log.wait(t)

	want := []types.StatusName{
		types.StatusTransactionIdle,
		types.StatusTransactionPending,
		types.StatusTransactionLegacyExecuted,
		types.StatusSuccess,
	}
	assert.Empty(t, cmp.Diff(want, log.statusNames()))
	require.Len(t, log.successes, 1)
	assert.Equal(t, testHashes[2], log.successes[0][0].TxHash)
	assert.Empty(t, log.errs)

	oc := p.Context(t.Context())
	assert.True(t, oc.HasReceipt())
	assert.Equal(t, testHashes[2], oc.TransactionHash())
	assert.False(t, oc.HasTransactionID())
	assert.Empty(t, oc.ErrorMessage())
	assert.Equal(t, testHashes, oc.Handle.TransactionHashes)
}

func TestProvider_Submit_Batch(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
	m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(true).Once()
	m.sender.EXPECT().SendBatch(mock.Anything, testAccount, testCalls).Return("0xbatch", nil).Once()

	batches := make(chan types.BatchEvent, 1)
	batches <- types.BatchEvent{State: types.BatchSuccess, Receipts: []types.Receipt{*successReceipt(testHashes[0])}}
	m.batches.EXPECT().WatchBatchStatus(mock.Anything, "0xbatch").Return(batches, nil).Once()

	p := newTestProvider(t, m.config(testCalls), log.options())
	p.Submit(t.Context())
	log.wait(t)

	want := []types.StatusName{types.StatusTransactionIdle, types.StatusTransactionPending, types.StatusSuccess}
	assert.Empty(t, cmp.Diff(want, log.statusNames()))

	oc := p.Context(t.Context())
	assert.True(t, oc.HasTransactionID())
	assert.Equal(t, "0xbatch", oc.BatchID())
	assert.Equal(t, testHashes[0], oc.TransactionHash())
}

func TestProvider_Submit_MissingAccount(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(common.Address{}, false)

	p := newTestProvider(t, m.config(testCalls), log.options())
	p.Submit(t.Context())

	assert.Equal(t, types.StatusError, p.Status().Name)
	require.Len(t, log.errs, 1)
	assert.Equal(t, types.ErrorCodeMissingAccount, log.errs[0].Code)
	assert.Equal(t, testCalls, log.errs[0].Calls)
	assert.Equal(t, "no active account is bound", p.Context(t.Context()).ErrorMessage())
}

func TestProvider_Submit_EmptyCalls(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)

	p := newTestProvider(t, m.config(nil), log.options())
	p.Submit(t.Context())

	require.Len(t, log.errs, 1)
	assert.Equal(t, types.ErrorCodeEmptyCalls, log.errs[0].Code)
}

func TestProvider_Submit_PartialSequentialFailure(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
	m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(false).Once()
	m.sender.EXPECT().SendSingle(mock.Anything, testAccount, testCalls[0]).Return(testHashes[0], nil).Once()
	m.sender.EXPECT().SendSingle(mock.Anything, testAccount, testCalls[1]).
		Return(common.Hash{}, errors.New("replacement transaction underpriced")).Once()

	p := newTestProvider(t, m.config(testCalls), log.options())
	p.Submit(t.Context())

	want := []types.StatusName{types.StatusTransactionIdle, types.StatusError}
	assert.Empty(t, cmp.Diff(want, log.statusNames()))
	require.Len(t, log.errs, 1)
	assert.Equal(t, types.ErrorCodeUnderlyingRPC, log.errs[0].Code)
	assert.Equal(t, testHashes[:1], log.errs[0].TransactionHashes)
}

func TestProvider_Submit_IgnoredWhileInFlight(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
	m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(true).Once()
	m.sender.EXPECT().SendBatch(mock.Anything, testAccount, testCalls).Return("0xbatch", nil).Once()
	m.batches.EXPECT().WatchBatchStatus(mock.Anything, "0xbatch").Return(make(chan types.BatchEvent), nil).Once()

	p := newTestProvider(t, m.config(testCalls), log.options())
	p.Submit(t.Context())
	p.Submit(t.Context())
	p.Submit(t.Context())

	assert.Equal(t, types.StatusTransactionPending, p.Status().Name)
	want := []types.StatusName{types.StatusTransactionIdle, types.StatusTransactionPending}
	assert.Empty(t, cmp.Diff(want, log.statusNames()))
}

func TestProvider_Submit_ConcurrentIssuesOneSubmission(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	release := make(chan struct{})
	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
	m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(true).Once()
	m.sender.EXPECT().SendBatch(mock.Anything, testAccount, testCalls).
		RunAndReturn(func(context.Context, common.Address, []types.Call) (string, error) {
			<-release
			return "0xbatch", nil
		}).Once()
	m.batches.EXPECT().WatchBatchStatus(mock.Anything, "0xbatch").Return(make(chan types.BatchEvent), nil).Once()

	p := newTestProvider(t, m.config(testCalls), log.options())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Submit(t.Context())
	}()

	require.Eventually(t, func() bool { return p.Context(t.Context()).IsLoading }, time.Second, time.Millisecond)
	p.Submit(t.Context())
	close(release)
	wg.Wait()

	assert.Equal(t, types.StatusTransactionPending, p.Status().Name)
	assert.False(t, p.Context(t.Context()).IsLoading)
}

func TestProvider_Submit_ResetsAfterError(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
	m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(true).Twice()
	m.sender.EXPECT().SendBatch(mock.Anything, testAccount, testCalls).Return("", errors.New("timeout")).Once()
	m.sender.EXPECT().SendBatch(mock.Anything, testAccount, testCalls).Return("0xbatch", nil).Once()

	batches := make(chan types.BatchEvent, 1)
	batches <- types.BatchEvent{State: types.BatchFailure}
	m.batches.EXPECT().WatchBatchStatus(mock.Anything, "0xbatch").Return(batches, nil).Once()

	p := newTestProvider(t, m.config(testCalls), log.options())
	p.Submit(t.Context())
	require.Equal(t, types.StatusError, p.Status().Name)

	p.Submit(t.Context())
	require.Eventually(t, func() bool {
		log.mu.Lock()
		defer log.mu.Unlock()
		return len(log.errs) == 2
	}, 5*time.Second, time.Millisecond)

	want := []types.StatusName{
		types.StatusTransactionIdle,
		types.StatusError,
		types.StatusTransactionIdle,
		types.StatusTransactionPending,
		types.StatusError,
	}
	assert.Empty(t, cmp.Diff(want, log.statusNames()))

	log.mu.Lock()
	defer log.mu.Unlock()
	assert.Equal(t, types.ErrorCodeBatchFailed, log.errs[1].Code)
	assert.Equal(t, testCalls, log.errs[1].Calls)
}

func TestProvider_Close(t *testing.T) {
	t.Parallel()

	m := newProviderMocks(t)
	log := newStatusLog()

	m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
	m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(true).Once()
	m.sender.EXPECT().SendBatch(mock.Anything, testAccount, testCalls).Return("0xbatch", nil).Once()

	batches := make(chan types.BatchEvent)
	m.batches.EXPECT().WatchBatchStatus(mock.Anything, "0xbatch").Return(batches, nil).Once()

	p, err := NewProvider(t.Context(), m.config(testCalls), log.options())
	require.NoError(t, err)

	p.Submit(t.Context())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	// Nothing is reported after unmount.
	p.SetCalls(testCalls)
	p.Submit(t.Context())

	want := []types.StatusName{types.StatusTransactionIdle, types.StatusTransactionPending}
	assert.Empty(t, cmp.Diff(want, log.statusNames()))
}

func TestProvider_BuildCalls(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true).Maybe()
		log := newStatusLog()
		p := newTestProvider(t, m.config(nil), log.options())

		ok := p.BuildCalls(t.Context(), func(context.Context) ([]types.Call, error) {
			return testCalls, nil
		})

		require.True(t, ok)
		want := []types.StatusName{types.StatusBuildingCalls, types.StatusTransactionIdle}
		assert.Empty(t, cmp.Diff(want, log.statusNames()))
		assert.Equal(t, testCalls, p.Context(t.Context()).Calls)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		log := newStatusLog()
		p := newTestProvider(t, m.config(nil), log.options())

		ok := p.BuildCalls(t.Context(), func(context.Context) ([]types.Call, error) {
			return nil, errors.New("quote unavailable")
		})

		require.False(t, ok)
		want := []types.StatusName{types.StatusBuildingCalls, types.StatusError}
		assert.Empty(t, cmp.Diff(want, log.statusNames()))
		require.Len(t, log.errs, 1)
		assert.Equal(t, types.ErrorCodeBuildCalls, log.errs[0].Code)
	})

	t.Run("rebuild from idle", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true).Maybe()
		log := newStatusLog()
		p := newTestProvider(t, m.config(testCalls), log.options())

		ok := p.BuildCalls(t.Context(), func(ctx context.Context) ([]types.Call, error) {
			assert.Equal(t, types.StatusBuildingCalls, p.Status().Name)
			assert.Empty(t, p.Context(ctx).Calls)
			p.Submit(ctx)

			return testCalls[:1], nil
		})

		require.True(t, ok)
		want := []types.StatusName{
			types.StatusTransactionIdle,
			types.StatusBuildingCalls,
			types.StatusTransactionIdle,
		}
		assert.Empty(t, cmp.Diff(want, log.statusNames()))
		assert.Equal(t, testCalls[:1], p.Context(t.Context()).Calls)
	})

	t.Run("rebuild after success", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		log := newStatusLog()
		p := newTestProvider(t, m.config(nil), log.options())
		p.store.Transition(types.NewStatus(types.StatusTransactionPending))
		p.store.Transition(types.NewSuccessStatus(*successReceipt(testHashes[0])))

		ok := p.BuildCalls(t.Context(), func(context.Context) ([]types.Call, error) {
			return testCalls[:1], nil
		})

		require.True(t, ok)
		assert.Equal(t, types.StatusTransactionIdle, p.Status().Name)
	})
}

func TestProvider_Charge(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		log := newStatusLog()

		m.accounts.EXPECT().ActiveAccount(mock.Anything).Return(testAccount, true)
		m.caps.EXPECT().SupportsAtomicBatch(mock.Anything, testAccount).Return(true).Once()
		m.sender.EXPECT().SendBatch(mock.Anything, testAccount, testCalls[:1]).Return("0xbatch", nil).Once()

		batches := make(chan types.BatchEvent, 1)
		batches <- types.BatchEvent{State: types.BatchSuccess, Receipts: []types.Receipt{*successReceipt(testHashes[0])}}
		m.batches.EXPECT().WatchBatchStatus(mock.Anything, "0xbatch").Return(batches, nil).Once()

		p := newTestProvider(t, m.config(nil), log.options())

		id := p.Charge(t.Context(),
			func(context.Context) (string, error) { return "charge-1", nil },
			func(_ context.Context, chargeID string) ([]types.Call, error) {
				assert.Equal(t, "charge-1", chargeID)
				return testCalls[:1], nil
			},
		)
		log.wait(t)

		assert.Equal(t, "charge-1", id)
		assert.Equal(t, "charge-1", p.Context(t.Context()).ChargeID)
		assert.Equal(t, types.StatusSuccess, p.Status().Name)
	})

	t.Run("empty charge id", func(t *testing.T) {
		t.Parallel()

		m := newProviderMocks(t)
		log := newStatusLog()
		p := newTestProvider(t, m.config(nil), log.options())

		id := p.Charge(t.Context(),
			func(context.Context) (string, error) { return "", nil },
			func(context.Context, string) ([]types.Call, error) {
				require.FailNow(t, "resolver must not be called")
				return nil, nil
			},
		)

		assert.Empty(t, id)
		require.Len(t, log.errs, 1)
		assert.Equal(t, types.ErrorCodeBuildCalls, log.errs[0].Code)
		require.ErrorIs(t, log.errs[0], ErrEmptyChargeID)
	})
}
