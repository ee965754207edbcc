package txkit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/txkit/sdk"
	"github.com/smartcontractkit/txkit/types"
)

// CallBuilder assembles the calls of an operation, for example from a fetched quote.
type CallBuilder func(ctx context.Context) ([]types.Call, error)

// Handle is the read and submit surface of one operation, passed explicitly to presentation
// code.
type Handle interface {
	// Status returns the current lifecycle status.
	Status() types.LifecycleStatus
	// Context returns a snapshot of the operation.
	Context(ctx context.Context) OperationContext
	// Submit starts a submission of the current calls. It never returns an error: failures are
	// reported as an error status.
	Submit(ctx context.Context)
	// Subscribe registers an observer of status transitions.
	Subscribe(fn func(types.LifecycleStatus)) (unsubscribe func())
}

var _ Handle = (*Provider)(nil)

// OperationContext is a read-only snapshot of an operation.
type OperationContext struct {
	ID         string
	Account    common.Address
	HasAccount bool
	Chain      types.ChainSelector
	Calls      []types.Call
	Handle     *types.SubmissionHandle
	Status     types.LifecycleStatus
	// ChargeID is set when the calls were built for a charge.
	ChargeID string
	// IsLoading is set while a submission is being issued.
	IsLoading bool

	// Disabled and Label carry the host options of the action trigger.
	Disabled bool
	Label    string
}

// Receipt returns the last receipt of a successful operation.
func (c OperationContext) Receipt() (types.Receipt, bool) {
	return c.Status.Receipt()
}

// HasReceipt reports whether the operation succeeded with a receipt.
func (c OperationContext) HasReceipt() bool {
	_, ok := c.Receipt()
	return ok
}

// TransactionHash returns the tracked transaction hash, or the hash of the receipt if only that
// is known.
func (c OperationContext) TransactionHash() common.Hash {
	if c.Handle != nil && c.Handle.HasTransactionHash() {
		return c.Handle.TransactionHash
	}
	if r, ok := c.Receipt(); ok {
		return r.TxHash
	}

	return common.Hash{}
}

// BatchID returns the tracked batch identifier.
func (c OperationContext) BatchID() string {
	if c.Handle == nil {
		return ""
	}

	return c.Handle.BatchID
}

// HasTransactionID reports whether the operation is tracked through a batch identifier.
func (c OperationContext) HasTransactionID() bool {
	return c.BatchID() != ""
}

// ErrorMessage returns the message of an error status.
func (c OperationContext) ErrorMessage() string {
	if c.Status.Name != types.StatusError || c.Status.Data.Error == nil {
		return ""
	}

	return c.Status.Data.Error.Message
}

// Provider owns the lifecycle of one operation: it holds the calls, submits them, tracks their
// confirmation and reports every status change to the host.
type Provider struct {
	id   string
	cfg  Config
	opts Options
	lggr sdk.Logger

	store      *Store
	submitter  *Submitter
	reconciler *Reconciler

	ctx     context.Context
	cancel  context.CancelFunc
	workers errgroup.Group

	submitting atomic.Bool
	closed     atomic.Bool

	mu       sync.RWMutex
	calls    []types.Call
	handle   *types.SubmissionHandle
	chargeID string
}

// NewProvider mounts an operation. The provider lives until ctx is done or Close is called.
func NewProvider(ctx context.Context, cfg Config, opts Options) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lggr := opts.Logger
	if lggr == nil {
		lggr = sdk.LoggerFrom(ctx)
	}

	p := &Provider{
		id:   uuid.NewString(),
		cfg:  cfg,
		opts: opts,
		lggr: lggr,
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.store = NewStore(lggr, p.notify)
	p.submitter = NewSubmitter(cfg.Capabilities, cfg.Sender, lggr)
	p.reconciler = NewReconciler(cfg.Receipts, cfg.Batches, cfg.confirmationTimeout(), lggr)

	if len(cfg.Calls) > 0 {
		p.calls = types.CloneCalls(cfg.Calls)
		p.store.Transition(types.NewStatus(types.StatusTransactionIdle))
	}

	return p, nil
}

// ID returns the operation identifier.
func (p *Provider) ID() string {
	return p.id
}

// Handle returns the surface handed to presentation code.
func (p *Provider) Handle() Handle {
	return p
}

// Status returns the current lifecycle status.
func (p *Provider) Status() types.LifecycleStatus {
	return p.store.Status()
}

// Subscribe registers an observer of status transitions.
func (p *Provider) Subscribe(fn func(types.LifecycleStatus)) func() {
	return p.store.Subscribe(fn)
}

// Context returns a snapshot of the operation.
func (p *Provider) Context(ctx context.Context) OperationContext {
	oc := OperationContext{
		ID:        p.id,
		Chain:     p.cfg.Chain,
		Status:    p.store.Status(),
		IsLoading: p.submitting.Load(),
		Disabled:  p.opts.Disabled,
		Label:     p.opts.Label(),
	}
	oc.Account, oc.HasAccount = p.cfg.Accounts.ActiveAccount(ctx)

	p.mu.RLock()
	defer p.mu.RUnlock()

	oc.Calls = types.CloneCalls(p.calls)
	oc.ChargeID = p.chargeID
	if p.handle != nil {
		h := *p.handle
		oc.Handle = &h
	}

	return oc
}

// SetCalls replaces the calls of the operation and makes it ready for submission.
func (p *Provider) SetCalls(calls []types.Call) {
	p.mu.Lock()
	p.calls = types.CloneCalls(calls)
	p.mu.Unlock()

	p.transitionIfAllowed(types.NewStatus(types.StatusTransactionIdle))
}

// BuildCalls assembles the calls with build and makes the operation ready for submission. A
// failure is reported as an error status. It reports whether the calls were set.
func (p *Provider) BuildCalls(ctx context.Context, build CallBuilder) bool {
	if p.closed.Load() {
		return false
	}
	if name := p.store.Status().Name; name.IsInFlight() || p.submitting.Load() {
		p.lggr.Warnf("operation %s: not rebuilding calls while a submission is in flight", p.id)
		return false
	}

	// The previous calls are dropped so they cannot be submitted while the new ones are built.
	p.mu.Lock()
	p.calls = nil
	p.mu.Unlock()
	p.transitionIfAllowed(types.NewStatus(types.StatusBuildingCalls))

	calls, err := build(ctx)
	if err != nil {
		p.fail(NewBuildCallsError(err), nil)
		return false
	}
	for i, call := range calls {
		if err := call.Validate(); err != nil {
			p.fail(NewInvalidCallError(i, err), calls)
			return false
		}
	}

	p.SetCalls(calls)

	return true
}

// Submit submits the current calls on behalf of the active account. A submission issued while
// another one is in flight is ignored.
func (p *Provider) Submit(ctx context.Context) {
	if p.closed.Load() {
		p.lggr.Debugf("operation %s: ignoring submit after close", p.id)
		return
	}
	if !p.submitting.CompareAndSwap(false, true) {
		p.lggr.Infof("operation %s: submission already being issued", p.id)
		return
	}
	defer p.submitting.Store(false)

	status := p.store.Status()
	if status.Name == types.StatusBuildingCalls {
		p.lggr.Infof("operation %s: ignoring submit while calls are being built", p.id)
		return
	}
	if status.Name.IsInFlight() {
		p.lggr.Infof("operation %s: ignoring submit while %s", p.id, status.Name)
		return
	}
	if status.Name.IsTerminal() {
		p.mu.Lock()
		p.handle = nil
		p.mu.Unlock()
		p.store.Transition(types.NewStatus(types.StatusTransactionIdle))
	}

	p.mu.RLock()
	calls := types.CloneCalls(p.calls)
	p.mu.RUnlock()

	var account *common.Address
	if addr, ok := p.cfg.Accounts.ActiveAccount(ctx); ok {
		account = &addr
	}

	handle, err := p.submitter.Submit(ctx, account, calls)
	if err != nil {
		p.fail(err, calls)
		return
	}

	p.mu.Lock()
	p.handle = &handle
	p.mu.Unlock()

	p.store.Transition(types.NewStatus(types.StatusTransactionPending))
	if !handle.IsBatch() {
		p.store.Transition(types.NewLegacyExecutedStatus(handle.TransactionHashes))
	}

	p.workers.Go(func() error {
		err := p.reconciler.Run(p.ctx, handle, p.confirmationSink(handle, calls))
		if err != nil && !errors.Is(err, context.Canceled) {
			p.lggr.Debugf("operation %s: confirmation ended with %v", p.id, err)
		}

		return nil
	})
}

// Close unmounts the operation. Confirmation tracking stops and no further status is reported.
// Transactions already sent are not affected.
func (p *Provider) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	p.cancel()
	p.store.Close()

	return p.workers.Wait()
}

// confirmationSink completes error statuses produced by the reconciler with what was submitted.
func (p *Provider) confirmationSink(handle types.SubmissionHandle, calls []types.Call) func(types.LifecycleStatus) {
	return func(s types.LifecycleStatus) {
		if s.Name == types.StatusError && s.Data.Error != nil {
			se := *s.Data.Error
			se.Calls = calls
			if len(se.TransactionHashes) == 0 {
				se.TransactionHashes = append([]common.Hash(nil), handle.TransactionHashes...)
			}
			s = types.NewErrorStatus(&se)
		}

		p.store.Transition(s)
	}
}

func (p *Provider) fail(err error, calls []types.Call) {
	p.lggr.Warnf("operation %s failed: %v", p.id, err)
	p.store.Transition(types.NewErrorStatus(toErrorPayload(err, calls)))
}

func (p *Provider) transitionIfAllowed(next types.LifecycleStatus) {
	if types.CanTransition(p.store.Status().Name, next.Name) {
		p.store.Transition(next)
	}
}

// notify runs after the observers of every applied transition and fans the status out to the
// host callbacks.
func (p *Provider) notify(s types.LifecycleStatus) {
	if p.opts.OnStatus != nil {
		p.opts.OnStatus(s)
	}

	switch s.Name {
	case types.StatusSuccess:
		if p.opts.OnSuccess != nil {
			p.opts.OnSuccess(s.Data.Receipts)
		}
	case types.StatusError:
		if p.opts.OnError != nil && s.Data.Error != nil {
			p.opts.OnError(s.Data.Error)
		}
	default:
	}
}
