package txkit

import (
	"context"
	"errors"
	"time"

	"github.com/smartcontractkit/txkit/sdk"
	"github.com/smartcontractkit/txkit/types"
)

const (
	pathReceipt = "receipt"
	pathBatch   = "batch"
)

// ErrStreamsClosed is reported when every status stream ended without a terminal signal.
var ErrStreamsClosed = errors.New("status streams closed before confirmation")

// Sources are the status streams reconciled for one submission. Either stream may be nil.
type Sources struct {
	Receipts <-chan types.ReceiptEvent
	Batches  <-chan types.BatchEvent
	// BatchID identifies the batch tracked by Batches, for error reporting.
	BatchID string
}

// Reconciler merges the receipt and batch status streams of a submission into lifecycle status
// transitions.
type Reconciler struct {
	receipts sdk.ReceiptWatcher
	batches  sdk.BatchWatcher
	timeout  time.Duration
	lggr     sdk.Logger
}

// NewReconciler creates a new Reconciler. A non positive timeout disables the confirmation
// deadline.
func NewReconciler(receipts sdk.ReceiptWatcher, batches sdk.BatchWatcher, timeout time.Duration, lggr sdk.Logger) *Reconciler {
	return &Reconciler{
		receipts: receipts,
		batches:  batches,
		timeout:  timeout,
		lggr:     lggr,
	}
}

// Run opens the stream matching the handle and blocks until one terminal status has been applied
// or ctx ends.
func (r *Reconciler) Run(ctx context.Context, handle types.SubmissionHandle, apply func(types.LifecycleStatus)) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// Cancels the streams once a terminal status is applied.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	src := Sources{BatchID: handle.BatchID}
	if handle.HasTransactionHash() {
		ch, err := r.receipts.WatchReceipt(ctx, handle.TransactionHash)
		if err != nil {
			return r.fail(apply, NewUnderlyingRPCError(err))
		}
		src.Receipts = ch
	}
	if handle.IsBatch() {
		ch, err := r.batches.WatchBatchStatus(ctx, handle.BatchID)
		if err != nil {
			return r.fail(apply, NewUnderlyingRPCError(err))
		}
		src.Batches = ch
	}

	return r.Watch(ctx, src, apply)
}

// Watch consumes both streams until the first terminal signal, applies the matching status and
// returns. Only one terminal status is ever applied. When a terminal receipt and a terminal batch
// status are available together the receipt wins.
//
// The returned error is nil on success, the applied failure otherwise, or the context error if
// ctx was cancelled, in which case nothing is applied.
func (r *Reconciler) Watch(ctx context.Context, src Sources, apply func(types.LifecycleStatus)) error {
	start := time.Now()
	receipts, batches := src.Receipts, src.Batches

	for receipts != nil || batches != nil {
		select {
		case <-ctx.Done():
			return r.done(ctx, apply)

		case ev, ok := <-receipts:
			if !ok {
				receipts = nil
				continue
			}
			if !ev.IsTerminal() {
				continue
			}

			return r.applyReceipt(ctx, ev, apply, start)

		case ev, ok := <-batches:
			if !ok {
				batches = nil
				continue
			}
			if !ev.IsTerminal() {
				continue
			}
			if rev, found := pendingTerminalReceipt(receipts); found {
				return r.applyReceipt(ctx, rev, apply, start)
			}

			return r.applyBatch(ctx, ev, src.BatchID, apply, start)
		}
	}

	if ctx.Err() != nil {
		return r.done(ctx, apply)
	}

	return r.fail(apply, NewUnderlyingRPCError(ErrStreamsClosed))
}

func (r *Reconciler) applyReceipt(ctx context.Context, ev types.ReceiptEvent, apply func(types.LifecycleStatus), start time.Time) error {
	if ev.Err != nil {
		if ctx.Err() != nil {
			return r.done(ctx, apply)
		}

		return r.fail(apply, NewUnderlyingRPCError(ev.Err))
	}

	confirmationSeconds.WithLabelValues(pathReceipt).Observe(time.Since(start).Seconds())
	if !ev.Receipt.Succeeded() {
		return r.fail(apply, NewTransactionRevertedError(ev.Receipt.TxHash))
	}

	r.lggr.Infof("transaction %s confirmed in block %d", ev.Receipt.TxHash.Hex(), ev.Receipt.BlockNumber)
	apply(types.NewSuccessStatus(*ev.Receipt))

	return nil
}

func (r *Reconciler) applyBatch(ctx context.Context, ev types.BatchEvent, batchID string, apply func(types.LifecycleStatus), start time.Time) error {
	if ev.Err != nil {
		if ctx.Err() != nil {
			return r.done(ctx, apply)
		}

		return r.fail(apply, NewUnderlyingRPCError(ev.Err))
	}

	confirmationSeconds.WithLabelValues(pathBatch).Observe(time.Since(start).Seconds())
	if ev.State == types.BatchFailure {
		return r.fail(apply, NewBatchFailedError(batchID))
	}

	r.lggr.Infof("batch %s confirmed with %d receipts", batchID, len(ev.Receipts))
	apply(types.NewSuccessStatus(ev.Receipts...))

	return nil
}

// done handles the end of ctx. A deadline is reported as a confirmation timeout, a cancellation
// is silent.
func (r *Reconciler) done(ctx context.Context, apply func(types.LifecycleStatus)) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return r.fail(apply, NewConfirmationTimeoutError(r.timeout))
	}

	return ctx.Err()
}

func (r *Reconciler) fail(apply func(types.LifecycleStatus), err error) error {
	r.lggr.Warnf("confirmation failed: %v", err)
	apply(types.NewErrorStatus(toErrorPayload(err, nil)))

	return err
}

// pendingTerminalReceipt reads the receipt events already buffered in ch without blocking and
// returns the first terminal one.
func pendingTerminalReceipt(ch <-chan types.ReceiptEvent) (types.ReceiptEvent, bool) {
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return types.ReceiptEvent{}, false
			}
			if ev.IsTerminal() {
				return ev, true
			}
		default:
			return types.ReceiptEvent{}, false
		}
	}
}
