package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/txkit/types"
)

// ReceiptWatcher tracks a single transaction until it is included in a block.
//
// The returned channel emits pending events, then at most one terminal event (a receipt or an
// error), and is closed when the watch ends or ctx is cancelled.
type ReceiptWatcher interface {
	WatchReceipt(ctx context.Context, hash common.Hash) (<-chan types.ReceiptEvent, error)
}

// BatchWatcher tracks the aggregate execution status of a batch.
//
// The channel contract is the same as ReceiptWatcher's.
type BatchWatcher interface {
	WatchBatchStatus(ctx context.Context, batchID string) (<-chan types.BatchEvent, error)
}
