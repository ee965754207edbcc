package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Receipt is the confirmation record of a transaction included in a block.
type Receipt struct {
	TxHash      common.Hash `json:"transactionHash"`
	BlockHash   common.Hash `json:"blockHash"`
	BlockNumber uint64      `json:"blockNumber"`
	Status      uint64      `json:"status"`
	GasUsed     uint64      `json:"gasUsed"`
}

// NewReceipt converts a geth receipt.
func NewReceipt(r *gethtypes.Receipt) Receipt {
	rec := Receipt{
		TxHash:    r.TxHash,
		BlockHash: r.BlockHash,
		Status:    r.Status,
		GasUsed:   r.GasUsed,
	}
	if r.BlockNumber != nil {
		rec.BlockNumber = r.BlockNumber.Uint64()
	}

	return rec
}

// Succeeded reports whether the transaction executed without reverting.
func (r Receipt) Succeeded() bool {
	return r.Status == gethtypes.ReceiptStatusSuccessful
}

// ReceiptEvent is one element of a receipt stream. An event with neither a receipt nor an error
// reports that the transaction is still pending.
type ReceiptEvent struct {
	Receipt *Receipt
	Err     error
}

// IsTerminal reports whether the event ends the stream.
func (e ReceiptEvent) IsTerminal() bool {
	return e.Receipt != nil || e.Err != nil
}

// BatchState is the aggregate execution state of a batch.
type BatchState string

const (
	BatchPending BatchState = "pending"
	BatchSuccess BatchState = "success"
	BatchFailure BatchState = "failure"
)

// BatchEvent is one element of a batch status stream.
type BatchEvent struct {
	State    BatchState
	Receipts []Receipt
	Err      error
}

// IsTerminal reports whether the event ends the stream.
func (e BatchEvent) IsTerminal() bool {
	return e.Err != nil || e.State == BatchSuccess || e.State == BatchFailure
}
