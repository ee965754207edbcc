package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidSubmissionHandle is returned when a handle carries both or neither identifier.
var ErrInvalidSubmissionHandle = errors.New("submission handle must carry exactly one of transaction hash or batch id")

// SubmissionHandle identifies submitted calls for tracking. Exactly one of TransactionHash and
// BatchID is set.
type SubmissionHandle struct {
	// TransactionHash is the hash of the last transaction of a sequential submission.
	TransactionHash common.Hash `json:"transactionHash,omitempty"`
	// TransactionHashes holds every hash sent by a sequential submission, in call order.
	TransactionHashes []common.Hash `json:"transactionHashes,omitempty"`
	// BatchID is the identifier returned by an atomic batch submission.
	BatchID string `json:"batchId,omitempty"`
}

// NewSingleHandle returns a handle tracking the last of the given transaction hashes.
func NewSingleHandle(hashes []common.Hash) SubmissionHandle {
	h := SubmissionHandle{TransactionHashes: append([]common.Hash(nil), hashes...)}
	if len(hashes) > 0 {
		h.TransactionHash = hashes[len(hashes)-1]
	}

	return h
}

// NewBatchHandle returns a handle tracking a batch.
func NewBatchHandle(batchID string) SubmissionHandle {
	return SubmissionHandle{BatchID: batchID}
}

// IsBatch reports whether the handle tracks a batch submission.
func (h SubmissionHandle) IsBatch() bool {
	return h.BatchID != ""
}

// HasTransactionHash reports whether the handle tracks a single transaction hash.
func (h SubmissionHandle) HasTransactionHash() bool {
	return h.TransactionHash != (common.Hash{})
}

// Validate checks that exactly one identifier is populated.
func (h SubmissionHandle) Validate() error {
	if h.IsBatch() == h.HasTransactionHash() {
		return ErrInvalidSubmissionHandle
	}

	return nil
}
