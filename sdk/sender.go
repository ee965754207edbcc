package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/txkit/types"
)

// Sender submits calls to a chain.
//
// This must be implemented by any chain.
type Sender interface {
	// SendSingle submits one call as an individual transaction and returns its hash.
	SendSingle(ctx context.Context, from common.Address, call types.Call) (common.Hash, error)

	// SendBatch submits the calls as one atomic batch and returns the batch identifier.
	SendBatch(ctx context.Context, from common.Address, calls []types.Call) (string, error)
}
