package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// AccountProvider exposes the active account of the connected wallet.
type AccountProvider interface {
	// ActiveAccount returns the bound account, if any.
	ActiveAccount(ctx context.Context) (common.Address, bool)

	// RequestConnection asks the wallet to connect and returns the account it bound.
	RequestConnection(ctx context.Context) (common.Address, error)
}

// CapabilityProvider reports the execution capabilities declared by an account.
type CapabilityProvider interface {
	// SupportsAtomicBatch reports whether the account can execute several calls atomically.
	SupportsAtomicBatch(ctx context.Context, account common.Address) bool
}
