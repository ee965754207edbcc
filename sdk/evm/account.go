package evm

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/txkit/sdk"
)

// ErrNoSigner is returned when a local account has no signing address.
var ErrNoSigner = errors.New("no signer configured")

var (
	_ sdk.AccountProvider    = (*Account)(nil)
	_ sdk.CapabilityProvider = (*Account)(nil)
)

// Account is a locally signing externally owned account. It is always connected and never
// supports atomic batches.
type Account struct {
	opts *bind.TransactOpts
}

// NewAccount creates an account signing with opts.
func NewAccount(opts *bind.TransactOpts) *Account {
	return &Account{opts: opts}
}

func (a *Account) ActiveAccount(context.Context) (common.Address, bool) {
	if a.opts == nil || a.opts.From == (common.Address{}) {
		return common.Address{}, false
	}

	return a.opts.From, true
}

func (a *Account) RequestConnection(ctx context.Context) (common.Address, error) {
	addr, ok := a.ActiveAccount(ctx)
	if !ok {
		return common.Address{}, ErrNoSigner
	}

	return addr, nil
}

func (a *Account) SupportsAtomicBatch(context.Context, common.Address) bool {
	return false
}
