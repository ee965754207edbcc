package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/txkit/sdk"
)

// ErrNoAccounts is returned when the wallet exposes no account.
var ErrNoAccounts = errors.New("wallet returned no accounts")

var (
	_ sdk.AccountProvider = (*WalletAccount)(nil)
	_ sdk.BatchViewer     = (*WalletBatchViewer)(nil)
)

// WalletAccount exposes the accounts of a connected wallet.
type WalletAccount struct {
	client RPCClient
	lggr   sdk.Logger
}

// NewWalletAccount creates a new WalletAccount.
func NewWalletAccount(client RPCClient, lggr sdk.Logger) *WalletAccount {
	return &WalletAccount{client: client, lggr: lggr}
}

// ActiveAccount returns the first account the wallet exposes without prompting the user.
func (w *WalletAccount) ActiveAccount(ctx context.Context) (common.Address, bool) {
	var accounts []common.Address
	if err := w.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		w.lggr.Debugf("eth_accounts failed: %v", err)
		return common.Address{}, false
	}
	if len(accounts) == 0 {
		return common.Address{}, false
	}

	return accounts[0], true
}

// RequestConnection prompts the user to connect the wallet.
func (w *WalletAccount) RequestConnection(ctx context.Context) (common.Address, error) {
	var accounts []common.Address
	if err := w.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return common.Address{}, fmt.Errorf("eth_requestAccounts: %w", classifyRPCError("eth_requestAccounts", err))
	}
	if len(accounts) == 0 {
		return common.Address{}, ErrNoAccounts
	}

	return accounts[0], nil
}

// WalletBatchViewer opens the wallet's own status view of a batch.
type WalletBatchViewer struct {
	client RPCClient
}

// NewWalletBatchViewer creates a new WalletBatchViewer.
func NewWalletBatchViewer(client RPCClient) *WalletBatchViewer {
	return &WalletBatchViewer{client: client}
}

func (v *WalletBatchViewer) ShowBatchStatus(ctx context.Context, batchID string) error {
	if err := v.client.CallContext(ctx, nil, "wallet_showCallsStatus", batchID); err != nil {
		return classifyRPCError("wallet_showCallsStatus", err)
	}

	return nil
}
