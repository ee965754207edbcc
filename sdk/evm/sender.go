package evm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/txkit/sdk"
	sdkerrors "github.com/smartcontractkit/txkit/sdk/errors"
	"github.com/smartcontractkit/txkit/types"
)

// sendCallsVersion is the EIP-5792 request version sent with wallet_sendCalls.
const sendCallsVersion = "2.0.0"

var (
	// ErrNoTransport is returned when a sender has neither a signer nor a wallet to send through.
	ErrNoTransport = errors.New("sender requires a signer or a wallet client")

	// ErrFromMismatch is returned when a local signer is asked to send from another account.
	ErrFromMismatch = errors.New("sender account does not match the signer")

	errEmptyBatchID = errors.New("wallet returned an empty batch id")
)

var _ sdk.Sender = (*Sender)(nil)

// Sender submits calls to an EVM chain. Single calls are signed locally when a signer is
// configured and sent through the wallet otherwise; batches always go through the wallet.
type Sender struct {
	chain   types.ChainSelector
	chainID uint64
	lggr    sdk.Logger

	backend bind.ContractBackend
	auth    *bind.TransactOpts
	wallet  RPCClient
}

// SenderOption configures a Sender.
type SenderOption func(*Sender)

// WithSigner signs single calls locally with auth and sends them through backend.
func WithSigner(backend bind.ContractBackend, auth *bind.TransactOpts) SenderOption {
	return func(s *Sender) {
		s.backend = backend
		s.auth = auth
	}
}

// WithWallet routes wallet requests through client.
func WithWallet(client RPCClient) SenderOption {
	return func(s *Sender) {
		s.wallet = client
	}
}

// NewSender creates a sender for chain.
func NewSender(chain types.ChainSelector, lggr sdk.Logger, opts ...SenderOption) (*Sender, error) {
	if _, err := types.GetChainSelectorFamily(chain); err != nil {
		return nil, err
	}
	chainID, err := chain.EVMChainID()
	if err != nil {
		return nil, err
	}

	s := &Sender{chain: chain, chainID: chainID, lggr: lggr}
	for _, opt := range opts {
		opt(s)
	}

	if s.wallet == nil && (s.backend == nil || s.auth == nil) {
		return nil, ErrNoTransport
	}

	return s, nil
}

// SendSingle submits one call as its own transaction.
func (s *Sender) SendSingle(ctx context.Context, from common.Address, call types.Call) (common.Hash, error) {
	if s.auth != nil && s.backend != nil {
		return s.sendSigned(ctx, from, call)
	}

	var hash common.Hash
	if err := s.wallet.CallContext(ctx, &hash, "eth_sendTransaction", newTransactionArgs(from, call)); err != nil {
		return common.Hash{}, classifyRPCError("eth_sendTransaction", err)
	}
	s.lggr.Debugf("sent transaction %s from %s to %s", hash.Hex(), from.Hex(), call.To.Hex())

	return hash, nil
}

func (s *Sender) sendSigned(ctx context.Context, from common.Address, call types.Call) (common.Hash, error) {
	if from != s.auth.From {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrFromMismatch, from.Hex())
	}

	opts := *s.auth
	opts.Context = ctx
	opts.Value = call.ValueOrZero()

	contract := bind.NewBoundContract(call.To, abi.ABI{}, s.backend, s.backend, s.backend)
	tx, err := contract.RawTransact(&opts, call.Data)
	if err != nil {
		return common.Hash{}, err
	}
	s.lggr.Debugf("signed transaction %s to %s on %s", tx.Hash().Hex(), call.To.Hex(), s.chain.Name())

	return tx.Hash(), nil
}

// SendBatch submits the calls as one atomic batch with wallet_sendCalls.
func (s *Sender) SendBatch(ctx context.Context, from common.Address, calls []types.Call) (string, error) {
	if s.wallet == nil {
		return "", sdkerrors.NewUnsupportedCapabilityError("atomic", "no wallet client")
	}

	req := sendCallsRequest{
		Version:        sendCallsVersion,
		ChainID:        hexutil.Uint64(s.chainID),
		From:           from,
		AtomicRequired: true,
		Calls:          make([]callArgs, 0, len(calls)),
	}
	for _, c := range calls {
		req.Calls = append(req.Calls, newCallArgs(c))
	}

	var raw json.RawMessage
	if err := s.wallet.CallContext(ctx, &raw, "wallet_sendCalls", req); err != nil {
		return "", classifyRPCError("wallet_sendCalls", err)
	}

	id, err := parseBatchID(raw)
	if err != nil {
		return "", err
	}
	s.lggr.Debugf("sent batch %s of %d calls from %s", id, len(calls), from.Hex())

	return id, nil
}

type callArgs struct {
	To    common.Address `json:"to"`
	Data  hexutil.Bytes  `json:"data"`
	Value *hexutil.Big   `json:"value"`
}

func newCallArgs(c types.Call) callArgs {
	return callArgs{
		To:    c.To,
		Data:  c.Data,
		Value: (*hexutil.Big)(c.ValueOrZero()),
	}
}

type transactionArgs struct {
	From common.Address `json:"from"`
	callArgs
}

func newTransactionArgs(from common.Address, c types.Call) transactionArgs {
	return transactionArgs{From: from, callArgs: newCallArgs(c)}
}

type sendCallsRequest struct {
	Version        string         `json:"version"`
	ChainID        hexutil.Uint64 `json:"chainId"`
	From           common.Address `json:"from"`
	AtomicRequired bool           `json:"atomicRequired"`
	Calls          []callArgs     `json:"calls"`
}

// parseBatchID accepts both the bare string result of early wallets and the {id} object.
func parseBatchID(raw json.RawMessage) (string, error) {
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		var res struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &res); err != nil {
			return "", fmt.Errorf("failed to decode wallet_sendCalls result: %w", err)
		}
		id = res.ID
	}

	if id == "" {
		return "", errEmptyBatchID
	}

	return id, nil
}
