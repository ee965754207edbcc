package evm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-retry"

	"github.com/smartcontractkit/txkit/sdk"
	sdkerrors "github.com/smartcontractkit/txkit/sdk/errors"
	"github.com/smartcontractkit/txkit/types"
)

const (
	DefaultPollInterval    = time.Second
	DefaultMaxPollInterval = 4 * time.Second
	DefaultMaxPollFailures = 5
)

var validate = validator.New()

// PollConfig controls how a watcher polls the chain or the wallet.
type PollConfig struct {
	// Interval is the delay before the first re-poll. It doubles on every attempt.
	Interval time.Duration `validate:"gt=0"`
	// MaxInterval caps the delay between polls.
	MaxInterval time.Duration `validate:"gtefield=Interval"`
	// MaxFailures is the number of consecutive failed polls tolerated before the watch reports an
	// error. Zero means DefaultMaxPollFailures.
	MaxFailures int `validate:"gte=0"`
}

// DefaultPollConfig returns the polling settings used when none are given.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval:    DefaultPollInterval,
		MaxInterval: DefaultMaxPollInterval,
		MaxFailures: DefaultMaxPollFailures,
	}
}

func (c PollConfig) backoff() (retry.Backoff, error) {
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("invalid poll config: %w", err)
	}

	return retry.WithCappedDuration(c.MaxInterval, retry.NewExponential(c.Interval)), nil
}

func (c PollConfig) maxFailures() int {
	if c.MaxFailures == 0 {
		return DefaultMaxPollFailures
	}

	return c.MaxFailures
}

// txIndexingMsg is returned by geth nodes while the transaction index is still being built. The
// lookup is retried like a missing receipt.
const txIndexingMsg = "transaction indexing is in progress"

func isReceiptPending(err error) bool {
	return errors.Is(err, ethereum.NotFound) || strings.Contains(err.Error(), txIndexingMsg)
}

var errStillPending = errors.New("still pending")

// poll calls check until it reports done, it fails with a permanent error, or it fails more
// than maxFailures times in a row.
func poll(
	ctx context.Context, b retry.Backoff, maxFailures int, lggr sdk.Logger,
	check func(ctx context.Context) (bool, error),
) error {
	failures := 0

	return retry.Do(ctx, b, func(ctx context.Context) error {
		done, err := check(ctx)
		if err != nil {
			if isPermanent(err) {
				return err
			}
			failures++
			if failures > maxFailures {
				return err
			}
			lggr.Debugf("poll failed (%d/%d): %v", failures, maxFailures, err)

			return retry.RetryableError(err)
		}
		if done {
			return nil
		}
		failures = 0

		return retry.RetryableError(errStillPending)
	})
}

func isPermanent(err error) bool {
	var unsupported *sdkerrors.UnsupportedCapabilityError
	var rejected *sdkerrors.UserRejectedError

	return errors.As(err, &unsupported) || errors.As(err, &rejected)
}

// deliver sends a terminal event unless ctx ends first.
func deliver[E any](ctx context.Context, ch chan<- E, e E) {
	select {
	case ch <- e:
	case <-ctx.Done():
	}
}

// offer sends a pending event if the consumer has room for it.
func offer[E any](ch chan<- E, e E) {
	select {
	case ch <- e:
	default:
	}
}

// ReceiptReader fetches transaction receipts. ethclient.Client and the simulated backend client
// satisfy it.
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
}

var (
	_ sdk.ReceiptWatcher = (*ReceiptWatcher)(nil)
	_ sdk.BatchWatcher   = (*BatchWatcher)(nil)
)

// ReceiptWatcher polls the chain for the receipt of a transaction.
type ReceiptWatcher struct {
	client ReceiptReader
	cfg    PollConfig
	lggr   sdk.Logger
}

// NewReceiptWatcher creates a new ReceiptWatcher.
func NewReceiptWatcher(client ReceiptReader, cfg PollConfig, lggr sdk.Logger) *ReceiptWatcher {
	return &ReceiptWatcher{client: client, cfg: cfg, lggr: lggr}
}

func (w *ReceiptWatcher) WatchReceipt(ctx context.Context, hash common.Hash) (<-chan types.ReceiptEvent, error) {
	b, err := w.cfg.backoff()
	if err != nil {
		return nil, err
	}

	ch := make(chan types.ReceiptEvent, 1)
	go func() {
		defer close(ch)

		err := poll(ctx, b, w.cfg.maxFailures(), w.lggr, func(ctx context.Context) (bool, error) {
			r, err := w.client.TransactionReceipt(ctx, hash)
			if err != nil && isReceiptPending(err) {
				offer(ch, types.ReceiptEvent{})
				return false, nil
			}
			if err != nil {
				return false, err
			}

			rec := types.NewReceipt(r)
			deliver(ctx, ch, types.ReceiptEvent{Receipt: &rec})

			return true, nil
		})
		if err != nil && ctx.Err() == nil {
			w.lggr.Warnf("watching receipt of %s failed: %v", hash.Hex(), err)
			deliver(ctx, ch, types.ReceiptEvent{Err: err})
		}
	}()

	return ch, nil
}

// BatchWatcher polls the wallet with wallet_getCallsStatus.
type BatchWatcher struct {
	client RPCClient
	cfg    PollConfig
	lggr   sdk.Logger
}

// NewBatchWatcher creates a new BatchWatcher.
func NewBatchWatcher(client RPCClient, cfg PollConfig, lggr sdk.Logger) *BatchWatcher {
	return &BatchWatcher{client: client, cfg: cfg, lggr: lggr}
}

func (w *BatchWatcher) WatchBatchStatus(ctx context.Context, batchID string) (<-chan types.BatchEvent, error) {
	b, err := w.cfg.backoff()
	if err != nil {
		return nil, err
	}

	ch := make(chan types.BatchEvent, 1)
	go func() {
		defer close(ch)

		err := poll(ctx, b, w.cfg.maxFailures(), w.lggr, func(ctx context.Context) (bool, error) {
			var res callsStatusResponse
			if err := w.client.CallContext(ctx, &res, "wallet_getCallsStatus", batchID); err != nil {
				return false, classifyRPCError("wallet_getCallsStatus", err)
			}

			ev, err := res.event()
			if err != nil {
				return false, err
			}
			if !ev.IsTerminal() {
				offer(ch, ev)
				return false, nil
			}
			deliver(ctx, ch, ev)

			return true, nil
		})
		if err != nil && ctx.Err() == nil {
			w.lggr.Warnf("watching batch %s failed: %v", batchID, err)
			deliver(ctx, ch, types.BatchEvent{Err: err})
		}
	}()

	return ch, nil
}

type walletReceipt struct {
	Status          hexutil.Uint64 `json:"status"`
	BlockHash       common.Hash    `json:"blockHash"`
	BlockNumber     hexutil.Uint64 `json:"blockNumber"`
	GasUsed         hexutil.Uint64 `json:"gasUsed"`
	TransactionHash common.Hash    `json:"transactionHash"`
}

type callsStatusResponse struct {
	Status   json.RawMessage `json:"status"`
	Receipts []walletReceipt `json:"receipts"`
}

func (r callsStatusResponse) event() (types.BatchEvent, error) {
	receipts := make([]types.Receipt, 0, len(r.Receipts))
	allSucceeded := true
	for _, wr := range r.Receipts {
		rec := types.Receipt{
			TxHash:      wr.TransactionHash,
			BlockHash:   wr.BlockHash,
			BlockNumber: uint64(wr.BlockNumber),
			Status:      uint64(wr.Status),
			GasUsed:     uint64(wr.GasUsed),
		}
		allSucceeded = allSucceeded && rec.Succeeded()
		receipts = append(receipts, rec)
	}

	state, err := parseBatchState(r.Status, allSucceeded)
	if err != nil {
		return types.BatchEvent{}, err
	}
	if state == types.BatchPending {
		return types.BatchEvent{State: state}, nil
	}

	return types.BatchEvent{State: state, Receipts: receipts}, nil
}

// parseBatchState reads the numeric status codes of EIP-5792 as well as the PENDING and CONFIRMED
// strings of earlier wallets.
func parseBatchState(raw json.RawMessage, allSucceeded bool) (types.BatchState, error) {
	var code uint64
	if err := json.Unmarshal(raw, &code); err == nil {
		switch {
		case code >= 100 && code < 200:
			return types.BatchPending, nil
		case code >= 200 && code < 300:
			return types.BatchSuccess, nil
		case code >= 400 && code < 700:
			return types.BatchFailure, nil
		default:
			return "", fmt.Errorf("unknown batch status code %d", code)
		}
	}

	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return "", fmt.Errorf("failed to decode batch status: %w", err)
	}

	switch status {
	case "PENDING":
		return types.BatchPending, nil
	case "CONFIRMED":
		if !allSucceeded {
			return types.BatchFailure, nil
		}

		return types.BatchSuccess, nil
	default:
		return "", fmt.Errorf("unknown batch status %q", status)
	}
}
