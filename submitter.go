package txkit

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/txkit/sdk"
	"github.com/smartcontractkit/txkit/types"
)

// Submitter hands an ordered call sequence to the network, atomically when the account supports
// it and one call at a time otherwise.
type Submitter struct {
	capabilities sdk.CapabilityProvider
	sender       sdk.Sender
	lggr         sdk.Logger
}

// NewSubmitter creates a new Submitter.
func NewSubmitter(capabilities sdk.CapabilityProvider, sender sdk.Sender, lggr sdk.Logger) *Submitter {
	return &Submitter{
		capabilities: capabilities,
		sender:       sender,
		lggr:         lggr,
	}
}

// Submit sends the calls on behalf of account and returns the handle to track them with.
//
// A sequential submission stops at the first failing call. The calls sent before it are already
// on the network and are reported through a SequentialSubmissionError; nothing is rolled back and
// the remaining calls are not sent.
func (s *Submitter) Submit(ctx context.Context, account *common.Address, calls []types.Call) (types.SubmissionHandle, error) {
	if account == nil {
		return types.SubmissionHandle{}, NewMissingAccountError()
	}
	if len(calls) == 0 {
		return types.SubmissionHandle{}, ErrEmptyCalls
	}
	for i, call := range calls {
		if err := call.Validate(); err != nil {
			return types.SubmissionHandle{}, NewInvalidCallError(i, err)
		}
	}

	calls = types.CloneCalls(calls)

	if s.capabilities.SupportsAtomicBatch(ctx, *account) {
		return s.submitBatch(ctx, *account, calls)
	}

	return s.submitSequential(ctx, *account, calls)
}

func (s *Submitter) submitBatch(ctx context.Context, account common.Address, calls []types.Call) (types.SubmissionHandle, error) {
	batchID, err := s.sender.SendBatch(ctx, account, calls)
	if err != nil {
		submissionsTotal.WithLabelValues(modeBatch, outcomeFailed).Inc()
		return types.SubmissionHandle{}, classifySendError(err)
	}

	submissionsTotal.WithLabelValues(modeBatch, outcomeSubmitted).Inc()
	s.lggr.Infof("submitted batch of %d calls from %s: %s", len(calls), account.Hex(), batchID)

	return types.NewBatchHandle(batchID), nil
}

func (s *Submitter) submitSequential(ctx context.Context, account common.Address, calls []types.Call) (types.SubmissionHandle, error) {
	hashes := make([]common.Hash, 0, len(calls))
	for i, call := range calls {
		hash, err := s.sender.SendSingle(ctx, account, call)
		if err != nil {
			submissionsTotal.WithLabelValues(modeSequential, outcomeFailed).Inc()
			if len(hashes) > 0 {
				s.lggr.Warnf("sequential submission stopped at call %d, %d transactions already sent", i, len(hashes))
			}

			return types.SubmissionHandle{}, NewSequentialSubmissionError(hashes, i, classifySendError(err))
		}

		s.lggr.Debugf("sent call %d/%d to %s: %s", i+1, len(calls), call.To.Hex(), hash.Hex())
		hashes = append(hashes, hash)
	}

	submissionsTotal.WithLabelValues(modeSequential, outcomeSubmitted).Inc()

	return types.NewSingleHandle(hashes), nil
}
