package txkit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/txkit/sdk/errors"
	"github.com/smartcontractkit/txkit/types"
)

// MissingAccountError is returned when calls are submitted without a bound account. It is
// recoverable by connecting a wallet and retrying.
type MissingAccountError struct{}

func (e *MissingAccountError) Error() string {
	return "no active account is bound"
}

// NewMissingAccountError creates a new MissingAccountError.
func NewMissingAccountError() *MissingAccountError {
	return &MissingAccountError{}
}

// ErrEmptyCalls is returned when an empty call sequence is submitted. This is a programming
// error and is not recoverable by the user.
var ErrEmptyCalls = errors.New("no calls to submit")

// InvalidCallError is returned when a call descriptor fails validation.
type InvalidCallError struct {
	Index int
	Err   error
}

func (e *InvalidCallError) Error() string {
	return fmt.Sprintf("invalid call at index %d: %v", e.Index, e.Err)
}

func (e *InvalidCallError) Unwrap() error {
	return e.Err
}

// NewInvalidCallError creates a new InvalidCallError.
func NewInvalidCallError(index int, err error) *InvalidCallError {
	return &InvalidCallError{Index: index, Err: err}
}

// SubmissionRejectedError is returned when the user declined the request or signing failed.
type SubmissionRejectedError struct {
	Err error
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("submission rejected: %v", e.Err)
}

func (e *SubmissionRejectedError) Unwrap() error {
	return e.Err
}

// NewSubmissionRejectedError creates a new SubmissionRejectedError.
func NewSubmissionRejectedError(err error) *SubmissionRejectedError {
	return &SubmissionRejectedError{Err: err}
}

// ConfirmationTimeoutError is returned when no terminal confirmation arrived in time.
type ConfirmationTimeoutError struct {
	Timeout time.Duration
}

func (e *ConfirmationTimeoutError) Error() string {
	return fmt.Sprintf("confirmation not received within %s", e.Timeout)
}

// NewConfirmationTimeoutError creates a new ConfirmationTimeoutError.
func NewConfirmationTimeoutError(timeout time.Duration) *ConfirmationTimeoutError {
	return &ConfirmationTimeoutError{Timeout: timeout}
}

// UnderlyingRPCError wraps a failure of the submission or confirmation mechanism. The message
// and cause are preserved verbatim.
type UnderlyingRPCError struct {
	Err error
}

func (e *UnderlyingRPCError) Error() string {
	return e.Err.Error()
}

func (e *UnderlyingRPCError) Unwrap() error {
	return e.Err
}

// NewUnderlyingRPCError creates a new UnderlyingRPCError.
func NewUnderlyingRPCError(err error) *UnderlyingRPCError {
	return &UnderlyingRPCError{Err: err}
}

// SequentialSubmissionError is returned when one call of a sequential submission fails. Calls
// before FailedIndex were already broadcast and are not rolled back; calls after it were never
// sent.
type SequentialSubmissionError struct {
	Submitted   []common.Hash
	FailedIndex int
	Err         error
}

func (e *SequentialSubmissionError) Error() string {
	return fmt.Sprintf("call %d of sequential submission failed after %d sent: %v", e.FailedIndex, len(e.Submitted), e.Err)
}

func (e *SequentialSubmissionError) Unwrap() error {
	return e.Err
}

// NewSequentialSubmissionError creates a new SequentialSubmissionError.
func NewSequentialSubmissionError(submitted []common.Hash, failedIndex int, err error) *SequentialSubmissionError {
	return &SequentialSubmissionError{
		Submitted:   append([]common.Hash(nil), submitted...),
		FailedIndex: failedIndex,
		Err:         err,
	}
}

// BatchFailedError is returned when a batch reports a failed aggregate status.
type BatchFailedError struct {
	BatchID string
}

func (e *BatchFailedError) Error() string {
	return fmt.Sprintf("batch %s failed", e.BatchID)
}

// NewBatchFailedError creates a new BatchFailedError.
func NewBatchFailedError(batchID string) *BatchFailedError {
	return &BatchFailedError{BatchID: batchID}
}

// TransactionRevertedError is returned when a receipt reports a reverted execution.
type TransactionRevertedError struct {
	TxHash common.Hash
}

func (e *TransactionRevertedError) Error() string {
	return fmt.Sprintf("transaction %s reverted", e.TxHash.Hex())
}

// NewTransactionRevertedError creates a new TransactionRevertedError.
func NewTransactionRevertedError(hash common.Hash) *TransactionRevertedError {
	return &TransactionRevertedError{TxHash: hash}
}

// BuildCallsError is returned when calls could not be assembled, for example when a quote
// could not be fetched.
type BuildCallsError struct {
	Err error
}

func (e *BuildCallsError) Error() string {
	return fmt.Sprintf("failed to build calls: %v", e.Err)
}

func (e *BuildCallsError) Unwrap() error {
	return e.Err
}

// NewBuildCallsError creates a new BuildCallsError.
func NewBuildCallsError(err error) *BuildCallsError {
	return &BuildCallsError{Err: err}
}

// classifySendError maps a sender failure onto the error taxonomy.
func classifySendError(err error) error {
	var (
		rejected    *sdkerrors.UserRejectedError
		unsupported *sdkerrors.UnsupportedCapabilityError
	)

	switch {
	case errors.As(err, &unsupported):
		return err
	case errors.As(err, &rejected):
		return NewSubmissionRejectedError(err)
	default:
		return NewUnderlyingRPCError(err)
	}
}

// toErrorPayload converts any failure into the structured payload of an error status. The calls
// are attached so that the host can still inspect what was attempted.
func toErrorPayload(err error, calls []types.Call) *types.ErrorPayload {
	se := &types.ErrorPayload{
		Code:    errorCode(err),
		Message: err.Error(),
		Cause:   err,
		Calls:   types.CloneCalls(calls),
	}

	var seqErr *SequentialSubmissionError
	if errors.As(err, &seqErr) {
		se.TransactionHashes = append([]common.Hash(nil), seqErr.Submitted...)
	}

	return se
}

func errorCode(err error) types.ErrorCode {
	var (
		missing     *MissingAccountError
		invalid     *InvalidCallError
		rejected    *SubmissionRejectedError
		timeout     *ConfirmationTimeoutError
		rpcErr      *UnderlyingRPCError
		unsupported *sdkerrors.UnsupportedCapabilityError
		batchFailed *BatchFailedError
		reverted    *TransactionRevertedError
		build       *BuildCallsError
	)

	// The cause of a sequential failure decides the code.
	switch {
	case errors.As(err, &missing):
		return types.ErrorCodeMissingAccount
	case errors.Is(err, ErrEmptyCalls):
		return types.ErrorCodeEmptyCalls
	case errors.As(err, &invalid):
		return types.ErrorCodeInvalidCall
	case errors.As(err, &unsupported):
		return types.ErrorCodeUnsupportedCapability
	case errors.As(err, &rejected):
		return types.ErrorCodeSubmissionRejected
	case errors.As(err, &timeout), errors.Is(err, context.DeadlineExceeded):
		return types.ErrorCodeConfirmationTimeout
	case errors.As(err, &batchFailed):
		return types.ErrorCodeBatchFailed
	case errors.As(err, &reverted):
		return types.ErrorCodeTransactionReverted
	case errors.As(err, &build):
		return types.ErrorCodeBuildCalls
	case errors.As(err, &rpcErr):
		return types.ErrorCodeUnderlyingRPC
	default:
		return types.ErrorCodeUnknown
	}
}
