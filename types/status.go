package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// StatusName is the discriminant of a LifecycleStatus.
type StatusName string

const (
	StatusInit                      StatusName = "init"
	StatusBuildingCalls             StatusName = "buildingCalls"
	StatusTransactionIdle           StatusName = "transactionIdle"
	StatusTransactionPending        StatusName = "transactionPending"
	StatusTransactionLegacyExecuted StatusName = "transactionLegacyExecuted"
	StatusSuccess                   StatusName = "success"
	StatusError                     StatusName = "error"
)

// statusRank orders the forward progression of an operation. The error status is not ranked
// since it is reachable from every non-terminal status.
var statusRank = map[StatusName]int{
	StatusInit:                      0,
	StatusBuildingCalls:             1,
	StatusTransactionIdle:           2,
	StatusTransactionPending:        3,
	StatusTransactionLegacyExecuted: 4,
	StatusSuccess:                   5,
}

// IsValid reports whether the name is one of the known status names.
func (n StatusName) IsValid() bool {
	if n == StatusError {
		return true
	}
	_, ok := statusRank[n]

	return ok
}

// IsTerminal reports whether no further forward transition is possible from this status.
func (n StatusName) IsTerminal() bool {
	return n == StatusSuccess || n == StatusError
}

// IsInFlight reports whether calls have been handed to the network and are awaiting
// confirmation.
func (n StatusName) IsInFlight() bool {
	return n == StatusTransactionPending || n == StatusTransactionLegacyExecuted
}

// ErrorCode identifies the class of failure carried by an error status.
type ErrorCode string

const (
	ErrorCodeMissingAccount        ErrorCode = "MISSING_ACCOUNT"
	ErrorCodeEmptyCalls            ErrorCode = "EMPTY_CALLS"
	ErrorCodeInvalidCall           ErrorCode = "INVALID_CALL"
	ErrorCodeUnsupportedCapability ErrorCode = "UNSUPPORTED_CAPABILITY"
	ErrorCodeSubmissionRejected    ErrorCode = "SUBMISSION_REJECTED"
	ErrorCodeConfirmationTimeout   ErrorCode = "CONFIRMATION_TIMEOUT"
	ErrorCodeUnderlyingRPC         ErrorCode = "UNDERLYING_RPC"
	ErrorCodeBatchFailed           ErrorCode = "BATCH_FAILED"
	ErrorCodeTransactionReverted   ErrorCode = "TRANSACTION_REVERTED"
	ErrorCodeBuildCalls            ErrorCode = "BUILD_CALLS"
	ErrorCodeUnknown               ErrorCode = "UNKNOWN"
)

// ErrorPayload is the structured payload of an error status. The hashes and calls that were
// already handed to the network remain inspectable so that a block explorer link can still be
// offered for partially completed submissions.
type ErrorPayload struct {
	Code              ErrorCode     `json:"code"`
	Message           string        `json:"message"`
	Cause             error         `json:"-"`
	TransactionHashes []common.Hash `json:"transactionHashes,omitempty"`
	Calls             []Call        `json:"calls,omitempty"`
}

// Error implements the error interface.
func (e *ErrorPayload) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ErrorPayload) Unwrap() error {
	return e.Cause
}

// StatusData holds the payload of a LifecycleStatus. Which fields are populated depends on the
// status name.
type StatusData struct {
	// TransactionHashes is set on transactionLegacyExecuted.
	TransactionHashes []common.Hash `json:"transactionHashes,omitempty"`
	// Receipts is set on success.
	Receipts []Receipt `json:"transactionReceipts,omitempty"`
	// Error is set on error.
	Error *ErrorPayload `json:"error,omitempty"`
}

// LifecycleStatus is the single named state describing the progress of an operation.
type LifecycleStatus struct {
	Name StatusName `json:"statusName"`
	Data StatusData `json:"statusData"`
}

// NewStatus returns a status without payload.
func NewStatus(name StatusName) LifecycleStatus {
	return LifecycleStatus{Name: name}
}

// NewLegacyExecutedStatus returns the status recorded once every call of a sequential submission
// has been sent.
func NewLegacyExecutedStatus(hashes []common.Hash) LifecycleStatus {
	return LifecycleStatus{
		Name: StatusTransactionLegacyExecuted,
		Data: StatusData{TransactionHashes: append([]common.Hash(nil), hashes...)},
	}
}

// NewSuccessStatus returns a success status carrying the given receipts.
func NewSuccessStatus(receipts ...Receipt) LifecycleStatus {
	return LifecycleStatus{
		Name: StatusSuccess,
		Data: StatusData{Receipts: receipts},
	}
}

// NewErrorStatus returns an error status carrying the given payload.
func NewErrorStatus(err *ErrorPayload) LifecycleStatus {
	return LifecycleStatus{
		Name: StatusError,
		Data: StatusData{Error: err},
	}
}

// Receipt returns the last receipt of a success status.
func (s LifecycleStatus) Receipt() (Receipt, bool) {
	if s.Name != StatusSuccess || len(s.Data.Receipts) == 0 {
		return Receipt{}, false
	}

	return s.Data.Receipts[len(s.Data.Receipts)-1], true
}

// String returns the status name.
func (s LifecycleStatus) String() string {
	return string(s.Name)
}

// CanTransition reports whether an operation currently in status from may move to status to.
//
// Progress is monotonic forward. The error status is reachable from every non-terminal status,
// and a terminal status may be reset to transactionIdle or buildingCalls for a fresh submission.
// An idle operation may go back to buildingCalls since nothing was sent with its calls yet.
func CanTransition(from, to StatusName) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}

	if from.IsTerminal() {
		return to == StatusTransactionIdle || to == StatusBuildingCalls
	}

	if from == StatusTransactionIdle && to == StatusBuildingCalls {
		return true
	}

	if to == StatusError {
		return true
	}

	return statusRank[to] > statusRank[from]
}
