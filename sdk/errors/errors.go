package sdkerrors

import (
	"fmt"

	"github.com/smartcontractkit/txkit/types"
)

// UnsupportedCapabilityError is returned by a sender when the wallet refuses a capability the
// submission depends on, such as atomic batch execution.
type UnsupportedCapabilityError struct {
	Capability string
	Reason     string
}

func (e *UnsupportedCapabilityError) Error() string {
	if e.Reason == "" {
		return "unsupported capability: " + e.Capability
	}

	return fmt.Sprintf("unsupported capability: %s: %s", e.Capability, e.Reason)
}

func NewUnsupportedCapabilityError(capability, reason string) *UnsupportedCapabilityError {
	return &UnsupportedCapabilityError{Capability: capability, Reason: reason}
}

// UserRejectedError is returned when the user declined to sign or send.
type UserRejectedError struct {
	Reason string
}

func (e *UserRejectedError) Error() string {
	return "user rejected the request: " + e.Reason
}

func NewUserRejectedError(reason string) *UserRejectedError {
	return &UserRejectedError{Reason: reason}
}

// MissingExplorerError is returned when no block explorer is known for a chain.
type MissingExplorerError struct {
	ChainSelector types.ChainSelector
}

func (e *MissingExplorerError) Error() string {
	return fmt.Sprintf("no block explorer known for chain selector %d", e.ChainSelector)
}

func NewMissingExplorerError(sel types.ChainSelector) *MissingExplorerError {
	return &MissingExplorerError{ChainSelector: sel}
}
