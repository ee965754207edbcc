package evm

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/rpc"

	sdkerrors "github.com/smartcontractkit/txkit/sdk/errors"
)

// RPCClient is the JSON-RPC surface of a wallet. *rpc.Client satisfies it.
type RPCClient interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

var _ RPCClient = (*rpc.Client)(nil)

// Provider and wallet error codes, from EIP-1193 and EIP-5792.
const (
	codeMethodNotFound                   = -32601
	codeUserRejectedRequest              = 4001
	codeUnauthorized                     = 4100
	codeUnsupportedMethod                = 4200
	codeUnsupportedNonOptionalCapability = 5700
	codeUnsupportedChainID               = 5710
	codeRejectedUpgrade                  = 5750
	codeAtomicityNotSupported            = 5760
)

// classifyRPCError maps wallet error codes onto sdk errors. Errors without a code are returned
// unchanged.
func classifyRPCError(method string, err error) error {
	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return err
	}

	switch rpcErr.ErrorCode() {
	case codeUserRejectedRequest, codeUnauthorized, codeRejectedUpgrade:
		return sdkerrors.NewUserRejectedError(rpcErr.Error())
	case codeMethodNotFound, codeUnsupportedMethod:
		return sdkerrors.NewUnsupportedCapabilityError(method, rpcErr.Error())
	case codeUnsupportedNonOptionalCapability, codeUnsupportedChainID, codeAtomicityNotSupported:
		return sdkerrors.NewUnsupportedCapabilityError("atomic", rpcErr.Error())
	default:
		return err
	}
}
