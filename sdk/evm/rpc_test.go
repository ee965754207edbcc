package evm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	sdkerrors "github.com/smartcontractkit/txkit/sdk/errors"
)

func TestClassifyRPCError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection reset")

	tests := []struct {
		name string
		give error
		want error
	}{
		{
			name: "user rejected",
			give: &walletError{code: 4001, msg: "User denied"},
			want: sdkerrors.NewUserRejectedError("User denied"),
		},
		{
			name: "unauthorized",
			give: &walletError{code: 4100, msg: "not authorized"},
			want: sdkerrors.NewUserRejectedError("not authorized"),
		},
		{
			name: "method not found",
			give: &walletError{code: -32601, msg: "no such method"},
			want: sdkerrors.NewUnsupportedCapabilityError("wallet_sendCalls", "no such method"),
		},
		{
			name: "unsupported method",
			give: &walletError{code: 4200, msg: "unsupported"},
			want: sdkerrors.NewUnsupportedCapabilityError("wallet_sendCalls", "unsupported"),
		},
		{
			name: "atomicity not supported",
			give: &walletError{code: 5760, msg: "cannot batch"},
			want: sdkerrors.NewUnsupportedCapabilityError("atomic", "cannot batch"),
		},
		{
			name: "other code is kept",
			give: &walletError{code: -32000, msg: "nonce too low"},
			want: &walletError{code: -32000, msg: "nonce too low"},
		},
		{
			name: "no code is kept",
			give: plain,
			want: plain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, classifyRPCError("wallet_sendCalls", tt.give))
		})
	}
}
