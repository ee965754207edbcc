package types

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
)

func TestNewReceipt(t *testing.T) {
	t.Parallel()

	got := NewReceipt(&gethtypes.Receipt{
		TxHash:      common.HexToHash("0x1"),
		BlockHash:   common.HexToHash("0x2"),
		BlockNumber: big.NewInt(42),
		Status:      gethtypes.ReceiptStatusSuccessful,
		GasUsed:     21000,
	})

	assert.Equal(t, Receipt{
		TxHash:      common.HexToHash("0x1"),
		BlockHash:   common.HexToHash("0x2"),
		BlockNumber: 42,
		Status:      1,
		GasUsed:     21000,
	}, got)
	assert.True(t, got.Succeeded())

	reverted := NewReceipt(&gethtypes.Receipt{Status: gethtypes.ReceiptStatusFailed})
	assert.False(t, reverted.Succeeded())
	assert.Zero(t, reverted.BlockNumber)
}

func TestEvents_IsTerminal(t *testing.T) {
	t.Parallel()

	rec := Receipt{TxHash: common.HexToHash("0x1")}

	assert.False(t, ReceiptEvent{}.IsTerminal())
	assert.True(t, ReceiptEvent{Receipt: &rec}.IsTerminal())
	assert.True(t, ReceiptEvent{Err: errors.New("boom")}.IsTerminal())

	assert.False(t, BatchEvent{State: BatchPending}.IsTerminal())
	assert.True(t, BatchEvent{State: BatchSuccess}.IsTerminal())
	assert.True(t, BatchEvent{State: BatchFailure}.IsTerminal())
	assert.True(t, BatchEvent{Err: errors.New("boom")}.IsTerminal())
}
