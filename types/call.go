package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
)

var callValidator = validator.New()

// Call describes one unit of work to submit to a chain: a target address, the encoded payload and
// an optional native value.
type Call struct {
	To    common.Address `json:"to" validate:"required"`
	Data  hexutil.Bytes  `json:"data"`
	Value *big.Int       `json:"value,omitempty"`
}

// NewCall creates a call. A nil value is treated as zero.
func NewCall(to common.Address, data []byte, value *big.Int) Call {
	return Call{
		To:    to,
		Data:  common.CopyBytes(data),
		Value: copyBig(value),
	}
}

// Validate checks that the call has a target and a non negative value.
func (c Call) Validate() error {
	if err := callValidator.Struct(c); err != nil {
		return err
	}

	if c.Value != nil && c.Value.Sign() < 0 {
		return fmt.Errorf("invalid call value: %v", c.Value)
	}

	return nil
}

// ValueOrZero returns the call value, or zero if none was set.
func (c Call) ValueOrZero() *big.Int {
	if c.Value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(c.Value)
}

// Clone returns a deep copy of the call.
func (c Call) Clone() Call {
	return NewCall(c.To, c.Data, c.Value)
}

// CloneCalls returns a deep copy of the ordered call sequence.
func CloneCalls(calls []Call) []Call {
	if calls == nil {
		return nil
	}

	out := make([]Call, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Clone())
	}

	return out
}

func copyBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}

	return new(big.Int).Set(v)
}
