package evm

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/txkit/sdk"
	"github.com/smartcontractkit/txkit/types"
)

// allChainsKey keys the capabilities a wallet declares for every chain.
const allChainsKey = "0x0"

var _ sdk.CapabilityProvider = (*Capabilities)(nil)

// Capabilities reads the capabilities a wallet declares with wallet_getCapabilities.
type Capabilities struct {
	client  RPCClient
	chainID uint64
	lggr    sdk.Logger
}

// NewCapabilities creates a capability reader for chain.
func NewCapabilities(client RPCClient, chain types.ChainSelector, lggr sdk.Logger) (*Capabilities, error) {
	chainID, err := chain.EVMChainID()
	if err != nil {
		return nil, err
	}

	return &Capabilities{client: client, chainID: chainID, lggr: lggr}, nil
}

// SupportsAtomicBatch reports whether the wallet declares atomic execution for the account on
// the chain. A wallet that fails the request is treated as not supporting it.
func (c *Capabilities) SupportsAtomicBatch(ctx context.Context, account common.Address) bool {
	chainKey := hexutil.EncodeUint64(c.chainID)

	var res map[string]map[string]json.RawMessage
	err := c.client.CallContext(ctx, &res, "wallet_getCapabilities", account, []string{chainKey})
	if err != nil {
		c.lggr.Debugf("wallet_getCapabilities for %s failed: %v", account.Hex(), classifyRPCError("wallet_getCapabilities", err))
		return false
	}

	return atomicSupported(res[chainKey]) || atomicSupported(res[allChainsKey])
}

// atomicSupported accepts both the atomic status capability and the earlier atomicBatch flag.
func atomicSupported(caps map[string]json.RawMessage) bool {
	if raw, ok := caps["atomic"]; ok {
		var atomic struct {
			Status string `json:"status"`
		}
		if json.Unmarshal(raw, &atomic) == nil && (atomic.Status == "supported" || atomic.Status == "ready") {
			return true
		}
	}

	if raw, ok := caps["atomicBatch"]; ok {
		var batch struct {
			Supported bool `json:"supported"`
		}
		if json.Unmarshal(raw, &batch) == nil && batch.Supported {
			return true
		}
	}

	return false
}
