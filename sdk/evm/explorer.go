package evm

import (
	"maps"

	"github.com/smartcontractkit/txkit/sdk"
	sdkerrors "github.com/smartcontractkit/txkit/sdk/errors"
	"github.com/smartcontractkit/txkit/types"
)

// defaultExplorers maps EVM chain ids to their block explorers.
var defaultExplorers = map[uint64]string{
	1:        "https://etherscan.io",
	11155111: "https://sepolia.etherscan.io",
	8453:     "https://basescan.org",
	84532:    "https://sepolia.basescan.org",
	10:       "https://optimistic.etherscan.io",
	42161:    "https://arbiscan.io",
	137:      "https://polygonscan.com",
}

var _ sdk.ExplorerResolver = (*Explorers)(nil)

// Explorers resolves block explorer URLs from a built-in table, with per selector overrides.
type Explorers struct {
	overrides map[types.ChainSelector]string
}

// NewExplorers creates a resolver. Entries in overrides take precedence over the built-in table.
func NewExplorers(overrides map[types.ChainSelector]string) *Explorers {
	return &Explorers{overrides: maps.Clone(overrides)}
}

func (e *Explorers) ExplorerURL(chain types.ChainSelector) (string, error) {
	if url, ok := e.overrides[chain]; ok && url != "" {
		return url, nil
	}

	chainID, err := chain.EVMChainID()
	if err != nil {
		return "", sdkerrors.NewMissingExplorerError(chain)
	}

	url, ok := defaultExplorers[chainID]
	if !ok {
		return "", sdkerrors.NewMissingExplorerError(chain)
	}

	return url, nil
}
