package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector is a unique identifier for a chain.
//
// These values are defined in the chain-selectors dependency.
// https://github.com/smartcontractkit/chain-selectors
type ChainSelector uint64

var (
	// ErrChainNotFound is returned when no chain is registered for a selector or chain id
	ErrChainNotFound = errors.New("chain not found")

	// ErrUnsupportedChainFamily is returned when the chain family has no lifecycle adapter
	ErrUnsupportedChainFamily = errors.New("unsupported chain family")
)

// GetChainSelectorFamily returns the family of the chain selector. Only EVM chains are
// supported.
func GetChainSelectorFamily(sel ChainSelector) (string, error) {
	family, err := chainsel.GetSelectorFamily(uint64(sel))
	if err != nil {
		return "", fmt.Errorf("%w for selector %d", ErrChainNotFound, sel)
	}

	if family != chainsel.FamilyEVM {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedChainFamily, family)
	}

	return family, nil
}

// ChainSelectorFromEVMChainID looks up the selector of an EVM chain id.
func ChainSelectorFromEVMChainID(chainID uint64) (ChainSelector, error) {
	chain, ok := chainsel.ChainByEvmChainID(chainID)
	if !ok {
		return 0, fmt.Errorf("%w for evm chain id %d", ErrChainNotFound, chainID)
	}

	return ChainSelector(chain.Selector), nil
}

// EVMChainID returns the EVM chain id of the selector.
func (s ChainSelector) EVMChainID() (uint64, error) {
	chain, ok := chainsel.ChainBySelector(uint64(s))
	if !ok {
		return 0, fmt.Errorf("%w for selector %d", ErrChainNotFound, s)
	}

	return chain.EvmChainID, nil
}

// Name returns the chain-selectors name of the chain, or the numeric selector when unknown.
func (s ChainSelector) Name() string {
	chain, ok := chainsel.ChainBySelector(uint64(s))
	if !ok || chain.Name == "" {
		return fmt.Sprintf("%d", uint64(s))
	}

	return chain.Name
}
