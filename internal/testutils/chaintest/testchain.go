// Package chaintest holds the chains used across txkit tests.
package chaintest

import (
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/txkit/types"
)

var (
	// Chain1 is the simulated geth chain. ethclient/simulated backends always report 1337.
	Chain1RawSelector = cselectors.GETH_TESTNET.Selector
	Chain1Selector    = types.ChainSelector(Chain1RawSelector)
	Chain1EVMID       = cselectors.GETH_TESTNET.EvmChainID

	Chain2RawSelector = cselectors.ETHEREUM_TESTNET_SEPOLIA.Selector
	Chain2Selector    = types.ChainSelector(Chain2RawSelector)
	Chain2EVMID       = cselectors.ETHEREUM_TESTNET_SEPOLIA.EvmChainID

	Chain3RawSelector = cselectors.ETHEREUM_TESTNET_SEPOLIA_BASE_1.Selector
	Chain3Selector    = types.ChainSelector(Chain3RawSelector)
	Chain3EVMID       = cselectors.ETHEREUM_TESTNET_SEPOLIA_BASE_1.EvmChainID

	// Chain4 is Base mainnet, the default chain of the hosted kit.
	Chain4RawSelector = cselectors.ETHEREUM_MAINNET_BASE_1.Selector
	Chain4Selector    = types.ChainSelector(Chain4RawSelector)
	Chain4EVMID       = cselectors.ETHEREUM_MAINNET_BASE_1.EvmChainID

	// NonEVMChainSelector belongs to a chain family without an EVM adapter.
	NonEVMChainSelector = types.ChainSelector(cselectors.SOLANA_DEVNET.Selector)

	// TestInvalidChainSelector is a chain selector that doesn't exist.
	TestInvalidChainSelector = types.ChainSelector(0)
)
