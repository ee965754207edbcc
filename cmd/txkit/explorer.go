package txkit

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/txkit/sdk/evm"
	"github.com/smartcontractkit/txkit/trigger"
	"github.com/smartcontractkit/txkit/types"
)

func buildExplorerCmd(flags *rootFlags) *cobra.Command {
	var txHash string

	cmd := cobra.Command{
		Use:   "explorer",
		Short: "Prints the block explorer link of a transaction",
		Long:  `Resolves the block explorer of the chain, honouring an EXPLORER_URL_<selector> override from the .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hexutil.Decode(txHash)
			if err != nil || len(raw) != common.HashLength {
				return errors.New("--tx must be a 32 byte hex transaction hash")
			}

			chain := types.ChainSelector(flags.chainSelector)
			explorers := evm.NewExplorers(loadExplorerOverrides(flags.envPath, chain))

			base, err := explorers.ExplorerURL(chain)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), trigger.TransactionURL(base, common.BytesToHash(raw).Hex()))

			return nil
		},
	}

	cmd.Flags().StringVar(&txHash, "tx", "", "Transaction hash")

	return &cmd
}
