package txkit

import (
	"github.com/spf13/cobra"
)

// flags shared by every subcommand. They are read after cobra parsed the command line.
type rootFlags struct {
	envPath       string
	chainSelector uint64
}

func BuildTxkitCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := cobra.Command{
		Use:   "txkit",
		Short: "Submit calls and follow them until they are confirmed",
		Long:  ``,
	}

	cmd.PersistentFlags().StringVar(&flags.envPath, "env", ".env", "Path of the .env file holding PRIVATE_KEY and RPC_URL_<selector>")
	cmd.PersistentFlags().Uint64Var(&flags.chainSelector, "selector", 0, "Chain selector for the command to connect to")

	cmd.AddCommand(buildSubmitCmd(flags))
	cmd.AddCommand(buildExplorerCmd(flags))

	return &cmd
}
