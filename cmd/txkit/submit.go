package txkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/txkit"
	"github.com/smartcontractkit/txkit/internal/utils/safecast"
	"github.com/smartcontractkit/txkit/sdk"
	sdkerrors "github.com/smartcontractkit/txkit/sdk/errors"
	"github.com/smartcontractkit/txkit/sdk/evm"
	"github.com/smartcontractkit/txkit/trigger"
	"github.com/smartcontractkit/txkit/types"
)

func buildSubmitCmd(flags *rootFlags) *cobra.Command {
	var (
		rawCalls []string
		verbose  bool
	)

	cmd := cobra.Command{
		Use:   "submit",
		Short: "Submits calls and waits until they are confirmed",
		Long: `Signs the calls with PRIVATE_KEY and sends them one by one through RPC_URL_<selector>.
When WALLET_RPC_URL is set, the wallet behind it is used instead and the calls are sent as one
atomic batch if the wallet supports it. TXKIT_CONFIRMATION_TIMEOUT bounds the wait.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rawCalls) == 0 {
				return errors.New("at least one --call is required")
			}
			calls := make([]types.Call, 0, len(rawCalls))
			for _, raw := range rawCalls {
				call, err := parseCall(raw)
				if err != nil {
					return err
				}
				calls = append(calls, call)
			}

			lggr, err := newLogger(verbose)
			if err != nil {
				return err
			}
			if err = loadEnv(flags.envPath); err != nil {
				return err
			}

			chain := types.ChainSelector(flags.chainSelector)
			cfg, viewer, err := newConfig(cmd.Context(), chain, lggr)
			if err != nil {
				return err
			}
			cfg.Calls = calls

			buttonCfg := trigger.ButtonConfig{
				Accounts: cfg.Accounts,
				Explorer: evm.NewExplorers(loadExplorerOverrides(flags.envPath, chain)),
				Viewer:   viewer,
				Links:    &linkPrinter{out: cmd.OutOrStdout()},
				Logger:   lggr,
			}

			return submit(cmd, cfg, buttonCfg, lggr)
		},
	}

	cmd.Flags().StringArrayVar(&rawCalls, "call", nil, "Call as to[:data[:value]], repeat for several calls")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	return &cmd
}

// newConfig wires the EVM collaborators: a local signer, or the wallet in WALLET_RPC_URL.
func newConfig(ctx context.Context, chain types.ChainSelector, lggr sdk.Logger) (txkit.Config, sdk.BatchViewer, error) {
	if _, err := types.GetChainSelectorFamily(chain); err != nil {
		return txkit.Config{}, nil, err
	}

	client, err := loadRPC(chain)
	if err != nil {
		return txkit.Config{}, nil, err
	}

	timeout, err := loadDuration("TXKIT_CONFIRMATION_TIMEOUT", txkit.DefaultConfirmationTimeout)
	if err != nil {
		return txkit.Config{}, nil, err
	}

	cfg := txkit.Config{
		Chain:               chain,
		Receipts:            evm.NewReceiptWatcher(client, evm.DefaultPollConfig(), lggr),
		ConfirmationTimeout: timeout,
	}

	wallet, ok, err := loadWallet()
	if err != nil {
		return txkit.Config{}, nil, err
	}
	if ok {
		sender, err := evm.NewSender(chain, lggr, evm.WithWallet(wallet))
		if err != nil {
			return txkit.Config{}, nil, err
		}
		caps, err := evm.NewCapabilities(wallet, chain, lggr)
		if err != nil {
			return txkit.Config{}, nil, err
		}

		cfg.Accounts = evm.NewWalletAccount(wallet, lggr)
		cfg.Capabilities = caps
		cfg.Sender = sender
		cfg.Batches = evm.NewBatchWatcher(wallet, evm.DefaultPollConfig(), lggr)

		return cfg, evm.NewWalletBatchViewer(wallet), nil
	}

	pk, err := loadPrivateKey()
	if err != nil {
		return txkit.Config{}, nil, err
	}
	evmChainID, err := chain.EVMChainID()
	if err != nil {
		return txkit.Config{}, nil, err
	}
	chainID, err := safecast.Uint64ToInt64(evmChainID)
	if err != nil {
		return txkit.Config{}, nil, err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(pk, big.NewInt(chainID))
	if err != nil {
		return txkit.Config{}, nil, err
	}
	auth.Context = ctx

	sender, err := evm.NewSender(chain, lggr, evm.WithSigner(client, auth))
	if err != nil {
		return txkit.Config{}, nil, err
	}
	account := evm.NewAccount(auth)

	cfg.Accounts = account
	cfg.Capabilities = account
	cfg.Sender = sender
	// A local signer never submits batches; the node client only fills the slot.
	cfg.Batches = evm.NewBatchWatcher(client.Client(), evm.DefaultPollConfig(), lggr)

	return cfg, evm.NewWalletBatchViewer(client.Client()), nil
}

// submit runs one operation to a terminal status through its action trigger, then follows the
// trigger to the receipt link.
func submit(cmd *cobra.Command, cfg txkit.Config, buttonCfg trigger.ButtonConfig, lggr sdk.Logger) error {
	ctx := cmd.Context()
	terminal := make(chan types.LifecycleStatus, 1)

	p, err := txkit.NewProvider(ctx, cfg, txkit.Options{
		Logger: lggr,
		OnStatus: func(s types.LifecycleStatus) {
			lggr.Infof("status: %s", s)
			if s.Name.IsTerminal() {
				select {
				case terminal <- s:
				default:
				}
			}
		},
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = p.Close()
	}()

	button, err := trigger.NewButton(p.Handle(), buttonCfg)
	if err != nil {
		return err
	}
	if err = button.Click(ctx); err != nil {
		return err
	}

	var final types.LifecycleStatus
	select {
	case final = <-terminal:
	case <-ctx.Done():
		return ctx.Err()
	}

	out := cmd.OutOrStdout()
	if final.Name == types.StatusError {
		se := final.Data.Error
		for _, hash := range se.TransactionHashes {
			fmt.Fprintf(out, "submitted before the failure: %s\n", hash.Hex())
		}

		return se
	}

	for _, r := range final.Data.Receipts {
		fmt.Fprintf(out, "confirmed %s in block %d\n", r.TxHash.Hex(), r.BlockNumber)
	}

	// With a receipt, the trigger opens the explorer page or the wallet's batch view.
	err = button.Click(ctx)
	var missing *sdkerrors.MissingExplorerError
	if errors.As(err, &missing) {
		lggr.Debugf("no explorer link: %v", err)
		return nil
	}

	return err
}

// linkPrinter opens links by printing them.
type linkPrinter struct {
	out io.Writer
}

func (l *linkPrinter) OpenURL(url string) error {
	_, err := fmt.Fprintln(l.out, url)
	return err
}
