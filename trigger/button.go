// Package trigger derives the presentation state of the action triggers of an operation and
// routes their clicks.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/txkit"
	"github.com/smartcontractkit/txkit/sdk"
)

const (
	// SuccessText is shown once the operation has a receipt.
	SuccessText = "View transaction"
	// RetryText is shown after a failure.
	RetryText = "Try again"
)

var validate = validator.New()

// ContentKind selects how the content of a trigger is rendered.
type ContentKind string

const (
	ContentDefault ContentKind = "default"
	ContentSuccess ContentKind = "success"
	ContentError   ContentKind = "error"
)

// Content is what a trigger displays.
type Content struct {
	Kind ContentKind
	Text string
}

// State is the derived presentation state of a trigger.
type State struct {
	Disabled bool
	Spinner  bool
	Content  Content
}

// Derive computes the state of a trigger from a snapshot of its operation. It holds no state of
// its own.
func Derive(oc txkit.OperationContext) State {
	hasReceipt := oc.HasReceipt()
	errMsg := oc.ErrorMessage()

	inProgress := oc.IsLoading || oc.Status.Name.IsInFlight()
	missingInputs := len(oc.Calls) == 0 || !oc.HasAccount
	awaitingReceipt := oc.Handle != nil && !oc.Status.Name.IsTerminal()

	st := State{
		Disabled: !hasReceipt && (inProgress || missingInputs || awaitingReceipt || oc.Disabled),
		Spinner:  !hasReceipt && errMsg == "" && (inProgress || awaitingReceipt),
	}

	switch {
	case hasReceipt:
		st.Content = Content{Kind: ContentSuccess, Text: SuccessText}
	case errMsg != "":
		st.Content = Content{Kind: ContentError, Text: RetryText}
	default:
		st.Content = Content{Kind: ContentDefault, Text: label(oc)}
	}

	return st
}

func label(oc txkit.OperationContext) string {
	if oc.Label == "" {
		return txkit.DefaultButtonText
	}

	return oc.Label
}

// ButtonConfig holds the collaborators a Button needs to route clicks.
type ButtonConfig struct {
	Accounts sdk.AccountProvider  `validate:"required"`
	Explorer sdk.ExplorerResolver `validate:"required"`
	Viewer   sdk.BatchViewer      `validate:"required"`
	Links    sdk.LinkOpener       `validate:"required"`

	// Logger defaults to the production logger.
	Logger sdk.Logger
}

// Button is the action trigger of an operation.
type Button struct {
	handle txkit.Handle
	cfg    ButtonConfig
}

// NewButton creates a trigger for the operation behind handle.
func NewButton(handle txkit.Handle, cfg ButtonConfig) (*Button, error) {
	if handle == nil {
		return nil, errors.New("invalid button config: nil handle")
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid button config: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = sdk.LoggerFrom(context.Background())
	}

	return &Button{handle: handle, cfg: cfg}, nil
}

// State returns the current presentation state.
func (b *Button) State(ctx context.Context) State {
	return Derive(b.handle.Context(ctx))
}

// Click performs the action of the trigger.
//
// Once the operation has a receipt, a click opens the wallet's batch status view for batch
// submissions and the block explorer page of the transaction otherwise. Before that, a click
// connects an account if none is bound and then submits.
func (b *Button) Click(ctx context.Context) error {
	oc := b.handle.Context(ctx)

	if oc.HasReceipt() {
		if oc.HasTransactionID() {
			return b.cfg.Viewer.ShowBatchStatus(ctx, oc.BatchID())
		}

		return b.openExplorer(oc)
	}

	if !oc.HasAccount {
		account, err := b.cfg.Accounts.RequestConnection(ctx)
		if err != nil {
			return fmt.Errorf("failed to connect account: %w", err)
		}
		b.cfg.Logger.Infof("operation %s: connected %s", oc.ID, account.Hex())
	}

	b.handle.Submit(ctx)

	return nil
}

func (b *Button) openExplorer(oc txkit.OperationContext) error {
	base, err := b.cfg.Explorer.ExplorerURL(oc.Chain)
	if err != nil {
		return err
	}

	return b.cfg.Links.OpenURL(TransactionURL(base, oc.TransactionHash().Hex()))
}

// TransactionURL returns the explorer page of a transaction.
func TransactionURL(explorerURL string, txHash string) string {
	return strings.TrimSuffix(explorerURL, "/") + "/tx/" + txHash
}
