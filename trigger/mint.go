package trigger

import (
	"context"

	"github.com/smartcontractkit/txkit"
	"github.com/smartcontractkit/txkit/types"
)

const (
	// MintText is the default label of a mint trigger.
	MintText = "Mint"
	// MintEndedText is shown when the account can no longer mint.
	MintEndedText = "Mint ended"
)

// mintForwardedStatuses are the transaction statuses mirrored into the NFT lifecycle.
var mintForwardedStatuses = map[types.StatusName]bool{
	types.StatusTransactionPending:        true,
	types.StatusTransactionLegacyExecuted: true,
	types.StatusSuccess:                   true,
	types.StatusError:                     true,
}

// MintState is the derived presentation state of a mint trigger.
type MintState struct {
	State
	// ConnectPrompt is set when no account is bound; a connect control replaces the trigger.
	ConnectPrompt bool
}

// DeriveMint computes the state of a mint trigger. eligible reports whether the bound account may
// still mint.
func DeriveMint(oc txkit.OperationContext, eligible bool) MintState {
	if !oc.HasAccount {
		return MintState{ConnectPrompt: true}
	}

	if oc.Label == "" || oc.Label == txkit.DefaultButtonText {
		oc.Label = MintText
	}

	buildErr := buildError(oc)
	switch {
	case !eligible:
		oc.Label = MintEndedText
	case buildErr != "":
		oc.Label = buildErr
	}

	// The calls are still being assembled, or could not be.
	if len(oc.Calls) == 0 || oc.Status.Name == types.StatusBuildingCalls || buildErr != "" {
		return MintState{State: State{
			Disabled: true,
			Spinner:  buildErr == "" && eligible,
			Content:  Content{Kind: ContentDefault, Text: oc.Label},
		}}
	}

	st := Derive(oc)
	if !eligible && !oc.HasReceipt() {
		st.Disabled = true
		st.Content = Content{Kind: ContentDefault, Text: MintEndedText}
	}

	return MintState{State: st}
}

func buildError(oc txkit.OperationContext) string {
	se := oc.Status.Data.Error
	if oc.Status.Name != types.StatusError || se == nil || se.Code != types.ErrorCodeBuildCalls {
		return ""
	}

	return se.Message
}

// MintButton is the action trigger of an NFT mint.
type MintButton struct {
	*Button

	eligible func(ctx context.Context) bool
}

// NewMintButton creates a mint trigger. eligible reports whether the bound account may still
// mint; a nil func treats every account as eligible.
func NewMintButton(handle txkit.Handle, cfg ButtonConfig, eligible func(ctx context.Context) bool) (*MintButton, error) {
	b, err := NewButton(handle, cfg)
	if err != nil {
		return nil, err
	}
	if eligible == nil {
		eligible = func(context.Context) bool { return true }
	}

	return &MintButton{Button: b, eligible: eligible}, nil
}

// State returns the current presentation state.
func (m *MintButton) State(ctx context.Context) MintState {
	return DeriveMint(m.handle.Context(ctx), m.eligible(ctx))
}

// Click performs the action of the trigger. It does nothing while the trigger is disabled,
// unless a receipt link can be opened.
func (m *MintButton) Click(ctx context.Context) error {
	st := m.State(ctx)
	if st.ConnectPrompt {
		_, err := m.cfg.Accounts.RequestConnection(ctx)
		return err
	}
	if st.Disabled {
		return nil
	}

	return m.Button.Click(ctx)
}

// ForwardMintStatus mirrors the transaction statuses tracked by the NFT lifecycle into sink. It
// returns a function stopping the forwarding.
func ForwardMintStatus(h txkit.Handle, sink func(types.LifecycleStatus)) func() {
	return h.Subscribe(func(s types.LifecycleStatus) {
		if mintForwardedStatuses[s.Name] {
			sink(s)
		}
	})
}
