package txkit

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/txkit/sdk"
	"github.com/smartcontractkit/txkit/types"
)

const (
	// DefaultConfirmationTimeout bounds how long a submission is tracked before it is reported as
	// a retryable timeout.
	DefaultConfirmationTimeout = 10 * time.Minute

	// DefaultButtonText is the label of an action trigger when none is configured.
	DefaultButtonText = "Transact"
)

var validate = validator.New()

// Config wires the collaborators of an operation.
type Config struct {
	Chain        types.ChainSelector    `validate:"required"`
	Accounts     sdk.AccountProvider    `validate:"required"`
	Capabilities sdk.CapabilityProvider `validate:"required"`
	Sender       sdk.Sender             `validate:"required"`
	Receipts     sdk.ReceiptWatcher     `validate:"required"`
	Batches      sdk.BatchWatcher       `validate:"required"`

	// Calls is the initial call sequence. It may be set later with SetCalls or BuildCalls.
	Calls []types.Call

	// ConfirmationTimeout bounds confirmation tracking. Zero selects DefaultConfirmationTimeout.
	ConfirmationTimeout time.Duration `validate:"gte=0"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	for i, call := range c.Calls {
		if err := call.Validate(); err != nil {
			return NewInvalidCallError(i, err)
		}
	}

	return nil
}

func (c Config) confirmationTimeout() time.Duration {
	if c.ConfirmationTimeout == 0 {
		return DefaultConfirmationTimeout
	}

	return c.ConfirmationTimeout
}

// Options is the host configuration accepted when an operation is mounted.
type Options struct {
	// OnStatus is invoked on every applied transition.
	OnStatus func(types.LifecycleStatus)
	// OnSuccess is invoked once per success transition with its receipts.
	OnSuccess func([]types.Receipt)
	// OnError is invoked once per error transition with its payload.
	OnError func(*types.ErrorPayload)

	// Disabled forces the action trigger disabled regardless of internal state.
	Disabled bool
	// Text overrides the action trigger label.
	Text string `validate:"max=64"`

	// Logger overrides the logger taken from the mount context.
	Logger sdk.Logger
}

// Validate checks the options.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	return nil
}

// Label returns the configured text or the default label.
func (o Options) Label() string {
	if o.Text == "" {
		return DefaultButtonText
	}

	return o.Text
}
