package txkit

import (
	"context"
	"errors"

	"github.com/smartcontractkit/txkit/types"
)

// ErrEmptyChargeID is returned when a charge handler succeeds without a charge identifier.
var ErrEmptyChargeID = errors.New("charge handler returned an empty charge id")

// ChargeHandler creates a charge with the merchant backend and returns its identifier.
type ChargeHandler func(ctx context.Context) (string, error)

// ChargeResolver returns the calls paying the given charge.
type ChargeResolver func(ctx context.Context, chargeID string) ([]types.Call, error)

// Charge creates a charge, builds the calls paying it and submits them. It returns the charge
// identifier, or an empty string if no charge could be created. Failures are reported as an
// error status.
func (p *Provider) Charge(ctx context.Context, handler ChargeHandler, resolve ChargeResolver) string {
	var chargeID string

	ok := p.BuildCalls(ctx, func(ctx context.Context) ([]types.Call, error) {
		id, err := handler(ctx)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, ErrEmptyChargeID
		}
		chargeID = id

		return resolve(ctx, id)
	})

	p.mu.Lock()
	p.chargeID = chargeID
	p.mu.Unlock()

	if !ok {
		return chargeID
	}

	p.lggr.Infof("operation %s: paying charge %s", p.id, chargeID)
	p.Submit(ctx)

	return chargeID
}
