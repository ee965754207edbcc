package sdk

import (
	"context"

	"github.com/smartcontractkit/txkit/types"
)

// ExplorerResolver resolves the block explorer base URL of a chain. It is only used to build
// display links.
type ExplorerResolver interface {
	ExplorerURL(chain types.ChainSelector) (string, error)
}

// BatchViewer opens the wallet's own status view for a batch.
type BatchViewer interface {
	ShowBatchStatus(ctx context.Context, batchID string) error
}

// LinkOpener opens an external link for the user.
type LinkOpener interface {
	OpenURL(url string) error
}
