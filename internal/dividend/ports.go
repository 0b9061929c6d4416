// Package dividend implements the share-dividend distribution engine: given a
// fixed dividend pool and a date range, allocate the pool across shareholder
// accounts in proportion to how long each account held how many shares during
// the period, reconstructed from the account's purchase/redemption history.
//
// The engine is pure and synchronous. It reads its inputs through narrow
// ports, operates only on plain value types, and performs no persistence of
// its own; the caller wraps the read-compute-persist sequence in its own
// transactional boundary.
package dividend

import (
	"context"
	"time"

	"github.com/shareledger/dividend-backend/internal/model"
)

// ProductConfigPort supplies the dividend configuration of a share product.
// Queried once per dividend request.
type ProductConfigPort interface {
	GetDividendConfig(ctx context.Context, productID string) (model.ShareProduct, error)
}

// TransactionLedgerPort supplies, per shareholder account, the APPROVED
// purchase and redemption events of a product dated on or before asOf.
// The snapshot must include the account's full earlier history so that the
// running share balance entering the period can be reconstructed.
type TransactionLedgerPort interface {
	GetApprovedShareEvents(ctx context.Context, productID string, asOf time.Time) (map[string][]model.ShareEvent, error)
}
