package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shareledger/dividend-backend/internal/repository"
	"github.com/shareledger/dividend-backend/internal/service"
)

// MakeID generates a unique identifier for test entities.
func MakeID() string {
	return uuid.New().String()
}

func NewTestProductService(t *testing.T, db *sql.DB) *service.ProductService {
	t.Helper()

	productRepo := repository.NewProductRepository(db)

	return service.NewProductService(
		productRepo,
	)
}

func NewTestLedgerService(t *testing.T, db *sql.DB) *service.LedgerService {
	t.Helper()

	ledgerRepo := repository.NewLedgerRepository(db)

	return service.NewLedgerService(
		ledgerRepo,
	)
}

func NewTestDividendService(t *testing.T, db *sql.DB) *service.DividendService {
	t.Helper()

	productRepo := repository.NewProductRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)

	return service.NewDividendService(
		productRepo,
		ledgerRepo,
		payoutRepo,
	)
}
