package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
	"github.com/shareledger/dividend-backend/internal/service"
	"github.com/shareledger/dividend-backend/internal/testutil"
)

func computeRequest(productID string) request.ComputeDividendRequest {
	return request.ComputeDividendRequest{
		ProductID:   productID,
		PoolAmount:  "300.00",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-31",
	}
}

func TestComputeDividend(t *testing.T) {
	ctx := context.Background()

	t.Run("computes and persists a pending payout", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		product := testutil.NewProduct().Build(t, db)
		accountX := testutil.MakeID()
		accountY := testutil.MakeID()
		testutil.CreateApprovedPurchase(t, db, product.ID, accountX, 100, "2024-01-01")
		testutil.CreateApprovedRedeem(t, db, product.ID, accountX, 40, "2024-01-11")
		testutil.CreateApprovedPurchase(t, db, product.ID, accountY, 40, "2024-01-11")

		payout, err := svc.ComputeDividend(ctx, computeRequest(product.ID))
		if err != nil {
			t.Fatalf("ComputeDividend() returned unexpected error: %v", err)
		}

		if payout.Status != model.PayoutStatusPendingApproval {
			t.Errorf("Expected PENDING_APPROVAL status, got %s", payout.Status)
		}
		if len(payout.Allocations) != 2 {
			t.Fatalf("Expected 2 allocations, got %d", len(payout.Allocations))
		}

		testutil.AssertRowCount(t, db, "dividend_payout", 1)
		testutil.AssertRowCount(t, db, "dividend_allocation", 2)

		// Reload to confirm the persisted rows round-trip intact.
		stored, err := svc.GetPayout(ctx, payout.ID)
		if err != nil {
			t.Fatalf("GetPayout() returned unexpected error: %v", err)
		}
		if !stored.PoolAmount.Equal(decimal.RequireFromString("300.00")) {
			t.Errorf("Expected pool amount 300.00, got %s", stored.PoolAmount)
		}
		if len(stored.Allocations) != 2 {
			t.Fatalf("Expected 2 stored allocations, got %d", len(stored.Allocations))
		}
		byAccount := make(map[string]model.AccountAllocation)
		for _, allocation := range stored.Allocations {
			byAccount[allocation.AccountID] = allocation
		}
		if !byAccount[accountX].Amount.Equal(decimal.RequireFromString("220.00")) {
			t.Errorf("Expected 220.00 for the first account, got %s", byAccount[accountX].Amount)
		}
		if !byAccount[accountY].Amount.Equal(decimal.RequireFromString("80.00")) {
			t.Errorf("Expected 80.00 for the second account, got %s", byAccount[accountY].Amount)
		}
	})

	t.Run("persists nothing when no shares are eligible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		product := testutil.NewProduct().WithMinimumActivePeriodDays(10).Build(t, db)
		// Purchased too close to the period end to mature.
		testutil.CreateApprovedPurchase(t, db, product.ID, testutil.MakeID(), 50, "2024-01-26")

		_, err := svc.ComputeDividend(ctx, computeRequest(product.ID))

		if !errors.Is(err, apperrors.ErrNoEligibleShares) {
			t.Errorf("Expected ErrNoEligibleShares, got %v", err)
		}
		testutil.AssertRowCount(t, db, "dividend_payout", 0)
		testutil.AssertRowCount(t, db, "dividend_allocation", 0)
	})

	t.Run("rejects a duplicate period for the same product", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		product := testutil.NewProduct().Build(t, db)
		testutil.CreateApprovedPurchase(t, db, product.ID, testutil.MakeID(), 100, "2024-01-01")

		if _, err := svc.ComputeDividend(ctx, computeRequest(product.ID)); err != nil {
			t.Fatalf("First ComputeDividend() returned unexpected error: %v", err)
		}

		_, err := svc.ComputeDividend(ctx, computeRequest(product.ID))

		if !errors.Is(err, apperrors.ErrDuplicatePayout) {
			t.Errorf("Expected ErrDuplicatePayout, got %v", err)
		}
		testutil.AssertRowCount(t, db, "dividend_payout", 1)
	})

	t.Run("fails for an unknown product", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		_, err := svc.ComputeDividend(ctx, computeRequest(testutil.MakeID()))

		if !errors.Is(err, apperrors.ErrProductNotFound) {
			t.Errorf("Expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("rejects malformed dates and amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)
		product := testutil.NewProduct().Build(t, db)

		badDate := computeRequest(product.ID)
		badDate.PeriodStart = "January 1st"
		if _, err := svc.ComputeDividend(ctx, badDate); !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange for malformed date, got %v", err)
		}

		badPool := computeRequest(product.ID)
		badPool.PoolAmount = "lots"
		if _, err := svc.ComputeDividend(ctx, badPool); !errors.Is(err, apperrors.ErrInvalidPoolAmount) {
			t.Errorf("Expected ErrInvalidPoolAmount for malformed amount, got %v", err)
		}
	})
}

func TestPayoutLifecycle(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*sql.DB, *service.DividendService, string) {
		t.Helper()

		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		product := testutil.NewProduct().Build(t, db)
		testutil.CreateApprovedPurchase(t, db, product.ID, testutil.MakeID(), 100, "2024-01-01")

		payout, err := svc.ComputeDividend(ctx, computeRequest(product.ID))
		if err != nil {
			t.Fatalf("ComputeDividend() returned unexpected error: %v", err)
		}

		return db, svc, payout.ID
	}

	t.Run("approve finalizes a pending payout", func(t *testing.T) {
		_, svc, payoutID := setup(t)

		if err := svc.ApprovePayout(ctx, payoutID); err != nil {
			t.Fatalf("ApprovePayout() returned unexpected error: %v", err)
		}

		stored, err := svc.GetPayout(ctx, payoutID)
		if err != nil {
			t.Fatalf("GetPayout() returned unexpected error: %v", err)
		}
		if stored.Status != model.PayoutStatusApproved {
			t.Errorf("Expected APPROVED status, got %s", stored.Status)
		}
	})

	t.Run("approve is one-way", func(t *testing.T) {
		_, svc, payoutID := setup(t)

		if err := svc.ApprovePayout(ctx, payoutID); err != nil {
			t.Fatalf("ApprovePayout() returned unexpected error: %v", err)
		}

		err := svc.ApprovePayout(ctx, payoutID)
		if !errors.Is(err, apperrors.ErrPayoutAlreadyApproved) {
			t.Errorf("Expected ErrPayoutAlreadyApproved, got %v", err)
		}
	})

	t.Run("delete removes a pending payout and its allocations", func(t *testing.T) {
		db, svc, payoutID := setup(t)

		if err := svc.DeletePayout(ctx, payoutID); err != nil {
			t.Fatalf("DeletePayout() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "dividend_payout", 0)
		testutil.AssertRowCount(t, db, "dividend_allocation", 0)

		_, err := svc.GetPayout(ctx, payoutID)
		if !errors.Is(err, apperrors.ErrPayoutNotFound) {
			t.Errorf("Expected ErrPayoutNotFound after delete, got %v", err)
		}
	})

	t.Run("delete refuses an approved payout", func(t *testing.T) {
		db, svc, payoutID := setup(t)

		if err := svc.ApprovePayout(ctx, payoutID); err != nil {
			t.Fatalf("ApprovePayout() returned unexpected error: %v", err)
		}

		err := svc.DeletePayout(ctx, payoutID)
		if !errors.Is(err, apperrors.ErrPayoutAlreadyApproved) {
			t.Errorf("Expected ErrPayoutAlreadyApproved, got %v", err)
		}
		testutil.AssertRowCount(t, db, "dividend_payout", 1)
	})

	t.Run("unknown payout surfaces as not found", func(t *testing.T) {
		_, svc, _ := setup(t)

		if err := svc.ApprovePayout(ctx, testutil.MakeID()); !errors.Is(err, apperrors.ErrPayoutNotFound) {
			t.Errorf("Expected ErrPayoutNotFound, got %v", err)
		}
		if err := svc.DeletePayout(ctx, testutil.MakeID()); !errors.Is(err, apperrors.ErrPayoutNotFound) {
			t.Errorf("Expected ErrPayoutNotFound, got %v", err)
		}
	})
}

func TestGetPayoutsPerProduct(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDividendService(t, db)

	product := testutil.NewProduct().Build(t, db)
	testutil.CreateApprovedPurchase(t, db, product.ID, testutil.MakeID(), 100, "2023-12-01")

	january := computeRequest(product.ID)
	february := computeRequest(product.ID)
	february.PeriodStart = "2024-02-01"
	february.PeriodEnd = "2024-02-29"

	if _, err := svc.ComputeDividend(ctx, january); err != nil {
		t.Fatalf("ComputeDividend() returned unexpected error: %v", err)
	}
	if _, err := svc.ComputeDividend(ctx, february); err != nil {
		t.Fatalf("ComputeDividend() returned unexpected error: %v", err)
	}

	payouts, err := svc.GetPayoutsPerProduct(product.ID)
	if err != nil {
		t.Fatalf("GetPayoutsPerProduct() returned unexpected error: %v", err)
	}

	if len(payouts) != 2 {
		t.Fatalf("Expected 2 payouts, got %d", len(payouts))
	}
	for _, payout := range payouts {
		if payout.ProductID != product.ID {
			t.Errorf("Expected payouts for product %s, got %s", product.ID, payout.ProductID)
		}
		if len(payout.Allocations) != 0 {
			t.Errorf("Expected the listing to omit allocation detail, got %d rows", len(payout.Allocations))
		}
	}
}
