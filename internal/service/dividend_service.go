package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/dividend"
	"github.com/shareledger/dividend-backend/internal/model"
	"github.com/shareledger/dividend-backend/internal/repository"
)

// DividendService owns the dividend payout lifecycle: it runs the engine for
// new computations and governs approval and deletion of existing payouts.
type DividendService struct {
	engine     *dividend.Engine
	payoutRepo *repository.PayoutRepository
}

// NewDividendService creates a new DividendService. The product and ledger
// repositories feed the engine through its ports; the payout repository
// persists results.
func NewDividendService(
	productRepo *repository.ProductRepository,
	ledgerRepo *repository.LedgerRepository,
	payoutRepo *repository.PayoutRepository,
) *DividendService {
	return &DividendService{
		engine:     dividend.NewEngine(productRepo, ledgerRepo),
		payoutRepo: payoutRepo,
	}
}

// ComputeDividend computes and persists one dividend payout for the request.
// The computation itself is pure; the payout and its allocations are saved in
// a single transaction, so a failed save leaves nothing behind. No payout is
// created when the engine reports no eligible shares.
func (s *DividendService) ComputeDividend(ctx context.Context, req request.ComputeDividendRequest) (*model.DividendPayout, error) {
	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidDateRange, req.PeriodStart)
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidDateRange, req.PeriodEnd)
	}
	poolAmount, err := decimal.NewFromString(req.PoolAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidPoolAmount, req.PoolAmount)
	}

	payout, err := s.engine.ComputeDividend(ctx, model.DividendRequest{
		ProductID:   req.ProductID,
		PoolAmount:  poolAmount,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		return nil, err
	}

	if err := s.payoutRepo.SavePayout(ctx, payout); err != nil {
		return nil, err
	}

	return payout, nil
}

// ApprovePayout finalizes a pending payout. Approval is one-way: a second
// approval attempt fails with apperrors.ErrPayoutAlreadyApproved.
func (s *DividendService) ApprovePayout(ctx context.Context, payoutID string) error {
	payout, err := s.payoutRepo.GetPayout(ctx, payoutID)
	if err != nil {
		return err
	}

	if err := dividend.Approve(&payout); err != nil {
		return err
	}

	return s.payoutRepo.UpdatePayoutStatus(ctx, payoutID, payout.Status)
}

// DeletePayout removes a pending payout together with its allocations.
// Approved payouts are permanent and cannot be deleted.
func (s *DividendService) DeletePayout(ctx context.Context, payoutID string) error {
	payout, err := s.payoutRepo.GetPayout(ctx, payoutID)
	if err != nil {
		return err
	}

	if err := dividend.EnsureDeletable(&payout); err != nil {
		return err
	}

	return s.payoutRepo.DeletePayout(ctx, payoutID)
}

// GetPayout retrieves a payout with its allocations.
func (s *DividendService) GetPayout(ctx context.Context, payoutID string) (model.DividendPayout, error) {
	return s.payoutRepo.GetPayout(ctx, payoutID)
}

// GetPayoutsPerProduct retrieves all payouts computed for a product, newest
// first, without allocation detail.
func (s *DividendService) GetPayoutsPerProduct(productID string) ([]model.DividendPayout, error) {
	return s.payoutRepo.GetPayoutsPerProduct(productID)
}
