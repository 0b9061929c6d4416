package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
	"github.com/shareledger/dividend-backend/internal/repository"
)

// LedgerService handles share event recording and the event approval
// workflow. Events enter the ledger as APPLIED and only participate in
// dividend computation once APPROVED.
type LedgerService struct {
	ledgerRepo *repository.LedgerRepository
}

// NewLedgerService creates a new LedgerService with the provided repository dependency.
func NewLedgerService(ledgerRepo *repository.LedgerRepository) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
	}
}

// RecordEvent stores a new share event in APPLIED status.
func (s *LedgerService) RecordEvent(ctx context.Context, req request.CreateShareEventRequest) (*model.ShareEvent, error) {
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, err
	}

	event := &model.ShareEvent{
		ID:        uuid.New().String(),
		AccountID: req.AccountID,
		ProductID: req.ProductID,
		Type:      req.Type,
		Status:    model.EventStatusApplied,
		Quantity:  req.Quantity,
		EventDate: eventDate,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ledgerRepo.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record share event: %w", err)
	}

	return event, nil
}

// ApproveEvent moves an APPLIED event to APPROVED, making it visible to
// dividend computation.
func (s *LedgerService) ApproveEvent(ctx context.Context, eventID string) error {
	return s.transitionEvent(ctx, eventID, model.EventStatusApproved)
}

// RejectEvent moves an APPLIED event to REJECTED.
func (s *LedgerService) RejectEvent(ctx context.Context, eventID string) error {
	return s.transitionEvent(ctx, eventID, model.EventStatusRejected)
}

func (s *LedgerService) transitionEvent(ctx context.Context, eventID, status string) error {
	event, err := s.ledgerRepo.GetEvent(eventID)
	if err != nil {
		return err
	}
	if event.Status != model.EventStatusApplied {
		return apperrors.ErrEventNotPending
	}
	return s.ledgerRepo.UpdateEventStatus(ctx, eventID, status)
}

// GetEventsPerAccount retrieves all share events of an account in event-date order.
func (s *LedgerService) GetEventsPerAccount(accountID string) ([]model.ShareEvent, error) {
	return s.ledgerRepo.GetEventsPerAccount(accountID)
}
