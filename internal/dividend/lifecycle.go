package dividend

import (
	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
)

// Approve transitions a payout from PENDING_APPROVAL to APPROVED. The
// transition is one-way: approving an already-approved payout fails with
// ErrPayoutAlreadyApproved.
func Approve(payout *model.DividendPayout) error {
	if payout.Status == model.PayoutStatusApproved {
		return apperrors.ErrPayoutAlreadyApproved
	}
	payout.Status = model.PayoutStatusApproved
	return nil
}

// EnsureDeletable reports whether a payout may still be removed. Only
// PENDING_APPROVAL payouts can be deleted; approved payouts are immutable and
// permanent.
func EnsureDeletable(payout *model.DividendPayout) error {
	if payout.Status == model.PayoutStatusApproved {
		return apperrors.ErrPayoutAlreadyApproved
	}
	return nil
}
