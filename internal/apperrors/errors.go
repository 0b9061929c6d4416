package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrProductNotFound indicates that a share product with the given ID does not exist.
	ErrProductNotFound = errors.New("share product not found")

	// ErrPayoutNotFound indicates that a dividend payout with the given ID does not exist.
	ErrPayoutNotFound = errors.New("dividend payout not found")

	// ErrEventNotFound indicates that a share event with the given ID does not exist.
	ErrEventNotFound = errors.New("share event not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidDateRange indicates that the requested dividend period is invalid
	// (period start is after period end).
	ErrInvalidDateRange = errors.New("invalid dividend period")

	// ErrInvalidPoolAmount indicates that the dividend pool amount is zero or negative.
	ErrInvalidPoolAmount = errors.New("pool amount must be positive")

	// ErrNoEligibleShares indicates that no account holds eligible shares for the
	// requested period, so there is nothing to allocate and no payout is created.
	ErrNoEligibleShares = errors.New("no eligible shares for the dividend period")

	// ErrEmptyAllocation indicates that a payout was requested for an empty
	// allocation set. Under correct composition this never happens.
	ErrEmptyAllocation = errors.New("allocation set cannot be empty")

	// ErrPayoutAlreadyApproved indicates an attempt to approve or delete a payout
	// that has already been approved. Approved payouts are immutable and permanent.
	ErrPayoutAlreadyApproved = errors.New("dividend payout already approved")

	// ErrDuplicatePayout indicates that a payout already exists for the same
	// product and period.
	ErrDuplicatePayout = errors.New("dividend payout already exists for product and period")

	// ErrEventNotPending indicates an attempt to approve or reject a share event
	// that is no longer in APPLIED status.
	ErrEventNotPending = errors.New("share event is not pending approval")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	// Dividend operation errors
	ErrFailedToComputeDividend = errors.New("failed to compute dividend")
	ErrFailedToRetrievePayouts = errors.New("failed to retrieve dividend payouts")

	// Product operation errors
	ErrFailedToRetrieveProducts = errors.New("failed to retrieve share products")

	// Ledger operation errors
	ErrFailedToRetrieveEvents = errors.New("failed to retrieve share events")
)
