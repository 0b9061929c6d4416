package dividend

import (
	"sort"
	"time"

	"github.com/shareledger/dividend-backend/internal/model"
)

// dayLength is the granularity of share-day accounting. Event dates and
// period bounds are calendar dates normalized to midnight UTC.
const dayLength = 24 * time.Hour

// daysBetween returns the number of whole days from one calendar date to
// another. Negative when to precedes from.
func daysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from) / dayLength)
}

// effectiveDate clamps an event date to the period start: no day credit
// accrues before the period begins.
func effectiveDate(eventDate, periodStart time.Time) time.Time {
	if eventDate.Before(periodStart) {
		return periodStart
	}
	return eventDate
}

// IsMatured reports whether a purchase that takes effect on effectiveDate is
// held long enough, measured to the period end, to earn dividend share-days.
// A purchase failing this check is excluded from accumulation entirely: it
// contributes no shares and no days, and does not move the accumulation
// cursor. Redemptions are never subject to this check.
func IsMatured(effectiveDate, periodEnd time.Time, minimumActivePeriodDays int) bool {
	return daysBetween(effectiveDate, periodEnd) >= int64(minimumActivePeriodDays)
}

// eligibleEvents filters one account's history down to the events that can
// earn or release share-days in the period: APPROVED purchases and
// redemptions dated on or before the period end, with immature purchases
// dropped. Charge payments never affect share quantity.
func eligibleEvents(events []model.ShareEvent, periodStart, periodEnd time.Time, minimumActivePeriodDays int) []model.ShareEvent {
	eligible := make([]model.ShareEvent, 0, len(events))
	for _, ev := range events {
		if ev.Status != model.EventStatusApproved || ev.Type == model.EventTypeChargePayment {
			continue
		}
		if ev.EventDate.After(periodEnd) {
			continue
		}
		if ev.Type == model.EventTypePurchase &&
			!IsMatured(effectiveDate(ev.EventDate, periodStart), periodEnd, minimumActivePeriodDays) {
			continue
		}
		eligible = append(eligible, ev)
	}
	return eligible
}

// foldState carries the left-fold over one account's sorted event sequence:
// share-days accumulated so far, the running share balance, and the date the
// balance last changed.
type foldState struct {
	shareDays     int64
	runningShares int64
	lastDate      time.Time
	hasLast       bool
}

// apply advances the fold by one event. Day credit is granted for the span
// between the previous effective date and this one at the old balance, then
// the balance is adjusted.
func (s foldState) apply(ev model.ShareEvent, periodStart time.Time) foldState {
	date := effectiveDate(ev.EventDate, periodStart)
	if s.hasLast {
		s.shareDays += daysBetween(s.lastDate, date) * s.runningShares
	}
	s.lastDate = date
	s.hasLast = true

	switch ev.Type {
	case model.EventTypePurchase:
		s.runningShares += ev.Quantity
	case model.EventTypeRedeem:
		s.runningShares -= ev.Quantity
	}
	return s
}

// AccumulateShareDays converts one account's event history into the total
// shares-held-times-days-held quantity for the period [periodStart,
// periodEnd]. Events dated before the period start are clamped to it, and a
// final segment from the last event to the period end closes the fold.
// Returns 0 when the account has no eligible lots.
func AccumulateShareDays(events []model.ShareEvent, periodStart, periodEnd time.Time, minimumActivePeriodDays int) int64 {
	eligible := eligibleEvents(events, periodStart, periodEnd, minimumActivePeriodDays)
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].EventDate.Before(eligible[j].EventDate)
	})

	var state foldState
	for _, ev := range eligible {
		state = state.apply(ev, periodStart)
	}
	if state.hasLast {
		state.shareDays += daysBetween(state.lastDate, periodEnd) * state.runningShares
	}

	if state.shareDays < 0 {
		return 0
	}
	return state.shareDays
}
