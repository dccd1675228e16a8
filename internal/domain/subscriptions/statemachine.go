package subscriptions

import (
	"time"

	"marketplace-admin/internal/domain/plans"
)

// Tick re-evaluates the subscription against now. The host schedules it;
// there is no clock inside this package. Transitions fire in a fixed order
// within one call: trial end first, then every renewal due by now, then
// expiry. Tick is idempotent: with non-decreasing now, repeated calls never
// revisit a past state or fire the same boundary twice.
func Tick(s *UserSubscription, now time.Time) {
	switch s.Status {
	case StatusExpired:
		return
	case StatusCancelled:
		// paid-through window still governs the final cutoff
		if s.ExpiryDate != nil && !now.Before(*s.ExpiryDate) {
			s.Status = StatusExpired
		}
		return
	}

	if s.Status == StatusTrialing {
		if s.TrialEndsAt != nil && now.Before(*s.TrialEndsAt) {
			return
		}
		s.Status = StatusActive
		s.IsTrialUsed = true
	}

	// Advance every billing boundary actually crossed by now. Each renewal
	// adds one cycle to the old expiry, not to now, so late processing never
	// drifts the schedule.
	for s.AutoRenew && s.NextBillingDate != nil && !now.Before(*s.NextBillingDate) {
		if !renew(s) {
			return
		}
	}

	if s.ExpiryDate != nil && !now.Before(*s.ExpiryDate) {
		if !s.AutoRenew || s.NextBillingDate == nil {
			s.Status = StatusExpired
			s.NextBillingDate = nil
		}
	}
}

func renew(s *UserSubscription) bool {
	due := *s.NextBillingDate
	base := due
	if s.ExpiryDate != nil {
		base = *s.ExpiryDate
	}
	next := plans.AddCycle(base, s.BillingCycle, s.BillingIntervalCount)
	if !next.After(base) {
		// no advancing cycle unit, nothing to renew into
		s.Status = StatusExpired
		s.NextBillingDate = nil
		return false
	}

	s.LastBillingDate = &due
	expiry := next
	s.ExpiryDate = &expiry
	nb := next
	s.NextBillingDate = &nb
	s.Status = StatusActive
	return true
}

// Cancel is the operator action. Access is kept through the already-paid
// period: expiryDate is untouched and a later Tick moves the subscription to
// expired once it passes.
func Cancel(s *UserSubscription, reason string, now time.Time) error {
	if s.Status.Terminal() {
		return ErrInvalidTransition
	}
	s.Status = StatusCancelled
	s.CancelledAt = &now
	if reason != "" {
		s.CancelReason = &reason
	}
	s.NextBillingDate = nil
	return nil
}

// CancelImmediately cuts access off right away instead of letting the
// paid-through period run out.
func CancelImmediately(s *UserSubscription, reason string, now time.Time) error {
	if err := Cancel(s, reason, now); err != nil {
		return err
	}
	cutoff := now
	s.ExpiryDate = &cutoff
	s.Status = StatusExpired
	return nil
}

// MarkRenewalFailed is the signal from the charging collaborator that a due
// renewal could not be collected. The schedule stops and the subscription
// expires; it is a transition, not an error.
func MarkRenewalFailed(s *UserSubscription, now time.Time) error {
	if s.Status.Terminal() {
		return ErrInvalidTransition
	}
	s.Status = StatusExpired
	s.NextBillingDate = nil
	return nil
}

// ChangeBillingDate is the manual operator edit of the next billing date.
// Only a live, renewing subscription has a schedule to move.
func ChangeBillingDate(s *UserSubscription, next time.Time) error {
	if s.Status.Terminal() || !s.AutoRenew {
		return ErrInvalidTransition
	}
	s.NextBillingDate = &next
	return nil
}
