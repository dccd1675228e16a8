package subscriptions

import (
	"fmt"
	"time"

	"marketplace-admin/internal/domain/plans"
)

// Assignment is the event of granting a plan to a user. Nil fields fall back
// to their defaults: StartDate to the current time, AutoRenew to true.
// ExpiryDate, when set, is an operator override that wins over all derivation.
type Assignment struct {
	StartDate  *time.Time
	AutoRenew  *bool
	ExpiryDate *time.Time
}

// Compute derives the initial state and schedule of a subscription from a
// plan and an assignment. It is pure: deterministic given now, no I/O.
//
// The caller owns identity (ID, UserID, OrderID, Notes); everything derived
// from the plan is snapshotted here so later plan edits never leak in.
func Compute(plan *plans.Plan, a Assignment, now time.Time) (UserSubscription, error) {
	if plan.BillingIntervalCount < 1 {
		return UserSubscription{}, fmt.Errorf("%w: billing interval count must be >= 1", ErrInvalidPlan)
	}
	if plan.BillingCycle != plans.CycleLifetime && !plans.HasUnit(plan.BillingCycle) &&
		a.ExpiryDate == nil && plan.DurationDays == nil && plan.ExpiresAfterDays == nil {
		return UserSubscription{}, fmt.Errorf("%w: no billing cycle unit and no expiry bound", ErrInvalidPlan)
	}

	start := now
	if a.StartDate != nil {
		start = *a.StartDate
	}
	autoRenew := true
	if a.AutoRenew != nil {
		autoRenew = *a.AutoRenew
	}

	var trialEndsAt *time.Time
	if plan.TrialDays > 0 {
		t := start.AddDate(0, 0, plan.TrialDays)
		trialEndsAt = &t
	}

	var expiryDate *time.Time
	switch {
	case a.ExpiryDate != nil:
		if a.ExpiryDate.Before(start) {
			return UserSubscription{}, fmt.Errorf("%w: expiry date before start date", ErrInvalidAssignment)
		}
		e := *a.ExpiryDate
		expiryDate = &e
	case plans.HasUnit(plan.BillingCycle):
		e := plans.AddCycle(start, plan.BillingCycle, plan.BillingIntervalCount)
		expiryDate = &e
	}

	// Duration caps bound derived expiry, lifetime plans included. An explicit
	// operator override is taken verbatim and never capped.
	if a.ExpiryDate == nil {
		expiryDate = capExpiry(expiryDate, start, plan.DurationDays)
		expiryDate = capExpiry(expiryDate, start, plan.ExpiresAfterDays)
	}

	var nextBillingDate *time.Time
	if autoRenew && expiryDate != nil {
		nb := *expiryDate
		nextBillingDate = &nb
	}

	status := StatusActive
	trialUsed := false
	if trialEndsAt != nil {
		if trialEndsAt.After(now) {
			status = StatusTrialing
		} else {
			// window already behind us, counts as consumed
			trialUsed = true
		}
	}

	return UserSubscription{
		PlanID:               plan.ID,
		PlanName:             plan.Name,
		Price:                plan.Price,
		Currency:             plan.Currency,
		BillingCycle:         plan.BillingCycle,
		BillingIntervalCount: plan.BillingIntervalCount,
		Status:               status,
		StartDate:            start,
		TrialEndsAt:          trialEndsAt,
		ExpiryDate:           expiryDate,
		NextBillingDate:      nextBillingDate,
		AutoRenew:            autoRenew,
		IsTrialUsed:          trialUsed,
	}, nil
}

func capExpiry(expiry *time.Time, start time.Time, days *int) *time.Time {
	if days == nil {
		return expiry
	}
	bound := start.AddDate(0, 0, *days)
	if expiry == nil || bound.Before(*expiry) {
		return &bound
	}
	return expiry
}
