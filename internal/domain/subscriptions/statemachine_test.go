package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-admin/internal/domain/plans"
)

func newSub(t *testing.T, plan *plans.Plan, a Assignment, now time.Time) *UserSubscription {
	t.Helper()
	sub, err := Compute(plan, a, now)
	require.NoError(t, err)
	return &sub
}

func TestTickTrialToActive(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)
	require.Equal(t, StatusTrialing, sub.Status)

	// inside the trial window nothing moves
	Tick(sub, date(2024, 1, 20))
	assert.Equal(t, StatusTrialing, sub.Status)
	assert.False(t, sub.IsTrialUsed)

	Tick(sub, date(2024, 1, 22))
	assert.Equal(t, StatusActive, sub.Status)
	assert.True(t, sub.IsTrialUsed)
}

func TestTickExpiresWithoutRenewalPath(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start), AutoRenew: boolPtr(false)}, start)

	Tick(sub, date(2024, 2, 16))
	assert.Equal(t, StatusExpired, sub.Status)
	assert.Nil(t, sub.NextBillingDate)
}

func TestTickRenewsOnBillingDate(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)

	Tick(sub, date(2024, 2, 15))
	assert.Equal(t, StatusActive, sub.Status)
	assert.Equal(t, date(2024, 2, 15), *sub.LastBillingDate)
	assert.Equal(t, date(2024, 3, 15), *sub.ExpiryDate)
	assert.Equal(t, date(2024, 3, 15), *sub.NextBillingDate)
	assert.True(t, sub.IsTrialUsed)
}

func TestTickLateProcessingDoesNotDrift(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)

	// three days late: the new expiry still anchors to the old one
	Tick(sub, date(2024, 2, 18))
	assert.Equal(t, date(2024, 3, 15), *sub.ExpiryDate)
	assert.Equal(t, date(2024, 2, 15), *sub.LastBillingDate)
}

func TestTickIdempotent(t *testing.T) {
	start := date(2024, 1, 15)
	now := date(2024, 2, 18)

	once := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)
	Tick(once, now)

	twice := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)
	Tick(twice, now)
	Tick(twice, now)

	assert.Equal(t, once, twice)
}

func TestTickTwelveMonthlyRenewalsLandOnSameDay(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0
	start := date(2024, 1, 15)
	sub := newSub(t, plan, Assignment{StartDate: timePtr(start)}, start)

	for i := 0; i < 12; i++ {
		due := *sub.NextBillingDate
		Tick(sub, due)
		assert.Equal(t, 15, sub.ExpiryDate.Day(), "cycle %d", i)
	}
	assert.Equal(t, date(2025, 2, 15), *sub.ExpiryDate)
}

func TestTickMonthEndRenewalsClampPerMonth(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0
	start := date(2024, 1, 31)
	sub := newSub(t, plan, Assignment{StartDate: timePtr(start)}, start)
	require.Equal(t, date(2024, 2, 29), *sub.ExpiryDate)

	// Feb 29 renews into Mar 29: the clamped day carries, it never drifts
	// past the original day-of-month
	Tick(sub, date(2024, 2, 29))
	assert.Equal(t, date(2024, 3, 29), *sub.ExpiryDate)
}

func TestTickCatchesUpMissedCycles(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0
	start := date(2024, 1, 15)
	sub := newSub(t, plan, Assignment{StartDate: timePtr(start)}, start)

	// host was down for two and a half cycles
	Tick(sub, date(2024, 3, 30))
	assert.Equal(t, date(2024, 4, 15), *sub.ExpiryDate)
	assert.Equal(t, date(2024, 3, 15), *sub.LastBillingDate)
	assert.Equal(t, StatusActive, sub.Status)
}

func TestCancelKeepsPaidThroughAccess(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)

	now := date(2024, 1, 20)
	require.NoError(t, Cancel(sub, "too expensive", now))
	assert.Equal(t, StatusCancelled, sub.Status)
	assert.Equal(t, now, *sub.CancelledAt)
	assert.Equal(t, "too expensive", *sub.CancelReason)
	assert.Nil(t, sub.NextBillingDate)
	// paid-through window untouched
	assert.Equal(t, date(2024, 2, 15), *sub.ExpiryDate)

	// before the cutoff nothing changes; after it, expired
	Tick(sub, date(2024, 2, 1))
	assert.Equal(t, StatusCancelled, sub.Status)
	Tick(sub, date(2024, 2, 15))
	assert.Equal(t, StatusExpired, sub.Status)
}

func TestCancelImmediatelyCutsOffNow(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)

	now := date(2024, 1, 20)
	require.NoError(t, CancelImmediately(sub, "fraud", now))
	assert.Equal(t, StatusExpired, sub.Status)
	assert.Equal(t, now, *sub.ExpiryDate)
	assert.Equal(t, now, *sub.CancelledAt)
	assert.Nil(t, sub.NextBillingDate)
}

func TestCancelTerminalIsRejected(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start), AutoRenew: boolPtr(false)}, start)
	Tick(sub, date(2024, 3, 1))
	require.Equal(t, StatusExpired, sub.Status)

	before := *sub
	assert.ErrorIs(t, Cancel(sub, "late", date(2024, 3, 2)), ErrInvalidTransition)
	assert.Equal(t, before, *sub)

	assert.ErrorIs(t, MarkRenewalFailed(sub, date(2024, 3, 2)), ErrInvalidTransition)
}

func TestMarkRenewalFailed(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)

	require.NoError(t, MarkRenewalFailed(sub, date(2024, 2, 15)))
	assert.Equal(t, StatusExpired, sub.Status)
	assert.Nil(t, sub.NextBillingDate)
}

func TestChangeBillingDate(t *testing.T) {
	start := date(2024, 1, 15)
	sub := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start)}, start)

	next := date(2024, 2, 1)
	require.NoError(t, ChangeBillingDate(sub, next))
	assert.Equal(t, next, *sub.NextBillingDate)

	// no schedule to move without auto-renew
	off := newSub(t, monthlyPlan(), Assignment{StartDate: timePtr(start), AutoRenew: boolPtr(false)}, start)
	assert.ErrorIs(t, ChangeBillingDate(off, next), ErrInvalidTransition)
}

func TestTickCustomCycleExpiresInsteadOfRenewing(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0
	plan.BillingCycle = plans.CycleCustom
	plan.DurationDays = intPtr(30)

	start := date(2024, 1, 15)
	sub := newSub(t, plan, Assignment{StartDate: timePtr(start)}, start)
	require.NotNil(t, sub.NextBillingDate)

	// no cycle unit to renew into, so the due date expires the subscription
	Tick(sub, date(2024, 2, 14))
	assert.Equal(t, StatusExpired, sub.Status)
	assert.Nil(t, sub.NextBillingDate)
}
