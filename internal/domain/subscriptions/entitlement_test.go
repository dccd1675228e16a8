package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-admin/internal/domain/plans"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }
func boolPtr(b bool) *bool           { return &b }
func intPtr(n int) *int              { return &n }

func monthlyPlan() *plans.Plan {
	return &plans.Plan{
		ID:                   "plan-1",
		Name:                 "Gold",
		Price:                1500,
		Currency:             "PKR",
		BillingCycle:         plans.CycleMonthly,
		BillingIntervalCount: 1,
		TrialDays:            7,
	}
}

func TestComputeMonthlyWithTrial(t *testing.T) {
	now := date(2024, 1, 15)
	sub, err := Compute(monthlyPlan(), Assignment{StartDate: timePtr(now), AutoRenew: boolPtr(true)}, now)
	require.NoError(t, err)

	assert.Equal(t, StatusTrialing, sub.Status)
	assert.Equal(t, date(2024, 1, 22), *sub.TrialEndsAt)
	assert.Equal(t, date(2024, 2, 15), *sub.ExpiryDate)
	assert.Equal(t, date(2024, 2, 15), *sub.NextBillingDate)
	assert.True(t, sub.AutoRenew)
	assert.False(t, sub.IsTrialUsed)
	assert.Equal(t, "Gold", sub.PlanName)
	assert.Equal(t, 1500.0, sub.Price)
}

func TestComputeNoAutoRenewHasNoBillingDate(t *testing.T) {
	now := date(2024, 1, 15)
	sub, err := Compute(monthlyPlan(), Assignment{AutoRenew: boolPtr(false)}, now)
	require.NoError(t, err)

	assert.Equal(t, date(2024, 2, 15), *sub.ExpiryDate)
	assert.Nil(t, sub.NextBillingDate)
}

func TestComputeDefaultsStartToNow(t *testing.T) {
	now := date(2024, 3, 1)
	sub, err := Compute(monthlyPlan(), Assignment{}, now)
	require.NoError(t, err)

	assert.Equal(t, now, sub.StartDate)
	assert.True(t, sub.AutoRenew)
}

func TestComputeNoTrial(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0

	sub, err := Compute(plan, Assignment{}, date(2024, 1, 15))
	require.NoError(t, err)

	assert.Equal(t, StatusActive, sub.Status)
	assert.Nil(t, sub.TrialEndsAt)
}

func TestComputePastTrialWindowIsConsumed(t *testing.T) {
	// operator backdates the start far enough that the trial already ended
	now := date(2024, 3, 1)
	sub, err := Compute(monthlyPlan(), Assignment{StartDate: timePtr(date(2024, 1, 15))}, now)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, sub.Status)
	assert.True(t, sub.IsTrialUsed)
}

func TestComputeLifetime(t *testing.T) {
	plan := monthlyPlan()
	plan.BillingCycle = plans.CycleLifetime
	plan.TrialDays = 0

	sub, err := Compute(plan, Assignment{}, date(2024, 1, 15))
	require.NoError(t, err)

	assert.Nil(t, sub.ExpiryDate)
	assert.Nil(t, sub.NextBillingDate)
	assert.Equal(t, StatusActive, sub.Status)
}

func TestComputeLifetimeWithDurationCap(t *testing.T) {
	plan := monthlyPlan()
	plan.BillingCycle = plans.CycleLifetime
	plan.TrialDays = 0
	plan.DurationDays = intPtr(365)

	now := date(2024, 1, 15)
	sub, err := Compute(plan, Assignment{}, now)
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, 0, 365), *sub.ExpiryDate)
}

func TestComputeEarliestCapWins(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0
	plan.DurationDays = intPtr(20)
	plan.ExpiresAfterDays = intPtr(10)

	now := date(2024, 1, 15)
	sub, err := Compute(plan, Assignment{}, now)
	require.NoError(t, err)

	// cycle says Feb 15, duration says Feb 4, expires-after says Jan 25
	assert.Equal(t, date(2024, 1, 25), *sub.ExpiryDate)
}

func TestComputeOverrideWinsOverDerivation(t *testing.T) {
	plan := monthlyPlan()
	plan.DurationDays = intPtr(5)

	now := date(2024, 1, 15)
	override := date(2024, 6, 1)
	sub, err := Compute(plan, Assignment{ExpiryDate: timePtr(override)}, now)
	require.NoError(t, err)

	// verbatim, not capped
	assert.Equal(t, override, *sub.ExpiryDate)
}

func TestComputeIntervalCountMultiplies(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0
	plan.BillingIntervalCount = 3

	sub, err := Compute(plan, Assignment{}, date(2024, 1, 15))
	require.NoError(t, err)

	assert.Equal(t, date(2024, 4, 15), *sub.ExpiryDate)
}

func TestComputeMonthEndClamping(t *testing.T) {
	plan := monthlyPlan()
	plan.TrialDays = 0

	sub, err := Compute(plan, Assignment{StartDate: timePtr(date(2024, 1, 31))}, date(2024, 1, 31))
	require.NoError(t, err)

	assert.Equal(t, date(2024, 2, 29), *sub.ExpiryDate)
}

func TestComputeTrialNotAfterExpiry(t *testing.T) {
	// trial must end on or before expiry when caps don't force it earlier
	now := date(2024, 1, 15)
	sub, err := Compute(monthlyPlan(), Assignment{}, now)
	require.NoError(t, err)

	require.NotNil(t, sub.TrialEndsAt)
	require.NotNil(t, sub.ExpiryDate)
	assert.False(t, sub.TrialEndsAt.After(*sub.ExpiryDate))
}

func TestComputeInvalidIntervalCount(t *testing.T) {
	plan := monthlyPlan()
	plan.BillingIntervalCount = 0

	_, err := Compute(plan, Assignment{}, date(2024, 1, 15))
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestComputeCustomCycleNeedsBound(t *testing.T) {
	plan := monthlyPlan()
	plan.BillingCycle = plans.CycleCustom

	_, err := Compute(plan, Assignment{}, date(2024, 1, 15))
	assert.ErrorIs(t, err, ErrInvalidPlan)

	plan.DurationDays = intPtr(45)
	sub, err := Compute(plan, Assignment{}, date(2024, 1, 15))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 29), *sub.ExpiryDate)
}

func TestComputeExpiryBeforeStartRejected(t *testing.T) {
	now := date(2024, 1, 15)
	_, err := Compute(monthlyPlan(), Assignment{
		StartDate:  timePtr(now),
		ExpiryDate: timePtr(date(2024, 1, 1)),
	}, now)
	assert.ErrorIs(t, err, ErrInvalidAssignment)
}
