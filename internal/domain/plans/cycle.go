package plans

import "time"

// Billing cycle constants (single source of truth)
const (
	CycleDaily    = "daily"
	CycleWeekly   = "weekly"
	CycleMonthly  = "monthly"
	CycleYearly   = "yearly"
	CycleCustom   = "custom"
	CycleLifetime = "lifetime"
)

func IsValidCycle(cycle string) bool {
	switch cycle {
	case CycleDaily, CycleWeekly, CycleMonthly, CycleYearly, CycleCustom, CycleLifetime:
		return true
	}
	return false
}

// HasUnit reports whether the cycle maps to a calendar unit that AddCycle
// can advance by. "custom" plans are bounded only by duration caps or an
// explicit expiry override; "lifetime" never produces a date at all.
func HasUnit(cycle string) bool {
	switch cycle {
	case CycleDaily, CycleWeekly, CycleMonthly, CycleYearly:
		return true
	}
	return false
}

// AddCycle advances t by count units of the billing cycle. Month and year
// arithmetic clamps to the last valid day of the target month, so
// Jan 31 + 1 month is Feb 28 (Feb 29 in a leap year), never Mar 2/3.
// Cycles without a calendar unit return t unchanged.
func AddCycle(t time.Time, cycle string, count int) time.Time {
	switch cycle {
	case CycleDaily:
		return t.AddDate(0, 0, count)
	case CycleWeekly:
		return t.AddDate(0, 0, 7*count)
	case CycleMonthly:
		return addMonthsClamped(t, count)
	case CycleYearly:
		return addMonthsClamped(t, 12*count)
	}
	return t
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
