package plans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddCycleDays(t *testing.T) {
	assert.Equal(t, date(2024, 1, 16), AddCycle(date(2024, 1, 15), CycleDaily, 1))
	assert.Equal(t, date(2024, 1, 25), AddCycle(date(2024, 1, 15), CycleDaily, 10))
	assert.Equal(t, date(2024, 1, 22), AddCycle(date(2024, 1, 15), CycleWeekly, 1))
	assert.Equal(t, date(2024, 2, 12), AddCycle(date(2024, 1, 15), CycleWeekly, 4))
}

func TestAddCycleMonthClamping(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		count int
		want  time.Time
	}{
		{"plain month", date(2024, 1, 15), 1, date(2024, 2, 15)},
		{"jan 31 leap year", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"jan 31 non-leap", date(2023, 1, 31), 1, date(2023, 2, 28)},
		{"mar 31 to apr 30", date(2024, 3, 31), 1, date(2024, 4, 30)},
		{"quarterly across year end", date(2023, 11, 30), 3, date(2024, 2, 29)},
		{"dec to jan", date(2023, 12, 15), 1, date(2024, 1, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddCycle(tt.start, CycleMonthly, tt.count))
		})
	}
}

func TestAddCycleMonthlyNeverOverflows(t *testing.T) {
	// From any day of any month, adding one month must land inside the
	// target month, never spill into the one after.
	start := date(2024, 1, 1)
	for day := 0; day < 366; day++ {
		from := start.AddDate(0, 0, day)
		got := AddCycle(from, CycleMonthly, 1)
		wantMonth := time.Date(from.Year(), from.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, wantMonth.Month(), got.Month(), "from %s", from)
		assert.LessOrEqual(t, got.Day(), daysInMonth(got.Year(), got.Month()))
	}
}

func TestAddCycleYearly(t *testing.T) {
	assert.Equal(t, date(2025, 1, 15), AddCycle(date(2024, 1, 15), CycleYearly, 1))
	// Feb 29 clamps to Feb 28 outside leap years
	assert.Equal(t, date(2025, 2, 28), AddCycle(date(2024, 2, 29), CycleYearly, 1))
	assert.Equal(t, date(2028, 2, 29), AddCycle(date(2024, 2, 29), CycleYearly, 4))
}

func TestAddCycleNoUnit(t *testing.T) {
	start := date(2024, 1, 15)
	assert.Equal(t, start, AddCycle(start, CycleLifetime, 1))
	assert.Equal(t, start, AddCycle(start, CycleCustom, 1))
}

func TestHasUnit(t *testing.T) {
	assert.True(t, HasUnit(CycleDaily))
	assert.True(t, HasUnit(CycleMonthly))
	assert.False(t, HasUnit(CycleCustom))
	assert.False(t, HasUnit(CycleLifetime))
	assert.False(t, HasUnit(""))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "gold-plan", Slugify("Gold Plan"))
	assert.Equal(t, "premium-10-off", Slugify("Premium (10% Off)"))
	assert.Equal(t, "basic", Slugify("  Basic  "))
}
