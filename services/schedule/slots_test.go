package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) int {
	t.Helper()
	parsed, err := time.Parse("15:04", s)
	require.NoError(t, err)
	return parsed.Hour()*60 + parsed.Minute()
}

func TestGenerateTimeSlots_EndNeverExceedsClose(t *testing.T) {
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	for _, duration := range []int{30, 60, 90, 120} {
		slots := GenerateTimeSlots(date, duration, AllAvailable{})
		require.NotEmpty(t, slots)

		for _, s := range slots {
			end := mustClock(t, s.EndTime)
			assert.LessOrEqual(t, end, 17*60, "slot %s ends past closing", s.ID)
			assert.Equal(t, mustClock(t, s.StartTime)+duration, end)
		}
	}
}

func TestGenerateTimeSlots_ThirtyMinuteBoundaries(t *testing.T) {
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	slots := GenerateTimeSlots(date, 60, AllAvailable{})

	// 09:00 through 16:00 starts fit a 60-minute service: 15 slots.
	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "16:00", slots[len(slots)-1].StartTime)
	assert.Equal(t, "17:00", slots[len(slots)-1].EndTime)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, mustClock(t, slots[i-1].StartTime)+30, mustClock(t, slots[i].StartTime))
	}
}

func TestGenerateTimeSlots_StableIDs(t *testing.T) {
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	slots := GenerateTimeSlots(date, 30, HashOracle{})

	assert.Equal(t, "2026-09-01-09:00", slots[0].ID)

	// Deterministic oracle: a second generation agrees slot for slot.
	again := GenerateTimeSlots(date, 30, HashOracle{})
	assert.Equal(t, slots, again)
}

func TestIsDateAvailable_PastDates(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC) // a Tuesday

	assert.False(t, IsDateAvailable(now.AddDate(0, 0, -1), now))
	assert.False(t, IsDateAvailable(now.AddDate(-1, 0, 0), now))

	// Today is bookable even late in the day: the comparison is date-level.
	assert.True(t, IsDateAvailable(now, now))
	assert.True(t, IsDateAvailable(now.AddDate(0, 0, 1), now))
}

func TestIsDateAvailable_SundaysExcluded(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	futureSunday := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, futureSunday.Weekday())
	assert.False(t, IsDateAvailable(futureSunday, now))

	pastSunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, pastSunday.Weekday())
	assert.False(t, IsDateAvailable(pastSunday, now))
}
