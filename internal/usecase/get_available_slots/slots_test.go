package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/pkg/types"
)

func hours(start, end int) domain.BusinessHours {
	return domain.BusinessHours{StartHour: start, EndHour: end}
}

func TestGenerateGrid(t *testing.T) {
	t.Run("half hour steps cover the business day", func(t *testing.T) {
		grid := generateGrid(hours(8, 18), 30)

		require.Len(t, grid, 20) // 08:00 .. 17:30
		assert.Equal(t, types.TimeString("08:00"), grid[0])
		assert.Equal(t, types.TimeString("08:30"), grid[1])
		assert.Equal(t, types.TimeString("17:30"), grid[len(grid)-1])
	})

	t.Run("hourly steps", func(t *testing.T) {
		grid := generateGrid(hours(9, 12), 60)

		assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, grid)
	})

	t.Run("grid entries are sorted and evenly spaced", func(t *testing.T) {
		grid := generateGrid(hours(8, 18), 45)

		for i := 1; i < len(grid); i++ {
			diff := grid[i].MinutesSinceMidnight() - grid[i-1].MinutesSinceMidnight()
			assert.Equal(t, 45, diff)
		}
	})
}

func TestFitsBusinessDay(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		hours    domain.BusinessHours
		want     bool
	}{
		{"well within the day", "10:00", 30, hours(8, 18), true},
		{"ends exactly at closing", "17:00", 60, hours(8, 18), true},
		{"ends past closing", "17:30", 60, hours(8, 18), false},
		{"ends one minute past closing hour", "17:31", 30, hours(8, 18), false},
		{"crosses midnight", "23:30", 60, hours(8, 24), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitsBusinessDay(tt.start, tt.duration, tt.hours))
		})
	}
}

func TestBuildSlots(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	appt := func(start, end types.TimeString) *domain.Appointment {
		return &domain.Appointment{
			Date:      day,
			StartTime: start,
			EndTime:   end,
		}
	}

	t.Run("booked hour blocks every grid position it covers", func(t *testing.T) {
		grid := generateGrid(hours(8, 18), 30)
		existing := []*domain.Appointment{appt("10:00", "11:00")}

		slots := buildSlots(grid, 30, hours(8, 18), existing)

		byTime := make(map[types.TimeString]bool, len(slots))
		for _, s := range slots {
			byTime[s.Time] = s.Available
		}

		assert.True(t, byTime["09:00"])
		assert.False(t, byTime["10:00"])
		assert.False(t, byTime["10:30"])
		assert.True(t, byTime["11:00"])
	})

	t.Run("touching appointments do not block", func(t *testing.T) {
		grid := generateGrid(hours(8, 18), 30)
		existing := []*domain.Appointment{appt("10:00", "11:00")}

		slots := buildSlots(grid, 60, hours(8, 18), existing)

		byTime := make(map[types.TimeString]bool, len(slots))
		for _, s := range slots {
			byTime[s.Time] = s.Available
		}

		// ends exactly when the booking starts
		assert.True(t, byTime["09:00"])
		// starts exactly when the booking ends
		assert.True(t, byTime["11:00"])
		assert.False(t, byTime["09:30"])
		assert.False(t, byTime["10:30"])
	})

	t.Run("long services trim the end of the day", func(t *testing.T) {
		grid := generateGrid(hours(8, 18), 30)

		slots := buildSlots(grid, 60, hours(8, 18), nil)

		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1].Time)
	})

	t.Run("unavailable slots stay in the list", func(t *testing.T) {
		grid := generateGrid(hours(9, 11), 30)
		existing := []*domain.Appointment{appt("09:00", "11:00")}

		slots := buildSlots(grid, 30, hours(9, 11), existing)

		require.Len(t, slots, 4)
		assert.Equal(t, 0, domain.CountAvailable(slots))
	})
}
