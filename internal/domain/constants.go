package domain

// Default business configuration values
const (
	DefaultBusinessHoursStart  = 8  // 08:00
	DefaultBusinessHoursEnd    = 18 // 18:00
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinBusinessHour        = 0
	MaxBusinessHour        = 23
	MinServiceDuration     = 5
	MaxServiceDuration     = 480 // 8 hours
	MaxServiceNameLength   = 120
	MaxClientNameLength    = 120
	MaxNotesLength         = 500
	MaxRecurrenceCount     = 12
	DefaultReminderLeadMin = 30
)

// AllowedSlotIntervals enumerates the valid slot grid steps in minutes
var AllowedSlotIntervals = []int{15, 30, 45, 60}

// IsAllowedSlotInterval reports whether minutes is a valid slot grid step
func IsAllowedSlotInterval(minutes int) bool {
	for _, v := range AllowedSlotIntervals {
		if v == minutes {
			return true
		}
	}
	return false
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
