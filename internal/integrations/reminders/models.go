package reminders

// scheduleRequest asks the notification service to fire a reminder before the
// appointment starts
type scheduleRequest struct {
	AppointmentID string `json:"appointmentId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Date          string `json:"date"`      // YYYY-MM-DD
	StartTime     string `json:"startTime"` // HH:MM
	LeadMinutes   int    `json:"leadMinutes"`
}
