package calendar

// createEventRequest is the payload sent to the calendar bridge
type createEventRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Notes     string `json:"notes,omitempty"`
}

// createEventResponse is the calendar bridge answer
type createEventResponse struct {
	EventID string `json:"eventId"`
}
