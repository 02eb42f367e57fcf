package handlers

import (
	"time"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// AppointmentResponse is the wire form of an appointment, shared by every
// handler that returns one
type AppointmentResponse struct {
	ID                string  `json:"id"`
	ClientName        string  `json:"clientName"`
	ClientID          *string `json:"clientId,omitempty"`
	ServiceID         string  `json:"serviceId"`
	ServiceName       string  `json:"serviceName"`
	Date              string  `json:"date"`      // "2024-03-11"
	StartTime         string  `json:"startTime"` // "10:00"
	EndTime           string  `json:"endTime"`   // "11:00"
	RecurrenceGroupID *string `json:"recurrenceGroupId,omitempty"`
	AttendanceStatus  *string `json:"attendanceStatus,omitempty"`
	CalendarEventID   *string `json:"calendarEventId,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// FromDomainAppointment converts a domain appointment to its wire form
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              a.ID.String(),
		ClientName:      a.ClientName,
		ServiceID:       a.ServiceID.String(),
		ServiceName:     a.ServiceName,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		CalendarEventID: a.CalendarEventID,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
	if a.ClientID != nil {
		id := a.ClientID.String()
		resp.ClientID = &id
	}
	if a.RecurrenceGroupID != nil {
		id := a.RecurrenceGroupID.String()
		resp.RecurrenceGroupID = &id
	}
	if a.AttendanceStatus != domain.AttendanceUnset {
		status := string(a.AttendanceStatus)
		resp.AttendanceStatus = &status
	}
	return resp
}

// FromDomainAppointments converts a list of appointments
func FromDomainAppointments(appts []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, FromDomainAppointment(a))
	}
	return out
}
