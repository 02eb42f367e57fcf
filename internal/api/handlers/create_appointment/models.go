package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/domain"
	createAppointment "github.com/salao-digital/salon-scheduler/internal/usecase/create_appointment"
	"github.com/salao-digital/salon-scheduler/pkg/types"
)

// CreateAppointmentRequest is the HTTP request model
type CreateAppointmentRequest struct {
	ClientName string  `json:"clientName"`
	ClientID   *string `json:"clientId,omitempty"`
	ServiceID  string  `json:"serviceId"`
	Date       string  `json:"date"`      // "2024-03-11"
	StartTime  string  `json:"startTime"` // "10:00"
}

// CreateAppointmentResponse is the HTTP response model
type CreateAppointmentResponse struct {
	Appointment    *handlers.AppointmentResponse `json:"appointment"`
	CalendarSynced bool                          `json:"calendarSynced"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		ClientName: r.ClientName,
		ServiceID:  serviceID,
		Date:       date,
		StartTime:  startTime,
	}
	if r.ClientID != nil {
		clientID, err := uuid.Parse(*r.ClientID)
		if err != nil {
			return nil, err
		}
		req.ClientID = &clientID
	}
	return req, nil
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		Appointment:    handlers.FromDomainAppointment(resp.Appointment),
		CalendarSynced: resp.CalendarSynced,
	}
}
