package create_recurring_appointments

import (
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/domain"
	createRecurringSeries "github.com/salao-digital/salon-scheduler/internal/usecase/create_recurring_series"
	"github.com/salao-digital/salon-scheduler/pkg/types"
)

// CreateRecurringRequest is the HTTP request model for a series
type CreateRecurringRequest struct {
	ClientName string  `json:"clientName"`
	ClientID   *string `json:"clientId,omitempty"`
	ServiceID  string  `json:"serviceId"`
	AnchorDate string  `json:"anchorDate"` // first visit; occurrences follow it
	StartTime  string  `json:"startTime"`
	Interval   string  `json:"interval"` // weekly | biweekly | 3weeks | monthly
	Count      int     `json:"count"`
}

// CreateRecurringResponse reports the outcome of the series
type CreateRecurringResponse struct {
	GroupID        string                          `json:"groupId"`
	RequestedCount int                             `json:"requestedCount"`
	CreatedCount   int                             `json:"createdCount"`
	Appointments   []*handlers.AppointmentResponse `json:"appointments"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *CreateRecurringRequest) ToUseCaseRequest() (*createRecurringSeries.Request, error) {
	anchor, err := time.Parse(domain.DateFormat, r.AnchorDate)
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

	req := &createRecurringSeries.Request{
		ClientName: r.ClientName,
		ServiceID:  serviceID,
		AnchorDate: anchor,
		StartTime:  startTime,
		Interval:   domain.RecurrenceInterval(r.Interval),
		Count:      r.Count,
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
func FromUseCaseResponse(resp *createRecurringSeries.Response) *CreateRecurringResponse {
	return &CreateRecurringResponse{
		GroupID:        resp.GroupID.String(),
		RequestedCount: resp.RequestedCount,
		CreatedCount:   resp.CreatedCount,
		Appointments:   handlers.FromDomainAppointments(resp.Appointments),
	}
}
