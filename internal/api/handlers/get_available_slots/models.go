package get_available_slots

import (
	"github.com/salao-digital/salon-scheduler/internal/domain"
	getAvailableSlots "github.com/salao-digital/salon-scheduler/internal/usecase/get_available_slots"
)

// SlotResponse is one grid position of the day
type SlotResponse struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
}

// SlotsResponse is the full day grid
type SlotsResponse struct {
	Date      string         `json:"date"`
	ServiceID string         `json:"serviceId"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response to its wire form
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
		})
	}
	return &SlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID.String(),
		Slots:     slots,
	}
}
