package list_appointments

import (
	"net/http"
	"time"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/domain"
)

const msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments[?date=YYYY-MM-DD]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /appointments - invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	appts, err := h.service.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointments(appts))
}
