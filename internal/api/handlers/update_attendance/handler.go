package update_attendance

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidID           = "identificador de agendamento inválido"
	msgInvalidStatus       = "status de presença inválido, esperado confirmed ou missed"
	msgAlreadySet          = "a presença deste agendamento já foi registrada"
	msgAppointmentNotFound = "agendamento não encontrado"
)

// UpdateAttendanceRequest is the HTTP request model
type UpdateAttendanceRequest struct {
	Status string `json:"status"` // confirmed | missed
}

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

// Handle PATCH /api/v1/appointments/{appointmentId}/attendance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/attendance - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateAttendanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/attendance - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appt, err := h.service.RecordAttendance(r.Context(), id, domain.AttendanceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidAttendance):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAttendanceAlreadySet):
			handlers.RespondError(w, http.StatusConflict, msgAlreadySet)

		default:
			h.logger.Error("PATCH /appointments/attendance - failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/attendance - id=%s marked %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointment(appt))
}
