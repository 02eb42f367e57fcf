package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/domain"
	getAvailableSlots "github.com/salao-digital/salon-scheduler/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidServiceID = "serviceId inválido"
	msgServiceNotFound  = "serviço não encontrado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&serviceId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /slots - invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceID, err := uuid.Parse(r.URL.Query().Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /slots - invalid serviceId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:      date,
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /slots - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
