package create_recurring_appointments

import (
	"errors"
	"net/http"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	createRecurringSeries "github.com/salao-digital/salon-scheduler/internal/usecase/create_recurring_series"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateOrTime  = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgNothingCreated     = "nenhum horário da série pôde ser agendado, nem mesmo a primeira visita"
)

type Handler struct {
	useCase CreateRecurringSeriesUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringSeriesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/recurring
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRecurringRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/recurring - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/recurring - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRecurringSeries.ErrNoAppointmentsCreated):
			h.logger.Warn("POST /appointments/recurring - nothing created for client=%s", req.ClientName)
			handlers.RespondError(w, http.StatusConflict, msgNothingCreated)

		case errors.Is(err, createRecurringSeries.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments/recurring - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/recurring - group=%s created %d of %d",
		result.GroupID, result.CreatedCount, result.RequestedCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
