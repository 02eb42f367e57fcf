package manage_settings

import (
	"errors"
	"net/http"
	"time"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/internal/service/settings"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSettings    = "configuração inválida"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgHolidayNotFound    = "feriado não encontrado"
)

// Handler covers the configuration endpoints
type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(s))
}

// HandleUpdate PUT /api/v1/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), domain.BusinessHours{
		StartHour: req.BusinessHoursStart,
		EndHour:   req.BusinessHoursEnd,
	}, req.SlotIntervalMinutes)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidSettings) {
			handlers.RespondBadRequest(w, msgInvalidSettings)
			return
		}
		h.logger.Error("PUT /settings - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - hours %d-%d, interval %d",
		req.BusinessHoursStart, req.BusinessHoursEnd, req.SlotIntervalMinutes)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(updated))
}

// HandleAddHoliday POST /api/v1/settings/holidays
func (h *Handler) HandleAddHoliday(w http.ResponseWriter, r *http.Request) {
	var req HolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /settings/holidays - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	updated, err := h.service.AddHoliday(r.Context(), date)
	if err != nil {
		h.logger.Error("POST /settings/holidays - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /settings/holidays - added %s", req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(updated))
}

// HandleRemoveHoliday DELETE /api/v1/settings/holidays?date=YYYY-MM-DD
func (h *Handler) HandleRemoveHoliday(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	updated, err := h.service.RemoveHoliday(r.Context(), date)
	if err != nil {
		if errors.Is(err, settings.ErrHolidayNotFound) {
			handlers.RespondNotFound(w, msgHolidayNotFound)
			return
		}
		h.logger.Error("DELETE /settings/holidays - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /settings/holidays - removed %s", raw)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(updated))
}
