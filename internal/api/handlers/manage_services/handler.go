package manage_services

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/service/services"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "identificador de serviço inválido"
	msgServiceNotFound    = "serviço não encontrado"
)

// Handler covers the service catalog CRUD. The operations are small enough
// to live in one package.
type Handler struct {
	service ServicesService
	logger  Logger
}

func NewHandler(service ServicesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.Name, req.DurationMinutes)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /services - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - created id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainService(created))
}

// HandleList GET /api/v1/services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(list))
}

// HandleGet GET /api/v1/services/{serviceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	svc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{id} - failed for id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainService(svc))
}

// HandleUpdate PUT /api/v1/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.Name, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, services.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /services - failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services - updated id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomainService(updated))
}

// HandleDelete DELETE /api/v1/services/{serviceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /services - failed for id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /services - deleted id=%s", id)
	handlers.RespondNoContent(w)
}
