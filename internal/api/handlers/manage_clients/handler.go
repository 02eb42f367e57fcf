package manage_clients

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salao-digital/salon-scheduler/internal/api/handlers"
	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/internal/service/clients"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "identificador de cliente inválido"
	msgInvalidTier        = "categoria de cliente inválida, esperado regular ou vip"
	msgClientNotFound     = "cliente não encontrado"
)

// Handler covers the client registry CRUD
type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/clients
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.Name, req.Phone, req.Notes, domain.ClientTier(req.Tier))
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidTier):
			handlers.RespondBadRequest(w, msgInvalidTier)
		case errors.Is(err, clients.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /clients - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - created id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainClient(created))
}

// HandleList GET /api/v1/clients
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainClients(list))
}

// HandleGet GET /api/v1/clients/{clientId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /clients/{id} - failed for id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainClient(c))
}

// HandleUpdate PUT /api/v1/clients/{clientId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var tier *domain.ClientTier
	if req.Tier != nil {
		t := domain.ClientTier(*req.Tier)
		tier = &t
	}

	updated, err := h.service.Update(r.Context(), id, req.Name, req.Phone, req.Notes, tier)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)
		case errors.Is(err, clients.ErrInvalidTier):
			handlers.RespondBadRequest(w, msgInvalidTier)
		case errors.Is(err, clients.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /clients - failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients - updated id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomainClient(updated))
}

// HandleDelete DELETE /api/v1/clients/{clientId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("DELETE /clients - failed for id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /clients - deleted id=%s", id)
	handlers.RespondNoContent(w)
}
