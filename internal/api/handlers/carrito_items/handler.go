package carrito_items

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/service/carritos"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidConsumibleID    = "некорректный ID consumible"
	msgCarritoNotFound        = "каррито не найдено или истек срок его жизни"
	msgConsumibleNotFound     = "consumible не найден"
	msgConsumibleNoDisponible = "consumible недоступен"
)

type Handler struct {
	service CarritoService
	logger  Logger
}

func NewHandler(service CarritoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleAdd POST /api/v1/carritos/{carritoId}/items
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carritoID := vars["carritoId"]

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carritos/{id}/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ConsumibleID <= 0 {
		h.logger.Warn("POST /carritos/{id}/items - Invalid consumible ID: %d", req.ConsumibleID)
		handlers.RespondBadRequest(w, msgInvalidConsumibleID)
		return
	}

	carrito, err := h.service.AddItem(r.Context(), carritoID, req.ConsumibleID)
	if err != nil {
		switch {
		case errors.Is(err, carritos.ErrCarritoNotFound):
			h.logger.Warn("POST /carritos/{id}/items - Carrito not found: carrito_id=%s", carritoID)
			handlers.RespondNotFound(w, msgCarritoNotFound)

		case errors.Is(err, carritos.ErrConsumibleNotFound):
			h.logger.Warn("POST /carritos/{id}/items - Consumible not found: consumible_id=%d", req.ConsumibleID)
			handlers.RespondNotFound(w, msgConsumibleNotFound)

		case errors.Is(err, carritos.ErrConsumibleNoDisponible):
			h.logger.Warn("POST /carritos/{id}/items - Consumible no disponible: consumible_id=%d", req.ConsumibleID)
			handlers.RespondError(w, http.StatusConflict, msgConsumibleNoDisponible)

		default:
			h.logger.Error("POST /carritos/{id}/items - Failed to add item: carrito_id=%s, error=%v", carritoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /carritos/{id}/items - Item added: carrito_id=%s, consumible_id=%d",
		carritoID, req.ConsumibleID)
	handlers.RespondJSON(w, http.StatusOK, carrito)
}

// HandleRemove DELETE /api/v1/carritos/{carritoId}/items/{consumibleId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carritoID := vars["carritoId"]

	consumibleID, err := strconv.ParseInt(vars["consumibleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /carritos/{id}/items/{consumibleId} - Invalid consumible ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConsumibleID)
		return
	}

	carrito, err := h.service.RemoveItem(r.Context(), carritoID, consumibleID)
	if err != nil {
		switch {
		case errors.Is(err, carritos.ErrCarritoNotFound):
			h.logger.Warn("DELETE /carritos/{id}/items/{consumibleId} - Carrito not found: carrito_id=%s", carritoID)
			handlers.RespondNotFound(w, msgCarritoNotFound)

		default:
			h.logger.Error("DELETE /carritos/{id}/items/{consumibleId} - Failed to remove item: carrito_id=%s, error=%v",
				carritoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /carritos/{id}/items/{consumibleId} - Item removed: carrito_id=%s, consumible_id=%d",
		carritoID, consumibleID)
	handlers.RespondJSON(w, http.StatusOK, carrito)
}
