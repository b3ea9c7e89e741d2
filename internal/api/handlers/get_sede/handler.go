package get_sede

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/service/catalogo"
)

const (
	msgInvalidSedeID = "некорректный ID sede"
	msgNotFound      = "sede не найдена"
)

type Handler struct {
	service CatalogoService
	logger  Logger
}

func NewHandler(service CatalogoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sedes/{sedeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sedeID, err := strconv.ParseInt(vars["sedeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sedes/{id} - Invalid sede ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSedeID)
		return
	}

	sede, err := h.service.GetSede(r.Context(), sedeID)
	if err != nil {
		switch {
		case errors.Is(err, catalogo.ErrSedeNotFound):
			h.logger.Warn("GET /sedes/{id} - Sede not found: sede_id=%d", sedeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /sedes/{id} - Failed to get sede: sede_id=%d, error=%v", sedeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sedes/{id} - Sede retrieved: sede_id=%d", sedeID)
	handlers.RespondJSON(w, http.StatusOK, sede)
}
