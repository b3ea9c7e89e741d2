package get_menu_dia

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/domain"
	"github.com/ucc-comedor/ComedorService/internal/service/catalogo"
)

const (
	msgInvalidSedeID = "некорректный ID sede"
	msgMissingFecha  = "отсутствует обязательный параметр fecha"
	msgInvalidFecha  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTurno  = "отсутствует обязательный параметр turno"
	msgInvalidTurno  = "некорректный turno"
	msgSedeNotFound  = "sede не найдена"
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

// Handle GET /api/v1/sedes/{sedeId}/menu?fecha=YYYY-MM-DD&turno=almuerzo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sedeID, err := strconv.ParseInt(vars["sedeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sedes/{id}/menu - Invalid sede ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSedeID)
		return
	}

	fechaStr := r.URL.Query().Get("fecha")
	if fechaStr == "" {
		h.logger.Warn("GET /sedes/{id}/menu - Missing fecha: sede_id=%d", sedeID)
		handlers.RespondBadRequest(w, msgMissingFecha)
		return
	}

	fecha, err := time.Parse(domain.DateFormat, fechaStr)
	if err != nil {
		h.logger.Warn("GET /sedes/{id}/menu - Invalid fecha %q: %v", fechaStr, err)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}

	turno := r.URL.Query().Get("turno")
	if turno == "" {
		h.logger.Warn("GET /sedes/{id}/menu - Missing turno: sede_id=%d", sedeID)
		handlers.RespondBadRequest(w, msgMissingTurno)
		return
	}

	result, err := h.service.GetMenuDia(r.Context(), sedeID, fecha, turno)
	if err != nil {
		switch {
		case errors.Is(err, catalogo.ErrSedeNotFound):
			h.logger.Warn("GET /sedes/{id}/menu - Sede not found: sede_id=%d", sedeID)
			handlers.RespondNotFound(w, msgSedeNotFound)

		case errors.Is(err, catalogo.ErrInvalidInput):
			h.logger.Warn("GET /sedes/{id}/menu - Invalid turno: sede_id=%d, turno=%s", sedeID, turno)
			handlers.RespondBadRequest(w, msgInvalidTurno)

		default:
			h.logger.Error("GET /sedes/{id}/menu - Failed to get menu: sede_id=%d, error=%v", sedeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sedes/{id}/menu - Menu retrieved: sede_id=%d, fecha=%s, turno=%s", sedeID, fechaStr, turno)
	handlers.RespondJSON(w, http.StatusOK, result)
}
