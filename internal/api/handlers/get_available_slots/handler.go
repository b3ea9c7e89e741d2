package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/domain"
	getAvailableSlots "github.com/ucc-comedor/ComedorService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSedeID = "некорректный ID sede"
	msgMissingFecha  = "отсутствует обязательный параметр fecha"
	msgInvalidFecha  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSedeNotFound  = "sede не найдена"
	msgInvalidDate   = "некорректная дата"
	msgDateTooFar    = "дата слишком далеко в будущем"
	msgInvalidTurno  = "некорректный turno"
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

// Handle GET /api/v1/sedes/{sedeId}/available-slots?fecha=YYYY-MM-DD&turno=almuerzo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sedeID, err := strconv.ParseInt(vars["sedeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sedes/{id}/available-slots - Invalid sede ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSedeID)
		return
	}

	fechaStr := r.URL.Query().Get("fecha")
	if fechaStr == "" {
		h.logger.Warn("GET /sedes/{id}/available-slots - Missing fecha: sede_id=%d", sedeID)
		handlers.RespondBadRequest(w, msgMissingFecha)
		return
	}

	fecha, err := time.Parse(domain.DateFormat, fechaStr)
	if err != nil {
		h.logger.Warn("GET /sedes/{id}/available-slots - Invalid fecha %q: %v", fechaStr, err)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}

	req := &getAvailableSlots.Request{
		SedeID: sedeID,
		Fecha:  fecha,
	}
	if turno := r.URL.Query().Get("turno"); turno != "" {
		req.Turno = &turno
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSedeNotFound):
			h.logger.Warn("GET /sedes/{id}/available-slots - Sede not found: sede_id=%d", sedeID)
			handlers.RespondNotFound(w, msgSedeNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /sedes/{id}/available-slots - Invalid date: sede_id=%d, fecha=%s", sedeID, fechaStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /sedes/{id}/available-slots - Date too far: sede_id=%d, fecha=%s", sedeID, fechaStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidTurno):
			h.logger.Warn("GET /sedes/{id}/available-slots - Invalid turno: sede_id=%d", sedeID)
			handlers.RespondBadRequest(w, msgInvalidTurno)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /sedes/{id}/available-slots - Invalid input: sede_id=%d, error=%v", sedeID, err)
			handlers.RespondBadRequest(w, msgInvalidSedeID)

		default:
			h.logger.Error("GET /sedes/{id}/available-slots - Failed to get slots: sede_id=%d, error=%v", sedeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sedes/{id}/available-slots - Slots retrieved: sede_id=%d, fecha=%s, count=%d",
		sedeID, fechaStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
