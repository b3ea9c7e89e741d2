package get_sede_reservas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/service/reservas"
)

const (
	msgInvalidSedeID = "некорректный ID sede"
	msgInvalidFecha  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректный фильтр резерваций"
)

type Handler struct {
	service ReservaService
	logger  Logger
}

func NewHandler(service ReservaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sedes/{sedeId}/reservas?fecha=YYYY-MM-DD&turno=almuerzo&estado=ACTIVA&incluir_bajas=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sedeID, err := strconv.ParseInt(vars["sedeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sedes/{id}/reservas - Invalid sede ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSedeID)
		return
	}

	req, err := ParseQuery(sedeID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /sedes/{id}/reservas - Invalid fecha: sede_id=%d, error=%v", sedeID, err)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}

	result, err := h.service.GetSedeReservas(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservas.ErrInvalidInput):
			h.logger.Warn("GET /sedes/{id}/reservas - Invalid filter: sede_id=%d, error=%v", sedeID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /sedes/{id}/reservas - Failed to get reservas: sede_id=%d, error=%v", sedeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sedes/{id}/reservas - Reservas retrieved: sede_id=%d, count=%d",
		sedeID, len(result.Reservas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
