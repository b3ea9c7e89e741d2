package get_user_reservas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/api/middleware"
	"github.com/ucc-comedor/ComedorService/internal/service/reservas"
	"github.com/ucc-comedor/ComedorService/internal/service/reservas/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidEstado = "некорректный статус резервации"
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

// Handle GET /api/v1/users/{userId}/reservas?estado=ACTIVA
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservas - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reservas - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Пользователь видит только собственную историю
	if authUserID != targetUserID {
		h.logger.Warn("GET /users/{id}/reservas - Access denied: target=%d, auth=%d", targetUserID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetUserReservasRequest{UserID: targetUserID}
	if estado := r.URL.Query().Get("estado"); estado != "" {
		req.Estado = &estado
	}

	result, err := h.service.GetUserReservas(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservas.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/reservas - Invalid estado filter: user_id=%d", targetUserID)
			handlers.RespondBadRequest(w, msgInvalidEstado)

		default:
			h.logger.Error("GET /users/{id}/reservas - Failed to get reservas: user_id=%d, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/reservas - Reservas retrieved: user_id=%d, count=%d",
		targetUserID, len(result.Reservas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
