package create_reserva

import (
	"errors"
	"net/http"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/api/middleware"
	createReserva "github.com/ucc-comedor/ComedorService/internal/usecase/create_reserva"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSedeNotFound       = "sede не найдена"
	msgInvalidReservaDate = "некорректная дата резервации"
	msgDateTooFar         = "дата резервации слишком далеко в будущем"
	msgInvalidTurno       = "некорректный turno"
	msgInvalidSlot        = "время начала не соответствует ни одному слоту"
	msgSlotAlreadyStarted = "слот уже начался"
	msgSlotNotAvailable   = "в выбранном слоте нет свободных мест"
)

type Handler struct {
	useCase CreateReservaUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservas - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservas - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReserva.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservas - Slot not available: user_id=%d, sede_id=%d", userID, req.SedeID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReserva.ErrSedeNotFound):
			h.logger.Warn("POST /reservas - Sede not found: sede_id=%d", req.SedeID)
			handlers.RespondNotFound(w, msgSedeNotFound)

		case errors.Is(err, createReserva.ErrInvalidDate):
			h.logger.Warn("POST /reservas - Invalid fecha: user_id=%d, sede_id=%d", userID, req.SedeID)
			handlers.RespondBadRequest(w, msgInvalidReservaDate)

		case errors.Is(err, createReserva.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservas - Fecha too far in future: user_id=%d, sede_id=%d", userID, req.SedeID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReserva.ErrInvalidTurno):
			h.logger.Warn("POST /reservas - Invalid turno: user_id=%d, turno=%s", userID, req.Turno)
			handlers.RespondBadRequest(w, msgInvalidTurno)

		case errors.Is(err, createReserva.ErrInvalidSlot):
			h.logger.Warn("POST /reservas - Invalid slot: user_id=%d, slot_inicio=%s", userID, req.SlotInicio)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReserva.ErrSlotAlreadyStarted):
			h.logger.Warn("POST /reservas - Slot already started: user_id=%d, slot_inicio=%s", userID, req.SlotInicio)
			handlers.RespondBadRequest(w, msgSlotAlreadyStarted)

		case errors.Is(err, createReserva.ErrInvalidInput):
			h.logger.Warn("POST /reservas - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservas - Failed to create reserva: user_id=%d, sede_id=%d, error=%v",
				userID, req.SedeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas - Reserva created successfully: reserva_id=%d, user_id=%d, slot_id=%s",
		result.ID, userID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
