package confirmar_pago

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	confirmarPago "github.com/ucc-comedor/ComedorService/internal/usecase/confirmar_pago"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgCarritoNotFound      = "каррито не найдено или истек срок его жизни"
	msgReservaNotFound      = "резервация не найдена"
	msgReservaNoFinalizable = "резервация не допускает подтверждение оплаты"
	msgInvalidMetodoPago    = "некорректный метод оплаты"
	msgSaldoInsuficiente    = "недостаточно средств на счету"
)

type Handler struct {
	useCase ConfirmarPagoUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmarPagoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/carritos/{carritoId}/confirmar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carritoID := vars["carritoId"]

	var req ConfirmarPagoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carritos/{id}/confirmar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(carritoID))
	if err != nil {
		switch {
		case errors.Is(err, confirmarPago.ErrCarritoNotFound):
			h.logger.Warn("POST /carritos/{id}/confirmar - Carrito not found: carrito_id=%s", carritoID)
			handlers.RespondNotFound(w, msgCarritoNotFound)

		case errors.Is(err, confirmarPago.ErrReservaNotFound):
			h.logger.Warn("POST /carritos/{id}/confirmar - Reserva not found: carrito_id=%s", carritoID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, confirmarPago.ErrReservaNotFinalizable):
			h.logger.Warn("POST /carritos/{id}/confirmar - Reserva not finalizable: carrito_id=%s", carritoID)
			handlers.RespondError(w, http.StatusConflict, msgReservaNoFinalizable)

		case errors.Is(err, confirmarPago.ErrInvalidMetodoPago):
			h.logger.Warn("POST /carritos/{id}/confirmar - Invalid metodo de pago: carrito_id=%s, metodo=%s",
				carritoID, req.MetodoPago)
			handlers.RespondBadRequest(w, msgInvalidMetodoPago)

		case errors.Is(err, confirmarPago.ErrSaldoInsuficiente):
			h.logger.Warn("POST /carritos/{id}/confirmar - Saldo insuficiente: carrito_id=%s", carritoID)
			handlers.RespondError(w, http.StatusConflict, msgSaldoInsuficiente)

		case errors.Is(err, confirmarPago.ErrInvalidInput):
			h.logger.Warn("POST /carritos/{id}/confirmar - Invalid input: carrito_id=%s, error=%v", carritoID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /carritos/{id}/confirmar - Failed to confirm payment: carrito_id=%s, error=%v",
				carritoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.RequiereConfirmacion {
		h.logger.Info("POST /carritos/{id}/confirmar - Confirmation required: carrito_id=%s, monto=%.2f",
			carritoID, result.MontoACobrar)
	} else {
		h.logger.Info("POST /carritos/{id}/confirmar - Payment confirmed: carrito_id=%s, reserva_id=%d",
			carritoID, result.ReservaID)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
