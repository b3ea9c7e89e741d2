package confirmar_pago

import (
	confirmarPago "github.com/ucc-comedor/ComedorService/internal/usecase/confirmar_pago"
)

// ConfirmarPagoRequest HTTP request model
type ConfirmarPagoRequest struct {
	MetodoPago string `json:"metodoPago"` // "efectivo", "transferencia", "saldo_cuenta"
	Confirmado bool   `json:"confirmado"` // Второй шаг для методов с ручным подтверждением
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmarPagoRequest) ToUseCaseRequest(carritoID string) *confirmarPago.Request {
	return &confirmarPago.Request{
		CarritoID:  carritoID,
		MetodoPago: r.MetodoPago,
		Confirmado: r.Confirmado,
	}
}
