package confirmar_pago

import (
	"context"
	"errors"
	"fmt"

	"github.com/ucc-comedor/ComedorService/internal/domain"
	carritoStore "github.com/ucc-comedor/ComedorService/internal/infra/carrito"
	reservaRepo "github.com/ucc-comedor/ComedorService/internal/infra/storage/reserva"
	"github.com/ucc-comedor/ComedorService/internal/integrations/backoffice"
)

// UseCase use case подтверждения оплаты кассиром.
// Закрывает цикл резервации: снапшот каррито уходит в резервацию,
// статус становится FINALIZADA. Место в слоте не освобождается -
// обслуживание состоялось
type UseCase struct {
	carritoStore CarritoStore
	reservaRepo  ReservaRepository
	backoffice   BackofficeClient
	txManager    TransactionManager
	costoReserva float64
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	carritoStore CarritoStore,
	reservaRepo ReservaRepository,
	backoffice BackofficeClient,
	txManager TransactionManager,
	costoReserva float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		carritoStore: carritoStore,
		reservaRepo:  reservaRepo,
		backoffice:   backoffice,
		txManager:    txManager,
		costoReserva: costoReserva,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения оплаты.
//
// Сумма к оплате считается как subtotal каррито минус costo de reserva,
// без ограничения снизу: отрицательное значение означает возврат сдачи
// с депозита.
//
// Методы efectivo и transferencia требуют два шага: первый вызов
// (Confirmado = false) возвращает расклад сумм кассиру, второй
// (Confirmado = true) финализирует. saldo_cuenta списывается сразу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmarPago: carrito=%s, metodo=%s, confirmado=%t",
		req.CarritoID, req.MetodoPago, req.Confirmado)

	// 1. Валидация входных данных
	if req.CarritoID == "" {
		return nil, fmt.Errorf("%w: carritoID is required", ErrInvalidInput)
	}

	metodo, ok := domain.ParseMetodoPago(req.MetodoPago)
	if !ok {
		uc.logger.Warn("ConfirmarPago: invalid metodo=%s", req.MetodoPago)
		return nil, ErrInvalidMetodoPago
	}

	// 2. Получаем каррито
	carrito, err := uc.carritoStore.Get(ctx, req.CarritoID)
	if err != nil {
		if errors.Is(err, carritoStore.ErrCarritoNotFound) {
			uc.logger.Warn("ConfirmarPago: carrito %s not found", req.CarritoID)
			return nil, ErrCarritoNotFound
		}
		uc.logger.Error("ConfirmarPago: failed to get carrito %s: %v", req.CarritoID, err)
		return nil, fmt.Errorf("%w: failed to get carrito: %v", ErrInternal, err)
	}

	// 3. Получаем резервацию каррито
	reserva, err := uc.reservaRepo.GetByID(ctx, carrito.ReservaID)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			uc.logger.Warn("ConfirmarPago: reserva id=%d not found for carrito %s", carrito.ReservaID, req.CarritoID)
			return nil, ErrReservaNotFound
		}
		uc.logger.Error("ConfirmarPago: failed to get reserva id=%d: %v", carrito.ReservaID, err)
		return nil, fmt.Errorf("%w: failed to get reserva: %v", ErrInternal, err)
	}

	if !reserva.PuedeFinalizarse() {
		uc.logger.Warn("ConfirmarPago: reserva id=%d not finalizable, estado=%s", reserva.ID, reserva.Estado)
		return nil, ErrReservaNotFinalizable
	}

	// 4. Считаем расклад сумм
	subtotal := carrito.Subtotal()
	montoACobrar := subtotal - uc.costoReserva

	resp := &Response{
		ReservaID:    reserva.ID,
		MetodoPago:   string(metodo),
		Subtotal:     subtotal,
		CostoReserva: uc.costoReserva,
		MontoACobrar: montoACobrar,
	}

	// 5. Первый шаг для методов с ручным подтверждением:
	// возвращаем суммы кассиру, ничего не финализируя
	if metodo.RequiereConfirmacion() && !req.Confirmado {
		uc.logger.Info("ConfirmarPago: reserva id=%d awaiting confirmation, monto=%.2f", reserva.ID, montoACobrar)
		resp.RequiereConfirmacion = true
		return resp, nil
	}

	// 6. Для оплаты со счета проверяем баланс в backoffice.
	// При его недоступности не блокируем кассу: списание выровняет backoffice
	if metodo == domain.MetodoSaldoCuenta && montoACobrar > 0 {
		usuario, err := uc.backoffice.GetUsuarioWithGracefulDegradation(ctx, reserva.UserID)
		if err != nil && !errors.Is(err, backoffice.ErrServiceDegraded) {
			uc.logger.Error("ConfirmarPago: failed to get usuario id=%d: %v", reserva.UserID, err)
			return nil, fmt.Errorf("%w: failed to get usuario: %v", ErrInternal, err)
		}
		if usuario != nil && usuario.Saldo < montoACobrar {
			uc.logger.Warn("ConfirmarPago: saldo insuficiente for user=%d, saldo=%.2f, monto=%.2f",
				reserva.UserID, usuario.Saldo, montoACobrar)
			return nil, ErrSaldoInsuficiente
		}
	}

	// 7. Финализируем резервацию со снапшотом каррито
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.reservaRepo.Finalizar(txCtx, reserva.ID, carrito.Items, subtotal, metodo); err != nil {
			if errors.Is(err, reservaRepo.ErrNoTransition) {
				return ErrReservaNotFinalizable
			}
			return fmt.Errorf("%w: failed to finalize reserva: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 8. Каррито отработало; ошибка удаления не критична - ключ истечет по TTL
	if err := uc.carritoStore.Delete(ctx, carrito.ID); err != nil {
		uc.logger.Error("ConfirmarPago: failed to delete carrito %s: %v", carrito.ID, err)
	}

	uc.logger.Info("ConfirmarPago: reserva id=%d finalized, metodo=%s, subtotal=%.2f, monto=%.2f",
		reserva.ID, metodo, subtotal, montoACobrar)

	resp.Finalizada = true
	return resp, nil
}
