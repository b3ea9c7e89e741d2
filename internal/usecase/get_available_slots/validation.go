package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SedeID <= 0 {
		return fmt.Errorf("%w: sedeID must be positive", ErrInvalidInput)
	}

	if req.Fecha.IsZero() {
		return fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно резервации:
// не в прошлом и не дальше diasAnticipacion дней вперед
func validateDate(fecha time.Time, now time.Time, diasAnticipacion int) error {
	if isDateInPast(fecha, now) {
		return ErrInvalidDate
	}

	if diasAnticipacion == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, diasAnticipacion)

	fechaOnly := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())

	if fechaOnly.After(maxDate) {
		return fmt.Errorf("%w: can only reserve %d days in advance", ErrDateTooFarInFuture, diasAnticipacion)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
