package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString время суток в формате "HH:MM" без даты и зоны
// Используется для времени начала/конца слотов и сравнения внутри одного дня
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String возвращает время в формате "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// parsed возвращает компоненты часов и минут
func (t TimeString) parsed() (time.Time, error) {
	return time.Parse(timeLayout, string(t))
}

// Hour возвращает часы (0-23); для невалидного значения возвращает 0
func (t TimeString) Hour() int {
	p, err := t.parsed()
	if err != nil {
		return 0
	}
	return p.Hour()
}

// Minute возвращает минуты (0-59); для невалидного значения возвращает 0
func (t TimeString) Minute() int {
	p, err := t.parsed()
	if err != nil {
		return 0
	}
	return p.Minute()
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.parsed()
	b, errB := other.parsed()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.parsed()
	b, errB := other.parsed()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes возвращает время через m минут
// Ошибка, если исходное значение невалидно или результат выходит за пределы суток
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	p, err := t.parsed()
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	res := p.Add(time.Duration(m) * time.Minute)
	// time.Parse дает дату 0000-01-01; смена дня означает переход через полночь
	if res.Day() != p.Day() {
		return "", fmt.Errorf("types: time %q + %d minutes crosses day boundary", string(t), m)
	}
	return NewTimeString(res), nil
}

// At привязывает время к конкретной дате в зоне этой даты
func (t TimeString) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME
// Postgres-драйвер может вернуть time.Time, []byte или string
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Колонка TIME может прийти как "HH:MM:SS"
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
