package occupancy

import "errors"

var (
	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("occupancy.tracker: storage error")
)
