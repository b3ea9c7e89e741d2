package carrito

import "errors"

var (
	// ErrCarritoNotFound возвращается, когда каррито не найдено или истек TTL
	ErrCarritoNotFound = errors.New("carrito.store: carrito not found")

	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("carrito.store: storage error")

	// ErrEncode возвращается при ошибке сериализации каррито
	ErrEncode = errors.New("carrito.store: failed to encode carrito")
)
