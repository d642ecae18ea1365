package payments

import "errors"

var (
	// ErrSessionNotFound возвращается, когда платёжная сессия не найдена
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrProviderUnavailable возвращается, когда платёжный провайдер недоступен
	ErrProviderUnavailable = errors.New("payment provider unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
