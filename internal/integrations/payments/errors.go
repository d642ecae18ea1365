package payments

import "errors"

var (
	// ErrSessionNotFound возвращается, когда платёжная сессия не найдена
	ErrSessionNotFound = errors.New("payments client: session not found")

	// ErrProviderUnavailable возвращается, когда платёжный провайдер
	// недоступен или вернул ошибку
	ErrProviderUnavailable = errors.New("payments client: provider unavailable")
)
