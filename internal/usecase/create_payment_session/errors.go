package create_payment_session

import "errors"

var (
	// ErrUnknownPackage возвращается, когда пакет отсутствует в прайс-листе
	ErrUnknownPackage = errors.New("create_payment_session: unknown pricing package")

	// ErrPaymentUnavailable возвращается, когда платёжный провайдер недоступен
	ErrPaymentUnavailable = errors.New("create_payment_session: payment provider unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_session: internal error")
)
