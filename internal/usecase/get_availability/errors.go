package get_availability

import "errors"

var (
	// ErrUnknownService возвращается, когда услуга не входит в каталог студии
	ErrUnknownService = errors.New("get_availability: unknown service type")

	// ErrInvalidDate возвращается при некорректной дате или дате в прошлом
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
