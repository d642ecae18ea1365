package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation возвращается при нарушении правил валидации полей запроса
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrUnknownService возвращается, когда услуга не входит в каталог студии
	ErrUnknownService = errors.New("create_booking: unknown service type")

	// ErrInvalidDate возвращается при некорректной дате или дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotNotFound возвращается, когда время не совпадает ни с одним слотом сетки
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotUnavailable возвращается, когда слот уже занят другим бронированием
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrTransient возвращается, когда транзакция не прошла и после повтора
	ErrTransient = errors.New("create_booking: transient failure, please retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldViolation одно нарушение правила валидации
type FieldViolation struct {
	Field   string // Имя поля в запросе
	Message string // Человекочитаемое описание нарушения
}

// ValidationError агрегирует все нарушения валидации запроса.
// Запрос проверяется целиком, чтобы клиент получил полный список
// проблем за один вызов, а не по одной за запрос.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("create_booking: validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap позволяет проверять ValidationError через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
