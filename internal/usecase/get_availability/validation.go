package get_availability

import (
	"fmt"
	"time"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if isDateInPast(req.Date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	if req.ServiceType != nil {
		if _, ok := domain.ServiceByName(*req.ServiceType); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownService, *req.ServiceType)
		}
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// Дата запроса парсится в UTC, поэтому обе стороны приводятся к UTC:
// результат не должен зависеть от часового пояса сервера.
func isDateInPast(date, now time.Time) bool {
	d := date.UTC()
	n := now.UTC()
	dateOnly := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
