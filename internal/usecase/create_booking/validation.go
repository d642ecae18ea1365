package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

var validate = validator.New()

// validateRequest валидирует весь запрос целиком.
// Все нарушения полей собираются в один ValidationError: клиент получает
// полный список проблем за один вызов. Неизвестная услуга и дата в прошлом
// возвращаются отдельными ошибками, так как это разные классы отказа.
func validateRequest(req *Request, now time.Time) error {
	violations := collectFieldViolations(req)

	svc, svcKnown := domain.ServiceByName(req.ServiceType)

	// Лимит участников зависит от услуги, поэтому проверяется только
	// когда услуга известна.
	if svcKnown && req.Participants > svc.MaxParticipants {
		violations = append(violations, FieldViolation{
			Field:   "participants",
			Message: fmt.Sprintf("must not exceed %d for %s", svc.MaxParticipants, svc.Name),
		})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	if !svcKnown {
		return fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceType)
	}

	if isDateInPast(req.BookingDate, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	return nil
}

// collectFieldViolations собирает нарушения структурных правил полей
func collectFieldViolations(req *Request) []FieldViolation {
	var violations []FieldViolation

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			violations = append(violations, FieldViolation{
				Field:   "request",
				Message: err.Error(),
			})
			return violations
		}

		for _, fe := range fieldErrs {
			violations = append(violations, FieldViolation{
				Field:   fieldName(fe.Field()),
				Message: violationMessage(fe),
			})
		}
	}

	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			violations = append(violations, FieldViolation{
				Field:   "start_time",
				Message: "must be in HH:MM format",
			})
		}
	}

	return violations
}

// fieldName переводит имя поля структуры в имя поля API
func fieldName(structField string) string {
	switch structField {
	case "CustomerName":
		return "customer_name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "ServiceType":
		return "service_type"
	case "BookingDate":
		return "booking_date"
	case "StartTime":
		return "start_time"
	case "Participants":
		return "participants"
	case "Message":
		return "message"
	case "SelectedGame":
		return "selected_game"
	default:
		return structField
	}
}

// violationMessage строит человекочитаемое описание нарушения
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	default:
		return fmt.Sprintf("failed on rule %q", fe.Tag())
	}
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
