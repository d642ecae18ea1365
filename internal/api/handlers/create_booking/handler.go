package create_booking

import (
	"errors"
	"net/http"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
	createBooking "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_booking"
	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// Машиночитаемые коды ошибок: клиент ветвится по ним,
// человекочитаемый текст остаётся на стороне фронтенда.
const (
	msgInvalidRequestBody = "invalid_request_body"
	msgInvalidDate        = "invalid_date_format"
	msgInvalidTime        = "invalid_time_format"
	msgValidationFailed   = "validation_failed"
	msgUnknownService     = "unknown_service"
	msgDateInPast         = "invalid_date"
	msgSlotNotFound       = "slot_not_found"
	msgSlotUnavailable    = "slot_unavailable"
	msgTransient          = "transient_failure"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createBooking.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: email=%s, %d violations",
				req.Email, len(validationErr.Violations))
			handlers.RespondValidationErrors(w, msgValidationFailed, toFieldErrors(validationErr))

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: service=%q", req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: date=%s, time=%s, service=%q",
				req.BookingDate, req.StartTime, req.ServiceType)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: date=%s, time=%s, service=%q",
				req.BookingDate, req.StartTime, req.ServiceType)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrTransient):
			h.logger.Warn("POST /bookings - Transient failure: date=%s, time=%s: %v",
				req.BookingDate, req.StartTime, err)
			handlers.RespondServiceUnavailable(w, msgTransient)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, service=%q, date=%s, time=%s",
		result.ID, result.ServiceType, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// toFieldErrors конвертирует нарушения валидации в формат ответа
func toFieldErrors(validationErr *createBooking.ValidationError) []handlers.FieldError {
	fields := make([]handlers.FieldError, 0, len(validationErr.Violations))
	for _, v := range validationErr.Violations {
		fields = append(fields, handlers.FieldError{
			Field:   v.Field,
			Message: v.Message,
		})
	}
	return fields
}
