package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	getAvailability "github.com/qnovavr/QNOVA-BookingService/internal/usecase/get_availability"
	"github.com/qnovavr/QNOVA-BookingService/pkg/ptr"
)

const (
	msgInvalidDate    = "invalid_date_format"
	msgDateInPast     = "invalid_date"
	msgUnknownService = "unknown_service"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}
// Query params: service (optional, exact service name)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	dateStr := vars["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{Date: date}
	if service := r.URL.Query().Get("service"); service != "" {
		req.ServiceType = ptr.Ptr(service)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability/{date} - Invalid date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrUnknownService):
			h.logger.Warn("GET /availability/{date} - Unknown service: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgUnknownService)

		default:
			h.logger.Error("GET /availability/{date} - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/{date} - Returned %d slots: date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
