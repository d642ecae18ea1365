package get_payment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
	"github.com/qnovavr/QNOVA-BookingService/internal/service/payments"
)

const (
	msgMissingSessionID   = "session_id_required"
	msgSessionNotFound    = "session_not_found"
	msgPaymentUnavailable = "payment_unavailable"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/checkout-session/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("GET /payments/checkout-session/{id}/status - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	result, err := h.service.GetSessionStatus(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrSessionNotFound):
			h.logger.Warn("GET /payments/checkout-session/{id}/status - Session not found: id=%s", id)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, payments.ErrProviderUnavailable):
			h.logger.Error("GET /payments/checkout-session/{id}/status - Provider unavailable: id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, msgPaymentUnavailable)

		default:
			h.logger.Error("GET /payments/checkout-session/{id}/status - Failed to get status: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
