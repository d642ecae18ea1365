package create_contact_message

import (
	"errors"
	"net/http"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
	"github.com/qnovavr/QNOVA-BookingService/internal/service/contact"
)

const (
	msgInvalidRequestBody = "invalid_request_body"
	msgInvalidInput       = "invalid_contact_message"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateContactMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /contact - Failed to save message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message saved: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
