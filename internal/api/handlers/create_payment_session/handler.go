package create_payment_session

import (
	"errors"
	"net/http"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
	createPaymentSession "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_payment_session"
)

const (
	msgInvalidRequestBody = "invalid_request_body"
	msgMissingPackageID   = "package_id_required"
	msgUnknownPackage     = "unknown_package"
	msgPaymentUnavailable = "payment_unavailable"
)

type Handler struct {
	useCase CreatePaymentSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/checkout-session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/checkout-session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.PackageID == "" {
		h.logger.Warn("POST /payments/checkout-session - Missing package ID")
		handlers.RespondBadRequest(w, msgMissingPackageID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createPaymentSession.Request{PackageID: req.PackageID})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentSession.ErrUnknownPackage):
			h.logger.Warn("POST /payments/checkout-session - Unknown package: package=%s", req.PackageID)
			handlers.RespondBadRequest(w, msgUnknownPackage)

		case errors.Is(err, createPaymentSession.ErrPaymentUnavailable):
			h.logger.Error("POST /payments/checkout-session - Provider unavailable: package=%s, error=%v",
				req.PackageID, err)
			handlers.RespondServiceUnavailable(w, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /payments/checkout-session - Failed to create session: package=%s, error=%v",
				req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/checkout-session - Session created: session=%s, package=%s",
		result.SessionID, req.PackageID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
