package create_payment_session

import createPaymentSession "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_payment_session"

// CreatePaymentSessionRequest HTTP request model.
// Сумма не принимается от клиента: сервер берет ее из прайс-листа.
type CreatePaymentSessionRequest struct {
	PackageID string `json:"packageId"`
}

// PaymentSessionResponse HTTP response model
type PaymentSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentSession.Response) *PaymentSessionResponse {
	return &PaymentSessionResponse{
		SessionID: resp.SessionID,
		URL:       resp.URL,
	}
}
