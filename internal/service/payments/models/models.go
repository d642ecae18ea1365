package models

import paymentsClient "github.com/qnovavr/QNOVA-BookingService/internal/integrations/payments"

// SessionStatusResponse статус платёжной сессии для API
type SessionStatusResponse struct {
	SessionID     string `json:"sessionId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// FromClientStatus конвертирует ответ провайдера в response
func FromClientStatus(s *paymentsClient.SessionStatus) *SessionStatusResponse {
	return &SessionStatusResponse{
		SessionID:     s.ID,
		Status:        s.Status,
		PaymentStatus: s.PaymentStatus,
	}
}
