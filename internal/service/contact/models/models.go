package models

import (
	"time"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

// CreateContactMessageRequest запрос на отправку сообщения обратной связи
type CreateContactMessageRequest struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required,max=200"`
	Message string `validate:"required,max=1000"`
}

// ContactMessageResponse представление сообщения обратной связи для API
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageListResponse список сообщений обратной связи
type ContactMessageListResponse struct {
	Messages []*ContactMessageResponse `json:"messages"`
	Total    int                       `json:"total"`
}

// FromDomainContactMessage конвертирует domain модель в response
func FromDomainContactMessage(m *domain.ContactMessage) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainContactMessageList конвертирует список domain моделей в response
func FromDomainContactMessageList(messages []*domain.ContactMessage) *ContactMessageListResponse {
	result := make([]*ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, FromDomainContactMessage(m))
	}

	return &ContactMessageListResponse{
		Messages: result,
		Total:    len(result),
	}
}
