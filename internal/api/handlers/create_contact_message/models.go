package create_contact_message

import "github.com/qnovavr/QNOVA-BookingService/internal/service/contact/models"

// CreateContactMessageRequest HTTP request model
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateContactMessageRequest) ToServiceRequest() *models.CreateContactMessageRequest {
	return &models.CreateContactMessageRequest{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
