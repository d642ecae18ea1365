package create_contact_message

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/service/contact/models"
)

type ContactService interface {
	Create(ctx context.Context, req *models.CreateContactMessageRequest) (*models.ContactMessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
