package list_contact_messages

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/service/contact/models"
)

type ContactService interface {
	List(ctx context.Context) (*models.ContactMessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
