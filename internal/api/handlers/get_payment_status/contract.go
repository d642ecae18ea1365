package get_payment_status

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/service/payments/models"
)

type PaymentsService interface {
	GetSessionStatus(ctx context.Context, sessionID string) (*models.SessionStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
