package payments

import (
	"context"

	paymentsClient "github.com/qnovavr/QNOVA-BookingService/internal/integrations/payments"
)

// PaymentsClient интерфейс клиента платёжного провайдера
type PaymentsClient interface {
	GetSessionStatus(ctx context.Context, sessionID string) (*paymentsClient.SessionStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
