package create_payment_session

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/internal/integrations/payments"
)

// PaymentsClient интерфейс клиента платёжного провайдера
type PaymentsClient interface {
	CreateCheckoutSession(ctx context.Context, pkg domain.PricingPackage) (*payments.CheckoutSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
