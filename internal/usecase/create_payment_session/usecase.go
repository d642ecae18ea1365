package create_payment_session

import (
	"context"
	"fmt"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

// UseCase use case для создания платёжной сессии
type UseCase struct {
	client PaymentsClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PaymentsClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет use case создания платёжной сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentSession: package=%s", req.PackageID)

	pkg, ok := domain.PackageByID(req.PackageID)
	if !ok {
		uc.logger.Warn("CreatePaymentSession: unknown package=%s", req.PackageID)
		return nil, fmt.Errorf("%w: %q", ErrUnknownPackage, req.PackageID)
	}

	session, err := uc.client.CreateCheckoutSession(ctx, pkg)
	if err != nil {
		uc.logger.Error("CreatePaymentSession: provider call failed for package=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	uc.logger.Info("CreatePaymentSession: created session id=%s for package=%s", session.ID, req.PackageID)

	return &Response{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}
