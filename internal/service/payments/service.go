package payments

import (
	"context"
	"errors"
	"fmt"

	paymentsClient "github.com/qnovavr/QNOVA-BookingService/internal/integrations/payments"
	"github.com/qnovavr/QNOVA-BookingService/internal/service/payments/models"
)

// Service сервис чтения статусов платёжных сессий
type Service struct {
	client PaymentsClient
	logger Logger
}

// NewService создает новый экземпляр платёжного сервиса
func NewService(client PaymentsClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetSessionStatus возвращает статус платёжной сессии у провайдера.
// Сервис ничего не хранит локально: источником истины является провайдер.
func (s *Service) GetSessionStatus(ctx context.Context, sessionID string) (*models.SessionStatusResponse, error) {
	s.logger.Info("GetSessionStatus: session=%s", sessionID)

	status, err := s.client.GetSessionStatus(ctx, sessionID)
	if err != nil {
		if errors.Is(err, paymentsClient.ErrSessionNotFound) {
			s.logger.Warn("GetSessionStatus: session=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetSessionStatus: provider call failed for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: GetSessionStatus - provider call failed: %v", ErrProviderUnavailable, err)
	}

	return models.FromClientStatus(status), nil
}
