package games

import (
	"context"
	"fmt"

	"github.com/qnovavr/QNOVA-BookingService/internal/service/games/models"
)

// Service сервис каталога игр
type Service struct {
	gameRepo GameRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога игр
func NewService(gameRepo GameRepository, logger Logger) *Service {
	return &Service{
		gameRepo: gameRepo,
		logger:   logger,
	}
}

// List возвращает каталог игр с опциональным фильтром по платформе.
// Фильтр нечувствителен к регистру; неизвестная платформа дает пустой список.
func (s *Service) List(ctx context.Context, platform *string) (*models.GameListResponse, error) {
	s.logger.Info("List: fetching games, platform=%v", platform)

	games, err := s.gameRepo.List(ctx, platform)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d games", len(games))
	return models.FromDomainGameList(games), nil
}
