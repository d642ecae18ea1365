package list_games

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/service/games/models"
)

type GamesService interface {
	List(ctx context.Context, platform *string) (*models.GameListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
