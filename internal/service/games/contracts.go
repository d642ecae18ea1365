package games

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

// GameRepository интерфейс репозитория каталога игр
type GameRepository interface {
	List(ctx context.Context, platform *string) ([]*domain.Game, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
