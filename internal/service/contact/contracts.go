package contact

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

// ContactRepository интерфейс репозитория сообщений обратной связи
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
