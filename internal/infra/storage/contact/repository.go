package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/pkg/psqlbuilder"
	"github.com/qnovavr/QNOVA-BookingService/pkg/txmanager"
)

// Repository репозиторий сообщений контактной формы
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое сообщение
func (r *Repository) Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("id", "name", "email", "subject", "message").
		Values(m.ID, m.Name, m.Email, m.Subject, m.Message).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	return m, nil
}

// List возвращает все сообщения, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query, args, err := psqlbuilder.Select("id", "name", "email", "subject", "message", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		var (
			m         domain.ContactMessage
			createdAt sql.NullTime
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}
