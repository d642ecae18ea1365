package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/pkg/psqlbuilder"
	"github.com/qnovavr/QNOVA-BookingService/pkg/txmanager"
	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// Repository репозиторий слотов доступности — единственный владелец
// состояния слотов. Все переходы статусов идут через него.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSlots идемпотентно сохраняет сгенерированный набор слотов.
// Конфликт по уникальному ключу (slot_date, start_time, service_type)
// молча игнорируется: конкурентная первая генерация одной и той же даты
// не создает дубликатов и не считается ошибкой.
func (r *Repository) EnsureSlots(ctx context.Context, slots []*domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").
		Columns(
			"id",
			"slot_date",
			"start_time",
			"service_type",
			"status",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.ID,
			s.Date,
			s.StartTime,
			s.ServiceType,
			s.Status,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (slot_date, start_time, service_type) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: EnsureSlots - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureSlots - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByDate получает слоты на дату, упорядоченные по услуге и времени.
// Опционально фильтрует по услуге.
func (r *Repository) GetByDate(ctx context.Context, date time.Time, serviceType *string) ([]*domain.Slot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns()...).
		From("slots").
		Where(squirrel.Eq{"slot_date": date})

	if serviceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": *serviceType})
	}

	selectBuilder = selectBuilder.OrderBy("service_type ASC", "start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByKey получает слот по тройке (дата, время, услуга).
// Внутри транзакции добавляет FOR UPDATE, чтобы claim работал
// по зафиксированной строке.
func (r *Repository) GetByKey(ctx context.Context, date time.Time, startTime types.TimeString, serviceType string) (*domain.Slot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns()...).
		From("slots").
		Where(squirrel.Eq{
			"slot_date":    date,
			"start_time":   startTime,
			"service_type": serviceType,
		})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// TryClaim атомарно переводит слот из available в booked и привязывает
// бронирование. Проверка статуса и запись — один UPDATE: условие
// status = 'available' делает операцию compare-and-set на уровне БД.
// Если слот уже booked, blocked или maintenance — ErrSlotConflict.
func (r *Repository) TryClaim(ctx context.Context, slotID, bookingRef string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotBooked).
		Set("booking_ref", bookingRef).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     slotID,
			"status": domain.SlotAvailable,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: TryClaim - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TryClaim - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TryClaim - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotConflict
	}

	return nil
}

// Release возвращает booked-слот в available и очищает booking_ref.
// Слот освобождается только если его booking_ref указывает на отменяемое
// бронирование; иначе (или если слот не booked) — ErrSlotNotBooked,
// вызывающая сторона логирует предупреждение и продолжает.
func (r *Repository) Release(ctx context.Context, slotID, bookingRef string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotAvailable).
		Set("booking_ref", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":          slotID,
			"status":      domain.SlotBooked,
			"booking_ref": bookingRef,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotBooked
	}

	return nil
}

// SetStatus переводит слот в служебный статус (blocked/maintenance)
// или обратно в available. Для перевода в booked использовать TryClaim.
func (r *Repository) SetStatus(ctx context.Context, slotID string, status domain.SlotStatus) error {
	if status == domain.SlotBooked {
		return fmt.Errorf("%w: SetStatus - use TryClaim for booked status", ErrExecQuery)
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", status).
		Set("booking_ref", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func slotColumns() []string {
	return []string{
		"id",
		"slot_date",
		"start_time",
		"service_type",
		"status",
		"booking_ref",
		"created_at",
		"updated_at",
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var (
		s                    domain.Slot
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.ServiceType,
		&s.Status,
		&s.BookingRef,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	result := make([]*domain.Slot, 0)

	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
