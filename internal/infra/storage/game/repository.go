package game

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/pkg/psqlbuilder"
	"github.com/qnovavr/QNOVA-BookingService/pkg/txmanager"
)

// Repository репозиторий игрового каталога (только чтение после заливки)
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория каталога игр
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Seed идемпотентно заливает каталог игр.
// Вызывается при старте сервиса; существующие записи не трогает.
func (r *Repository) Seed(ctx context.Context, games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("games").
		Columns(
			"id",
			"name",
			"description",
			"platform",
			"image_url",
			"duration_minutes",
			"max_players",
		)

	for _, g := range games {
		insertBuilder = insertBuilder.Values(
			g.ID,
			g.Name,
			g.Description,
			g.Platform,
			g.ImageURL,
			g.DurationMinutes,
			g.MaxPlayers,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List возвращает каталог игр, опционально фильтруя по платформе
// (без учета регистра — так вел себя исходный API)
func (r *Repository) List(ctx context.Context, platform *string) ([]*domain.Game, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"platform",
		"image_url",
		"duration_minutes",
		"max_players",
	).
		From("games")

	if platform != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"LOWER(platform)": strings.ToLower(*platform)})
	}

	selectBuilder = selectBuilder.OrderBy("id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetByName получает игру по точному названию
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Game, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"platform",
		"image_url",
		"duration_minutes",
		"max_players",
	).
		From("games").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var g domain.Game
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.Platform,
		&g.ImageURL,
		&g.DurationMinutes,
		&g.MaxPlayers,
	)
	if err == sql.ErrNoRows {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan game: %v", ErrScanRow, err)
	}

	return &g, nil
}

func scanGames(rows *sql.Rows) ([]*domain.Game, error) {
	games := make([]*domain.Game, 0)

	for rows.Next() {
		var g domain.Game
		err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Description,
			&g.Platform,
			&g.ImageURL,
			&g.DurationMinutes,
			&g.MaxPlayers,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanGames - scan row: %v", ErrScanRow, err)
		}
		games = append(games, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanGames - rows error: %v", ErrScanRow, err)
	}

	return games, nil
}
