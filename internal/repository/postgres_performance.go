package repository

import (
	"context"
	"errors"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPerformanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db: db,
	}
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `INSERT INTO performances (play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(
		ctx,
		query,
		performance.PlayID,
		performance.TheatreHallID,
		performance.ShowTime,
	).Scan(&performance.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresPerformanceRepository) Update(ctx context.Context, performance *domain.Performance) error {
	query := `
		UPDATE performances
		SET play_id = $1, theatre_hall_id = $2, show_time = $3
		WHERE id = $4
	`

	tag, err := p.db.Exec(
		ctx,
		query,
		performance.PlayID,
		performance.TheatreHallID,
		performance.ShowTime,
		performance.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrInvalidReference
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.PerformanceDetail, error) {
	query := `
		SELECT pf.id, pf.show_time,
			pl.id, pl.title, pl.description,
			COALESCE((SELECT array_agg(g.name ORDER BY g.name)
				FROM genres g JOIN play_genres pg ON g.id = pg.genre_id
				WHERE pg.play_id = pl.id), '{}'),
			COALESCE((SELECT array_agg(a.first_name || ' ' || a.last_name ORDER BY a.id)
				FROM actors a JOIN play_actors pa ON a.id = pa.actor_id
				WHERE pa.play_id = pl.id), '{}'),
			h.id, h.name, h.seat_rows, h.seats_in_row
		FROM performances pf
		JOIN plays pl ON pf.play_id = pl.id
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		WHERE pf.id = $1
	`

	var detail domain.PerformanceDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTime,
		&detail.Play.ID,
		&detail.Play.Title,
		&detail.Play.Description,
		&detail.Play.Genres,
		&detail.Play.Actors,
		&detail.TheatreHall.ID,
		&detail.TheatreHall.Name,
		&detail.TheatreHall.Rows,
		&detail.TheatreHall.SeatsInRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &detail, nil
}

func (p *PostgresPerformanceRepository) GetByIdWithHall(
	ctx context.Context,
	id int) (*domain.Performance, *domain.TheatreHall, error) {

	query := `
		SELECT pf.id, pf.play_id, pf.theatre_hall_id, pf.show_time,
			h.id, h.name, h.seat_rows, h.seats_in_row
		FROM performances pf
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		WHERE pf.id = $1
	`

	var performance domain.Performance
	var hall domain.TheatreHall

	err := p.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.PlayID,
		&performance.TheatreHallID,
		&performance.ShowTime,
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrPerformanceNotFound
		}

		return nil, nil, err
	}

	return &performance, &hall, nil
}

// GetAll lists performances with availability derived from hall geometry minus
// sold tickets. The count is computed in the query on every read, never cached.
func (p *PostgresPerformanceRepository) GetAll(
	ctx context.Context,
	filters domain.PerformanceFilters) ([]domain.PerformanceSummary, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), pf.id, pl.title, h.name, pf.show_time,
			h.seat_rows * h.seats_in_row
				- (SELECT count(*) FROM tickets t WHERE t.performance_id = pf.id)
		FROM performances pf
		JOIN plays pl ON pf.play_id = pl.id
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		WHERE ($1::date IS NULL OR pf.show_time::date = $1)
		AND ($2::int IS NULL OR pf.play_id = $2)
		ORDER BY pf.show_time, pf.id
		LIMIT $3 OFFSET $4
	`

	rows, err := p.db.Query(ctx, query, filters.Date, filters.PlayID, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	performances := make([]domain.PerformanceSummary, 0)

	for rows.Next() {
		var performance domain.PerformanceSummary

		err := rows.Scan(
			&totalRecords,
			&performance.ID,
			&performance.PlayTitle,
			&performance.TheatreHallName,
			&performance.ShowTime,
			&performance.TicketsAvailable,
		)
		if err != nil {
			return nil, nil, err
		}

		performances = append(performances, performance)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return performances, metadata, nil
}
