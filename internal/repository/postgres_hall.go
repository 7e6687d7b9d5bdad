package repository

import (
	"context"
	"errors"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheatreHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheatreHallRepository(db *pgxpool.Pool) *PostgresTheatreHallRepository {
	return &PostgresTheatreHallRepository{
		db: db,
	}
}

func (p *PostgresTheatreHallRepository) Create(ctx context.Context, hall *domain.TheatreHall) error {
	query := `INSERT INTO theatre_halls (name, seat_rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id`

	return p.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)
}

func (p *PostgresTheatreHallRepository) GetById(ctx context.Context, id int) (*domain.TheatreHall, error) {
	query := `SELECT id, name, seat_rows, seats_in_row FROM theatre_halls WHERE id = $1`

	var hall domain.TheatreHall

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}

func (p *PostgresTheatreHallRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.TheatreHall, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, name, seat_rows, seats_in_row
		FROM theatre_halls
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	halls := make([]domain.TheatreHall, 0)

	for rows.Next() {
		var hall domain.TheatreHall

		err := rows.Scan(&totalRecords, &hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
		if err != nil {
			return nil, nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return halls, metadata, nil
}
