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

type PostgresGenreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresGenreRepository(db *pgxpool.Pool) *PostgresGenreRepository {
	return &PostgresGenreRepository{
		db: db,
	}
}

func (p *PostgresGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING id`

	err := p.db.QueryRow(ctx, query, genre.Name).Scan(&genre.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrGenreAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresGenreRepository) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	query := `
		SELECT g.id, g.name,
			COALESCE(array_agg(p.title ORDER BY p.title) FILTER (WHERE p.id IS NOT NULL), '{}')
		FROM genres g
		LEFT JOIN play_genres pg ON pg.genre_id = g.id
		LEFT JOIN plays p ON p.id = pg.play_id
		WHERE g.id = $1
		GROUP BY g.id
	`

	var genre domain.Genre

	err := p.db.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name, &genre.Plays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &genre, nil
}

func (p *PostgresGenreRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Genre, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), g.id, g.name,
			COALESCE(array_agg(p.title ORDER BY p.title) FILTER (WHERE p.id IS NOT NULL), '{}')
		FROM genres g
		LEFT JOIN play_genres pg ON pg.genre_id = g.id
		LEFT JOIN plays p ON p.id = pg.play_id
		GROUP BY g.id
		ORDER BY g.id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	genres := make([]domain.Genre, 0)

	for rows.Next() {
		var genre domain.Genre

		err := rows.Scan(&totalRecords, &genre.ID, &genre.Name, &genre.Plays)
		if err != nil {
			return nil, nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return genres, metadata, nil
}
