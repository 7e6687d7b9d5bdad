package repository

import (
	"context"
	"errors"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresActorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresActorRepository {
	return &PostgresActorRepository{
		db: db,
	}
}

func (p *PostgresActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	query := `INSERT INTO actors (first_name, last_name) VALUES ($1, $2) RETURNING id`

	return p.db.QueryRow(ctx, query, actor.FirstName, actor.LastName).Scan(&actor.ID)
}

func (p *PostgresActorRepository) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name,
			COALESCE(array_agg(p.title ORDER BY p.title) FILTER (WHERE p.id IS NOT NULL), '{}')
		FROM actors a
		LEFT JOIN play_actors pa ON pa.actor_id = a.id
		LEFT JOIN plays p ON p.id = pa.play_id
		WHERE a.id = $1
		GROUP BY a.id
	`

	var actor domain.Actor

	err := p.db.QueryRow(ctx, query, id).Scan(&actor.ID, &actor.FirstName, &actor.LastName, &actor.Plays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &actor, nil
}

func (p *PostgresActorRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, first_name, last_name
		FROM actors
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	actors := make([]domain.Actor, 0)

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(&totalRecords, &actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return nil, nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return actors, metadata, nil
}
