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

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

// Create inserts the play and its genre/actor links in one transaction. A
// non-existent genre or actor id surfaces as ErrInvalidReference.
func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play, genreIds, actorIds []int) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO plays (title, description) VALUES ($1, $2) RETURNING id`

		err := tx.QueryRow(ctx, query, play.Title, play.Description).Scan(&play.ID)
		if err != nil {
			return err
		}

		if len(genreIds) > 0 {
			rows := make([][]any, 0, len(genreIds))
			for _, genreId := range genreIds {
				rows = append(rows, []any{play.ID, genreId})
			}

			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{"play_genres"},
				[]string{"play_id", "genre_id"},
				pgx.CopyFromRows(rows),
			)
			if err != nil {
				return err
			}
		}

		if len(actorIds) > 0 {
			rows := make([][]any, 0, len(actorIds))
			for _, actorId := range actorIds {
				rows = append(rows, []any{play.ID, actorId})
			}

			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{"play_actors"},
				[]string{"play_id", "actor_id"},
				pgx.CopyFromRows(rows),
			)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	query := `SELECT id, title, description FROM plays WHERE id = $1`

	var play domain.Play

	err := p.db.QueryRow(ctx, query, id).Scan(&play.ID, &play.Title, &play.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	genres, err := p.retrieveGenres(ctx, id)
	if err != nil {
		return nil, err
	}

	actors, err := p.retrieveActors(ctx, id)
	if err != nil {
		return nil, err
	}

	play.Genres = genres
	play.Actors = actors

	return &play, nil
}

func (p *PostgresPlayRepository) retrieveGenres(ctx context.Context, playId int) ([]domain.Genre, error) {
	query := `
		SELECT g.id, g.name
		FROM genres g
		JOIN play_genres pg ON g.id = pg.genre_id AND pg.play_id = $1
		ORDER BY g.id
	`

	rows, err := p.db.Query(ctx, query, playId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)

	for rows.Next() {
		var genre domain.Genre

		err := rows.Scan(&genre.ID, &genre.Name)
		if err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

func (p *PostgresPlayRepository) retrieveActors(ctx context.Context, playId int) ([]domain.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name
		FROM actors a
		JOIN play_actors pa ON a.id = pa.actor_id AND pa.play_id = $1
		ORDER BY a.id
	`

	rows, err := p.db.Query(ctx, query, playId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := make([]domain.Actor, 0)

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return nil, err
		}

		actors = append(actors, actor)
	}

	return actors, rows.Err()
}

func (p *PostgresPlayRepository) GetAll(
	ctx context.Context,
	filters domain.PlayFilters) ([]domain.PlaySummary, *domain.Metadata, error) {

	// NULLIF collapses empty filter arrays to NULL so the predicate short-circuits.
	query := `
		SELECT count(*) OVER(), p.id, p.title, p.description,
			COALESCE((SELECT array_agg(g.name ORDER BY g.name)
				FROM genres g JOIN play_genres pg ON g.id = pg.genre_id
				WHERE pg.play_id = p.id), '{}'),
			COALESCE((SELECT array_agg(a.first_name || ' ' || a.last_name ORDER BY a.id)
				FROM actors a JOIN play_actors pa ON a.id = pa.actor_id
				WHERE pa.play_id = p.id), '{}')
		FROM plays p
		WHERE (NULLIF($1::int[], '{}') IS NULL
			OR EXISTS (SELECT 1 FROM play_genres pg WHERE pg.play_id = p.id AND pg.genre_id = ANY($1)))
		AND (NULLIF($2::int[], '{}') IS NULL
			OR EXISTS (SELECT 1 FROM play_actors pa WHERE pa.play_id = p.id AND pa.actor_id = ANY($2)))
		ORDER BY p.id
		LIMIT $3 OFFSET $4
	`

	rows, err := p.db.Query(ctx, query, filters.GenreIDs, filters.ActorIDs, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	plays := make([]domain.PlaySummary, 0)

	for rows.Next() {
		var play domain.PlaySummary

		err := rows.Scan(
			&totalRecords,
			&play.ID,
			&play.Title,
			&play.Description,
			&play.Genres,
			&play.Actors,
		)
		if err != nil {
			return nil, nil, err
		}

		plays = append(plays, play)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return plays, metadata, nil
}
