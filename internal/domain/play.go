package domain

import "context"

type Play struct {
	ID          int
	Title       string
	Description string
	Genres      []Genre
	Actors      []Actor
}

// PlaySummary is the list projection of a play: genre and actor names only.
type PlaySummary struct {
	ID          int
	Title       string
	Description string
	Genres      []string
	Actors      []string
}

type PlayFilters struct {
	Pagination
	GenreIDs []int
	ActorIDs []int
}

type PlayRepository interface {
	Create(ctx context.Context, play *Play, genreIds, actorIds []int) error
	GetById(ctx context.Context, id int) (*Play, error)
	GetAll(ctx context.Context, filters PlayFilters) ([]PlaySummary, *Metadata, error)
}
