package domain

import "context"

type Genre struct {
	ID   int
	Name string
	// Titles of the plays tagged with this genre, populated on reads only.
	Plays []string
}

type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	GetById(ctx context.Context, id int) (*Genre, error)
	GetAll(ctx context.Context, pagination Pagination) ([]Genre, *Metadata, error)
}
