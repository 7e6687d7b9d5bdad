package domain

import "context"

type Actor struct {
	ID        int
	FirstName string
	LastName  string
	// Titles of the plays this actor appears in, populated on detail reads.
	Plays []string
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

type ActorRepository interface {
	Create(ctx context.Context, actor *Actor) error
	GetById(ctx context.Context, id int) (*Actor, error)
	GetAll(ctx context.Context, pagination Pagination) ([]Actor, *Metadata, error)
}
