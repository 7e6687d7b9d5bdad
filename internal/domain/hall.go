package domain

import "context"

// TheatreHall is the physical seat grid of a venue: Rows x SeatsInRow rectangular
// geometry. Every ticket coordinate is validated against it.
type TheatreHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type TheatreHallRepository interface {
	Create(ctx context.Context, hall *TheatreHall) error
	GetById(ctx context.Context, id int) (*TheatreHall, error)
	GetAll(ctx context.Context, pagination Pagination) ([]TheatreHall, *Metadata, error)
}
