package domain

import (
	"context"
	"time"
)

// Performance schedules a play in a theatre hall at a show time.
type Performance struct {
	ID            int
	PlayID        int
	TheatreHallID int
	ShowTime      time.Time
}

// PerformanceSummary is the list projection of a performance. TicketsAvailable is
// derived in SQL as hall capacity minus sold tickets, computed fresh on every read.
type PerformanceSummary struct {
	ID               int
	PlayTitle        string
	TheatreHallName  string
	ShowTime         time.Time
	TicketsAvailable int
}

// PerformanceDetail carries the nested play and hall for the detail endpoint.
type PerformanceDetail struct {
	ID          int
	ShowTime    time.Time
	Play        PlaySummary
	TheatreHall TheatreHall
}

type PerformanceFilters struct {
	Pagination
	Date   *time.Time
	PlayID *int
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *Performance) error
	Update(ctx context.Context, performance *Performance) error
	GetById(ctx context.Context, id int) (*PerformanceDetail, error)
	// GetByIdWithHall resolves the performance together with its hall geometry,
	// which is what ticket validation needs.
	GetByIdWithHall(ctx context.Context, id int) (*Performance, *TheatreHall, error)
	GetAll(ctx context.Context, filters PerformanceFilters) ([]PerformanceSummary, *Metadata, error)
}
