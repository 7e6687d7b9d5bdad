package domain

import (
	"context"
	"time"
)

// Reservation is one atomic purchase owned by a user. It is created together
// with its full set of tickets in a single transaction and is immutable after
// that: there are no update or delete paths.
type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

// ReservationTicket is a ticket joined with its performance summary, used when
// listing a user's reservations.
type ReservationTicket struct {
	Ticket
	Performance PerformanceSummary
}

// ReservationWithTickets is the list/detail projection of a reservation.
type ReservationWithTickets struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []ReservationTicket
}

type ReservationRepository interface {
	// Create persists the reservation and all of its tickets as one transaction.
	// A concurrent claim on any requested seat surfaces as ErrSeatAlreadyTaken
	// and nothing is persisted.
	Create(ctx context.Context, reservation *Reservation) error
	// GetTakenSeats returns which of the given (performance, row, seat) triples
	// are already claimed by an existing ticket.
	GetTakenSeats(ctx context.Context, tickets []Ticket) ([]Ticket, error)
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]ReservationWithTickets, *Metadata, error)
	GetByIdAndUserId(ctx context.Context, id, userId int) (*ReservationWithTickets, error)
	CountByPerformanceId(ctx context.Context, performanceId int) (int, error)
}
