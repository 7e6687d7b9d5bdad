package domain

import "fmt"

// Ticket is a single seat claim (row, seat) for one performance. It belongs to
// exactly one reservation; the (performance, row, seat) triple is unique across
// all tickets, enforced by the tickets_performance_seat_key constraint.
type Ticket struct {
	ID            int
	Row           int
	Seat          int
	PerformanceID int
	ReservationID int
}

// TicketSeatError reports a seat coordinate outside the hall grid. Field is
// either "row" or "seat".
type TicketSeatError struct {
	Field string
	Value int
	Max   int
}

func (e *TicketSeatError) Error() string {
	return fmt.Sprintf("%s must be in range [1, %d], got %d", e.Field, e.Max, e.Value)
}

// ValidateTicketSeat checks that (row, seat) lies inside the hall's grid. It is
// pure: no persistence, no side effects. Both the reservation flow and the
// repository tests call it directly.
func ValidateTicketSeat(row, seat int, hall TheatreHall) error {
	if row < 1 || row > hall.Rows {
		return &TicketSeatError{Field: "row", Value: row, Max: hall.Rows}
	}

	if seat < 1 || seat > hall.SeatsInRow {
		return &TicketSeatError{Field: "seat", Value: seat, Max: hall.SeatsInRow}
	}

	return nil
}
