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

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create persists the reservation and every ticket in a single transaction.
// The tickets_performance_seat_key unique constraint is the authority on
// double booking: a concurrent claim fails the whole transaction at commit
// with ErrSeatAlreadyTaken and nothing is persisted.
func (p *PostgresReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reservations (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, reservation.UserID).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO tickets (seat_row, seat_number, performance_id, reservation_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		for i := range reservation.Tickets {
			ticket := &reservation.Tickets[i]
			ticket.ReservationID = reservation.ID

			err = tx.QueryRow(
				ctx,
				query,
				ticket.Row,
				ticket.Seat,
				ticket.PerformanceID,
				ticket.ReservationID,
			).Scan(&ticket.ID)

			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return domain.ErrSeatAlreadyTaken
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrPerformanceNotFound
			}
		}

		return err
	}

	return nil
}

// GetTakenSeats reports which of the given (performance, row, seat) triples
// already belong to an existing ticket. Used to name the offending seats after
// a conflict.
func (p *PostgresReservationRepository) GetTakenSeats(
	ctx context.Context,
	tickets []domain.Ticket) ([]domain.Ticket, error) {

	performanceIds := make([]int, len(tickets))
	seatRows := make([]int, len(tickets))
	seatNumbers := make([]int, len(tickets))

	for i, ticket := range tickets {
		performanceIds[i] = ticket.PerformanceID
		seatRows[i] = ticket.Row
		seatNumbers[i] = ticket.Seat
	}

	query := `
		SELECT t.performance_id, t.seat_row, t.seat_number
		FROM tickets t
		JOIN unnest($1::int[], $2::int[], $3::int[]) AS req(performance_id, seat_row, seat_number)
			ON t.performance_id = req.performance_id
			AND t.seat_row = req.seat_row
			AND t.seat_number = req.seat_number
	`

	rows, err := p.db.Query(ctx, query, performanceIds, seatRows, seatNumbers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taken := make([]domain.Ticket, 0)

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(&ticket.PerformanceID, &ticket.Row, &ticket.Seat)
		if err != nil {
			return nil, err
		}

		taken = append(taken, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return taken, nil
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.ReservationWithTickets, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	reservations := make([]domain.ReservationWithTickets, 0)
	reservationIds := make([]int, 0)

	for rows.Next() {
		var reservation domain.ReservationWithTickets

		err := rows.Scan(&totalRecords, &reservation.ID, &reservation.UserID, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
		reservationIds = append(reservationIds, reservation.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	ticketsByReservation, err := p.retrieveTickets(ctx, reservationIds)
	if err != nil {
		return nil, nil, err
	}

	for i := range reservations {
		reservations[i].Tickets = ticketsByReservation[reservations[i].ID]
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) GetByIdAndUserId(
	ctx context.Context,
	id, userId int) (*domain.ReservationWithTickets, error) {

	query := `
		SELECT id, user_id, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2
	`

	var reservation domain.ReservationWithTickets

	err := p.db.QueryRow(ctx, query, id, userId).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	ticketsByReservation, err := p.retrieveTickets(ctx, []int{reservation.ID})
	if err != nil {
		return nil, err
	}

	reservation.Tickets = ticketsByReservation[reservation.ID]

	return &reservation, nil
}

func (p *PostgresReservationRepository) CountByPerformanceId(ctx context.Context, performanceId int) (int, error) {
	query := `SELECT count(*) FROM tickets WHERE performance_id = $1`

	var count int

	err := p.db.QueryRow(ctx, query, performanceId).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// retrieveTickets loads the tickets of the given reservations, each joined
// with its performance summary. Availability is derived in the query, the
// same expression the performance list uses.
func (p *PostgresReservationRepository) retrieveTickets(
	ctx context.Context,
	reservationIds []int) (map[int][]domain.ReservationTicket, error) {

	if len(reservationIds) == 0 {
		return map[int][]domain.ReservationTicket{}, nil
	}

	query := `
		SELECT t.id, t.seat_row, t.seat_number, t.performance_id, t.reservation_id,
			pl.title, h.name, pf.show_time,
			h.seat_rows * h.seats_in_row
				- (SELECT count(*) FROM tickets tc WHERE tc.performance_id = pf.id)
		FROM tickets t
		JOIN performances pf ON t.performance_id = pf.id
		JOIN plays pl ON pf.play_id = pl.id
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, reservationIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ticketsByReservation := make(map[int][]domain.ReservationTicket)

	for rows.Next() {
		var ticket domain.ReservationTicket

		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.ReservationID,
			&ticket.Performance.PlayTitle,
			&ticket.Performance.TheatreHallName,
			&ticket.Performance.ShowTime,
			&ticket.Performance.TicketsAvailable,
		)
		if err != nil {
			return nil, err
		}

		ticket.Performance.ID = ticket.PerformanceID

		ticketsByReservation[ticket.ReservationID] = append(ticketsByReservation[ticket.ReservationID], ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ticketsByReservation, nil
}
