package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	// Resolve each requested performance's hall geometry once, then check every
	// seat coordinate against it. All bad tickets are reported together.
	halls := make(map[int]*domain.TheatreHall)
	var fieldErrors []api.ValidationError

	for i, ticket := range input.Tickets {
		hall, ok := halls[ticket.Performance]
		if !ok {
			_, resolved, err := app.performanceRepo.GetByIdWithHall(r.Context(), ticket.Performance)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrPerformanceNotFound):
					halls[ticket.Performance] = nil
				default:
					app.serverErrorResponse(w, r, err)
					return
				}
			} else {
				halls[ticket.Performance] = resolved
			}

			hall = halls[ticket.Performance]
		}

		if hall == nil {
			fieldErrors = append(fieldErrors, api.ValidationError{
				Field: fmt.Sprintf("tickets[%d].performance", i),
				Issue: "performance does not exist",
			})
			continue
		}

		err := domain.ValidateTicketSeat(ticket.Row, ticket.Seat, *hall)
		if err != nil {
			var seatErr *domain.TicketSeatError
			if errors.As(err, &seatErr) {
				fieldErrors = append(fieldErrors, api.ValidationError{
					Field: fmt.Sprintf("tickets[%d].%s", i, seatErr.Field),
					Issue: seatErr.Error(),
				})
			}
		}
	}

	if len(fieldErrors) > 0 {
		app.validationErrorResponse(w, r, fieldErrors)
		return
	}

	user := app.contextGetUser(r)

	reservation := domain.Reservation{
		UserID:  user.ID,
		Tickets: make([]domain.Ticket, len(input.Tickets)),
	}

	for i, ticket := range input.Tickets {
		reservation.Tickets[i] = domain.Ticket{
			Row:           ticket.Row,
			Seat:          ticket.Seat,
			PerformanceID: ticket.Performance,
		}
	}

	err = app.reservationRepo.Create(r.Context(), &reservation)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyTaken):
			logger.Warn("reservation attempt for taken seats", "user_id", user.ID)
			app.seatsAlreadyTakenResponse(w, r, reservation.Tickets)
		case errors.Is(err, domain.ErrPerformanceNotFound):
			app.badRequestResponse(w, r, errors.New("one or more performances no longer exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.CreatedReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.CreatedTicket, len(reservation.Tickets)),
	}

	for i, ticket := range reservation.Tickets {
		resp.Tickets[i] = api.CreatedTicket{
			Id:          ticket.ID,
			Row:         ticket.Row,
			Seat:        ticket.Seat,
			Performance: ticket.PerformanceID,
		}
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// seatsAlreadyTakenResponse identifies which of the requested seats are taken
// and names them in the conflict message.
func (app *Application) seatsAlreadyTakenResponse(w http.ResponseWriter, r *http.Request, tickets []domain.Ticket) {
	taken, err := app.reservationRepo.GetTakenSeats(r.Context(), tickets)
	if err != nil || len(taken) == 0 {
		// The losing transaction in a concurrent race may not see the winner's
		// seats if they were rolled back meanwhile. Fall back to a generic message.
		app.errorResponse(w, r, http.StatusConflict, "One or more of the requested seats are already taken")
		return
	}

	message := "The following seats are already taken:"
	for i, ticket := range taken {
		if i > 0 {
			message += ","
		}
		message += fmt.Sprintf(" row %d seat %d for performance %d", ticket.Row, ticket.Seat, ticket.PerformanceID)
	}

	app.errorResponse(w, r, http.StatusConflict, message)
}

func (app *Application) GetReservations(w http.ResponseWriter, r *http.Request) {
	params := readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), user.ID, toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	reservationResponses := make([]api.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		reservationResponses[i] = toReservationResponse(reservation)
	}

	resp := api.ReservationListResponse{
		Reservations: reservationResponses,
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservationById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r, "reservationId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	reservation, err := app.reservationRepo.GetByIdAndUserId(r.Context(), id, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			// Another user's reservation is indistinguishable from a missing one.
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toReservationResponse(*reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toReservationResponse(reservation domain.ReservationWithTickets) api.ReservationResponse {
	tickets := make([]api.TicketResponse, len(reservation.Tickets))

	for i, ticket := range reservation.Tickets {
		tickets[i] = api.TicketResponse{
			Id:          ticket.ID,
			Row:         ticket.Row,
			Seat:        ticket.Seat,
			Performance: toPerformanceSummary(ticket.Performance),
		}
	}

	return api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   tickets,
	}
}
