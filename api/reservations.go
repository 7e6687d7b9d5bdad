package api

import "time"

type TicketRequest struct {
	Row         int `json:"row" validate:"required,min=1"`
	Seat        int `json:"seat" validate:"required,min=1"`
	Performance int `json:"performance" validate:"required,min=1"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type CreatedTicket struct {
	Id          int `json:"id"`
	Row         int `json:"row"`
	Seat        int `json:"seat"`
	Performance int `json:"performance"`
}

type CreatedReservationResponse struct {
	Id        int             `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Tickets   []CreatedTicket `json:"tickets"`
}

type TicketResponse struct {
	Id          int                `json:"id"`
	Row         int                `json:"row"`
	Seat        int                `json:"seat"`
	Performance PerformanceSummary `json:"performance"`
}

type ReservationResponse struct {
	Id        int              `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Tickets   []TicketResponse `json:"tickets"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Metadata     Metadata              `json:"metadata"`
}
