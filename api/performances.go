package api

import "time"

type CreatePerformanceRequest struct {
	PlayId        int       `json:"play" validate:"required,min=1"`
	TheatreHallId int       `json:"theatreHall" validate:"required,min=1"`
	ShowTime      time.Time `json:"showTime" validate:"required"`
}

type UpdatePerformanceRequest struct {
	PlayId        *int       `json:"play" validate:"omitempty,min=1"`
	TheatreHallId *int       `json:"theatreHall" validate:"omitempty,min=1"`
	ShowTime      *time.Time `json:"showTime" validate:"omitempty"`
}

type PerformanceSummary struct {
	Id               int       `json:"id"`
	Play             string    `json:"play"`
	TheatreHall      string    `json:"theatreHall"`
	ShowTime         time.Time `json:"showTime"`
	TicketsAvailable int       `json:"ticketsAvailable"`
}

type PerformanceDetailResponse struct {
	Id          int                 `json:"id"`
	Play        PlaySummary         `json:"play"`
	TheatreHall TheatreHallResponse `json:"theatreHall"`
	ShowTime    time.Time           `json:"showTime"`
}

type PerformanceListResponse struct {
	Performances []PerformanceSummary `json:"performances"`
	Metadata     Metadata             `json:"metadata"`
}

type GetPerformancesParams struct {
	ListParams
	// Date filters by calendar day, formatted as 2006-01-02.
	Date *string `validate:"omitempty,datetime=2006-01-02"`
	Play *int    `validate:"omitempty,min=1"`
}
