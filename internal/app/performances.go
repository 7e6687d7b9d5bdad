package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
)

func (app *Application) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreatePerformanceRequest

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

	performance := domain.Performance{
		PlayID:        input.PlayId,
		TheatreHallID: input.TheatreHallId,
		ShowTime:      input.ShowTime,
	}

	err = app.performanceRepo.Create(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			logger.Warn("performance creation with unknown play or hall id")
			app.badRequestResponse(w, r, errors.New("referenced play or theatre hall does not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PerformanceDetailResponse{
		Id:          performance.ID,
		Play:        api.PlaySummary{Id: performance.PlayID},
		TheatreHall: api.TheatreHallResponse{Id: performance.TheatreHallID},
		ShowTime:    performance.ShowTime,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r, "performanceId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.performanceRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var input api.UpdatePerformanceRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	performance := domain.Performance{
		ID:            detail.ID,
		PlayID:        detail.Play.ID,
		TheatreHallID: detail.TheatreHall.ID,
		ShowTime:      detail.ShowTime,
	}

	if input.PlayId != nil {
		performance.PlayID = *input.PlayId
	}
	if input.TheatreHallId != nil {
		performance.TheatreHallID = *input.TheatreHallId
	}
	if input.ShowTime != nil {
		performance.ShowTime = *input.ShowTime
	}

	err = app.performanceRepo.Update(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			app.badRequestResponse(w, r, errors.New("referenced play or theatre hall does not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PerformanceDetailResponse{
		Id:          performance.ID,
		Play:        api.PlaySummary{Id: performance.PlayID},
		TheatreHall: api.TheatreHallResponse{Id: performance.TheatreHallID},
		ShowTime:    performance.ShowTime,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformanceById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r, "performanceId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.performanceRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PerformanceDetailResponse{
		Id:          detail.ID,
		Play:        toPlaySummary(detail.Play),
		TheatreHall: toTheatreHallResponse(detail.TheatreHall),
		ShowTime:    detail.ShowTime,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformances(w http.ResponseWriter, r *http.Request) {
	params := api.GetPerformancesParams{ListParams: readListParams(r)}

	if date := r.URL.Query().Get("date"); date != "" {
		params.Date = &date
	}
	if play := r.URL.Query().Get("play"); play != "" {
		params.Play = parseIntParam(play)
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.PerformanceFilters{Pagination: toPagination(params.ListParams)}

	if params.Date != nil {
		date, err := time.Parse("2006-01-02", *params.Date)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("date must be formatted as YYYY-MM-DD"))
			return
		}
		filters.Date = &date
	}
	filters.PlayID = params.Play

	performances, metadata, err := app.performanceRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.PerformanceSummary, len(performances))
	for i, performance := range performances {
		summaries[i] = toPerformanceSummary(performance)
	}

	resp := api.PerformanceListResponse{
		Performances: summaries,
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPerformanceSummary(performance domain.PerformanceSummary) api.PerformanceSummary {
	return api.PerformanceSummary{
		Id:               performance.ID,
		Play:             performance.PlayTitle,
		TheatreHall:      performance.TheatreHallName,
		ShowTime:         performance.ShowTime,
		TicketsAvailable: performance.TicketsAvailable,
	}
}
