package app

import (
	"errors"
	"net/http"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/ardaguler/theatre-reservation-system/internal/validator"
)

func (app *Application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreatePlayRequest

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

	play := domain.Play{
		Title:       input.Title,
		Description: input.Description,
	}

	err = app.playRepo.Create(r.Context(), &play, input.GenreIds, input.ActorIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			logger.Warn("play creation with unknown genre or actor id")
			app.badRequestResponse(w, r, errors.New("one or more referenced genres or actors do not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPlayDetailResponse(play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlayById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r, "playId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	play, err := app.playRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlayDetailResponse(*play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlays(w http.ResponseWriter, r *http.Request) {
	params := api.GetPlaysParams{ListParams: readListParams(r)}

	if genres := r.URL.Query().Get("genres"); genres != "" {
		params.Genres = &genres
	}
	if actors := r.URL.Query().Get("actors"); actors != "" {
		params.Actors = &actors
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.PlayFilters{Pagination: toPagination(params.ListParams)}

	if params.Genres != nil {
		filters.GenreIDs, _ = validator.ParseIdList(*params.Genres)
	}
	if params.Actors != nil {
		filters.ActorIDs, _ = validator.ParseIdList(*params.Actors)
	}

	plays, metadata, err := app.playRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	playSummaries := make([]api.PlaySummary, len(plays))
	for i, play := range plays {
		playSummaries[i] = toPlaySummary(play)
	}

	resp := api.PlayListResponse{
		Plays:    playSummaries,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPlaySummary(play domain.PlaySummary) api.PlaySummary {
	return api.PlaySummary{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Genres:      play.Genres,
		Actors:      play.Actors,
	}
}

func toPlayDetailResponse(play domain.Play) api.PlayDetailResponse {
	genres := make([]api.GenreResponse, len(play.Genres))
	for i, genre := range play.Genres {
		genres[i] = api.GenreResponse{Id: genre.ID, Name: genre.Name}
	}

	actors := make([]api.ActorResponse, len(play.Actors))
	for i, actor := range play.Actors {
		actors[i] = api.ActorResponse{
			Id:        actor.ID,
			FirstName: actor.FirstName,
			LastName:  actor.LastName,
		}
	}

	return api.PlayDetailResponse{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Genres:      genres,
		Actors:      actors,
	}
}
