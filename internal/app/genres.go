package app

import (
	"errors"
	"net/http"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateGenreRequest

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

	genre := domain.Genre{Name: input.Name}

	err = app.genreRepo.Create(r.Context(), &genre)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGenreAlreadyExists):
			logger.Warn("attempt to create duplicate genre", "name", input.Name)
			app.errorResponse(w, r, http.StatusConflict, "A genre with this name already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toGenreResponse(genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenreById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r, "genreId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	genre, err := app.genreRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toGenreResponse(*genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	params := readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	genres, metadata, err := app.genreRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	genreResponses := make([]api.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = toGenreResponse(genre)
	}

	resp := api.GenreListResponse{
		Genres:   genreResponses,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toGenreResponse(genre domain.Genre) api.GenreResponse {
	return api.GenreResponse{
		Id:    genre.ID,
		Name:  genre.Name,
		Plays: genre.Plays,
	}
}
