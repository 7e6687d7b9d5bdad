package app

import (
	"errors"
	"net/http"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateTheatreHall(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheatreHallRequest

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

	hall := domain.TheatreHall{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTheatreHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheatreHallById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheatreHallResponse(*hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheatreHalls(w http.ResponseWriter, r *http.Request) {
	params := readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	halls, metadata, err := app.hallRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	hallResponses := make([]api.TheatreHallResponse, len(halls))
	for i, hall := range halls {
		hallResponses[i] = toTheatreHallResponse(hall)
	}

	resp := api.TheatreHallListResponse{
		TheatreHalls: hallResponses,
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheatreHallResponse(hall domain.TheatreHall) api.TheatreHallResponse {
	return api.TheatreHallResponse{
		Id:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
