package app

import (
	"errors"
	"net/http"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var input api.CreateActorRequest

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

	actor := domain.Actor{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err = app.actorRepo.Create(r.Context(), &actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toActorResponse(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActorById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r, "actorId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actor, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toActorResponse(*actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActors(w http.ResponseWriter, r *http.Request) {
	params := readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	actors, metadata, err := app.actorRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	actorResponses := make([]api.ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = toActorResponse(actor)
	}

	resp := api.ActorListResponse{
		Actors:   actorResponses,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toActorResponse(actor domain.Actor) api.ActorResponse {
	return api.ActorResponse{
		Id:        actor.ID,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		Plays:     actor.Plays,
	}
}
