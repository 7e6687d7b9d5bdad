package app

import (
	"net/http"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.Healthcheck)

	r.Post("/users", app.RegisterUser)
	r.Put("/users/activated", app.ActivateUser)
	r.Post("/tokens/activation", app.CreateActivationToken)

	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.With(app.requireAuthentication).Get("/users/me", app.GetCurrentUser)

	r.With(app.requireAuthentication).Route("/theatre-halls", func(r chi.Router) {
		r.With(app.requirePermission(domain.ActionRead, domain.ResourceHall)).Group(func(r chi.Router) {
			r.Get("/", app.GetTheatreHalls)
			r.Get("/{hallId}", app.GetTheatreHallById)
		})
		r.With(app.requirePermission(domain.ActionWrite, domain.ResourceHall)).
			Post("/", app.CreateTheatreHall)
	})

	r.With(app.requireAuthentication).Route("/genres", func(r chi.Router) {
		r.With(app.requirePermission(domain.ActionRead, domain.ResourceCatalog)).Group(func(r chi.Router) {
			r.Get("/", app.GetGenres)
			r.Get("/{genreId}", app.GetGenreById)
		})
		r.With(app.requirePermission(domain.ActionWrite, domain.ResourceCatalog)).
			Post("/", app.CreateGenre)
	})

	r.With(app.requireAuthentication).Route("/actors", func(r chi.Router) {
		r.With(app.requirePermission(domain.ActionRead, domain.ResourceCatalog)).Group(func(r chi.Router) {
			r.Get("/", app.GetActors)
			r.Get("/{actorId}", app.GetActorById)
		})
		r.With(app.requirePermission(domain.ActionWrite, domain.ResourceCatalog)).
			Post("/", app.CreateActor)
	})

	r.With(app.requireAuthentication).Route("/plays", func(r chi.Router) {
		r.With(app.requirePermission(domain.ActionRead, domain.ResourceCatalog)).Group(func(r chi.Router) {
			r.Get("/", app.GetPlays)
			r.Get("/{playId}", app.GetPlayById)
		})
		r.With(app.requirePermission(domain.ActionWrite, domain.ResourceCatalog)).
			Post("/", app.CreatePlay)
	})

	r.With(app.requireAuthentication).Route("/performances", func(r chi.Router) {
		r.With(app.requirePermission(domain.ActionRead, domain.ResourcePerformance)).Group(func(r chi.Router) {
			r.Get("/", app.GetPerformances)
			r.Get("/{performanceId}", app.GetPerformanceById)
		})
		r.With(app.requirePermission(domain.ActionWrite, domain.ResourcePerformance)).Group(func(r chi.Router) {
			r.Post("/", app.CreatePerformance)
			r.Patch("/{performanceId}", app.UpdatePerformance)
		})
	})

	r.With(app.requireAuthentication).Route("/reservations", func(r chi.Router) {
		r.Use(app.requirePermission(domain.ActionWrite, domain.ResourceReservation))

		r.Get("/", app.GetReservations)
		r.Post("/", app.CreateReservation)
		r.Get("/{reservationId}", app.GetReservationById)
	})

	return r
}
