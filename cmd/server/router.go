package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/athlete-api/internal/api"
	apiMiddleware "github.com/phrazzld/athlete-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)

	athleteHandler := api.NewAthleteHandler(app.athleteService)
	categoryHandler := api.NewCategoryHandler(app.categoryService)
	trainingCenterHandler := api.NewTrainingCenterHandler(app.trainingCenterService)

	r.Route("/api", func(r chi.Router) {
		r.Route("/atletas", func(r chi.Router) {
			r.Post("/", athleteHandler.CreateAthlete)
			r.Get("/", athleteHandler.ListAthletes)
			r.Get("/{id}", athleteHandler.GetAthlete)
			r.Patch("/{id}", athleteHandler.UpdateAthlete)
			r.Delete("/{id}", athleteHandler.DeleteAthlete)
		})

		r.Route("/categorias", func(r chi.Router) {
			r.Post("/", categoryHandler.CreateCategory)
			r.Get("/", categoryHandler.ListCategories)
			r.Get("/{id}", categoryHandler.GetCategory)
		})

		r.Route("/centros_treinamento", func(r chi.Router) {
			r.Post("/", trainingCenterHandler.CreateTrainingCenter)
			r.Get("/", trainingCenterHandler.ListTrainingCenters)
			r.Get("/{id}", trainingCenterHandler.GetTrainingCenter)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
