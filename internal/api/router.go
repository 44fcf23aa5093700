package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/baby-journal/docs"
	"github.com/blaisecz/baby-journal/internal/api/handler"
	"github.com/blaisecz/baby-journal/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	babyHandler       *handler.BabyHandler
	logHandler        *handler.LogHandler
	predictionHandler *handler.PredictionHandler
	insightsHandler   *handler.InsightsHandler
}

func NewRouter(
	babyHandler *handler.BabyHandler,
	logHandler *handler.LogHandler,
	predictionHandler *handler.PredictionHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		babyHandler:       babyHandler,
		logHandler:        logHandler,
		predictionHandler: predictionHandler,
		insightsHandler:   insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/babies", func(r chi.Router) {
			r.Post("/", rt.babyHandler.Create)

			r.Route("/{babyId}", func(r chi.Router) {
				r.Get("/", rt.babyHandler.GetByID)

				r.Route("/logs", func(r chi.Router) {
					r.Post("/", rt.logHandler.Create)
					r.Get("/", rt.logHandler.List)
					r.Get("/export.csv", rt.logHandler.ExportCSV)
					r.Patch("/{logId}", rt.logHandler.Update)
					r.Delete("/{logId}", rt.logHandler.Delete)
				})

				r.Get("/feeds/prediction", rt.predictionHandler.Get)

				r.Get("/stats/weekly", rt.insightsHandler.GetWeeklyStats)
				r.Get("/stats/weekly/summary", rt.insightsHandler.GetWeeklySummary)

				r.Get("/insights/weekly", rt.insightsHandler.GetWeeklyInsights)
				r.Post("/insights/weekly/feedback", rt.insightsHandler.PostFeedback)
			})
		})
	})

	return r
}
