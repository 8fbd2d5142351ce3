package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/triviahub/question-bank/internal/config"
	"github.com/triviahub/question-bank/internal/logging"
	"github.com/triviahub/question-bank/internal/question"
	httperrors "github.com/triviahub/question-bank/pkg/http/errors"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "questionbank_http_requests_total",
	Help: "HTTP requests served, labeled by method and route pattern.",
}, []string{"method", "route"})

// NewHTTPServer wires the trivia API routes plus health and metrics.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, handlers *question.HTTPHandlers) *http.Server {
	r := chi.NewRouter()

	r.Use(requestID(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(countRequests)

	// Unknown paths and wrong verbs get the same envelope as domain errors.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondMethodNotAllowed(w, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			logger.Error().Err(err).Msg("postgres ping failed")
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeServiceUnavailable, "database unreachable")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/categories", handlers.ListCategories)
	r.Get("/categories/{id}/questions", handlers.ListByCategory)
	r.Get("/questions", handlers.ListQuestions)
	r.Post("/questions", handlers.CreateQuestion)
	r.Delete("/questions/{id}", handlers.DeleteQuestion)
	r.Post("/questions/search", handlers.SearchQuestions)
	r.Post("/quizzes", handlers.DrawQuizQuestion)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}

func requestID(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := logger.With().Str("request_id", uuid.NewString()).Logger()
			next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), reqLogger)))
		})
	}
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		requestsTotal.WithLabelValues(r.Method, route).Inc()
	})
}
