package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	corsOrigin string,
	timesheetHandler TimesheetHandler,
	contractHandler ContractHandler,
	earningsHandler EarningsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "turni-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/entries", func(r chi.Router) {
			r.Get("/month/{year}/{month}", timesheetHandler.ListByMonth)
			r.Get("/{date}", timesheetHandler.GetByDate)
			r.Put("/", timesheetHandler.Save)
			r.Delete("/{date}", timesheetHandler.Delete)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", contractHandler.Get)
			r.Put("/", contractHandler.Update)
		})

		r.Route("/earnings", func(r chi.Router) {
			r.Post("/daily", earningsHandler.Daily)
			r.Post("/daily/detailed", earningsHandler.DailyDetailed)
			r.Get("/monthly/{year}/{month}", earningsHandler.Monthly)
		})
	})
	return r
}
