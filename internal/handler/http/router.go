package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/salarium/salarium-backend-go/internal/handler/http/middleware"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Person      PersonHandler
	Salary      SalaryHandler
	SalaryField SalaryFieldHandler
	Template    TemplateHandler
	Stats       StatsHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salarium"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
		// Everything requires authentication; tokens come from an
		// external identity service.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/persons", func(r chi.Router) {
				r.Get("/", h.Person.List)
				r.Post("/", h.Person.Create)
				r.Get("/{id}", h.Person.Get)
				r.Put("/{id}", h.Person.Update)
				r.Delete("/{id}", h.Person.Delete)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", h.Salary.List)
				r.Post("/{personId}", h.Salary.Create)
				r.Get("/{id}", h.Salary.Get)
				r.Put("/{id}", h.Salary.Update)
				r.Delete("/{id}", h.Salary.Delete)
			})

			r.Route("/salary-fields", func(r chi.Router) {
				r.Get("/", h.SalaryField.List)
				r.Post("/", h.SalaryField.Create)
				r.Put("/{id}", h.SalaryField.Update)
				r.Delete("/{id}", h.SalaryField.Delete)
			})

			r.Route("/salary-templates/{personId}", func(r chi.Router) {
				r.Get("/", h.Template.Get)
				r.Put("/", h.Template.Upsert)
				r.Delete("/", h.Template.Delete)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/monthly", h.Stats.Monthly)
				r.Get("/yearly", h.Stats.Yearly)
				r.Get("/family", h.Stats.Family)
				r.Get("/cumulative-insurance", h.Stats.CumulativeInsurance)
				r.Get("/income-composition", h.Stats.IncomeComposition)
				r.Get("/deductions/breakdown", h.Stats.DeductionsBreakdown)
				r.Get("/contributions/cumulative", h.Stats.ContributionsCumulative)
			})
		})
	})
	return r
}
