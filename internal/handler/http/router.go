package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/vetanhr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Calendar   CalendarHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Compliance ComplianceHandler
	Upload     UploadHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "vetanhr-payroll"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/calendar/{year}/{month}", h.Calendar.MonthView)

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Calendar.ListHolidays)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Calendar.CreateHoliday)
					r.Delete("/{id}", h.Calendar.DeleteHoliday)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Patch("/{id}/status", h.Employee.SetStatus)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{id}/documents", h.Upload.UploadDocument)
					r.Post("/{id}/avatar", h.Upload.UploadAvatar)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Get("/", h.Attendance.ListMonth)
				r.Get("/summary", h.Attendance.MonthlySummary)
			})

			r.Route("/payroll/runs", func(r chi.Router) {
				r.Get("/", h.Payroll.ListRuns)
				r.Get("/{id}", h.Payroll.GetRun)

				// HR only; the service re-checks the role before persisting
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Payroll.ProcessRun)
				})
			})

			r.Route("/returns", func(r chi.Router) {
				r.Get("/", h.Compliance.List)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/generate", h.Compliance.Generate)
					r.Patch("/{id}/file", h.Compliance.File)
				})
			})
		})
	})

	return r
}
