package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/spdf36/gts-hrms/internal/handler/http/middleware"
	"github.com/spdf36/gts-hrms/internal/pkg/jwt"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, attendanceHandler AttendanceHandler, timesheetHandler TimesheetHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Put("/clock-out", attendanceHandler.ClockOut)
			r.Get("/status", attendanceHandler.GetTodayStatus)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetMyAttendance)
				r.Get("/timesheet", timesheetHandler.GetMyTimesheet)
			})
		})

		r.Get("/calendar", timesheetHandler.GetCalendar)

		// Admin only
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Get("/attendance", attendanceHandler.List)
			r.Get("/employees/{employeeID}/timesheet", timesheetHandler.GetEmployeeTimesheet)
		})
	})

	return r
}
