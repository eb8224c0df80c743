package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tipl/employee-monitoring/internal/handler/http/middleware"
	"github.com/tipl/employee-monitoring/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Manager    ManagerHandler
	Project    ProjectHandler
	Attendance AttendanceHandler
	Task       TaskHandler
	Salary     SalaryHandler
	Audit      AuditHandler
}

// NewRouter builds the route tree. Routes default to the strictest tier:
// everything outside /auth/login and /auth/refresh requires a verified access
// token, and write-heavy admin surfaces sit behind RequireAdmin with no bypass.
func NewRouter(jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-monitoring"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		// Public tier
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Authenticated tier
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/employee/{employeeID}", h.Attendance.GetByEmployee)

				// Manager tier
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/today", h.Attendance.GetToday)
					r.Get("/stats", h.Attendance.GetStats)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Patch("/{id}/status", h.Task.UpdateStatus)
				r.Get("/employee/{employeeID}", h.Task.GetByEmployee)

				// Manager tier
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Task.Create)
					r.Get("/", h.Task.List)
					r.Get("/stats", h.Task.GetStats)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", h.Employee.Get)

				// Manager tier
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Employee.List)
					r.Get("/search", h.Employee.Search)
				})

				// Admin tier
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				// Manager tier
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Project.Create)
					r.Get("/", h.Project.List)
					r.Get("/{id}", h.Project.GetDetail)
				})

				// Admin tier
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/assignments", h.Project.AssignEmployee)
					r.Patch("/assignments/{assignmentID}", h.Project.UpdateProgress)
				})
			})

			// Admin tier
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/managers", h.Manager.Create)
				r.Get("/managers", h.Manager.List)

				r.Route("/salaries", func(r chi.Router) {
					r.Post("/calculate", h.Salary.Calculate)
					r.Patch("/{id}/paid", h.Salary.MarkPaid)
					r.Get("/overview", h.Salary.GetOverview)
				})

				r.Get("/audit-logs", h.Audit.List)
			})
		})
	})

	return r
}
