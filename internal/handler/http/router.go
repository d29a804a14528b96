package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/user"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

const apiVersion = "1.0.0"

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	User       UserHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg config.AppConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       config.ParseLogLevel(cfg.LogLevel),
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v"+apiVersion),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"message": "HRMS Lite API", "version": apiVersion})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/logout", h.Auth.Logout)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.ListEmployees)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", h.Employee.CreateEmployee)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.GetEmployee)
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/attendance", h.Employee.GetEmployeeAttendance)
					r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Delete("/", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/", h.Attendance.ListAttendance)
				r.With(middleware.RequirePermission(user.PermissionAttendanceManage)).Post("/", h.Attendance.MarkAttendance)
				r.With(middleware.RequirePermission(user.PermissionAttendanceManage)).Delete("/{id}", h.Attendance.DeleteAttendance)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/", h.Leave.ListLeaveRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.CreateLeaveRequest)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Put("/{id}", h.Leave.UpdateLeaveStatus)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.With(middleware.RequirePermission(user.PermissionUserViewAll)).Get("/users", h.User.ListUsers)
				r.With(middleware.RequirePermission(user.PermissionStatsView)).Get("/stats/employees", h.Dashboard.GetEmployeeStats)
			})
		})
	})
	return r
}
