package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	appHTTP "github.com/cmlabs-hris/hrms-lite/internal/handler/http"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/cron"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/jwt"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hrms-lite/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hrms-lite/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hrms-lite/internal/service/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/service/leave"
	userService "github.com/cmlabs-hris/hrms-lite/internal/service/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.App.LogLevel),
	})).With(slog.String("app", "hrms-lite"), slog.String("env", cfg.App.Env))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if cfg.App.SeedDemoData {
		if err := postgresql.SeedDemoData(ctx, db); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("Demo data seeded")
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	accessExpiration, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("parse JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, accessExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveService := leave.NewLeaveService(leaveRequestRepo, employeeRepo)
	userSvc := userService.NewUserService(userRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(cfg.App, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, attendanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveService),
		User:       appHTTP.NewUserHandler(userSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler(logger)
	cron.NewTokenJobs(JWTService, logger).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server running", "addr", fmt.Sprintf("http://localhost%s", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
