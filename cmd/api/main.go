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

	"github.com/go-chi/httplog/v3"
	"github.com/spdf36/gts-hrms/internal/config"
	"github.com/spdf36/gts-hrms/internal/domain/holiday"
	appHTTP "github.com/spdf36/gts-hrms/internal/handler/http"
	"github.com/spdf36/gts-hrms/internal/pkg/cron"
	"github.com/spdf36/gts-hrms/internal/pkg/database"
	"github.com/spdf36/gts-hrms/internal/pkg/jwt"
	"github.com/spdf36/gts-hrms/internal/repository/cache"
	"github.com/spdf36/gts-hrms/internal/repository/postgresql"
	attendanceService "github.com/spdf36/gts-hrms/internal/service/attendance"
	timesheetService "github.com/spdf36/gts-hrms/internal/service/timesheet"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gts-hrms"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	var holidayRepo holiday.HolidayRepository = postgresql.NewHolidayRepository(db)

	if cfg.Redis.Addr != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("error connecting to redis: %w", err)
		}
		defer rdb.Close()
		holidayRepo = cache.NewHolidayRepository(holidayRepo, rdb, cfg.Redis.HolidayCacheTTL)
		slog.Info("Holiday cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.HolidayCacheTTL)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.App.Location)
	timesheetSvc := timesheetService.NewTimesheetService(
		attendanceRepo,
		leaveRequestRepo,
		holidayRepo,
		employeeRepo,
		timesheetService.NewEngine(cfg.Attendance.RestDay),
		cfg.App.Location,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, time.Now)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, time.Now)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
		},
		JWTService,
		attendanceHandler,
		timesheetHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(employeeRepo, timesheetSvc, cfg.App.Location, time.Now)
	attendanceJobs.RegisterJobs(scheduler, cfg.Jobs.AbsenceReportInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "rest_day", cfg.Attendance.RestDay.String(), "timezone", cfg.App.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server exited properly")
	return nil
}
