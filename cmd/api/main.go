package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"taskdates/config"
	"taskdates/internal/httpserver"
	"taskdates/internal/scheduler"
	taskRepo "taskdates/internal/task/repository/sqlite"
	"taskdates/internal/task/usecase"
	"taskdates/pkg/dateparse"
	"taskdates/pkg/gcalendar"
	"taskdates/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting taskdates...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database %q: %v", cfg.Database.Path, err)
	}
	defer db.Close()

	if err := taskRepo.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate database: %v", err)
	}

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar mirroring enabled")
		}
	}

	// 5. Task domain
	repo := taskRepo.New(db, logger)
	parser := dateparse.NewParser()
	taskUC := usecase.New(logger, repo, parser, calendarClient, cfg.GoogleCalendar.CalendarID)

	// 6. Scheduler
	if cfg.Scheduler.Enabled {
		sched, schedErr := scheduler.New(logger, taskUC, cfg.Scheduler.Cron)
		if schedErr != nil {
			logger.Fatalf(ctx, "Failed to build scheduler: %v", schedErr)
		}
		sched.Start(ctx)
		defer sched.Stop(context.Background())
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskUseCase:     taskUC,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
