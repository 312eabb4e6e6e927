package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/finance-coach/backend/config"
	"github.com/finance-coach/backend/internal/infra/db"
	"github.com/finance-coach/backend/internal/infra/dependency"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

func main() {
	once := flag.Bool("once", false, "run a single evaluation pass and exit")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.IncomeRecordModel{},
		&model.CashRecordModel{},
		&model.AdviceCardModel{},
		&model.CoachingSettingsModel{},
	); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	injector := dependency.BuildInjector(database.DB(), cfg)
	runAgent := injector.RunAgentUseCase

	if *once {
		report, err := runAgent.Execute(context.Background())
		if err != nil {
			slog.Error("Agent run failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Agent run finished",
			"processed", report.Processed,
			"cards_created", report.CardsCreated,
			"failures", len(report.Failures),
			"duration", report.Duration.String(),
		)
		return
	}

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Agent.Schedule, func() {
		if _, err := runAgent.Execute(context.Background()); err != nil {
			slog.Error("Scheduled agent run failed", "error", err)
		}
	})
	if err != nil {
		slog.Error("Invalid agent schedule", "schedule", cfg.Agent.Schedule, "error", err)
		os.Exit(1)
	}

	slog.Info("Starting agent scheduler", "schedule", cfg.Agent.Schedule, "concurrency", cfg.Agent.Concurrency)
	scheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Stopping agent scheduler")
	<-scheduler.Stop().Done()
}
