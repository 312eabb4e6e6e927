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

	"github.com/joho/godotenv"

	"github.com/finance-coach/backend/config"
	"github.com/finance-coach/backend/internal/infra/db"
	"github.com/finance-coach/backend/internal/infra/dependency"
	"github.com/finance-coach/backend/internal/infra/server/router"
	"github.com/finance-coach/backend/internal/integration/entrypoint/controller"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database, starting in degraded mode", "error", err)
		startDegraded(cfg)
		return
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

	healthController := controller.NewHealthController(database.HealthCheck)

	appRouter := router.NewRouter(
		healthController,
		injector.CoachController,
		injector.SettingsController,
		injector.AdviceController,
		injector.RecordController,
		injector.AuthMiddleware,
	)
	engine := appRouter.Setup(cfg.Server.Environment)

	runServer(cfg, engine)
}

// startDegraded serves only the health endpoint when the database is
// unavailable, so orchestration can still probe the process.
func startDegraded(cfg *config.Config) {
	healthController := controller.NewHealthController(func() bool { return false })
	appRouter := router.NewRouter(healthController, nil, nil, nil, nil, nil)
	engine := appRouter.Setup(cfg.Server.Environment)
	runServer(cfg, engine)
}

func runServer(cfg *config.Config, handler http.Handler) {
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}
