// Package dependency wires application components together.
package dependency

import (
	"gorm.io/gorm"

	"github.com/finance-coach/backend/config"
	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/application/usecase/advice"
	"github.com/finance-coach/backend/internal/application/usecase/advisor"
	"github.com/finance-coach/backend/internal/application/usecase/coach"
	"github.com/finance-coach/backend/internal/application/usecase/record"
	"github.com/finance-coach/backend/internal/application/usecase/settings"
	"github.com/finance-coach/backend/internal/integration/adapters"
	"github.com/finance-coach/backend/internal/integration/cache"
	"github.com/finance-coach/backend/internal/integration/entrypoint/controller"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-coach/backend/internal/integration/persistence"
)

// Injector holds all wired dependencies for the application.
type Injector struct {
	CoachController    *controller.CoachController
	SettingsController *controller.SettingsController
	AdviceController   *controller.AdviceController
	RecordController   *controller.RecordController
	AuthMiddleware     *middleware.AuthMiddleware
	RunAgentUseCase    *advisor.RunAgentUseCase
}

// BuildInjector creates all dependencies and returns an injector.
func BuildInjector(db *gorm.DB, cfg *config.Config) *Injector {
	return buildInjector(db, cfg, cache.NewRedisCache(cfg.Redis))
}

// BuildInjectorWithCache is BuildInjector with an explicit read cache,
// used by tests to substitute an in-memory server.
func BuildInjectorWithCache(db *gorm.DB, cfg *config.Config, readCache adapter.ReadCache) *Injector {
	return buildInjector(db, cfg, readCache)
}

func buildInjector(db *gorm.DB, cfg *config.Config, readCache adapter.ReadCache) *Injector {
	// Repositories
	ledgerRepo := persistence.NewLedgerRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	adviceRepo := persistence.NewAdviceCardRepository(db)
	userDirectory := persistence.NewUserDirectory(db)

	// Services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Use cases
	lowIncomeUseCase := coach.NewLowIncomeCheckUseCase(ledgerRepo, settingsRepo, readCache, cfg.Cache.TTL)
	expenseAnalysisUseCase := coach.NewExpenseAnalysisUseCase(ledgerRepo, readCache, cfg.Cache.TTL)
	heatmapUseCase := coach.NewWeeklyHeatmapUseCase(ledgerRepo, readCache, cfg.Cache.TTL)
	dailyBreakdownUseCase := coach.NewDailyBreakdownUseCase(ledgerRepo)
	bufferUseCase := coach.NewEmergencyBufferUseCase(ledgerRepo)

	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	feedUseCase := advice.NewFeedUseCase(adviceRepo)
	markReadUseCase := advice.NewMarkReadUseCase(adviceRepo)

	createIncomeUseCase := record.NewCreateIncomeUseCase(ledgerRepo)
	createCashUseCase := record.NewCreateCashUseCase(ledgerRepo)
	listRecordsUseCase := record.NewListRecordsUseCase(ledgerRepo)

	runAgentUseCase := advisor.NewRunAgentUseCase(userDirectory, ledgerRepo, settingsRepo, adviceRepo, cfg.Agent.Concurrency)

	// Controllers
	coachController := controller.NewCoachController(
		lowIncomeUseCase,
		expenseAnalysisUseCase,
		heatmapUseCase,
		dailyBreakdownUseCase,
		bufferUseCase,
	)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	adviceController := controller.NewAdviceController(feedUseCase, markReadUseCase)
	recordController := controller.NewRecordController(createIncomeUseCase, createCashUseCase, listRecordsUseCase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	return &Injector{
		CoachController:    coachController,
		SettingsController: settingsController,
		AdviceController:   adviceController,
		RecordController:   recordController,
		AuthMiddleware:     authMiddleware,
		RunAgentUseCase:    runAgentUseCase,
	}
}
