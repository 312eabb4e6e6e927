// Command seed populates the database with a demo user and two months of
// sample records, so the coach endpoints have something to chew on locally.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/config"
	"github.com/finance-coach/backend/internal/domain/entity"
	"github.com/finance-coach/backend/internal/infra/db"
	"github.com/finance-coach/backend/internal/integration/persistence"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

func main() {
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

	ctx := context.Background()
	gormDB := database.DB()

	user := entity.NewUser("demo@example.com", "Demo User")
	userModel := model.UserFromEntity(user)
	if err := gormDB.WithContext(ctx).Where("email = ?", user.Email).FirstOrCreate(userModel).Error; err != nil {
		slog.Error("Failed to create demo user", "error", err)
		os.Exit(1)
	}
	userID := userModel.ID

	ledgerRepo := persistence.NewLedgerRepository(gormDB)
	settingsRepo := persistence.NewSettingsRepository(gormDB)

	if _, err := settingsRepo.GetOrCreate(ctx, userID); err != nil {
		slog.Error("Failed to create settings", "error", err)
		os.Exit(1)
	}

	today := entity.TruncateToDay(time.Now().UTC())
	created := 0

	// Weekly gig payouts over the last eight weeks, tapering off recently
	// so the low income rule has something to fire on.
	for week := 0; week < 8; week++ {
		date := today.AddDate(0, 0, -7*week)
		amount := decimal.NewFromInt(450)
		if week < 2 {
			amount = decimal.NewFromInt(180)
		}
		income := entity.NewIncomeRecord(userID, date, amount, entity.IncomeCategoryBusiness)
		if err := ledgerRepo.CreateIncome(ctx, income); err != nil {
			slog.Error("Failed to create income record", "error", err)
			os.Exit(1)
		}
		created++
	}

	cashEntries := []struct {
		daysAgo     int
		amount      int64
		description string
		isIncome    bool
	}{
		{1, 35, "groceries", false},
		{2, 12, "coffee", false},
		{4, 60, "fuel", false},
		{6, 200, "cash tip", true},
		{9, 85, "utilities", false},
		{12, 45, "eating out", false},
		{15, 120, "car repair", false},
		{20, 150, "side job", true},
		{25, 30, "pharmacy", false},
		{28, 75, "clothes", false},
	}
	for _, e := range cashEntries {
		rec := entity.NewCashRecord(userID, today.AddDate(0, 0, -e.daysAgo), decimal.NewFromInt(e.amount), e.description, e.isIncome)
		if err := ledgerRepo.CreateCash(ctx, rec); err != nil {
			slog.Error("Failed to create cash record", "error", err)
			os.Exit(1)
		}
		created++
	}

	slog.Info("Seed complete", "user_id", userID.String(), "records", created)
}
