package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.UserModel{},
		&model.IncomeRecordModel{},
		&model.CashRecordModel{},
		&model.AdviceCardModel{},
		&model.CoachingSettingsModel{},
	)
	if err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := entity.NewUser(uuid.NewString()+"@example.com", "Worker")
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return user.ID
}

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	userID := createTestUser(t, db)
	otherID := createTestUser(t, db)

	base := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	mustCreateIncome := func(date time.Time, amount float64) {
		t.Helper()
		rec := entity.NewIncomeRecord(userID, date, decimal.NewFromFloat(amount), entity.IncomeCategoryBusiness)
		if err := repo.CreateIncome(ctx, rec); err != nil {
			t.Fatalf("CreateIncome: %v", err)
		}
	}
	mustCreateCash := func(owner uuid.UUID, date time.Time, amount float64, desc string, isIncome bool) {
		t.Helper()
		rec := entity.NewCashRecord(owner, date, decimal.NewFromFloat(amount), desc, isIncome)
		if err := repo.CreateCash(ctx, rec); err != nil {
			t.Fatalf("CreateCash: %v", err)
		}
	}

	mustCreateIncome(base, 500)
	mustCreateIncome(base.AddDate(0, 0, -40), 400)
	mustCreateCash(userID, base.AddDate(0, 0, -1), 100, "groceries", false)
	mustCreateCash(otherID, base, 999, "other user", true)

	t.Run("fetch respects the date bounds", func(t *testing.T) {
		incomes, cash, err := repo.FetchRecords(ctx, userID, base.AddDate(0, 0, -7), base)
		if err != nil {
			t.Fatalf("FetchRecords: %v", err)
		}
		if len(incomes) != 1 {
			t.Errorf("got %d incomes, want 1 (older record excluded)", len(incomes))
		}
		if len(cash) != 1 || cash[0].Description != "groceries" {
			t.Errorf("cash = %v, want the groceries record only", cash)
		}
	})

	t.Run("zero since means unbounded history", func(t *testing.T) {
		incomes, _, err := repo.FetchRecords(ctx, userID, time.Time{}, base)
		if err != nil {
			t.Fatalf("FetchRecords: %v", err)
		}
		if len(incomes) != 2 {
			t.Errorf("got %d incomes, want 2", len(incomes))
		}
	})

	t.Run("records are scoped per user", func(t *testing.T) {
		_, cash, err := repo.FetchRecords(ctx, otherID, time.Time{}, base)
		if err != nil {
			t.Fatalf("FetchRecords: %v", err)
		}
		if len(cash) != 1 || cash[0].Description != "other user" {
			t.Errorf("cash = %v, want only the other user's record", cash)
		}
	})

	t.Run("no records yields empty slices", func(t *testing.T) {
		incomes, cash, err := repo.FetchRecords(ctx, uuid.New(), time.Time{}, base)
		if err != nil {
			t.Fatalf("FetchRecords: %v", err)
		}
		if len(incomes) != 0 || len(cash) != 0 {
			t.Errorf("got %d incomes and %d cash records, want none", len(incomes), len(cash))
		}
	})

	t.Run("listings are newest first", func(t *testing.T) {
		incomes, err := repo.ListIncomes(ctx, userID, 10)
		if err != nil {
			t.Fatalf("ListIncomes: %v", err)
		}
		if len(incomes) != 2 || incomes[0].Date.Before(incomes[1].Date) {
			t.Errorf("incomes = %v, want newest first", incomes)
		}
	})
}

func TestAdviceCardRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAdviceCardRepository(db)
	userID := createTestUser(t, db)

	newCard := func(tag entity.AdviceTag) *entity.AdviceCard {
		return entity.NewAdviceCard(userID, "title", "body", tag, map[string]any{"k": "v"})
	}

	t.Run("first card is created, duplicate within cooldown is not", func(t *testing.T) {
		created, err := repo.CreateWithCooldown(ctx, newCard(entity.AdviceTagLowIncome), 2)
		if err != nil {
			t.Fatalf("CreateWithCooldown: %v", err)
		}
		if !created {
			t.Fatal("first card should be created")
		}

		created, err = repo.CreateWithCooldown(ctx, newCard(entity.AdviceTagLowIncome), 2)
		if err != nil {
			t.Fatalf("CreateWithCooldown: %v", err)
		}
		if created {
			t.Error("duplicate within cooldown should be suppressed")
		}

		cards, err := repo.FindRecent(ctx, userID, false, 10)
		if err != nil {
			t.Fatalf("FindRecent: %v", err)
		}
		if len(cards) != 1 {
			t.Fatalf("got %d cards, want 1", len(cards))
		}
		if cards[0].Meta["k"] != "v" {
			t.Errorf("Meta = %v, want round-tripped map", cards[0].Meta)
		}
	})

	t.Run("different tag is not suppressed", func(t *testing.T) {
		created, err := repo.CreateWithCooldown(ctx, newCard(entity.AdviceTagHighExpense), 3)
		if err != nil {
			t.Fatalf("CreateWithCooldown: %v", err)
		}
		if !created {
			t.Error("different tag should create a new card")
		}
	})

	t.Run("card older than the cooldown does not suppress", func(t *testing.T) {
		freshUser := createTestUser(t, db)
		old := entity.NewAdviceCard(freshUser, "title", "body", entity.AdviceTagLowIncome, nil)
		old.CreatedAt = time.Now().UTC().AddDate(0, 0, -5)
		if created, err := repo.CreateWithCooldown(ctx, old, 2); err != nil || !created {
			t.Fatalf("creating aged card: created=%v err=%v", created, err)
		}

		created, err := repo.CreateWithCooldown(ctx, entity.NewAdviceCard(freshUser, "title", "body", entity.AdviceTagLowIncome, nil), 2)
		if err != nil {
			t.Fatalf("CreateWithCooldown: %v", err)
		}
		if !created {
			t.Error("card outside the cooldown window should not suppress a new one")
		}
	})

	t.Run("unread filter and mark read", func(t *testing.T) {
		cards, err := repo.FindRecent(ctx, userID, true, 10)
		if err != nil {
			t.Fatalf("FindRecent: %v", err)
		}
		if len(cards) != 2 {
			t.Fatalf("got %d unread cards, want 2", len(cards))
		}

		if err := repo.MarkRead(ctx, userID, cards[0].ID); err != nil {
			t.Fatalf("MarkRead: %v", err)
		}
		cards, err = repo.FindRecent(ctx, userID, true, 10)
		if err != nil {
			t.Fatalf("FindRecent: %v", err)
		}
		if len(cards) != 1 {
			t.Errorf("got %d unread cards after marking one read, want 1", len(cards))
		}
	})

	t.Run("marking another user's card fails", func(t *testing.T) {
		stranger := createTestUser(t, db)
		cards, err := repo.FindRecent(ctx, userID, false, 1)
		if err != nil || len(cards) == 0 {
			t.Fatalf("FindRecent: cards=%d err=%v", len(cards), err)
		}
		err = repo.MarkRead(ctx, stranger, cards[0].ID)
		if !errors.Is(err, domainerror.ErrAdviceCardNotFound) {
			t.Errorf("error = %v, want ErrAdviceCardNotFound", err)
		}
	})
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	userID := createTestUser(t, db)

	t.Run("first access creates defaults", func(t *testing.T) {
		settings, err := repo.GetOrCreate(ctx, userID)
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		if !settings.LowIncomeThreshold.Equal(entity.DefaultLowIncomeThreshold) {
			t.Errorf("LowIncomeThreshold = %s, want %s", settings.LowIncomeThreshold, entity.DefaultLowIncomeThreshold)
		}
		if !settings.NotificationsEnabled {
			t.Error("NotificationsEnabled should default to true")
		}
	})

	t.Run("updates persist", func(t *testing.T) {
		settings, err := repo.GetOrCreate(ctx, userID)
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		settings.LowIncomeThreshold = decimal.NewFromInt(450)
		if err := repo.Update(ctx, settings); err != nil {
			t.Fatalf("Update: %v", err)
		}

		reloaded, err := repo.GetOrCreate(ctx, userID)
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		if !reloaded.LowIncomeThreshold.Equal(decimal.NewFromInt(450)) {
			t.Errorf("LowIncomeThreshold = %s, want 450", reloaded.LowIncomeThreshold)
		}
	})
}

func TestUserDirectory(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	directory := NewUserDirectory(db)

	t.Run("empty directory lists nothing", func(t *testing.T) {
		ids, err := directory.ListUserIDs(ctx)
		if err != nil {
			t.Fatalf("ListUserIDs: %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("got %d IDs, want 0", len(ids))
		}
	})

	t.Run("lists every user", func(t *testing.T) {
		a := createTestUser(t, db)
		b := createTestUser(t, db)

		ids, err := directory.ListUserIDs(ctx)
		if err != nil {
			t.Fatalf("ListUserIDs: %v", err)
		}
		if len(ids) != 2 {
			t.Fatalf("got %d IDs, want 2", len(ids))
		}
		seen := map[uuid.UUID]bool{ids[0]: true, ids[1]: true}
		if !seen[a] || !seen[b] {
			t.Errorf("IDs = %v, want both created users", ids)
		}
	})
}
