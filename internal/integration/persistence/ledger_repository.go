// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// FetchRecords retrieves both record streams for a user with
// since <= date <= until. A zero since means no lower bound.
func (r *ledgerRepository) FetchRecords(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.IncomeRecord, []entity.CashRecord, error) {
	incomeQuery := r.db.WithContext(ctx).
		Where("user_id = ? AND date <= ?", userID, until).
		Order("date ASC")
	cashQuery := r.db.WithContext(ctx).
		Where("user_id = ? AND date <= ?", userID, until).
		Order("date ASC")
	if !since.IsZero() {
		incomeQuery = incomeQuery.Where("date >= ?", since)
		cashQuery = cashQuery.Where("date >= ?", since)
	}

	var incomeModels []model.IncomeRecordModel
	if result := incomeQuery.Find(&incomeModels); result.Error != nil {
		return nil, nil, result.Error
	}

	var cashModels []model.CashRecordModel
	if result := cashQuery.Find(&cashModels); result.Error != nil {
		return nil, nil, result.Error
	}

	incomes := make([]entity.IncomeRecord, len(incomeModels))
	for i, m := range incomeModels {
		incomes[i] = *m.ToEntity()
	}
	cash := make([]entity.CashRecord, len(cashModels))
	for i, m := range cashModels {
		cash[i] = *m.ToEntity()
	}
	return incomes, cash, nil
}

// CreateIncome creates a new income record in the database.
func (r *ledgerRepository) CreateIncome(ctx context.Context, record *entity.IncomeRecord) error {
	recordModel := model.IncomeRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateCash creates a new cash record in the database.
func (r *ledgerRepository) CreateCash(ctx context.Context, record *entity.CashRecord) error {
	recordModel := model.CashRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListIncomes retrieves the user's income records, newest first.
func (r *ledgerRepository) ListIncomes(ctx context.Context, userID uuid.UUID, limit int) ([]entity.IncomeRecord, error) {
	var recordModels []model.IncomeRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]entity.IncomeRecord, len(recordModels))
	for i, m := range recordModels {
		records[i] = *m.ToEntity()
	}
	return records, nil
}

// ListCash retrieves the user's cash records, newest first.
func (r *ledgerRepository) ListCash(ctx context.Context, userID uuid.UUID, limit int) ([]entity.CashRecord, error) {
	var recordModels []model.CashRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]entity.CashRecord, len(recordModels))
	for i, m := range recordModels {
		records[i] = *m.ToEntity()
	}
	return records, nil
}
