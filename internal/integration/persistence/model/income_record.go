// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// IncomeRecordModel represents the income_records table in the database.
type IncomeRecordModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_income_user_date"`
	Date      time.Time       `gorm:"type:date;not null;index:idx_income_user_date"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the IncomeRecordModel.
func (IncomeRecordModel) TableName() string {
	return "income_records"
}

// ToEntity converts an IncomeRecordModel to a domain IncomeRecord entity.
func (m *IncomeRecordModel) ToEntity() *entity.IncomeRecord {
	return &entity.IncomeRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      entity.TruncateToDay(m.Date),
		Amount:    m.Amount,
		Category:  entity.IncomeCategory(m.Category),
		CreatedAt: m.CreatedAt,
	}
}

// IncomeRecordFromEntity creates an IncomeRecordModel from a domain IncomeRecord entity.
func IncomeRecordFromEntity(record *entity.IncomeRecord) *IncomeRecordModel {
	return &IncomeRecordModel{
		ID:        record.ID,
		UserID:    record.UserID,
		Date:      record.Date,
		Amount:    record.Amount,
		Category:  string(record.Category),
		CreatedAt: record.CreatedAt,
	}
}
