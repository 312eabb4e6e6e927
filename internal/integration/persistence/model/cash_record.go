// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// CashRecordModel represents the cash_records table in the database.
type CashRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_cash_user_date"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_cash_user_date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255)"`
	IsIncome    bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CashRecordModel.
func (CashRecordModel) TableName() string {
	return "cash_records"
}

// ToEntity converts a CashRecordModel to a domain CashRecord entity.
func (m *CashRecordModel) ToEntity() *entity.CashRecord {
	return &entity.CashRecord{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        entity.TruncateToDay(m.Date),
		Amount:      m.Amount,
		Description: m.Description,
		IsIncome:    m.IsIncome,
		CreatedAt:   m.CreatedAt,
	}
}

// CashRecordFromEntity creates a CashRecordModel from a domain CashRecord entity.
func CashRecordFromEntity(record *entity.CashRecord) *CashRecordModel {
	return &CashRecordModel{
		ID:          record.ID,
		UserID:      record.UserID,
		Date:        record.Date,
		Amount:      record.Amount,
		Description: record.Description,
		IsIncome:    record.IsIncome,
		CreatedAt:   record.CreatedAt,
	}
}
