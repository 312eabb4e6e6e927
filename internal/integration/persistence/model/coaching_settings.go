// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// CoachingSettingsModel represents the coaching_settings table in the database.
type CoachingSettingsModel struct {
	UserID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LowIncomeThreshold   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	HighExpenseRatio     decimal.Decimal `gorm:"type:decimal(5,4);not null"`
	NotificationsEnabled bool            `gorm:"not null;default:true"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CoachingSettingsModel.
func (CoachingSettingsModel) TableName() string {
	return "coaching_settings"
}

// ToEntity converts a CoachingSettingsModel to a domain CoachingSettings entity.
func (m *CoachingSettingsModel) ToEntity() *entity.CoachingSettings {
	return &entity.CoachingSettings{
		UserID:               m.UserID,
		LowIncomeThreshold:   m.LowIncomeThreshold,
		HighExpenseRatio:     m.HighExpenseRatio,
		NotificationsEnabled: m.NotificationsEnabled,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// CoachingSettingsFromEntity creates a CoachingSettingsModel from a domain
// CoachingSettings entity.
func CoachingSettingsFromEntity(settings *entity.CoachingSettings) *CoachingSettingsModel {
	return &CoachingSettingsModel{
		UserID:               settings.UserID,
		LowIncomeThreshold:   settings.LowIncomeThreshold,
		HighExpenseRatio:     settings.HighExpenseRatio,
		NotificationsEnabled: settings.NotificationsEnabled,
		CreatedAt:            settings.CreatedAt,
		UpdatedAt:            settings.UpdatedAt,
	}
}
