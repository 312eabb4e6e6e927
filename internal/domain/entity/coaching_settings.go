// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default coaching thresholds applied when settings are created lazily.
var (
	DefaultLowIncomeThreshold = decimal.NewFromInt(300)
	DefaultHighExpenseRatio   = decimal.NewFromFloat(0.6)
)

// CoachingSettings holds the per-user rule thresholds. One row per user,
// created lazily with defaults on first evaluation.
type CoachingSettings struct {
	UserID               uuid.UUID
	LowIncomeThreshold   decimal.Decimal
	HighExpenseRatio     decimal.Decimal // warn when expenses / net income exceeds this
	NotificationsEnabled bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewCoachingSettings creates settings with default thresholds for a user.
func NewCoachingSettings(userID uuid.UUID) *CoachingSettings {
	now := time.Now().UTC()
	return &CoachingSettings{
		UserID:               userID,
		LowIncomeThreshold:   DefaultLowIncomeThreshold,
		HighExpenseRatio:     DefaultHighExpenseRatio,
		NotificationsEnabled: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
