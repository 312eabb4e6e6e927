// Package settings contains the coaching settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
)

// GetSettingsInput represents the input for the get settings query.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents a user's coaching settings.
type GetSettingsOutput struct {
	LowIncomeThreshold   decimal.Decimal `json:"low_income_threshold"`
	HighExpenseRatio     decimal.Decimal `json:"high_expense_ratio"`
	NotificationsEnabled bool            `json:"notifications_enabled"`
}

// GetSettingsUseCase handles reading the per-user coaching settings,
// creating them with defaults on first access.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute returns the user's settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	s, err := uc.settingsRepo.GetOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &GetSettingsOutput{
		LowIncomeThreshold:   s.LowIncomeThreshold,
		HighExpenseRatio:     s.HighExpenseRatio,
		NotificationsEnabled: s.NotificationsEnabled,
	}, nil
}
