package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// UpdateSettingsInput carries the new threshold values. Nil fields keep the
// current value.
type UpdateSettingsInput struct {
	UserID               uuid.UUID
	LowIncomeThreshold   *decimal.Decimal
	HighExpenseRatio     *decimal.Decimal
	NotificationsEnabled *bool
}

// UpdateSettingsUseCase handles partial updates of the coaching settings.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute validates and persists the changed fields, returning the settings
// as stored.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*GetSettingsOutput, error) {
	if input.LowIncomeThreshold != nil && !input.LowIncomeThreshold.IsPositive() {
		return nil, domainerror.NewCoachError(
			domainerror.ErrCodeInvalidLowIncomeThreshold,
			"low_income_threshold must be greater than zero",
			domainerror.ErrInvalidLowIncomeThreshold,
		)
	}
	if input.HighExpenseRatio != nil {
		r := *input.HighExpenseRatio
		if !r.IsPositive() || r.GreaterThan(decimal.NewFromInt(1)) {
			return nil, domainerror.NewCoachError(
				domainerror.ErrCodeInvalidExpenseRatio,
				"high_expense_ratio must be in (0, 1]",
				domainerror.ErrInvalidExpenseRatio,
			)
		}
	}

	s, err := uc.settingsRepo.GetOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if input.LowIncomeThreshold != nil {
		s.LowIncomeThreshold = *input.LowIncomeThreshold
	}
	if input.HighExpenseRatio != nil {
		s.HighExpenseRatio = *input.HighExpenseRatio
	}
	if input.NotificationsEnabled != nil {
		s.NotificationsEnabled = *input.NotificationsEnabled
	}

	if err := uc.settingsRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return &GetSettingsOutput{
		LowIncomeThreshold:   s.LowIncomeThreshold,
		HighExpenseRatio:     s.HighExpenseRatio,
		NotificationsEnabled: s.NotificationsEnabled,
	}, nil
}
