// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-coach/backend/internal/application/usecase/settings"
)

// UpdateSettingsRequest represents the request body for a settings update.
// Omitted fields keep their current values.
type UpdateSettingsRequest struct {
	LowIncomeThreshold   *float64 `json:"low_income_threshold,omitempty" binding:"omitempty,gt=0"`
	HighExpenseRatio     *float64 `json:"high_expense_ratio,omitempty" binding:"omitempty,gt=0,lte=1"`
	NotificationsEnabled *bool    `json:"notifications_enabled,omitempty"`
}

// SettingsResponse represents the user's coaching settings.
type SettingsResponse struct {
	LowIncomeThreshold   string `json:"low_income_threshold"`
	HighExpenseRatio     string `json:"high_expense_ratio"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// ToSettingsResponse converts a settings output to its DTO.
func ToSettingsResponse(output *settings.GetSettingsOutput) SettingsResponse {
	return SettingsResponse{
		LowIncomeThreshold:   output.LowIncomeThreshold.StringFixed(2),
		HighExpenseRatio:     output.HighExpenseRatio.StringFixed(2),
		NotificationsEnabled: output.NotificationsEnabled,
	}
}
