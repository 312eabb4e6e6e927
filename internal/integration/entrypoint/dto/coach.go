// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-coach/backend/internal/application/usecase/coach"
)

// LowIncomeCheckResponse represents the low income check result.
type LowIncomeCheckResponse struct {
	Status        string `json:"status"`
	AverageRecent string `json:"average_recent"`
	Threshold     string `json:"threshold"`
	DataPoints    int    `json:"data_points"`
}

// ToLowIncomeCheckResponse converts a use case output to its DTO.
func ToLowIncomeCheckResponse(output *coach.LowIncomeCheckOutput) LowIncomeCheckResponse {
	return LowIncomeCheckResponse{
		Status:        output.Status,
		AverageRecent: output.AverageRecent.StringFixed(2),
		Threshold:     output.Threshold.StringFixed(2),
		DataPoints:    output.DataPoints,
	}
}

// TopExpenseResponse represents one ranked expense description.
type TopExpenseResponse struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// ExpenseAnalysisResponse represents the windowed expense analysis.
// ExpenseRatio is null when the window's net income is not positive.
type ExpenseAnalysisResponse struct {
	Days            int                  `json:"days"`
	TotalIncome     string               `json:"total_income"`
	TotalCashIncome string               `json:"total_cash_income"`
	TotalExpenses   string               `json:"total_expenses"`
	ExpenseRatio    *string              `json:"expense_ratio"`
	TopExpenses     []TopExpenseResponse `json:"top_expenses"`
}

// ToExpenseAnalysisResponse converts a use case output to its DTO.
func ToExpenseAnalysisResponse(output *coach.ExpenseAnalysisOutput) ExpenseAnalysisResponse {
	var ratio *string
	if output.ExpenseRatio != nil {
		s := output.ExpenseRatio.StringFixed(2)
		ratio = &s
	}

	top := make([]TopExpenseResponse, len(output.TopExpenses))
	for i, te := range output.TopExpenses {
		top[i] = TopExpenseResponse{
			Description: te.Description,
			Amount:      te.Amount.StringFixed(2),
		}
	}

	return ExpenseAnalysisResponse{
		Days:            output.Days,
		TotalIncome:     output.TotalIncome.StringFixed(2),
		TotalCashIncome: output.TotalCashIncome.StringFixed(2),
		TotalExpenses:   output.TotalExpenses.StringFixed(2),
		ExpenseRatio:    ratio,
		TopExpenses:     top,
	}
}

// HeatmapPointResponse represents one raw per-day earnings point.
type HeatmapPointResponse struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// WeeklyHeatmapResponse represents the weekday earnings heatmap.
type WeeklyHeatmapResponse struct {
	Weeks    int                    `json:"weeks"`
	Weekdays map[string]string      `json:"weekdays"`
	Raw      []HeatmapPointResponse `json:"raw"`
}

// ToWeeklyHeatmapResponse converts a use case output to its DTO.
func ToWeeklyHeatmapResponse(output *coach.WeeklyHeatmapOutput) WeeklyHeatmapResponse {
	weekdays := make(map[string]string, len(output.Weekdays))
	for label, amount := range output.Weekdays {
		weekdays[label] = amount.StringFixed(2)
	}

	raw := make([]HeatmapPointResponse, len(output.Raw))
	for i, point := range output.Raw {
		raw[i] = HeatmapPointResponse{
			Date:   point.Date,
			Amount: point.Amount.StringFixed(2),
		}
	}

	return WeeklyHeatmapResponse{
		Weeks:    output.Weeks,
		Weekdays: weekdays,
		Raw:      raw,
	}
}

// DailyBreakdownRowResponse represents one aggregated day.
type DailyBreakdownRowResponse struct {
	Date             string `json:"date"`
	IncomeTotal      string `json:"income_total"`
	CashIncomeTotal  string `json:"cash_income_total"`
	CashExpenseTotal string `json:"cash_expense_total"`
	NetTotal         string `json:"net_total"`
}

// DailyBreakdownResponse represents the per-day breakdown listing.
type DailyBreakdownResponse struct {
	AverageNet string                      `json:"average_net"`
	Days       []DailyBreakdownRowResponse `json:"days"`
}

// ToDailyBreakdownResponse converts a use case output to its DTO.
func ToDailyBreakdownResponse(output *coach.DailyBreakdownOutput) DailyBreakdownResponse {
	days := make([]DailyBreakdownRowResponse, len(output.Days))
	for i, row := range output.Days {
		days[i] = DailyBreakdownRowResponse{
			Date:             row.Date,
			IncomeTotal:      row.IncomeTotal.StringFixed(2),
			CashIncomeTotal:  row.CashIncomeTotal.StringFixed(2),
			CashExpenseTotal: row.CashExpenseTotal.StringFixed(2),
			NetTotal:         row.NetTotal.StringFixed(2),
		}
	}
	return DailyBreakdownResponse{
		AverageNet: output.AverageNet.StringFixed(2),
		Days:       days,
	}
}

// EmergencyBufferResponse represents the buffer recommendation.
type EmergencyBufferResponse struct {
	AvgMonthlyExpense string `json:"avg_monthly_expense"`
	Months            int    `json:"months"`
	RecommendedBuffer string `json:"recommended_buffer"`
}

// ToEmergencyBufferResponse converts a use case output to its DTO.
func ToEmergencyBufferResponse(output *coach.EmergencyBufferOutput) EmergencyBufferResponse {
	return EmergencyBufferResponse{
		AvgMonthlyExpense: output.AvgMonthlyExpense.StringFixed(2),
		Months:            output.Months,
		RecommendedBuffer: output.RecommendedBuffer.StringFixed(2),
	}
}
