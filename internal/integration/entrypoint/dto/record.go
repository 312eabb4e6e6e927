// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-coach/backend/internal/application/usecase/record"
)

// CreateIncomeRequest represents the request body for income record creation.
type CreateIncomeRequest struct {
	Date     string  `json:"date" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category" binding:"required,oneof=business personal"`
}

// CreateCashRequest represents the request body for cash record creation.
type CreateCashRequest struct {
	Date        string  `json:"date" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Description string  `json:"description"`
	IsIncome    bool    `json:"is_income"`
}

// IncomeRecordResponse represents a single income record.
type IncomeRecordResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// CashRecordResponse represents a single cash record.
type CashRecordResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	IsIncome    bool   `json:"is_income"`
}

// IncomeListResponse represents the income record listing.
type IncomeListResponse struct {
	Incomes []IncomeRecordResponse `json:"incomes"`
}

// CashListResponse represents the cash record listing.
type CashListResponse struct {
	Records []CashRecordResponse `json:"records"`
}

// ToIncomeRecordResponse converts a created income record to its DTO.
func ToIncomeRecordResponse(output *record.CreateIncomeOutput) IncomeRecordResponse {
	return IncomeRecordResponse{
		ID:       output.ID.String(),
		Date:     output.Date,
		Amount:   output.Amount.StringFixed(2),
		Category: string(output.Category),
	}
}

// ToCashRecordResponse converts a created cash record to its DTO.
func ToCashRecordResponse(output *record.CreateCashOutput) CashRecordResponse {
	return CashRecordResponse{
		ID:          output.ID.String(),
		Date:        output.Date,
		Amount:      output.Amount.StringFixed(2),
		Description: output.Description,
		IsIncome:    output.IsIncome,
	}
}

// ToIncomeListResponse converts an income listing to its DTO.
func ToIncomeListResponse(output *record.ListIncomesOutput) IncomeListResponse {
	incomes := make([]IncomeRecordResponse, len(output.Incomes))
	for i, item := range output.Incomes {
		incomes[i] = IncomeRecordResponse{
			ID:       item.ID.String(),
			Date:     item.Date,
			Amount:   item.Amount.StringFixed(2),
			Category: string(item.Category),
		}
	}
	return IncomeListResponse{Incomes: incomes}
}

// ToCashListResponse converts a cash listing to its DTO.
func ToCashListResponse(output *record.ListCashOutput) CashListResponse {
	records := make([]CashRecordResponse, len(output.Records))
	for i, item := range output.Records {
		records[i] = CashRecordResponse{
			ID:          item.ID.String(),
			Date:        item.Date,
			Amount:      item.Amount.StringFixed(2),
			Description: item.Description,
			IsIncome:    item.IsIncome,
		}
	}
	return CashListResponse{Records: records}
}
