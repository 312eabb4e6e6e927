package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
)

// ListPageSize bounds how many records a listing returns.
const ListPageSize = 100

// ListRecordsInput represents the input for the record listing queries.
type ListRecordsInput struct {
	UserID uuid.UUID
}

// IncomeItem is one income record in a listing.
type IncomeItem struct {
	ID       uuid.UUID             `json:"id"`
	Date     string                `json:"date"`
	Amount   decimal.Decimal       `json:"amount"`
	Category entity.IncomeCategory `json:"category"`
}

// CashItem is one cash record in a listing.
type CashItem struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsIncome    bool            `json:"is_income"`
}

// ListIncomesOutput represents the income listing.
type ListIncomesOutput struct {
	Incomes []IncomeItem `json:"incomes"`
}

// ListCashOutput represents the cash record listing.
type ListCashOutput struct {
	Records []CashItem `json:"records"`
}

// ListRecordsUseCase handles the record listing queries.
type ListRecordsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(ledgerRepo adapter.LedgerRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{ledgerRepo: ledgerRepo}
}

// ExecuteIncomes returns the user's income records, newest first.
func (uc *ListRecordsUseCase) ExecuteIncomes(ctx context.Context, input ListRecordsInput) (*ListIncomesOutput, error) {
	records, err := uc.ledgerRepo.ListIncomes(ctx, input.UserID, ListPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list income records: %w", err)
	}
	items := make([]IncomeItem, len(records))
	for i, r := range records {
		items[i] = IncomeItem{
			ID:       r.ID,
			Date:     r.Date.Format(entity.DateKeyLayout),
			Amount:   r.Amount,
			Category: r.Category,
		}
	}
	return &ListIncomesOutput{Incomes: items}, nil
}

// ExecuteCash returns the user's cash records, newest first.
func (uc *ListRecordsUseCase) ExecuteCash(ctx context.Context, input ListRecordsInput) (*ListCashOutput, error) {
	records, err := uc.ledgerRepo.ListCash(ctx, input.UserID, ListPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash records: %w", err)
	}
	items := make([]CashItem, len(records))
	for i, r := range records {
		items[i] = CashItem{
			ID:          r.ID,
			Date:        r.Date.Format(entity.DateKeyLayout),
			Amount:      r.Amount,
			Description: r.Description,
			IsIncome:    r.IsIncome,
		}
	}
	return &ListCashOutput{Records: items}, nil
}
