// Package coach contains the aggregation and coaching query use cases.
package coach

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
)

// DailyBreakdownInput represents the input for the daily breakdown query.
type DailyBreakdownInput struct {
	UserID uuid.UUID
}

// DailyBreakdownRow is one per-date aggregate in the breakdown.
type DailyBreakdownRow struct {
	Date             string          `json:"date"`
	IncomeTotal      decimal.Decimal `json:"income_total"`
	CashIncomeTotal  decimal.Decimal `json:"cash_income_total"`
	CashExpenseTotal decimal.Decimal `json:"cash_expense_total"`
	NetTotal         decimal.Decimal `json:"net_total"`
}

// DailyBreakdownOutput lists every aggregated day, newest first, together
// with the average net value across all days.
type DailyBreakdownOutput struct {
	AverageNet decimal.Decimal     `json:"average_net"`
	Days       []DailyBreakdownRow `json:"days"`
}

// DailyBreakdownUseCase exposes the merged per-day aggregates for income
// variability inspection.
type DailyBreakdownUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDailyBreakdownUseCase creates a new DailyBreakdownUseCase instance.
func NewDailyBreakdownUseCase(ledgerRepo adapter.LedgerRepository) *DailyBreakdownUseCase {
	return &DailyBreakdownUseCase{ledgerRepo: ledgerRepo}
}

// Execute computes the daily aggregates over the user's whole history. With
// no records it returns an empty list and a zero average, not an error.
func (uc *DailyBreakdownUseCase) Execute(ctx context.Context, input DailyBreakdownInput) (*DailyBreakdownOutput, error) {
	incomes, cash, err := uc.ledgerRepo.FetchRecords(ctx, input.UserID, time.Time{}, entity.TruncateToDay(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	series := SortedDaily(ComputeDaily(incomes, cash))

	rows := make([]DailyBreakdownRow, 0, len(series))
	sum := decimal.Zero
	// Newest first for display.
	for i := len(series) - 1; i >= 0; i-- {
		agg := series[i]
		sum = sum.Add(agg.NetTotal)
		rows = append(rows, DailyBreakdownRow{
			Date:             agg.Date.Format(entity.DateKeyLayout),
			IncomeTotal:      agg.IncomeTotal,
			CashIncomeTotal:  agg.CashIncomeTotal,
			CashExpenseTotal: agg.CashExpenseTotal,
			NetTotal:         agg.NetTotal,
		})
	}

	avg := decimal.Zero
	if len(series) > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(len(series)))).Round(2)
	}

	return &DailyBreakdownOutput{
		AverageNet: avg,
		Days:       rows,
	}, nil
}
