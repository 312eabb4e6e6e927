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
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// ExpenseAnalysisInput represents the input for the expense analysis query.
type ExpenseAnalysisInput struct {
	UserID uuid.UUID
	Days   int
}

// TopExpenseItem is one ranked expense description in the analysis output.
type TopExpenseItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExpenseAnalysisOutput summarizes income and spending over the window.
// TotalIncome reports net income (recurring income plus cash income).
// ExpenseRatio is null whenever net income is not positive.
type ExpenseAnalysisOutput struct {
	Days            int              `json:"days"`
	TotalIncome     decimal.Decimal  `json:"total_income"`
	TotalCashIncome decimal.Decimal  `json:"total_cash_income"`
	TotalExpenses   decimal.Decimal  `json:"total_expenses"`
	ExpenseRatio    *decimal.Decimal `json:"expense_ratio"`
	TopExpenses     []TopExpenseItem `json:"top_expenses"`
}

// ExpenseAnalysisUseCase handles the windowed expense analysis query.
type ExpenseAnalysisUseCase struct {
	ledgerRepo adapter.LedgerRepository
	cache      adapter.ReadCache
	cacheTTL   time.Duration
}

// NewExpenseAnalysisUseCase creates a new ExpenseAnalysisUseCase instance.
func NewExpenseAnalysisUseCase(ledgerRepo adapter.LedgerRepository, cache adapter.ReadCache, cacheTTL time.Duration) *ExpenseAnalysisUseCase {
	return &ExpenseAnalysisUseCase{
		ledgerRepo: ledgerRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Execute computes the expense analysis for the trailing day window, serving
// a cached result when one is fresh enough.
func (uc *ExpenseAnalysisUseCase) Execute(ctx context.Context, input ExpenseAnalysisInput) (*ExpenseAnalysisOutput, error) {
	if input.Days <= 0 {
		return nil, domainerror.NewCoachError(
			domainerror.ErrCodeInvalidDays,
			"days must be a positive integer",
			domainerror.ErrInvalidDays,
		)
	}

	key := expenseAnalysisCacheKey(input.UserID, input.Days)
	if out, ok := cacheLookup[ExpenseAnalysisOutput](ctx, uc.cache, key); ok {
		return out, nil
	}

	until := entity.TruncateToDay(time.Now())
	since := until.AddDate(0, 0, -input.Days)

	incomes, cash, err := uc.ledgerRepo.FetchRecords(ctx, input.UserID, since, until)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	window := ComputeWindow(incomes, cash, since, until)

	var ratio *decimal.Decimal
	if window.ExpenseRatio != nil {
		r := window.ExpenseRatio.Round(2)
		ratio = &r
	}

	top := make([]TopExpenseItem, len(window.TopExpenses))
	for i, te := range window.TopExpenses {
		top[i] = TopExpenseItem{Description: te.Description, Amount: te.Amount}
	}

	out := &ExpenseAnalysisOutput{
		Days:            input.Days,
		TotalIncome:     window.NetIncome,
		TotalCashIncome: window.TotalCashIncome,
		TotalExpenses:   window.TotalExpenses,
		ExpenseRatio:    ratio,
		TopExpenses:     top,
	}
	cacheStore(ctx, uc.cache, key, out, uc.cacheTTL)
	return out, nil
}
