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

// bufferLookbackDays is the expense observation window behind the average
// monthly expense estimate (three months).
const bufferLookbackDays = 90

// DefaultBufferMonths is the default buffer horizon in months.
const DefaultBufferMonths = 3

// EmergencyBufferInput represents the input for the emergency buffer query.
type EmergencyBufferInput struct {
	UserID uuid.UUID
	Months int
}

// EmergencyBufferOutput carries the recommended emergency buffer, computed as
// average monthly expense times the requested month horizon.
type EmergencyBufferOutput struct {
	AvgMonthlyExpense decimal.Decimal `json:"avg_monthly_expense"`
	Months            int             `json:"months"`
	RecommendedBuffer decimal.Decimal `json:"recommended_buffer"`
}

// EmergencyBufferUseCase estimates how much a user should hold back as an
// emergency buffer based on their recent spending.
type EmergencyBufferUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewEmergencyBufferUseCase creates a new EmergencyBufferUseCase instance.
func NewEmergencyBufferUseCase(ledgerRepo adapter.LedgerRepository) *EmergencyBufferUseCase {
	return &EmergencyBufferUseCase{ledgerRepo: ledgerRepo}
}

// Execute computes the buffer recommendation over the trailing 90 days of
// cash expenses.
func (uc *EmergencyBufferUseCase) Execute(ctx context.Context, input EmergencyBufferInput) (*EmergencyBufferOutput, error) {
	if input.Months <= 0 {
		return nil, domainerror.NewCoachError(
			domainerror.ErrCodeInvalidMonths,
			"months must be a positive integer",
			domainerror.ErrInvalidMonths,
		)
	}

	until := entity.TruncateToDay(time.Now())
	since := until.AddDate(0, 0, -bufferLookbackDays)

	_, cash, err := uc.ledgerRepo.FetchRecords(ctx, input.UserID, since, until)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	totalExpenses := decimal.Zero
	for _, rec := range cash {
		if !rec.IsIncome {
			totalExpenses = totalExpenses.Add(rec.Amount)
		}
	}

	avgMonthly := totalExpenses.Div(decimal.NewFromInt(3)).Round(2)
	recommended := avgMonthly.Mul(decimal.NewFromInt(int64(input.Months))).Round(2)

	return &EmergencyBufferOutput{
		AvgMonthlyExpense: avgMonthly,
		Months:            input.Months,
		RecommendedBuffer: recommended,
	}, nil
}
