// Package record contains the ledger record entry use cases.
package record

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

// CreateIncomeInput represents the input for creating a recurring income record.
type CreateIncomeInput struct {
	UserID   uuid.UUID
	Date     time.Time
	Amount   decimal.Decimal
	Category entity.IncomeCategory
}

// CreateIncomeOutput represents the created income record.
type CreateIncomeOutput struct {
	ID       uuid.UUID             `json:"id"`
	Date     string                `json:"date"`
	Amount   decimal.Decimal       `json:"amount"`
	Category entity.IncomeCategory `json:"category"`
}

// CreateIncomeUseCase handles the creation of income records.
type CreateIncomeUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(ledgerRepo adapter.LedgerRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{ledgerRepo: ledgerRepo}
}

// Execute validates and persists a new income record.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingDate,
			"date is required",
			domainerror.ErrMissingDate,
		)
	}
	if input.Category != entity.IncomeCategoryBusiness && input.Category != entity.IncomeCategoryPersonal {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidIncomeCategory,
			"income category must be business or personal",
			domainerror.ErrInvalidIncomeCategory,
		)
	}

	record := entity.NewIncomeRecord(input.UserID, input.Date, input.Amount, input.Category)
	if err := uc.ledgerRepo.CreateIncome(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create income record: %w", err)
	}

	return &CreateIncomeOutput{
		ID:       record.ID,
		Date:     record.Date.Format(entity.DateKeyLayout),
		Amount:   record.Amount,
		Category: record.Category,
	}, nil
}
