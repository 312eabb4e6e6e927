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

// CreateCashInput represents the input for creating an ad-hoc cash record.
type CreateCashInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	IsIncome    bool
}

// CreateCashOutput represents the created cash record.
type CreateCashOutput struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsIncome    bool            `json:"is_income"`
}

// CreateCashUseCase handles the creation of cash records.
type CreateCashUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewCreateCashUseCase creates a new CreateCashUseCase instance.
func NewCreateCashUseCase(ledgerRepo adapter.LedgerRepository) *CreateCashUseCase {
	return &CreateCashUseCase{ledgerRepo: ledgerRepo}
}

// Execute validates and persists a new cash record.
func (uc *CreateCashUseCase) Execute(ctx context.Context, input CreateCashInput) (*CreateCashOutput, error) {
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

	record := entity.NewCashRecord(input.UserID, input.Date, input.Amount, input.Description, input.IsIncome)
	if err := uc.ledgerRepo.CreateCash(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create cash record: %w", err)
	}

	return &CreateCashOutput{
		ID:          record.ID,
		Date:        record.Date.Format(entity.DateKeyLayout),
		Amount:      record.Amount,
		Description: record.Description,
		IsIncome:    record.IsIncome,
	}, nil
}
