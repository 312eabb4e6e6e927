// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashRecord represents an ad-hoc cash transaction. IsIncome marks whether
// the record counts as income or expense; both income-type and cash-type
// records can exist for the same date.
type CashRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time // date only, normalized to UTC midnight
	Amount      decimal.Decimal
	Description string
	IsIncome    bool
	CreatedAt   time.Time
}

// NewCashRecord creates a new CashRecord entity.
func NewCashRecord(userID uuid.UUID, date time.Time, amount decimal.Decimal, description string, isIncome bool) *CashRecord {
	return &CashRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        TruncateToDay(date),
		Amount:      amount,
		Description: description,
		IsIncome:    isIncome,
		CreatedAt:   time.Now().UTC(),
	}
}
