// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeCategory represents the category of a recurring income record.
type IncomeCategory string

const (
	IncomeCategoryBusiness IncomeCategory = "business"
	IncomeCategoryPersonal IncomeCategory = "personal"
)

// IncomeRecord represents a scheduled/recurring income record.
// The coach core only reads income records; they are created and edited
// through the record entry surface.
type IncomeRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time // date only, normalized to UTC midnight
	Amount    decimal.Decimal
	Category  IncomeCategory
	CreatedAt time.Time
}

// NewIncomeRecord creates a new IncomeRecord entity.
func NewIncomeRecord(userID uuid.UUID, date time.Time, amount decimal.Decimal, category IncomeCategory) *IncomeRecord {
	return &IncomeRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      TruncateToDay(date),
		Amount:    amount,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
}

// TruncateToDay normalizes a timestamp to its UTC calendar day.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
