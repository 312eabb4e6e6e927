// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// LedgerRepository defines the interface for reading and writing the two raw
// record streams. FetchRecords is the coach core's only read path: a pure
// date-bounded read with no business logic, returning empty slices (not an
// error) when no records exist. Storage faults propagate unchanged; retry
// policy belongs to the caller.
type LedgerRepository interface {
	// FetchRecords returns the user's income and cash records with
	// since <= date <= until.
	FetchRecords(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.IncomeRecord, []entity.CashRecord, error)

	// CreateIncome persists a new income record.
	CreateIncome(ctx context.Context, record *entity.IncomeRecord) error

	// CreateCash persists a new cash record.
	CreateCash(ctx context.Context, record *entity.CashRecord) error

	// ListIncomes returns the user's income records ordered by date descending.
	ListIncomes(ctx context.Context, userID uuid.UUID, limit int) ([]entity.IncomeRecord, error)

	// ListCash returns the user's cash records ordered by date descending.
	ListCash(ctx context.Context, userID uuid.UUID, limit int) ([]entity.CashRecord, error)
}
