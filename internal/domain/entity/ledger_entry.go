// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the variant of a normalized ledger entry. The two
// record sources (recurring income and ad-hoc cash, the latter bifurcated by
// its income flag) collapse into this closed set inside the aggregator.
type EntryKind string

const (
	EntryRecurringIncome EntryKind = "recurring_income"
	EntryCashIncome      EntryKind = "cash_income"
	EntryCashExpense     EntryKind = "cash_expense"
)

// LedgerEntry is a single dated monetary record in normalized form.
// Amount is always non-negative; the kind carries the sign semantics.
type LedgerEntry struct {
	Date        time.Time
	Amount      decimal.Decimal
	Kind        EntryKind
	Description string
}

// Signed returns the entry amount with expense entries negated.
func (e LedgerEntry) Signed() decimal.Decimal {
	if e.Kind == EntryCashExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}

// IsEarning reports whether the entry counts toward earnings (income of
// either source, as opposed to expenses).
func (e LedgerEntry) IsEarning() bool {
	return e.Kind != EntryCashExpense
}

// NormalizeLedger merges both record sources into the single ledger entry
// representation. Order follows the inputs; callers that need a stable order
// sort afterwards.
func NormalizeLedger(incomes []IncomeRecord, cash []CashRecord) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(incomes)+len(cash))
	for _, rec := range incomes {
		entries = append(entries, LedgerEntry{
			Date:   TruncateToDay(rec.Date),
			Amount: rec.Amount,
			Kind:   EntryRecurringIncome,
		})
	}
	for _, rec := range cash {
		kind := EntryCashExpense
		if rec.IsIncome {
			kind = EntryCashIncome
		}
		entries = append(entries, LedgerEntry{
			Date:        TruncateToDay(rec.Date),
			Amount:      rec.Amount,
			Kind:        kind,
			Description: rec.Description,
		})
	}
	return entries
}
