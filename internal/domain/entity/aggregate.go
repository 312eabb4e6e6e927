// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateKeyLayout is the canonical key format for date-keyed aggregates.
const DateKeyLayout = "2006-01-02"

// DailyAggregate holds the merged totals for a single calendar day.
// NetTotal = IncomeTotal + CashIncomeTotal - CashExpenseTotal and may be
// negative on a net outflow day. Aggregates are derived, never persisted.
type DailyAggregate struct {
	Date             time.Time
	IncomeTotal      decimal.Decimal
	CashIncomeTotal  decimal.Decimal
	CashExpenseTotal decimal.Decimal
	NetTotal         decimal.Decimal
}

// Earnings returns the income-only total for the day (recurring income plus
// cash income, expenses excluded). Used by the weekday heatmap.
func (a DailyAggregate) Earnings() decimal.Decimal {
	return a.IncomeTotal.Add(a.CashIncomeTotal)
}

// TopExpense is one entry of the top cash-expense descriptions ranking.
type TopExpense struct {
	Description string
	Amount      decimal.Decimal
}

// WindowAggregate holds summary statistics over a fixed trailing date range.
// NetIncome = TotalIncome + TotalCashIncome (earnings over the window).
// ExpenseRatio is nil whenever NetIncome <= 0; a nil ratio means "undefined",
// never a division fault.
type WindowAggregate struct {
	WindowStart     time.Time
	WindowEnd       time.Time
	TotalIncome     decimal.Decimal
	TotalCashIncome decimal.Decimal
	TotalExpenses   decimal.Decimal
	NetIncome       decimal.Decimal
	ExpenseRatio    *decimal.Decimal
	TopExpenses     []TopExpense
}
