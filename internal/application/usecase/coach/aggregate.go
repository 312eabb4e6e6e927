// Package coach contains the aggregation and coaching query use cases.
package coach

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// TopExpenseLimit is how many cash-expense descriptions the window aggregate ranks.
const TopExpenseLimit = 5

// The two rule windows are configured independently on purpose: the low
// income rule averages the trailing values of available data (not a true
// calendar week when data is sparse) while the expense ratio rule always
// looks at a fixed trailing calendar window. Unifying them would silently
// change alerting behavior.
const (
	// LowIncomeWindowDays is the trailing number of daily net values averaged
	// by the low income rule (fewer when history is shorter, minimum 1).
	LowIncomeWindowDays = 7

	// ExpenseWindowDays is the fixed trailing calendar window for the expense
	// ratio rule and the default expense analysis window.
	ExpenseWindowDays = 30
)

// ComputeDaily merges the two record streams into one date-keyed series of
// daily aggregates. Keys are exactly the union of dates present in either
// input; no synthetic dates are added. Monetary totals are summed exactly and
// rounded to 2 decimal places only once, at output.
func ComputeDaily(incomes []entity.IncomeRecord, cash []entity.CashRecord) map[string]entity.DailyAggregate {
	type running struct {
		date        time.Time
		income      decimal.Decimal
		cashIncome  decimal.Decimal
		cashExpense decimal.Decimal
	}

	totals := make(map[string]*running)
	upsert := func(date time.Time) *running {
		key := date.Format(entity.DateKeyLayout)
		r, ok := totals[key]
		if !ok {
			r = &running{date: date}
			totals[key] = r
		}
		return r
	}

	for _, e := range entity.NormalizeLedger(incomes, cash) {
		r := upsert(e.Date)
		switch e.Kind {
		case entity.EntryRecurringIncome:
			r.income = r.income.Add(e.Amount)
		case entity.EntryCashIncome:
			r.cashIncome = r.cashIncome.Add(e.Amount)
		case entity.EntryCashExpense:
			r.cashExpense = r.cashExpense.Add(e.Amount)
		}
	}

	daily := make(map[string]entity.DailyAggregate, len(totals))
	for key, r := range totals {
		net := r.income.Add(r.cashIncome).Sub(r.cashExpense)
		daily[key] = entity.DailyAggregate{
			Date:             r.date,
			IncomeTotal:      r.income.Round(2),
			CashIncomeTotal:  r.cashIncome.Round(2),
			CashExpenseTotal: r.cashExpense.Round(2),
			NetTotal:         net.Round(2),
		}
	}
	return daily
}

// SortedDaily flattens a daily aggregate mapping into a slice ordered by date
// ascending.
func SortedDaily(daily map[string]entity.DailyAggregate) []entity.DailyAggregate {
	series := make([]entity.DailyAggregate, 0, len(daily))
	for _, agg := range daily {
		series = append(series, agg)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// TrailingNetAverage computes the arithmetic mean of the trailing k net
// totals of a date-ascending daily series, using the whole series when it is
// shorter than k. It returns the mean and the number of values averaged;
// an empty series yields (0, 0).
func TrailingNetAverage(series []entity.DailyAggregate, k int) (decimal.Decimal, int) {
	if len(series) == 0 || k < 1 {
		return decimal.Zero, 0
	}
	if len(series) > k {
		series = series[len(series)-k:]
	}
	sum := decimal.Zero
	for _, agg := range series {
		sum = sum.Add(agg.NetTotal)
	}
	return sum.Div(decimal.NewFromInt(int64(len(series)))), len(series)
}

// ComputeWindow summarizes both record streams over a trailing window.
// NetIncome is income plus cash income; the expense ratio is left nil
// (undefined) when NetIncome is not positive, so callers never divide by
// zero. Empty inputs yield all-zero totals with an undefined ratio, not an
// error.
func ComputeWindow(incomes []entity.IncomeRecord, cash []entity.CashRecord, start, end time.Time) entity.WindowAggregate {
	totalIncome := decimal.Zero
	totalCashIncome := decimal.Zero
	totalExpenses := decimal.Zero
	byDescription := make(map[string]decimal.Decimal)

	for _, e := range entity.NormalizeLedger(incomes, cash) {
		switch e.Kind {
		case entity.EntryRecurringIncome:
			totalIncome = totalIncome.Add(e.Amount)
		case entity.EntryCashIncome:
			totalCashIncome = totalCashIncome.Add(e.Amount)
		case entity.EntryCashExpense:
			totalExpenses = totalExpenses.Add(e.Amount)
			desc := e.Description
			if desc == "" {
				desc = "unknown"
			}
			byDescription[desc] = byDescription[desc].Add(e.Amount)
		}
	}

	netIncome := totalIncome.Add(totalCashIncome)

	var ratio *decimal.Decimal
	if netIncome.IsPositive() {
		r := totalExpenses.Div(netIncome)
		ratio = &r
	}

	return entity.WindowAggregate{
		WindowStart:     start,
		WindowEnd:       end,
		TotalIncome:     totalIncome.Round(2),
		TotalCashIncome: totalCashIncome.Round(2),
		TotalExpenses:   totalExpenses.Round(2),
		NetIncome:       netIncome.Round(2),
		ExpenseRatio:    ratio,
		TopExpenses:     rankTopExpenses(byDescription),
	}
}

// rankTopExpenses orders summed expense descriptions by amount descending,
// breaking ties by description ascending so the ranking is deterministic.
func rankTopExpenses(byDescription map[string]decimal.Decimal) []entity.TopExpense {
	ranked := make([]entity.TopExpense, 0, len(byDescription))
	for desc, amount := range byDescription {
		ranked = append(ranked, entity.TopExpense{Description: desc, Amount: amount.Round(2)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Description < ranked[j].Description
	})
	if len(ranked) > TopExpenseLimit {
		ranked = ranked[:TopExpenseLimit]
	}
	return ranked
}
