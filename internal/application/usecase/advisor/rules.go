// Package advisor contains the rule evaluation and agent runner use cases.
package advisor

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/usecase/coach"
	"github.com/finance-coach/backend/internal/domain/entity"
)

// Advisory cooldowns per rule tag, in days. These are rule constants, not
// user-tunable settings.
const (
	LowIncomeCooldownDays   = 2
	HighExpenseCooldownDays = 3
)

var hundred = decimal.NewFromInt(100)

// RuleResult is a candidate advice card together with its rule's cooldown.
type RuleResult struct {
	Card         *entity.AdviceCard
	CooldownDays int
}

// EvaluateLowIncome applies the low income rule to the user's daily net
// series (date ascending): the mean of the trailing values must stay at or
// above the configured threshold. Returns nil when the condition does not
// hold or there is no data. Given identical inputs the candidate card body
// and meta are identical, which the deduplication layer and tests rely on.
func EvaluateLowIncome(userID uuid.UUID, series []entity.DailyAggregate, settings *entity.CoachingSettings) *RuleResult {
	avg, points := coach.TrailingNetAverage(series, coach.LowIncomeWindowDays)
	if points == 0 || avg.GreaterThanOrEqual(settings.LowIncomeThreshold) {
		return nil
	}

	body := fmt.Sprintf(
		"Your average income over the last %d days is %s, which is below your threshold of %s. Consider reducing discretionary expenses or building a buffer.",
		points, avg.StringFixed(2), settings.LowIncomeThreshold.StringFixed(2),
	)

	card := entity.NewAdviceCard(userID, "Income is low recently", body, entity.AdviceTagLowIncome, map[string]any{
		"average_recent": avg.StringFixed(2),
		"threshold":      settings.LowIncomeThreshold.StringFixed(2),
		"window_days":    points,
	})
	return &RuleResult{Card: card, CooldownDays: LowIncomeCooldownDays}
}

// EvaluateHighExpense applies the high expense rule to a fixed trailing
// window aggregate: spending must not exceed the configured fraction of net
// income. A window with net income at or below zero evaluates to false
// (insufficient signal), never an error.
func EvaluateHighExpense(userID uuid.UUID, window entity.WindowAggregate, settings *entity.CoachingSettings) *RuleResult {
	if window.ExpenseRatio == nil || window.ExpenseRatio.LessThanOrEqual(settings.HighExpenseRatio) {
		return nil
	}

	body := fmt.Sprintf(
		"Your spending is %s%% of your earnings over the last %d days. Try cutting non-essential spending or set a small weekly limit.",
		window.ExpenseRatio.Mul(hundred).StringFixed(1), coach.ExpenseWindowDays,
	)

	card := entity.NewAdviceCard(userID, "Your expenses are high", body, entity.AdviceTagHighExpense, map[string]any{
		"expense_ratio": window.ExpenseRatio.StringFixed(3),
		"threshold":     settings.HighExpenseRatio.StringFixed(3),
	})
	return &RuleResult{Card: card, CooldownDays: HighExpenseCooldownDays}
}
