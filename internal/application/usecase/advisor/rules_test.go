package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/usecase/coach"
	"github.com/finance-coach/backend/internal/domain/entity"
)

func dailySeries(nets ...float64) []entity.DailyAggregate {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := make([]entity.DailyAggregate, 0, len(nets))
	for i, net := range nets {
		series = append(series, entity.DailyAggregate{
			Date:     base.AddDate(0, 0, i),
			NetTotal: decimal.NewFromFloat(net),
		})
	}
	return series
}

func TestEvaluateLowIncome(t *testing.T) {
	userID := uuid.New()
	settings := entity.NewCoachingSettings(userID)

	t.Run("fires when trailing average is below threshold", func(t *testing.T) {
		result := EvaluateLowIncome(userID, dailySeries(100, 200, 150), settings)
		if result == nil {
			t.Fatal("expected a card, got nil")
		}
		if result.Card.Tag != entity.AdviceTagLowIncome {
			t.Errorf("tag = %q, want %q", result.Card.Tag, entity.AdviceTagLowIncome)
		}
		if result.CooldownDays != LowIncomeCooldownDays {
			t.Errorf("cooldown = %d, want %d", result.CooldownDays, LowIncomeCooldownDays)
		}
		if !strings.Contains(result.Card.Body, "150.00") {
			t.Errorf("body should mention the average 150.00, got %q", result.Card.Body)
		}
		if !strings.Contains(result.Card.Body, "300.00") {
			t.Errorf("body should mention the threshold 300.00, got %q", result.Card.Body)
		}
		if got := result.Card.Meta["window_days"]; got != 3 {
			t.Errorf("meta window_days = %v, want 3", got)
		}
	})

	t.Run("silent when average meets threshold", func(t *testing.T) {
		if result := EvaluateLowIncome(userID, dailySeries(300, 300, 300), settings); result != nil {
			t.Errorf("expected nil, got card %q", result.Card.Title)
		}
	})

	t.Run("silent at exactly the threshold", func(t *testing.T) {
		if result := EvaluateLowIncome(userID, dailySeries(299, 301), settings); result != nil {
			t.Errorf("expected nil for average equal to threshold, got card %q", result.Card.Title)
		}
	})

	t.Run("silent with no data", func(t *testing.T) {
		if result := EvaluateLowIncome(userID, nil, settings); result != nil {
			t.Errorf("expected nil for empty series, got card %q", result.Card.Title)
		}
	})

	t.Run("only trailing values count", func(t *testing.T) {
		// Seven recent days at 500 outweigh an older stretch of zeros.
		series := dailySeries(0, 0, 0, 0, 0, 500, 500, 500, 500, 500, 500, 500)
		if result := EvaluateLowIncome(userID, series, settings); result != nil {
			t.Errorf("expected nil, old zeros should fall outside the window, got %q", result.Card.Body)
		}
	})

	t.Run("identical inputs produce identical wording", func(t *testing.T) {
		a := EvaluateLowIncome(userID, dailySeries(100, 200), settings)
		b := EvaluateLowIncome(userID, dailySeries(100, 200), settings)
		if a == nil || b == nil {
			t.Fatal("expected cards from both evaluations")
		}
		if a.Card.Body != b.Card.Body {
			t.Errorf("bodies differ:\n%q\n%q", a.Card.Body, b.Card.Body)
		}
		if a.Card.Meta["average_recent"] != b.Card.Meta["average_recent"] {
			t.Errorf("meta differs: %v vs %v", a.Card.Meta, b.Card.Meta)
		}
	})
}

func TestEvaluateHighExpense(t *testing.T) {
	userID := uuid.New()
	settings := entity.NewCoachingSettings(userID)

	window := func(income, expenses float64) entity.WindowAggregate {
		end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		var incomes []entity.IncomeRecord
		if income > 0 {
			incomes = append(incomes, entity.IncomeRecord{
				Date: end.AddDate(0, 0, -1), Amount: decimal.NewFromFloat(income),
			})
		}
		var cash []entity.CashRecord
		if expenses > 0 {
			cash = append(cash, entity.CashRecord{
				Date: end.AddDate(0, 0, -1), Amount: decimal.NewFromFloat(expenses), Description: "groceries",
			})
		}
		return coach.ComputeWindow(incomes, cash, end.AddDate(0, 0, -coach.ExpenseWindowDays), end)
	}

	t.Run("fires when ratio exceeds threshold", func(t *testing.T) {
		result := EvaluateHighExpense(userID, window(1000, 700), settings)
		if result == nil {
			t.Fatal("expected a card, got nil")
		}
		if result.Card.Tag != entity.AdviceTagHighExpense {
			t.Errorf("tag = %q, want %q", result.Card.Tag, entity.AdviceTagHighExpense)
		}
		if result.CooldownDays != HighExpenseCooldownDays {
			t.Errorf("cooldown = %d, want %d", result.CooldownDays, HighExpenseCooldownDays)
		}
		if !strings.Contains(result.Card.Body, "70.0%") {
			t.Errorf("body should mention 70.0%%, got %q", result.Card.Body)
		}
		if got := result.Card.Meta["expense_ratio"]; got != "0.700" {
			t.Errorf("meta expense_ratio = %v, want 0.700", got)
		}
	})

	t.Run("silent at exactly the threshold", func(t *testing.T) {
		if result := EvaluateHighExpense(userID, window(1000, 600), settings); result != nil {
			t.Errorf("expected nil at ratio 0.6, got card %q", result.Card.Body)
		}
	})

	t.Run("silent when ratio is undefined", func(t *testing.T) {
		if result := EvaluateHighExpense(userID, window(0, 700), settings); result != nil {
			t.Errorf("expected nil without positive net income, got card %q", result.Card.Body)
		}
	})
}
