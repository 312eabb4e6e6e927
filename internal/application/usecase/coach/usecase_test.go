package coach

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

type stubLedgerRepo struct {
	incomes []entity.IncomeRecord
	cash    []entity.CashRecord
	err     error
	calls   int
}

func (s *stubLedgerRepo) FetchRecords(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.IncomeRecord, []entity.CashRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, nil, s.err
	}
	var incomes []entity.IncomeRecord
	for _, r := range s.incomes {
		if !r.Date.Before(since) && !r.Date.After(until) {
			incomes = append(incomes, r)
		}
	}
	var cash []entity.CashRecord
	for _, r := range s.cash {
		if !r.Date.Before(since) && !r.Date.After(until) {
			cash = append(cash, r)
		}
	}
	return incomes, cash, nil
}

func (s *stubLedgerRepo) CreateIncome(ctx context.Context, record *entity.IncomeRecord) error {
	s.incomes = append(s.incomes, *record)
	return nil
}

func (s *stubLedgerRepo) CreateCash(ctx context.Context, record *entity.CashRecord) error {
	s.cash = append(s.cash, *record)
	return nil
}

func (s *stubLedgerRepo) ListIncomes(ctx context.Context, userID uuid.UUID, limit int) ([]entity.IncomeRecord, error) {
	return s.incomes, nil
}

func (s *stubLedgerRepo) ListCash(ctx context.Context, userID uuid.UUID, limit int) ([]entity.CashRecord, error) {
	return s.cash, nil
}

type stubSettingsRepo struct {
	settings *entity.CoachingSettings
}

func (s *stubSettingsRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.CoachingSettings, error) {
	if s.settings == nil {
		s.settings = entity.NewCoachingSettings(userID)
	}
	return s.settings, nil
}

func (s *stubSettingsRepo) Update(ctx context.Context, settings *entity.CoachingSettings) error {
	s.settings = settings
	return nil
}

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := m.entries[key]
	return data, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.entries[key] = value
	return nil
}

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("cache unavailable")
}

func (failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("cache unavailable")
}

func daysAgo(n int) time.Time {
	return entity.TruncateToDay(time.Now().UTC()).AddDate(0, 0, -n)
}

func TestLowIncomeCheckUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no data yields no_data status", func(t *testing.T) {
		uc := NewLowIncomeCheckUseCase(&stubLedgerRepo{}, &stubSettingsRepo{}, nil, time.Minute)
		out, err := uc.Execute(ctx, LowIncomeCheckInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Status != StatusNoData {
			t.Errorf("Status = %q, want %q", out.Status, StatusNoData)
		}
		if out.DataPoints != 0 {
			t.Errorf("DataPoints = %d, want 0", out.DataPoints)
		}
	})

	t.Run("warns when trailing average is below threshold", func(t *testing.T) {
		ledger := &stubLedgerRepo{cash: []entity.CashRecord{
			cashRec(daysAgo(2), 100, "tips", true),
			cashRec(daysAgo(1), 200, "tips", true),
		}}
		uc := NewLowIncomeCheckUseCase(ledger, &stubSettingsRepo{}, nil, time.Minute)

		out, err := uc.Execute(ctx, LowIncomeCheckInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Status != StatusLowIncomeWarning {
			t.Errorf("Status = %q, want %q", out.Status, StatusLowIncomeWarning)
		}
		if !out.AverageRecent.Equal(decimal.NewFromInt(150)) {
			t.Errorf("AverageRecent = %s, want 150", out.AverageRecent)
		}
		if out.DataPoints != 2 {
			t.Errorf("DataPoints = %d, want 2", out.DataPoints)
		}
	})

	t.Run("normal when average meets threshold", func(t *testing.T) {
		ledger := &stubLedgerRepo{cash: []entity.CashRecord{
			cashRec(daysAgo(1), 500, "invoice", true),
		}}
		uc := NewLowIncomeCheckUseCase(ledger, &stubSettingsRepo{}, nil, time.Minute)

		out, err := uc.Execute(ctx, LowIncomeCheckInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Status != StatusNormal {
			t.Errorf("Status = %q, want %q", out.Status, StatusNormal)
		}
	})

	t.Run("second call within TTL is served from cache", func(t *testing.T) {
		ledger := &stubLedgerRepo{cash: []entity.CashRecord{
			cashRec(daysAgo(1), 500, "invoice", true),
		}}
		uc := NewLowIncomeCheckUseCase(ledger, &stubSettingsRepo{}, newMemoryCache(), time.Minute)

		first, err := uc.Execute(ctx, LowIncomeCheckInput{UserID: userID})
		if err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}
		second, err := uc.Execute(ctx, LowIncomeCheckInput{UserID: userID})
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}
		if ledger.calls != 1 {
			t.Errorf("ledger fetches = %d, want 1", ledger.calls)
		}
		if first.Status != second.Status || !first.AverageRecent.Equal(second.AverageRecent) {
			t.Errorf("cached output differs: %+v vs %+v", first, second)
		}
	})

	t.Run("cache failure degrades to recomputation", func(t *testing.T) {
		ledger := &stubLedgerRepo{cash: []entity.CashRecord{
			cashRec(daysAgo(1), 500, "invoice", true),
		}}
		uc := NewLowIncomeCheckUseCase(ledger, &stubSettingsRepo{}, failingCache{}, time.Minute)

		out, err := uc.Execute(ctx, LowIncomeCheckInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Status != StatusNormal {
			t.Errorf("Status = %q, want %q", out.Status, StatusNormal)
		}
	})
}

func TestExpenseAnalysisUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects non-positive windows", func(t *testing.T) {
		uc := NewExpenseAnalysisUseCase(&stubLedgerRepo{}, nil, time.Minute)
		_, err := uc.Execute(ctx, ExpenseAnalysisInput{UserID: userID, Days: 0})
		if !errors.Is(err, domainerror.ErrInvalidDays) {
			t.Fatalf("error = %v, want ErrInvalidDays", err)
		}
		var coachErr *domainerror.CoachError
		if !errors.As(err, &coachErr) || coachErr.Code != domainerror.ErrCodeInvalidDays {
			t.Errorf("error = %v, want CoachError with code %s", err, domainerror.ErrCodeInvalidDays)
		}
	})

	t.Run("summarizes the trailing window", func(t *testing.T) {
		ledger := &stubLedgerRepo{
			incomes: []entity.IncomeRecord{income(daysAgo(5), 500)},
			cash: []entity.CashRecord{
				cashRec(daysAgo(4), 200, "side job", true),
				cashRec(daysAgo(3), 100, "groceries", false),
				cashRec(daysAgo(60), 9999, "old splurge", false), // outside window
			},
		}
		uc := NewExpenseAnalysisUseCase(ledger, nil, time.Minute)

		out, err := uc.Execute(ctx, ExpenseAnalysisInput{UserID: userID, Days: 30})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.TotalIncome.Equal(decimal.NewFromInt(700)) {
			t.Errorf("TotalIncome = %s, want 700", out.TotalIncome)
		}
		if !out.TotalExpenses.Equal(decimal.NewFromInt(100)) {
			t.Errorf("TotalExpenses = %s, want 100", out.TotalExpenses)
		}
		if out.ExpenseRatio == nil || !out.ExpenseRatio.Equal(decimal.NewFromFloat(0.14)) {
			t.Errorf("ExpenseRatio = %v, want 0.14", out.ExpenseRatio)
		}
		if len(out.TopExpenses) != 1 || out.TopExpenses[0].Description != "groceries" {
			t.Errorf("TopExpenses = %v, want groceries only", out.TopExpenses)
		}
	})

	t.Run("expense-only window has null ratio", func(t *testing.T) {
		ledger := &stubLedgerRepo{cash: []entity.CashRecord{
			cashRec(daysAgo(3), 100, "groceries", false),
		}}
		uc := NewExpenseAnalysisUseCase(ledger, nil, time.Minute)

		out, err := uc.Execute(ctx, ExpenseAnalysisInput{UserID: userID, Days: 30})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.ExpenseRatio != nil {
			t.Errorf("ExpenseRatio = %s, want nil", out.ExpenseRatio)
		}
	})
}

func TestWeeklyHeatmapUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects non-positive weeks", func(t *testing.T) {
		uc := NewWeeklyHeatmapUseCase(&stubLedgerRepo{}, nil, time.Minute)
		if _, err := uc.Execute(ctx, WeeklyHeatmapInput{UserID: userID, Weeks: -1}); !errors.Is(err, domainerror.ErrInvalidWeeks) {
			t.Fatalf("error = %v, want ErrInvalidWeeks", err)
		}
	})

	t.Run("buckets earnings by ISO weekday", func(t *testing.T) {
		// Pin two records to known weekdays within the window.
		var monday time.Time
		for d := 1; d <= 7; d++ {
			if daysAgo(d).Weekday() == time.Monday {
				monday = daysAgo(d)
				break
			}
		}
		ledger := &stubLedgerRepo{
			incomes: []entity.IncomeRecord{income(monday, 120)},
			cash:    []entity.CashRecord{cashRec(monday, 30, "tips", true)},
		}
		uc := NewWeeklyHeatmapUseCase(ledger, nil, time.Minute)

		out, err := uc.Execute(ctx, WeeklyHeatmapInput{UserID: userID, Weeks: DefaultHeatmapWeeks})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Weekdays) != 7 {
			t.Fatalf("got %d weekday buckets, want 7", len(out.Weekdays))
		}
		if !out.Weekdays["Mon"].Equal(decimal.NewFromInt(150)) {
			t.Errorf("Mon = %s, want 150", out.Weekdays["Mon"])
		}
		if !out.Weekdays["Tue"].IsZero() {
			t.Errorf("Tue = %s, want 0", out.Weekdays["Tue"])
		}
		if len(out.Raw) != 1 || !out.Raw[0].Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("Raw = %v, want one 150 point", out.Raw)
		}
	})

	t.Run("expenses never contribute to earnings", func(t *testing.T) {
		ledger := &stubLedgerRepo{cash: []entity.CashRecord{
			cashRec(daysAgo(1), 80, "groceries", false),
		}}
		uc := NewWeeklyHeatmapUseCase(ledger, nil, time.Minute)

		out, err := uc.Execute(ctx, WeeklyHeatmapInput{UserID: userID, Weeks: 1})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for label, amount := range out.Weekdays {
			if !amount.IsZero() {
				t.Errorf("%s = %s, want 0", label, amount)
			}
		}
	})
}

func TestDailyBreakdownUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty history yields empty breakdown", func(t *testing.T) {
		uc := NewDailyBreakdownUseCase(&stubLedgerRepo{})
		out, err := uc.Execute(ctx, DailyBreakdownInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Days) != 0 || !out.AverageNet.IsZero() {
			t.Errorf("got %+v, want empty breakdown", out)
		}
	})

	t.Run("rows are newest first with net average", func(t *testing.T) {
		ledger := &stubLedgerRepo{
			incomes: []entity.IncomeRecord{income(daysAgo(3), 100)},
			cash: []entity.CashRecord{
				cashRec(daysAgo(1), 300, "invoice", true),
				cashRec(daysAgo(1), 100, "groceries", false),
			},
		}
		uc := NewDailyBreakdownUseCase(ledger)

		out, err := uc.Execute(ctx, DailyBreakdownInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Days) != 2 {
			t.Fatalf("got %d rows, want 2", len(out.Days))
		}
		if out.Days[0].Date <= out.Days[1].Date {
			t.Errorf("rows not newest first: %s then %s", out.Days[0].Date, out.Days[1].Date)
		}
		if !out.Days[0].NetTotal.Equal(decimal.NewFromInt(200)) {
			t.Errorf("newest NetTotal = %s, want 200", out.Days[0].NetTotal)
		}
		if !out.AverageNet.Equal(decimal.NewFromInt(150)) {
			t.Errorf("AverageNet = %s, want 150", out.AverageNet)
		}
	})
}

func TestEmergencyBufferUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects non-positive months", func(t *testing.T) {
		uc := NewEmergencyBufferUseCase(&stubLedgerRepo{})
		if _, err := uc.Execute(ctx, EmergencyBufferInput{UserID: userID, Months: 0}); !errors.Is(err, domainerror.ErrInvalidMonths) {
			t.Fatalf("error = %v, want ErrInvalidMonths", err)
		}
	})

	t.Run("recommends avg monthly expense times months", func(t *testing.T) {
		ledger := &stubLedgerRepo{cash: []entity.CashRecord{
			cashRec(daysAgo(10), 300, "rent", false),
			cashRec(daysAgo(40), 300, "rent", false),
			cashRec(daysAgo(70), 300, "rent", false),
			cashRec(daysAgo(20), 150, "invoice", true), // income, ignored
		}}
		uc := NewEmergencyBufferUseCase(ledger)

		out, err := uc.Execute(ctx, EmergencyBufferInput{UserID: userID, Months: DefaultBufferMonths})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.AvgMonthlyExpense.Equal(decimal.NewFromInt(300)) {
			t.Errorf("AvgMonthlyExpense = %s, want 300", out.AvgMonthlyExpense)
		}
		if !out.RecommendedBuffer.Equal(decimal.NewFromInt(900)) {
			t.Errorf("RecommendedBuffer = %s, want 900", out.RecommendedBuffer)
		}
	})
}
