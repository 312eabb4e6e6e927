package advisor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

type fakeUserDirectory struct {
	ids []uuid.UUID
	err error
}

func (f *fakeUserDirectory) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	return f.ids, f.err
}

type fakeLedgerRepo struct {
	incomes map[uuid.UUID][]entity.IncomeRecord
	cash    map[uuid.UUID][]entity.CashRecord
	errFor  map[uuid.UUID]error
}

func (f *fakeLedgerRepo) FetchRecords(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.IncomeRecord, []entity.CashRecord, error) {
	if err := f.errFor[userID]; err != nil {
		return nil, nil, err
	}
	var incomes []entity.IncomeRecord
	for _, r := range f.incomes[userID] {
		if !r.Date.Before(since) && !r.Date.After(until) {
			incomes = append(incomes, r)
		}
	}
	var cash []entity.CashRecord
	for _, r := range f.cash[userID] {
		if !r.Date.Before(since) && !r.Date.After(until) {
			cash = append(cash, r)
		}
	}
	return incomes, cash, nil
}

func (f *fakeLedgerRepo) CreateIncome(ctx context.Context, record *entity.IncomeRecord) error {
	f.incomes[record.UserID] = append(f.incomes[record.UserID], *record)
	return nil
}

func (f *fakeLedgerRepo) CreateCash(ctx context.Context, record *entity.CashRecord) error {
	f.cash[record.UserID] = append(f.cash[record.UserID], *record)
	return nil
}

func (f *fakeLedgerRepo) ListIncomes(ctx context.Context, userID uuid.UUID, limit int) ([]entity.IncomeRecord, error) {
	return f.incomes[userID], nil
}

func (f *fakeLedgerRepo) ListCash(ctx context.Context, userID uuid.UUID, limit int) ([]entity.CashRecord, error) {
	return f.cash[userID], nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[uuid.UUID]*entity.CoachingSettings
}

func (f *fakeSettingsRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.CoachingSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.settings[userID]; ok {
		return s, nil
	}
	s := entity.NewCoachingSettings(userID)
	f.settings[userID] = s
	return s, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, settings *entity.CoachingSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[settings.UserID] = settings
	return nil
}

// fakeAdviceRepo mimics the cooldown semantics of the real repository in
// memory, guarded by a mutex since the runner calls it concurrently.
type fakeAdviceRepo struct {
	mu    sync.Mutex
	cards []entity.AdviceCard
}

func (f *fakeAdviceRepo) CreateWithCooldown(ctx context.Context, card *entity.AdviceCard, cooldownDays int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cutoff := time.Now().UTC().AddDate(0, 0, -cooldownDays)
	for _, existing := range f.cards {
		if existing.UserID == card.UserID && existing.Tag == card.Tag && existing.CreatedAt.After(cutoff) {
			return false, nil
		}
	}
	f.cards = append(f.cards, *card)
	return true, nil
}

func (f *fakeAdviceRepo) FindRecent(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]entity.AdviceCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.AdviceCard
	for _, c := range f.cards {
		if c.UserID == userID && (!unreadOnly || !c.Read) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeAdviceRepo) MarkRead(ctx context.Context, userID, cardID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cards {
		if f.cards[i].UserID == userID && f.cards[i].ID == cardID {
			f.cards[i].Read = true
			return nil
		}
	}
	return errors.New("card not found")
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		incomes: make(map[uuid.UUID][]entity.IncomeRecord),
		cash:    make(map[uuid.UUID][]entity.CashRecord),
		errFor:  make(map[uuid.UUID]error),
	}
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.CoachingSettings)}
}

func addCash(repo *fakeLedgerRepo, userID uuid.UUID, date time.Time, amount float64, desc string, isIncome bool) {
	repo.cash[userID] = append(repo.cash[userID],
		*entity.NewCashRecord(userID, date, decimal.NewFromFloat(amount), desc, isIncome))
}

func TestRunAgentUseCase(t *testing.T) {
	ctx := context.Background()
	today := entity.TruncateToDay(time.Now().UTC())

	t.Run("creates cards for users matching the rules", func(t *testing.T) {
		lowUser := uuid.New()
		quietUser := uuid.New()

		ledger := newFakeLedgerRepo()
		// lowUser: sparse low earnings, well under the default 300 threshold.
		addCash(ledger, lowUser, today.AddDate(0, 0, -2), 50, "tips", true)
		addCash(ledger, lowUser, today.AddDate(0, 0, -1), 40, "tips", true)
		// quietUser: healthy income, modest spend.
		addCash(ledger, quietUser, today.AddDate(0, 0, -1), 1000, "salary", true)
		addCash(ledger, quietUser, today.AddDate(0, 0, -1), 100, "groceries", false)

		advice := &fakeAdviceRepo{}
		uc := NewRunAgentUseCase(&fakeUserDirectory{ids: []uuid.UUID{lowUser, quietUser}},
			ledger, newFakeSettingsRepo(), advice, 2)

		report, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if report.Processed != 2 {
			t.Errorf("Processed = %d, want 2", report.Processed)
		}
		if report.CardsCreated != 1 {
			t.Errorf("CardsCreated = %d, want 1", report.CardsCreated)
		}
		if len(report.Failures) != 0 {
			t.Errorf("Failures = %v, want none", report.Failures)
		}

		cards, _ := advice.FindRecent(ctx, lowUser, false, 10)
		if len(cards) != 1 || cards[0].Tag != entity.AdviceTagLowIncome {
			t.Fatalf("lowUser cards = %v, want one low_income card", cards)
		}
		cards, _ = advice.FindRecent(ctx, quietUser, false, 10)
		if len(cards) != 0 {
			t.Errorf("quietUser cards = %v, want none", cards)
		}
	})

	t.Run("second run within cooldown creates nothing", func(t *testing.T) {
		lowUser := uuid.New()
		ledger := newFakeLedgerRepo()
		addCash(ledger, lowUser, today.AddDate(0, 0, -1), 40, "tips", true)

		advice := &fakeAdviceRepo{}
		uc := NewRunAgentUseCase(&fakeUserDirectory{ids: []uuid.UUID{lowUser}},
			ledger, newFakeSettingsRepo(), advice, 1)

		first, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}
		if first.CardsCreated != 1 {
			t.Fatalf("first run CardsCreated = %d, want 1", first.CardsCreated)
		}

		second, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}
		if second.CardsCreated != 0 {
			t.Errorf("second run CardsCreated = %d, want 0", second.CardsCreated)
		}
		cards, _ := advice.FindRecent(ctx, lowUser, false, 10)
		if len(cards) != 1 {
			t.Errorf("stored cards = %d, want 1 after both runs", len(cards))
		}
	})

	t.Run("one failing user does not abort the batch", func(t *testing.T) {
		badUser := uuid.New()
		lowUser := uuid.New()

		ledger := newFakeLedgerRepo()
		ledger.errFor[badUser] = errors.New("connection reset")
		addCash(ledger, lowUser, today.AddDate(0, 0, -1), 40, "tips", true)

		advice := &fakeAdviceRepo{}
		uc := NewRunAgentUseCase(&fakeUserDirectory{ids: []uuid.UUID{badUser, lowUser}},
			ledger, newFakeSettingsRepo(), advice, 2)

		report, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if report.Processed != 2 {
			t.Errorf("Processed = %d, want 2", report.Processed)
		}
		if len(report.Failures) != 1 || report.Failures[0].UserID != badUser {
			t.Fatalf("Failures = %v, want exactly one for the failing user", report.Failures)
		}
		if report.CardsCreated != 1 {
			t.Errorf("CardsCreated = %d, want 1 despite the failure", report.CardsCreated)
		}
	})

	t.Run("disabled notifications skip evaluation", func(t *testing.T) {
		mutedUser := uuid.New()
		ledger := newFakeLedgerRepo()
		addCash(ledger, mutedUser, today.AddDate(0, 0, -1), 40, "tips", true)

		settingsRepo := newFakeSettingsRepo()
		muted := entity.NewCoachingSettings(mutedUser)
		muted.NotificationsEnabled = false
		settingsRepo.settings[mutedUser] = muted

		advice := &fakeAdviceRepo{}
		uc := NewRunAgentUseCase(&fakeUserDirectory{ids: []uuid.UUID{mutedUser}},
			ledger, settingsRepo, advice, 1)

		report, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if report.CardsCreated != 0 {
			t.Errorf("CardsCreated = %d, want 0 for muted user", report.CardsCreated)
		}
	})

	t.Run("user listing failure aborts the run", func(t *testing.T) {
		uc := NewRunAgentUseCase(&fakeUserDirectory{err: errors.New("db down")},
			newFakeLedgerRepo(), newFakeSettingsRepo(), &fakeAdviceRepo{}, 1)
		if _, err := uc.Execute(ctx); err == nil {
			t.Fatal("expected an error when the user list cannot be loaded")
		}
	})
}
