package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/application/usecase/coach"
	"github.com/finance-coach/backend/internal/domain/entity"
)

// UserFailure records a user whose evaluation failed during a run.
type UserFailure struct {
	UserID uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

// RunReport summarizes one agent run across all users.
type RunReport struct {
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
	Processed    int           `json:"processed"`
	CardsCreated int           `json:"cards_created"`
	Failures     []UserFailure `json:"failures,omitempty"`
}

// RunAgentUseCase evaluates the advisory rules for every known user and
// persists the resulting cards. A failure for one user is recorded in the
// report and never aborts the rest of the batch.
type RunAgentUseCase struct {
	userDirectory adapter.UserDirectory
	ledgerRepo    adapter.LedgerRepository
	settingsRepo  adapter.SettingsRepository
	adviceRepo    adapter.AdviceCardRepository
	concurrency   int
}

func NewRunAgentUseCase(
	userDirectory adapter.UserDirectory,
	ledgerRepo adapter.LedgerRepository,
	settingsRepo adapter.SettingsRepository,
	adviceRepo adapter.AdviceCardRepository,
	concurrency int,
) *RunAgentUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RunAgentUseCase{
		userDirectory: userDirectory,
		ledgerRepo:    ledgerRepo,
		settingsRepo:  settingsRepo,
		adviceRepo:    adviceRepo,
		concurrency:   concurrency,
	}
}

// Execute runs the rules for all users with bounded parallelism. It returns
// an error only when the user list itself cannot be loaded.
func (uc *RunAgentUseCase) Execute(ctx context.Context) (*RunReport, error) {
	started := time.Now().UTC()

	userIDs, err := uc.userDirectory.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	report := &RunReport{StartedAt: started}
	var mu sync.Mutex

	group := errgroup.Group{}
	group.SetLimit(uc.concurrency)

	for _, userID := range userIDs {
		userID := userID
		group.Go(func() error {
			created, userErr := uc.evaluateUser(ctx, userID)

			mu.Lock()
			defer mu.Unlock()
			report.Processed++
			report.CardsCreated += created
			if userErr != nil {
				slog.Error("agent run failed for user", "user_id", userID, "error", userErr)
				report.Failures = append(report.Failures, UserFailure{UserID: userID, Reason: userErr.Error()})
			}
			return nil
		})
	}
	_ = group.Wait()

	report.Duration = time.Since(started)
	slog.Info("agent run finished",
		"processed", report.Processed,
		"cards_created", report.CardsCreated,
		"failures", len(report.Failures),
		"duration", report.Duration,
	)
	return report, nil
}

func (uc *RunAgentUseCase) evaluateUser(ctx context.Context, userID uuid.UUID) (int, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("loading settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return 0, nil
	}

	today := entity.TruncateToDay(time.Now().UTC())
	incomes, cash, err := uc.ledgerRepo.FetchRecords(ctx, userID, time.Time{}, today)
	if err != nil {
		return 0, fmt.Errorf("fetching records: %w", err)
	}
	series := coach.SortedDaily(coach.ComputeDaily(incomes, cash))

	windowStart := today.AddDate(0, 0, -coach.ExpenseWindowDays)
	windowIncomes, windowCash, err := uc.ledgerRepo.FetchRecords(ctx, userID, windowStart, today)
	if err != nil {
		return 0, fmt.Errorf("fetching window records: %w", err)
	}
	window := coach.ComputeWindow(windowIncomes, windowCash, windowStart, today)

	candidates := []*RuleResult{
		EvaluateLowIncome(userID, series, settings),
		EvaluateHighExpense(userID, window, settings),
	}

	created := 0
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		inserted, err := uc.adviceRepo.CreateWithCooldown(ctx, candidate.Card, candidate.CooldownDays)
		if err != nil {
			return created, fmt.Errorf("persisting %s card: %w", candidate.Card.Tag, err)
		}
		if inserted {
			created++
		}
	}
	return created, nil
}
