// Package coach contains the aggregation and coaching query use cases.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
)

// Low income check statuses.
const (
	StatusNoData           = "no_data"
	StatusLowIncomeWarning = "low_income_warning"
	StatusNormal           = "normal"
)

// LowIncomeCheckInput represents the input for the low income check.
type LowIncomeCheckInput struct {
	UserID uuid.UUID
}

// LowIncomeCheckOutput represents the result of the low income check.
// With no history at all the status is "no_data" and the remaining fields are
// zero; absence of data is never an error.
type LowIncomeCheckOutput struct {
	Status        string          `json:"status"`
	AverageRecent decimal.Decimal `json:"average_recent"`
	Threshold     decimal.Decimal `json:"threshold"`
	DataPoints    int             `json:"data_points"`
}

// LowIncomeCheckUseCase evaluates whether the user's recent net income trend
// is below their configured threshold.
type LowIncomeCheckUseCase struct {
	ledgerRepo   adapter.LedgerRepository
	settingsRepo adapter.SettingsRepository
	cache        adapter.ReadCache
	cacheTTL     time.Duration
}

// NewLowIncomeCheckUseCase creates a new LowIncomeCheckUseCase instance.
func NewLowIncomeCheckUseCase(
	ledgerRepo adapter.LedgerRepository,
	settingsRepo adapter.SettingsRepository,
	cache adapter.ReadCache,
	cacheTTL time.Duration,
) *LowIncomeCheckUseCase {
	return &LowIncomeCheckUseCase{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// Execute runs the low income check, serving a cached result when one is
// fresh enough.
func (uc *LowIncomeCheckUseCase) Execute(ctx context.Context, input LowIncomeCheckInput) (*LowIncomeCheckOutput, error) {
	key := lowIncomeCacheKey(input.UserID)
	if out, ok := cacheLookup[LowIncomeCheckOutput](ctx, uc.cache, key); ok {
		return out, nil
	}

	settings, err := uc.settingsRepo.GetOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load coaching settings: %w", err)
	}

	incomes, cash, err := uc.ledgerRepo.FetchRecords(ctx, input.UserID, time.Time{}, entity.TruncateToDay(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	series := SortedDaily(ComputeDaily(incomes, cash))
	if len(series) == 0 {
		out := &LowIncomeCheckOutput{Status: StatusNoData}
		cacheStore(ctx, uc.cache, key, out, uc.cacheTTL)
		return out, nil
	}

	avg, points := TrailingNetAverage(series, LowIncomeWindowDays)

	status := StatusNormal
	if avg.LessThan(settings.LowIncomeThreshold) {
		status = StatusLowIncomeWarning
	}

	out := &LowIncomeCheckOutput{
		Status:        status,
		AverageRecent: avg.Round(2),
		Threshold:     settings.LowIncomeThreshold,
		DataPoints:    points,
	}
	cacheStore(ctx, uc.cache, key, out, uc.cacheTTL)
	return out, nil
}

// cacheLookup deserializes a cached output value. Cache faults are logged and
// treated as misses; a stale or racing value is acceptable because cached
// values are recomputable projections.
func cacheLookup[T any](ctx context.Context, cache adapter.ReadCache, key string) (*T, bool) {
	if cache == nil {
		return nil, false
	}
	data, ok, err := cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Read cache lookup failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("Read cache entry malformed", "key", key, "error", err)
		return nil, false
	}
	return &out, true
}

// cacheStore serializes and stores an output value, logging failures instead
// of surfacing them.
func cacheStore[T any](ctx context.Context, cache adapter.ReadCache, key string, value *T, ttl time.Duration) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Read cache marshal failed", "key", key, "error", err)
		return
	}
	if err := cache.Set(ctx, key, data, ttl); err != nil {
		slog.Warn("Read cache store failed", "key", key, "error", err)
	}
}
