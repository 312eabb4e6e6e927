// Package coach contains the aggregation and coaching query use cases.
package coach

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// DefaultHeatmapWeeks is the default trailing week count for the heatmap.
const DefaultHeatmapWeeks = 4

// weekdayLabels maps ISO weekday indexes (Monday=0 .. Sunday=6) to labels.
var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklyHeatmapInput represents the input for the weekday earnings heatmap.
type WeeklyHeatmapInput struct {
	UserID uuid.UUID
	Weeks  int
}

// HeatmapPoint is one raw per-day earnings data point.
type HeatmapPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// WeeklyHeatmapOutput buckets earnings by ISO weekday over the trailing weeks.
type WeeklyHeatmapOutput struct {
	Weeks    int                        `json:"weeks"`
	Weekdays map[string]decimal.Decimal `json:"weekdays"`
	Raw      []HeatmapPoint             `json:"raw"`
}

// WeeklyHeatmapUseCase handles the weekday-bucketed earnings heatmap query.
type WeeklyHeatmapUseCase struct {
	ledgerRepo adapter.LedgerRepository
	cache      adapter.ReadCache
	cacheTTL   time.Duration
}

// NewWeeklyHeatmapUseCase creates a new WeeklyHeatmapUseCase instance.
func NewWeeklyHeatmapUseCase(ledgerRepo adapter.LedgerRepository, cache adapter.ReadCache, cacheTTL time.Duration) *WeeklyHeatmapUseCase {
	return &WeeklyHeatmapUseCase{
		ledgerRepo: ledgerRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Execute aggregates daily earnings (recurring income plus cash income) into
// weekday buckets labeled "Mon".."Sun".
func (uc *WeeklyHeatmapUseCase) Execute(ctx context.Context, input WeeklyHeatmapInput) (*WeeklyHeatmapOutput, error) {
	if input.Weeks <= 0 {
		return nil, domainerror.NewCoachError(
			domainerror.ErrCodeInvalidWeeks,
			"weeks must be a positive integer",
			domainerror.ErrInvalidWeeks,
		)
	}

	key := heatmapCacheKey(input.UserID, input.Weeks)
	if out, ok := cacheLookup[WeeklyHeatmapOutput](ctx, uc.cache, key); ok {
		return out, nil
	}

	until := entity.TruncateToDay(time.Now())
	since := until.AddDate(0, 0, -7*input.Weeks)

	incomes, cash, err := uc.ledgerRepo.FetchRecords(ctx, input.UserID, since, until)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	buckets := [7]decimal.Decimal{}
	series := SortedDaily(ComputeDaily(incomes, cash))
	raw := make([]HeatmapPoint, 0, len(series))
	for _, agg := range series {
		earnings := agg.Earnings()
		buckets[isoWeekday(agg.Date)] = buckets[isoWeekday(agg.Date)].Add(earnings)
		raw = append(raw, HeatmapPoint{
			Date:   agg.Date.Format(entity.DateKeyLayout),
			Amount: earnings,
		})
	}

	weekdays := make(map[string]decimal.Decimal, len(weekdayLabels))
	for i, label := range weekdayLabels {
		weekdays[label] = buckets[i].Round(2)
	}

	out := &WeeklyHeatmapOutput{
		Weeks:    input.Weeks,
		Weekdays: weekdays,
		Raw:      raw,
	}
	cacheStore(ctx, uc.cache, key, out, uc.cacheTTL)
	return out, nil
}

// isoWeekday converts Go's Sunday-first weekday to ISO Monday=0..Sunday=6.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
