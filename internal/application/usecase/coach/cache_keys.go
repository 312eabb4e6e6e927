// Package coach contains the aggregation and coaching query use cases.
package coach

import (
	"fmt"

	"github.com/google/uuid"
)

// Cache keys are composed from the query shape and its parameters so that,
// for example, a low-income check and an expense analysis over the same
// window never collide.

func lowIncomeCacheKey(userID uuid.UUID) string {
	return "coach:low_income:" + userID.String()
}

func expenseAnalysisCacheKey(userID uuid.UUID, days int) string {
	return fmt.Sprintf("coach:expense_analysis:%s:%d", userID, days)
}

func heatmapCacheKey(userID uuid.UUID, weeks int) string {
	return fmt.Sprintf("coach:heatmap:%s:%d", userID, weeks)
}
