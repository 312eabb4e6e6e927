package steps

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
	"github.com/finance-coach/backend/internal/integration/persistence"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

// registerCoachSteps registers seeding and agent steps.
func registerCoachSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)"$`, aRegisteredUser)
	ctx.Step(`^the user has income records:$`, theUserHasIncomeRecords)
	ctx.Step(`^the user has cash records:$`, theUserHasCashRecords)
	ctx.Step(`^the user's low income threshold is "([^"]*)"$`, theUsersLowIncomeThresholdIs)
	ctx.Step(`^the user's high expense ratio is "([^"]*)"$`, theUsersHighExpenseRatioIs)
	ctx.Step(`^the user's notifications are disabled$`, theUsersNotificationsAreDisabled)
	ctx.Step(`^the coach agent runs$`, theCoachAgentRuns)
	ctx.Step(`^the agent run created (\d+) advice cards?$`, theAgentRunCreatedAdviceCards)
	ctx.Step(`^I mark the first advice card as read$`, iMarkTheFirstAdviceCardAsRead)
}

// tableRows converts a godog table with a header row into field maps.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}
	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != len(header) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(row.Cells), len(header))
		}
		fields := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			fields[header[i]] = cell.Value
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

// rowDate converts the days_ago column into a concrete UTC day. Seed data is
// expressed relative to today because the rules window off the wall clock.
func rowDate(fields map[string]string) (time.Time, error) {
	daysAgo, err := strconv.Atoi(fields["days_ago"])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid days_ago '%s': %w", fields["days_ago"], err)
	}
	return entity.TruncateToDay(time.Now().UTC()).AddDate(0, 0, -daysAgo), nil
}

func rowAmount(fields map[string]string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(fields["amount"])
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount '%s': %w", fields["amount"], err)
	}
	return amount, nil
}

func aRegisteredUser(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	user := entity.NewUser(email, "Test User")
	if err := tc.db.WithContext(ctx).Create(model.UserFromEntity(user)).Error; err != nil {
		return ctx, fmt.Errorf("failed to create user: %w", err)
	}
	tc.userID = user.ID

	settingsRepo := persistence.NewSettingsRepository(tc.db)
	if _, err := settingsRepo.GetOrCreate(ctx, user.ID); err != nil {
		return ctx, fmt.Errorf("failed to create settings: %w", err)
	}

	token, err := tc.issueToken(ctx, user.ID, email)
	if err != nil {
		return ctx, fmt.Errorf("failed to issue token: %w", err)
	}
	tc.accessToken = token

	return SetTestContext(ctx, tc), nil
}

func theUserHasIncomeRecords(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return ctx, err
	}

	ledgerRepo := persistence.NewLedgerRepository(tc.db)
	for _, fields := range rows {
		date, err := rowDate(fields)
		if err != nil {
			return ctx, err
		}
		amount, err := rowAmount(fields)
		if err != nil {
			return ctx, err
		}
		category := entity.IncomeCategory(fields["category"])
		if category == "" {
			category = entity.IncomeCategoryBusiness
		}

		income := entity.NewIncomeRecord(tc.userID, date, amount, category)
		if err := ledgerRepo.CreateIncome(ctx, income); err != nil {
			return ctx, fmt.Errorf("failed to create income record: %w", err)
		}
	}
	return ctx, nil
}

func theUserHasCashRecords(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return ctx, err
	}

	ledgerRepo := persistence.NewLedgerRepository(tc.db)
	for _, fields := range rows {
		date, err := rowDate(fields)
		if err != nil {
			return ctx, err
		}
		amount, err := rowAmount(fields)
		if err != nil {
			return ctx, err
		}
		isIncome := fields["type"] == "income"

		rec := entity.NewCashRecord(tc.userID, date, amount, fields["description"], isIncome)
		if err := ledgerRepo.CreateCash(ctx, rec); err != nil {
			return ctx, fmt.Errorf("failed to create cash record: %w", err)
		}
	}
	return ctx, nil
}

func (tc *TestContext) updateSettings(ctx context.Context, mutate func(*entity.CoachingSettings)) error {
	settingsRepo := persistence.NewSettingsRepository(tc.db)
	settings, err := settingsRepo.GetOrCreate(ctx, tc.userID)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	mutate(settings)
	if err := settingsRepo.Update(ctx, settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

func theUsersLowIncomeThresholdIs(ctx context.Context, raw string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	threshold, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid threshold '%s': %w", raw, err)
	}
	return tc.updateSettings(ctx, func(s *entity.CoachingSettings) {
		s.LowIncomeThreshold = threshold
	})
}

func theUsersHighExpenseRatioIs(ctx context.Context, raw string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	ratio, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid ratio '%s': %w", raw, err)
	}
	return tc.updateSettings(ctx, func(s *entity.CoachingSettings) {
		s.HighExpenseRatio = ratio
	})
}

func theUsersNotificationsAreDisabled(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.updateSettings(ctx, func(s *entity.CoachingSettings) {
		s.NotificationsEnabled = false
	})
}

func theCoachAgentRuns(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	report, err := tc.runAgent.Execute(ctx)
	if err != nil {
		return ctx, fmt.Errorf("agent run failed: %w", err)
	}
	tc.lastAgentReport = report
	return SetTestContext(ctx, tc), nil
}

func iMarkTheFirstAdviceCardAsRead(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	cardID, err := tc.resolveField("cards.0.id")
	if err != nil {
		return ctx, fmt.Errorf("no advice card in the last response: %w", err)
	}
	id, ok := cardID.(string)
	if !ok {
		return ctx, fmt.Errorf("card id is not a string: %v", cardID)
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/advice/"+id+"/read", nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func theAgentRunCreatedAdviceCards(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.lastAgentReport == nil {
		return fmt.Errorf("the agent has not run yet")
	}
	if tc.lastAgentReport.CardsCreated != expected {
		return fmt.Errorf("expected %d cards created, got %d (failures: %v)",
			expected, tc.lastAgentReport.CardsCreated, tc.lastAgentReport.Failures)
	}
	return nil
}
