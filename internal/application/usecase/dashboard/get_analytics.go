package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

const (
	minYear = 1900
	maxYear = 9999
)

// YearTotals holds the totals of a whole year.
type YearTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Margin  decimal.Decimal
}

// GetAnalyticsInput represents the input for the yearly analytics report.
type GetAnalyticsInput struct {
	UserID uuid.UUID
	Year   int
}

// GetAnalyticsOutput represents the yearly analytics report.
type GetAnalyticsOutput struct {
	Year             int
	Totals           YearTotals
	Months           []MonthSummary
	Quarters         []QuarterSummary
	IncomeBreakdown  []CategoryShare
	ExpenseBreakdown []CategoryShare
}

// GetAnalyticsUseCase builds the yearly analytics report of a user.
type GetAnalyticsUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(entryRepo adapter.EntryRepository) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		entryRepo: entryRepo,
	}
}

// Execute loads the entries of the requested year and aggregates them.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	if input.Year < minYear || input.Year > maxYear {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidYear,
			"year must be between 1900 and 9999",
			domainerror.ErrInvalidYear,
		)
	}

	start := time.Date(input.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(input.Year, time.December, 31, 0, 0, 0, 0, time.UTC)

	entries, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, internalError("failed to load entries", err)
	}
	if err := ValidateEntries(entries); err != nil {
		return nil, err
	}

	return BuildAnalytics(entries, input.Year), nil
}

// BuildAnalytics aggregates already loaded entries into the yearly report.
func BuildAnalytics(entries []*entity.Entry, year int) *GetAnalyticsOutput {
	months := MonthlySummary(entries, year)

	totals := YearTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, m := range months {
		totals.Income = totals.Income.Add(m.Income)
		totals.Expense = totals.Expense.Add(m.Expense)
	}
	totals.Net = totals.Income.Sub(totals.Expense)
	totals.Margin = ratio(totals.Net, totals.Income)

	inYear := make([]*entity.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date.Year() == year {
			inYear = append(inYear, e)
		}
	}

	return &GetAnalyticsOutput{
		Year:             year,
		Totals:           totals,
		Months:           months,
		Quarters:         QuarterlySummary(months),
		IncomeBreakdown:  CategoryBreakdown(inYear, entity.EntryKindIncome),
		ExpenseBreakdown: CategoryBreakdown(inYear, entity.EntryKindExpense),
	}
}
