package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// Options configures the dashboard and analytics use cases.
type Options struct {
	LookbackMonths  int
	DefaultCurrency string
}

func (o Options) withDefaults() Options {
	if o.LookbackMonths <= 0 {
		o.LookbackMonths = DefaultLookbackMonths
	}
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = valueobject.DefaultCurrency
	}
	return o
}

// GetDashboardInput represents the input for getting the dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
	Date   time.Time // Reference day, defaults to today
}

// GetDashboardOutput represents the derived dashboard metrics of a user.
type GetDashboardOutput struct {
	Date                  time.Time
	Currency              string
	Patrimony             PatrimonySummary
	MonthlyCapacity       decimal.Decimal
	PreviousMonthCapacity decimal.Decimal
	CapacityChange        float64 // Percent change against the previous month, one decimal
	ActiveGoals           int
	Coverage              CoverageReport
	Alerts                []Alert
	Goals                 []GoalProjection
}

// GetDashboardUseCase computes the dashboard of a user.
type GetDashboardUseCase struct {
	entryRepo adapter.EntryRepository
	goalRepo  adapter.GoalRepository
	assetRepo adapter.AssetRepository
	userRepo  adapter.UserRepository
	opts      Options
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	entryRepo adapter.EntryRepository,
	goalRepo adapter.GoalRepository,
	assetRepo adapter.AssetRepository,
	userRepo adapter.UserRepository,
	opts Options,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		entryRepo: entryRepo,
		goalRepo:  goalRepo,
		assetRepo: assetRepo,
		userRepo:  userRepo,
		opts:      opts.withDefaults(),
	}
}

// Execute loads the user's records and aggregates them.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	now := input.Date
	if now.IsZero() {
		now = time.Now().UTC()
	}
	now = valueobject.Day(now)

	currency, err := uc.currency(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	previousMonth := valueobject.MonthStart(now).AddDate(0, -1, 0)
	since := now.AddDate(0, -uc.opts.LookbackMonths, 0)
	if previousMonth.Before(since) {
		since = previousMonth
	}

	entries, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{
		UserID:    input.UserID,
		StartDate: &since,
	})
	if err != nil {
		return nil, internalError("failed to load entries", err)
	}
	goals, err := uc.goalRepo.ListByUser(ctx, input.UserID, adapter.GoalFilter{})
	if err != nil {
		return nil, internalError("failed to load goals", err)
	}
	assets, err := uc.assetRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, internalError("failed to load assets", err)
	}

	if err := errors.Join(ValidateEntries(entries), ValidateGoals(goals), ValidateAssets(assets)); err != nil {
		return nil, err
	}

	return BuildDashboard(entries, goals, assets, now, uc.opts.LookbackMonths, currency), nil
}

// BuildDashboard aggregates already loaded records into dashboard metrics.
func BuildDashboard(
	entries []*entity.Entry,
	goals []*entity.Goal,
	assets []*entity.Asset,
	now time.Time,
	lookbackMonths int,
	currency string,
) *GetDashboardOutput {
	capacity := MonthlyCapacity(entries, now)
	previous := MonthlyCapacity(entries, valueobject.MonthStart(now).AddDate(0, -1, 0))
	coverage := EmergencyFundCoverage(entries, goals, now, lookbackMonths)

	activeGoals := 0
	for _, g := range goals {
		if g.IsActive() {
			activeGoals++
		}
	}

	return &GetDashboardOutput{
		Date:                  now,
		Currency:              currency,
		Patrimony:             SummarizePatrimony(assets),
		MonthlyCapacity:       capacity,
		PreviousMonthCapacity: previous,
		CapacityChange:        CapacityChange(capacity, previous),
		ActiveGoals:           activeGoals,
		Coverage:              coverage,
		Alerts:                GenerateAlerts(coverage, capacity, assets, currency),
		Goals:                 ProjectGoals(goals, capacity),
	}
}

// CapacityChange returns the percent change from previous to current relative
// to |previous|, rounded to one decimal. It is zero when previous is zero.
func CapacityChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return percentage(current.Sub(previous), previous.Abs())
}

func (uc *GetDashboardUseCase) currency(ctx context.Context, userID uuid.UUID) (string, error) {
	if uc.userRepo == nil {
		return uc.opts.DefaultCurrency, nil
	}
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return "", domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", err)
		}
		return "", internalError("failed to load user", err)
	}
	if user.Currency == "" {
		return uc.opts.DefaultCurrency, nil
	}
	return user.Currency, nil
}

func internalError(message string, err error) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeDashboardInternalError,
		message,
		fmt.Errorf("%s: %w", message, err),
	)
}
