package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// AlertSeverity represents how urgent an alert is.
type AlertSeverity string

const (
	AlertSeverityWarning AlertSeverity = "warning"
	AlertSeverityInfo    AlertSeverity = "info"
)

// AlertCode identifies the rule that produced an alert.
type AlertCode string

const (
	AlertCodeLowReserve       AlertCode = "low_emergency_reserve"
	AlertCodeIdlePatrimony    AlertCode = "idle_patrimony"
	AlertCodeNegativeCapacity AlertCode = "negative_capacity"
)

const (
	// minReserveMonths is the coverage below which the reserve alert fires.
	minReserveMonths = 3
	// idleExpenseMultiple is how many months of expenses idle assets may hold before the opportunity alert fires.
	idleExpenseMultiple = 12
)

// passiveIncomeRate is the assumed monthly return on reinvested idle assets (1% a month).
var passiveIncomeRate = decimal.RequireFromString("0.01")

// Alert is an advisory message derived from the user's finances.
type Alert struct {
	Severity AlertSeverity
	Code     AlertCode
	Title    string
	Message  string
}

// GenerateAlerts evaluates the advisory rules in a fixed order: low emergency
// reserve, idle patrimony, negative monthly capacity. Every matching rule emits
// an alert. Amounts are formatted in currency.
func GenerateAlerts(coverage CoverageReport, capacity decimal.Decimal, assets []*entity.Asset, currency string) []Alert {
	alerts := make([]Alert, 0, 3)
	money := func(d decimal.Decimal) string {
		return valueobject.FormatMoney(d, currency)
	}

	if coverage.Months.LessThan(decimal.NewFromInt(minReserveMonths)) {
		title := fmt.Sprintf("ATTENTION: your reserve covers only %s months!", coverage.Months.StringFixed(1))
		if coverage.Months.IsZero() {
			title = "CRITICAL: you have no emergency reserve!"
		}
		alerts = append(alerts, Alert{
			Severity: AlertSeverityWarning,
			Code:     AlertCodeLowReserve,
			Title:    title,
			Message: fmt.Sprintf(
				"Recommendation: prioritize %s before other goals. That covers %d months of expenses (%s/month).",
				money(coverage.RequiredReserve),
				ReserveTargetMonths,
				money(coverage.AverageMonthlyExpense),
			),
		})
	}

	idle := UnproductiveValue(assets)
	if idle.GreaterThan(coverage.AverageMonthlyExpense.Mul(decimal.NewFromInt(idleExpenseMultiple))) {
		potential := idle.Mul(passiveIncomeRate)
		uplift := "significantly"
		if capacity.IsPositive() {
			uplift = "by " + potential.Mul(hundred).Div(capacity).StringFixed(0) + "%"
		}
		alerts = append(alerts, Alert{
			Severity: AlertSeverityInfo,
			Code:     AlertCodeIdlePatrimony,
			Title:    "OPPORTUNITY: you have idle patrimony",
			Message: fmt.Sprintf(
				"You hold %s in unproductive assets. Invested at 1%% a month that is %s/month of passive income, which would raise your monthly capacity %s.",
				money(idle),
				money(potential),
				uplift,
			),
		})
	}

	if capacity.IsNegative() {
		alerts = append(alerts, Alert{
			Severity: AlertSeverityWarning,
			Code:     AlertCodeNegativeCapacity,
			Title:    "ATTENTION: your expenses exceed your income!",
			Message: fmt.Sprintf(
				"You are spending %s more than you earn this month. Review your expenses urgently!",
				money(capacity.Abs()),
			),
		})
	}

	return alerts
}
