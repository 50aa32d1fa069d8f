// Package dashboard contains dashboard and analytics use cases, together with the
// pure aggregation functions that turn ledger entries, goals and assets into
// summaries, coverage reports and alerts.
//
// The aggregation functions never read the clock: every time dependency is an
// explicit now or year argument, so identical inputs give identical outputs.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// DefaultLookbackMonths is the trailing window used to average monthly expenses.
const DefaultLookbackMonths = 6

// ReserveTargetMonths is the number of months of expenses an emergency reserve should cover.
const ReserveTargetMonths = 6

var hundred = decimal.NewFromInt(100)

// MonthSummary holds the totals of one calendar month.
type MonthSummary struct {
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// QuarterSummary holds the totals of three consecutive months.
type QuarterSummary struct {
	Quarter  int // 1 to 4
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Net      decimal.Decimal
	Margin   decimal.Decimal // Net / Income, zero when there is no income
	Positive bool
}

// CategoryShare is one category's slice of the total of an entry kind.
type CategoryShare struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64 // Rounded to one decimal place
	Count      int
}

// PatrimonySummary splits the estimated value of a user's assets by kind and liquidity.
type PatrimonySummary struct {
	Total         decimal.Decimal
	Property      decimal.Decimal
	Vehicle       decimal.Decimal
	Investment    decimal.Decimal
	HighLiquidity decimal.Decimal // Investments
	LowLiquidity  decimal.Decimal // Property and vehicles
	AssetCount    int
}

// CoverageReport describes how many months of expenses the emergency reserve covers.
type CoverageReport struct {
	AverageMonthlyExpense decimal.Decimal
	RequiredReserve       decimal.Decimal
	ReserveSaved          decimal.Decimal
	Months                decimal.Decimal
	ReserveGoal           *entity.Goal // Nil when no goal is marked as the reserve
}

// MonthlySummary returns the income, expense and net of each month of year,
// January first. Months without entries report zero values.
func MonthlySummary(entries []*entity.Entry, year int) []MonthSummary {
	months := make([]MonthSummary, 12)
	for i := range months {
		months[i] = MonthSummary{
			Month:   time.Month(i + 1),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Net:     decimal.Zero,
		}
	}

	for _, e := range entries {
		if e.Date.Year() != year {
			continue
		}
		m := &months[e.Date.Month()-1]
		switch e.Kind {
		case entity.EntryKindIncome:
			m.Income = m.Income.Add(e.Amount)
		case entity.EntryKindExpense:
			m.Expense = m.Expense.Add(e.Amount)
		}
	}

	for i := range months {
		months[i].Net = months[i].Income.Sub(months[i].Expense)
	}
	return months
}

// QuarterlySummary folds twelve monthly summaries into four quarters.
// Missing trailing months count as zero.
func QuarterlySummary(months []MonthSummary) []QuarterSummary {
	quarters := make([]QuarterSummary, 4)
	for q := range quarters {
		income, expense := decimal.Zero, decimal.Zero
		for i := q * 3; i < q*3+3 && i < len(months); i++ {
			income = income.Add(months[i].Income)
			expense = expense.Add(months[i].Expense)
		}
		net := income.Sub(expense)
		quarters[q] = QuarterSummary{
			Quarter:  q + 1,
			Income:   income,
			Expense:  expense,
			Net:      net,
			Margin:   ratio(net, income),
			Positive: !net.IsNegative(),
		}
	}
	return quarters
}

// CategoryBreakdown sums the entries of kind per category and returns each
// category's share of the total, largest first. Ties are ordered by category name.
func CategoryBreakdown(entries []*entity.Entry, kind entity.EntryKind) []CategoryShare {
	byCategory := map[string]*CategoryShare{}
	total := decimal.Zero

	for _, e := range entries {
		if e.Kind != kind {
			continue
		}
		share, ok := byCategory[e.Category]
		if !ok {
			share = &CategoryShare{Category: e.Category, Amount: decimal.Zero}
			byCategory[e.Category] = share
		}
		share.Amount = share.Amount.Add(e.Amount)
		share.Count++
		total = total.Add(e.Amount)
	}

	shares := make([]CategoryShare, 0, len(byCategory))
	for _, share := range byCategory {
		if total.IsPositive() {
			share.Percentage = percentage(share.Amount, total)
		}
		shares = append(shares, *share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percentage != shares[j].Percentage {
			return shares[i].Percentage > shares[j].Percentage
		}
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}

// SummarizePatrimony totals the estimated value of assets per kind. Investments
// count as high liquidity, property and vehicles as low liquidity.
func SummarizePatrimony(assets []*entity.Asset) PatrimonySummary {
	summary := PatrimonySummary{
		Total:         decimal.Zero,
		Property:      decimal.Zero,
		Vehicle:       decimal.Zero,
		Investment:    decimal.Zero,
		HighLiquidity: decimal.Zero,
		LowLiquidity:  decimal.Zero,
	}

	for _, a := range assets {
		switch a.Kind {
		case entity.AssetKindProperty:
			summary.Property = summary.Property.Add(a.EstimatedValue)
		case entity.AssetKindVehicle:
			summary.Vehicle = summary.Vehicle.Add(a.EstimatedValue)
		case entity.AssetKindInvestment:
			summary.Investment = summary.Investment.Add(a.EstimatedValue)
		default:
			continue
		}
		summary.Total = summary.Total.Add(a.EstimatedValue)
		summary.AssetCount++
	}

	summary.HighLiquidity = summary.Investment
	summary.LowLiquidity = summary.Property.Add(summary.Vehicle)
	return summary
}

// MonthlyCapacity returns income minus expense for the calendar month of now.
func MonthlyCapacity(entries []*entity.Entry, now time.Time) decimal.Decimal {
	income, expense := monthTotals(entries, now)
	return income.Sub(expense)
}

// EmergencyFundCoverage reports how many months of average expenses the
// emergency reserve goal covers.
//
// The average is the expense total of entries dated on or after now minus
// lookbackMonths, divided by lookbackMonths. When that is zero the expense total
// of now's month is used instead. lookbackMonths <= 0 selects DefaultLookbackMonths.
func EmergencyFundCoverage(entries []*entity.Entry, goals []*entity.Goal, now time.Time, lookbackMonths int) CoverageReport {
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultLookbackMonths
	}

	windowStart := valueobject.Day(now).AddDate(0, -lookbackMonths, 0)
	windowExpense := decimal.Zero
	for _, e := range entries {
		if e.IsExpense() && !e.Date.Before(windowStart) {
			windowExpense = windowExpense.Add(e.Amount)
		}
	}

	average := windowExpense.Div(decimal.NewFromInt(int64(lookbackMonths)))
	if average.IsZero() {
		_, average = monthTotals(entries, now)
	}

	report := CoverageReport{
		AverageMonthlyExpense: average,
		RequiredReserve:       average.Mul(decimal.NewFromInt(ReserveTargetMonths)),
		ReserveSaved:          decimal.Zero,
		Months:                decimal.Zero,
	}

	for _, g := range goals {
		if g.IsEmergencyReserve() {
			report.ReserveGoal = g
			report.ReserveSaved = g.CurrentAmount
			break
		}
	}

	if average.IsPositive() {
		report.Months = report.ReserveSaved.Div(average)
	}
	return report
}

// UnproductiveValue sums the estimated value of assets that produce no income:
// every non-investment asset, and investments yielding less than 1% a year or
// with no recorded yield.
func UnproductiveValue(assets []*entity.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		if a.IsInvestment() {
			if yield, ok := a.AnnualYield(); ok && yield.GreaterThanOrEqual(decimal.NewFromInt(1)) {
				continue
			}
		}
		total = total.Add(a.EstimatedValue)
	}
	return total
}

func monthTotals(entries []*entity.Entry, now time.Time) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if !valueobject.SameMonth(e.Date, now) {
			continue
		}
		switch e.Kind {
		case entity.EntryKindIncome:
			income = income.Add(e.Amount)
		case entity.EntryKindExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return income, expense
}

// ratio returns a/b with four decimal places, or zero when b is zero.
func ratio(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, 4)
}

// percentage returns part/total*100 rounded to one decimal place.
func percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(total).Round(1).InexactFloat64()
}
