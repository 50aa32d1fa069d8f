package dashboard

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

var testUser = uuid.New()

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func income(amount string, date time.Time, category string) *entity.Entry {
	return entity.NewEntry(testUser, entity.EntryKindIncome, category, dec(amount), date, "income")
}

func expense(amount string, date time.Time, category string) *entity.Entry {
	return entity.NewEntry(testUser, entity.EntryKindExpense, category, dec(amount), date, "expense")
}

func goal(name, category, target, current string, priority int) *entity.Goal {
	return entity.NewGoal(testUser, name, dec(target), dec(current), priority, day(2030, 1, 1), category, "")
}

func asset(kind entity.AssetKind, value string, metadata map[string]any) *entity.Asset {
	return entity.NewAsset(testUser, kind, "asset", "", dec(value), entity.AssetLiquidityIlliquid, metadata)
}

func TestMonthlySummary_Scenario(t *testing.T) {
	entries := []*entity.Entry{
		income("1000", day(2025, 3, 1), "salary"),
		expense("400", day(2025, 3, 10), "food"),
		expense("600", day(2025, 6, 5), "rent"),
		expense("999", day(2024, 3, 10), "other year"),
	}

	months := MonthlySummary(entries, 2025)

	if len(months) != 12 {
		t.Fatalf("len = %d, want 12", len(months))
	}
	for i, m := range months {
		if m.Month != time.Month(i+1) {
			t.Errorf("months[%d].Month = %s", i, m.Month)
		}
		var wantIncome, wantExpense, wantNet string
		switch i {
		case 2:
			wantIncome, wantExpense, wantNet = "1000", "400", "600"
		case 5:
			wantIncome, wantExpense, wantNet = "0", "600", "-600"
		default:
			wantIncome, wantExpense, wantNet = "0", "0", "0"
		}
		if !m.Income.Equal(dec(wantIncome)) || !m.Expense.Equal(dec(wantExpense)) || !m.Net.Equal(dec(wantNet)) {
			t.Errorf("months[%d] = {%s %s %s}, want {%s %s %s}", i, m.Income, m.Expense, m.Net, wantIncome, wantExpense, wantNet)
		}
	}
}

func TestMonthlySummary_SumInvariant(t *testing.T) {
	var entries []*entity.Entry
	wantIncome, wantExpense := decimal.Zero, decimal.Zero
	for i := 0; i < 200; i++ {
		date := day(2025, time.Month(i%12+1), i%28+1)
		amount := fmt.Sprintf("%d.%02d", 10+i*7, i%100)
		if i%3 == 0 {
			entries = append(entries, income(amount, date, "salary"))
			wantIncome = wantIncome.Add(dec(amount))
		} else {
			entries = append(entries, expense(amount, date, "misc"))
			wantExpense = wantExpense.Add(dec(amount))
		}
	}

	gotIncome, gotExpense := decimal.Zero, decimal.Zero
	for _, m := range MonthlySummary(entries, 2025) {
		gotIncome = gotIncome.Add(m.Income)
		gotExpense = gotExpense.Add(m.Expense)
	}

	if !gotIncome.Equal(wantIncome) || !gotExpense.Equal(wantExpense) {
		t.Errorf("sums = %s/%s, want %s/%s", gotIncome, gotExpense, wantIncome, wantExpense)
	}
}

func TestQuarterlySummary(t *testing.T) {
	entries := []*entity.Entry{
		income("1000", day(2025, 1, 5), "salary"),
		expense("800", day(2025, 2, 5), "rent"),
		expense("300", day(2025, 4, 5), "rent"),
		income("500", day(2025, 7, 5), "salary"),
		expense("700", day(2025, 8, 5), "rent"),
	}

	quarters := QuarterlySummary(MonthlySummary(entries, 2025))

	tests := []struct {
		quarter  int
		net      string
		margin   string
		positive bool
	}{
		{quarter: 1, net: "200", margin: "0.2", positive: true},
		{quarter: 2, net: "-300", margin: "0", positive: false},
		{quarter: 3, net: "-200", margin: "-0.4", positive: false},
		{quarter: 4, net: "0", margin: "0", positive: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("Q%d", tt.quarter), func(t *testing.T) {
			q := quarters[tt.quarter-1]
			if q.Quarter != tt.quarter {
				t.Errorf("Quarter = %d", q.Quarter)
			}
			if !q.Net.Equal(dec(tt.net)) {
				t.Errorf("Net = %s, want %s", q.Net, tt.net)
			}
			if !q.Margin.Equal(dec(tt.margin)) {
				t.Errorf("Margin = %s, want %s", q.Margin, tt.margin)
			}
			if q.Positive != tt.positive {
				t.Errorf("Positive = %v, want %v", q.Positive, tt.positive)
			}
		})
	}
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("sorted shares that sum to 100", func(t *testing.T) {
		entries := []*entity.Entry{
			expense("100", day(2025, 1, 1), "food"),
			expense("100", day(2025, 1, 2), "transport"),
			expense("100", day(2025, 1, 3), "leisure"),
			expense("200", day(2025, 1, 4), "food"),
			income("5000", day(2025, 1, 5), "salary"),
		}

		shares := CategoryBreakdown(entries, entity.EntryKindExpense)

		want := []struct {
			category   string
			percentage float64
			count      int
		}{
			{"food", 60, 2},
			{"leisure", 20, 1},
			{"transport", 20, 1},
		}
		if len(shares) != len(want) {
			t.Fatalf("len = %d, want %d", len(shares), len(want))
		}
		for i, w := range want {
			if shares[i].Category != w.category || shares[i].Percentage != w.percentage || shares[i].Count != w.count {
				t.Errorf("shares[%d] = %+v, want %+v", i, shares[i], w)
			}
		}
	})

	t.Run("rounded percentages stay within tolerance", func(t *testing.T) {
		entries := []*entity.Entry{
			expense("1", day(2025, 1, 1), "a"),
			expense("1", day(2025, 1, 1), "b"),
			expense("1", day(2025, 1, 1), "c"),
			expense("3.33", day(2025, 1, 1), "d"),
			expense("7.01", day(2025, 1, 1), "e"),
			expense("0.07", day(2025, 1, 1), "f"),
		}

		var sum float64
		for _, share := range CategoryBreakdown(entries, entity.EntryKindExpense) {
			sum += share.Percentage
		}
		if math.Abs(sum-100) > 0.1+1e-9 {
			t.Errorf("sum of percentages = %v, want 100 ± 0.1", sum)
		}
	})

	t.Run("no entries of kind", func(t *testing.T) {
		entries := []*entity.Entry{income("10", day(2025, 1, 1), "salary")}
		if shares := CategoryBreakdown(entries, entity.EntryKindExpense); len(shares) != 0 {
			t.Errorf("shares = %+v, want none", shares)
		}
	})
}

func TestSummarizePatrimony(t *testing.T) {
	assets := []*entity.Asset{
		asset(entity.AssetKindProperty, "300000", nil),
		asset(entity.AssetKindVehicle, "50000", nil),
		asset(entity.AssetKindInvestment, "20000", nil),
		asset(entity.AssetKindInvestment, "5000", nil),
	}

	s := SummarizePatrimony(assets)

	checks := map[string][2]decimal.Decimal{
		"total":          {s.Total, dec("375000")},
		"property":       {s.Property, dec("300000")},
		"vehicle":        {s.Vehicle, dec("50000")},
		"investment":     {s.Investment, dec("25000")},
		"high liquidity": {s.HighLiquidity, dec("25000")},
		"low liquidity":  {s.LowLiquidity, dec("350000")},
	}
	for name, c := range checks {
		if !c[0].Equal(c[1]) {
			t.Errorf("%s = %s, want %s", name, c[0], c[1])
		}
	}
	if s.AssetCount != 4 {
		t.Errorf("AssetCount = %d, want 4", s.AssetCount)
	}
}

func TestEmergencyFundCoverage(t *testing.T) {
	now := day(2025, 6, 15)

	t.Run("average over the trailing window", func(t *testing.T) {
		entries := []*entity.Entry{
			expense("1200", day(2025, 2, 1), "rent"),
			expense("1800", day(2025, 5, 1), "rent"),
			expense("9999", day(2024, 11, 1), "outside window"),
		}
		goals := []*entity.Goal{
			goal("Trip", "travel", "5000", "4000", 5),
			goal("Emergency Reserve", "savings", "6000", "1500", 9),
		}

		report := EmergencyFundCoverage(entries, goals, now, 0)

		if !report.AverageMonthlyExpense.Equal(dec("500")) {
			t.Errorf("average = %s, want 500", report.AverageMonthlyExpense)
		}
		if !report.RequiredReserve.Equal(dec("3000")) {
			t.Errorf("required = %s, want 3000", report.RequiredReserve)
		}
		if !report.Months.Equal(dec("3")) {
			t.Errorf("months = %s, want 3", report.Months)
		}
		if report.ReserveGoal == nil || report.ReserveGoal.Name != "Emergency Reserve" {
			t.Errorf("reserve goal = %+v", report.ReserveGoal)
		}
	})

	t.Run("reserve matched by category", func(t *testing.T) {
		goals := []*entity.Goal{goal("Safety net", entity.GoalCategoryEmergency, "100", "10", 1)}
		report := EmergencyFundCoverage(nil, goals, now, 6)
		if report.ReserveGoal == nil {
			t.Fatal("goal with emergency category not matched")
		}
		if !report.Months.IsZero() {
			t.Errorf("months = %s, want 0 without expenses", report.Months)
		}
	})

	t.Run("no reserve goal", func(t *testing.T) {
		entries := []*entity.Entry{expense("600", day(2025, 6, 1), "rent")}
		report := EmergencyFundCoverage(entries, []*entity.Goal{goal("Car", "vehicle", "1", "1", 1)}, now, 6)
		if report.ReserveGoal != nil || !report.Months.IsZero() {
			t.Errorf("report = %+v, want no reserve and zero months", report)
		}
	})

	t.Run("monotonic in saved amount", func(t *testing.T) {
		entries := []*entity.Entry{expense("700", day(2025, 4, 1), "rent"), expense("333.33", day(2025, 6, 2), "food")}
		previous := decimal.NewFromInt(-1)
		for _, saved := range []string{"0", "0.01", "100", "1000", "1000.5", "25000"} {
			g := goal("Reserve", "savings", "50000", saved, 1)
			months := EmergencyFundCoverage(entries, []*entity.Goal{g}, now, 6).Months
			if !months.GreaterThan(previous) {
				t.Errorf("saved %s gives %s months, not above %s", saved, months, previous)
			}
			previous = months
		}
	})
}

func TestMonthlyCapacity(t *testing.T) {
	entries := []*entity.Entry{
		income("3000", day(2025, 6, 1), "salary"),
		expense("1200", day(2025, 6, 30), "rent"),
		expense("5000", day(2025, 5, 31), "previous month"),
		expense("5000", day(2024, 6, 10), "previous year"),
	}

	if got := MonthlyCapacity(entries, day(2025, 6, 15)); !got.Equal(dec("1800")) {
		t.Errorf("capacity = %s, want 1800", got)
	}
}

func TestAggregatorIsDeterministic(t *testing.T) {
	entries := []*entity.Entry{
		expense("10", day(2025, 1, 1), "b"),
		expense("10", day(2025, 1, 1), "a"),
		expense("10", day(2025, 1, 1), "c"),
	}
	first := CategoryBreakdown(entries, entity.EntryKindExpense)
	for i := 0; i < 20; i++ {
		again := CategoryBreakdown(entries, entity.EntryKindExpense)
		for j := range first {
			if first[j].Category != again[j].Category {
				t.Fatalf("run %d ordered %s at %d, first run had %s", i, again[j].Category, j, first[j].Category)
			}
		}
	}
}
