package dashboard

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

func TestGenerateAlerts(t *testing.T) {
	coverage := func(avg, saved string) CoverageReport {
		a, s := dec(avg), dec(saved)
		months := decimal.Zero
		if a.IsPositive() {
			months = s.Div(a)
		}
		return CoverageReport{
			AverageMonthlyExpense: a,
			RequiredReserve:       a.Mul(decimal.NewFromInt(ReserveTargetMonths)),
			ReserveSaved:          s,
			Months:                months,
		}
	}

	tests := []struct {
		name      string
		coverage  CoverageReport
		capacity  string
		assets    []*entity.Asset
		wantCodes []AlertCode
		contains  []string
	}{
		{
			name:      "healthy finances",
			coverage:  coverage("1000", "6000"),
			capacity:  "500",
			assets:    []*entity.Asset{asset(entity.AssetKindInvestment, "50000", map[string]any{entity.MetadataAnnualYield: 10.5})},
			wantCodes: nil,
		},
		{
			name:      "no reserve at all",
			coverage:  coverage("2000", "0"),
			capacity:  "100",
			wantCodes: []AlertCode{AlertCodeLowReserve},
			contains:  []string{"CRITICAL", "R$12.000,00", "R$2.000,00"},
		},
		{
			name:      "partial reserve",
			coverage:  coverage("1000", "1500"),
			capacity:  "100",
			wantCodes: []AlertCode{AlertCodeLowReserve},
			contains:  []string{"only 1.5 months"},
		},
		{
			name:      "idle patrimony with positive capacity",
			coverage:  coverage("1000", "6000"),
			capacity:  "2000",
			assets:    []*entity.Asset{asset(entity.AssetKindProperty, "200000", nil)},
			wantCodes: []AlertCode{AlertCodeIdlePatrimony},
			contains:  []string{"R$200.000,00", "R$2.000,00/month", "by 100%"},
		},
		{
			name:     "low yield investment counts as idle",
			coverage: coverage("100", "600"),
			capacity: "0",
			assets: []*entity.Asset{
				asset(entity.AssetKindInvestment, "5000", map[string]any{entity.MetadataAnnualYield: 0.5}),
				asset(entity.AssetKindInvestment, "9000", map[string]any{entity.MetadataAnnualYield: "12"}),
			},
			wantCodes: []AlertCode{AlertCodeIdlePatrimony},
			contains:  []string{"R$5.000,00", "significantly"},
		},
		{
			name:      "every rule fires in order",
			coverage:  coverage("1000", "500"),
			capacity:  "-350.5",
			assets:    []*entity.Asset{asset(entity.AssetKindVehicle, "90000", nil)},
			wantCodes: []AlertCode{AlertCodeLowReserve, AlertCodeIdlePatrimony, AlertCodeNegativeCapacity},
			contains:  []string{"R$350,50 more"},
		},
		{
			name:      "idle value at exactly twelve months does not fire",
			coverage:  coverage("1000", "6000"),
			capacity:  "10",
			assets:    []*entity.Asset{asset(entity.AssetKindProperty, "12000", nil)},
			wantCodes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := GenerateAlerts(tt.coverage, dec(tt.capacity), tt.assets, "BRL")

			if len(alerts) != len(tt.wantCodes) {
				t.Fatalf("alerts = %+v, want codes %v", alerts, tt.wantCodes)
			}
			var text strings.Builder
			for i, a := range alerts {
				if a.Code != tt.wantCodes[i] {
					t.Errorf("alerts[%d].Code = %s, want %s", i, a.Code, tt.wantCodes[i])
				}
				wantSeverity := AlertSeverityWarning
				if a.Code == AlertCodeIdlePatrimony {
					wantSeverity = AlertSeverityInfo
				}
				if a.Severity != wantSeverity {
					t.Errorf("alerts[%d].Severity = %s, want %s", i, a.Severity, wantSeverity)
				}
				text.WriteString(a.Title + " " + a.Message + "\n")
			}
			for _, s := range tt.contains {
				if !strings.Contains(text.String(), s) {
					t.Errorf("alert text %q does not contain %q", text.String(), s)
				}
			}
		})
	}
}

func TestGenerateAlerts_CurrencyFormatting(t *testing.T) {
	report := CoverageReport{
		AverageMonthlyExpense: dec("1234.5"),
		RequiredReserve:       dec("7407"),
		ReserveSaved:          decimal.Zero,
		Months:                decimal.Zero,
	}

	alerts := GenerateAlerts(report, dec("1"), nil, "USD")

	if len(alerts) != 1 || !strings.Contains(alerts[0].Message, "$7,407.00") || !strings.Contains(alerts[0].Message, "$1,234.50/month") {
		t.Errorf("alerts = %+v", alerts)
	}
}
