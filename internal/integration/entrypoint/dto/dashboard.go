package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/usecase/dashboard"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// DashboardQuery represents the query parameters of the dashboard endpoint.
type DashboardQuery struct {
	Date string `form:"date"`
}

// AnalyticsQuery represents the query parameters of the analytics endpoint.
type AnalyticsQuery struct {
	Year *int `form:"year" binding:"omitempty,min=1"`
}

// PatrimonyResponse splits the estimated value of the user's assets.
type PatrimonyResponse struct {
	Total         decimal.Decimal `json:"total"`
	Property      decimal.Decimal `json:"property"`
	Vehicle       decimal.Decimal `json:"vehicle"`
	Investment    decimal.Decimal `json:"investment"`
	HighLiquidity decimal.Decimal `json:"high_liquidity"`
	LowLiquidity  decimal.Decimal `json:"low_liquidity"`
	AssetCount    int             `json:"asset_count"`
}

// CoverageResponse describes the emergency reserve coverage.
type CoverageResponse struct {
	AverageMonthlyExpense decimal.Decimal `json:"average_monthly_expense"`
	RequiredReserve       decimal.Decimal `json:"required_reserve"`
	ReserveSaved          decimal.Decimal `json:"reserve_saved"`
	Months                decimal.Decimal `json:"months"`
	ReserveGoalID         *string         `json:"reserve_goal_id,omitempty"`
}

// AlertResponse represents a dashboard alert.
type AlertResponse struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// GoalProjectionResponse represents a goal with its completion projection.
type GoalProjectionResponse struct {
	Goal           GoalResponse    `json:"goal"`
	Remaining      decimal.Decimal `json:"remaining"`
	MonthsNeeded   *int            `json:"months_needed"`
	IsReserve      bool            `json:"is_reserve"`
	Recommendation string          `json:"recommendation,omitempty"`
}

// DashboardResponse represents the response of the dashboard endpoint.
type DashboardResponse struct {
	Date                  string                   `json:"date"`
	Currency              string                   `json:"currency"`
	Patrimony             PatrimonyResponse        `json:"patrimony"`
	MonthlyCapacity       decimal.Decimal          `json:"monthly_capacity"`
	PreviousMonthCapacity decimal.Decimal          `json:"previous_month_capacity"`
	CapacityChange        float64                  `json:"capacity_change"`
	ActiveGoals           int                      `json:"active_goals"`
	EmergencyFund         CoverageResponse         `json:"emergency_fund"`
	Alerts                []AlertResponse          `json:"alerts"`
	Goals                 []GoalProjectionResponse `json:"goals"`
}

// ToDashboardResponse converts the dashboard use case output to its DTO.
func ToDashboardResponse(out *dashboard.GetDashboardOutput) DashboardResponse {
	response := DashboardResponse{
		Date:     out.Date.Format(valueobject.DateLayout),
		Currency: out.Currency,
		Patrimony: PatrimonyResponse{
			Total:         out.Patrimony.Total,
			Property:      out.Patrimony.Property,
			Vehicle:       out.Patrimony.Vehicle,
			Investment:    out.Patrimony.Investment,
			HighLiquidity: out.Patrimony.HighLiquidity,
			LowLiquidity:  out.Patrimony.LowLiquidity,
			AssetCount:    out.Patrimony.AssetCount,
		},
		MonthlyCapacity:       out.MonthlyCapacity,
		PreviousMonthCapacity: out.PreviousMonthCapacity,
		CapacityChange:        out.CapacityChange,
		ActiveGoals:           out.ActiveGoals,
		EmergencyFund: CoverageResponse{
			AverageMonthlyExpense: out.Coverage.AverageMonthlyExpense.Round(2),
			RequiredReserve:       out.Coverage.RequiredReserve.Round(2),
			ReserveSaved:          out.Coverage.ReserveSaved,
			Months:                out.Coverage.Months.Round(1),
		},
		Alerts: make([]AlertResponse, len(out.Alerts)),
		Goals:  make([]GoalProjectionResponse, len(out.Goals)),
	}

	if out.Coverage.ReserveGoal != nil {
		id := out.Coverage.ReserveGoal.ID.String()
		response.EmergencyFund.ReserveGoalID = &id
	}
	for i, a := range out.Alerts {
		response.Alerts[i] = AlertResponse{
			Severity: string(a.Severity),
			Code:     string(a.Code),
			Title:    a.Title,
			Message:  a.Message,
		}
	}
	for i, p := range out.Goals {
		response.Goals[i] = GoalProjectionResponse{
			Goal:           ToGoalResponse(p.Goal),
			Remaining:      p.Remaining,
			MonthsNeeded:   p.MonthsNeeded,
			IsReserve:      p.IsReserve,
			Recommendation: string(p.Recommendation),
		}
	}
	return response
}

// MonthSummaryResponse holds the totals of one month.
type MonthSummaryResponse struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// QuarterSummaryResponse holds the totals of one quarter.
type QuarterSummaryResponse struct {
	Quarter  int             `json:"quarter"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Net      decimal.Decimal `json:"net"`
	Margin   decimal.Decimal `json:"margin"`
	Positive bool            `json:"positive"`
}

// CategoryShareResponse is one category's slice of a total.
type CategoryShareResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Count      int             `json:"count"`
}

// AnalyticsResponse represents the response of the analytics endpoint.
type AnalyticsResponse struct {
	Year             int                      `json:"year"`
	Income           decimal.Decimal          `json:"income"`
	Expense          decimal.Decimal          `json:"expense"`
	Net              decimal.Decimal          `json:"net"`
	Margin           decimal.Decimal          `json:"margin"`
	Months           []MonthSummaryResponse   `json:"months"`
	Quarters         []QuarterSummaryResponse `json:"quarters"`
	IncomeBreakdown  []CategoryShareResponse  `json:"income_breakdown"`
	ExpenseBreakdown []CategoryShareResponse  `json:"expense_breakdown"`
}

// ToAnalyticsResponse converts the analytics use case output to its DTO.
func ToAnalyticsResponse(out *dashboard.GetAnalyticsOutput) AnalyticsResponse {
	response := AnalyticsResponse{
		Year:             out.Year,
		Income:           out.Totals.Income,
		Expense:          out.Totals.Expense,
		Net:              out.Totals.Net,
		Margin:           out.Totals.Margin,
		Months:           make([]MonthSummaryResponse, len(out.Months)),
		Quarters:         make([]QuarterSummaryResponse, len(out.Quarters)),
		IncomeBreakdown:  toCategoryShares(out.IncomeBreakdown),
		ExpenseBreakdown: toCategoryShares(out.ExpenseBreakdown),
	}
	for i, m := range out.Months {
		response.Months[i] = MonthSummaryResponse{
			Month:   int(m.Month),
			Income:  m.Income,
			Expense: m.Expense,
			Net:     m.Net,
		}
	}
	for i, q := range out.Quarters {
		response.Quarters[i] = QuarterSummaryResponse{
			Quarter:  q.Quarter,
			Income:   q.Income,
			Expense:  q.Expense,
			Net:      q.Net,
			Margin:   q.Margin,
			Positive: q.Positive,
		}
	}
	return response
}

func toCategoryShares(shares []dashboard.CategoryShare) []CategoryShareResponse {
	out := make([]CategoryShareResponse, len(shares))
	for i, s := range shares {
		out[i] = CategoryShareResponse{
			Category:   s.Category,
			Amount:     s.Amount,
			Percentage: s.Percentage,
			Count:      s.Count,
		}
	}
	return out
}
