package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wealth-planner/backend/internal/application/usecase/dashboard"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard and analytics endpoints.
type DashboardController struct {
	dashboardUseCase *dashboard.GetDashboardUseCase
	analyticsUseCase *dashboard.GetAnalyticsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	dashboardUseCase *dashboard.GetDashboardUseCase,
	analyticsUseCase *dashboard.GetAnalyticsUseCase,
) *DashboardController {
	return &DashboardController{
		dashboardUseCase: dashboardUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// GetDashboard handles GET /dashboard requests. ?date=YYYY-MM-DD selects the reference day.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var query dto.DashboardQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		invalidQuery(ctx, domainerror.ErrCodeInvalidDateFormat, err)
		return
	}

	input := dashboard.GetDashboardInput{UserID: userID}
	if query.Date != "" {
		date, err := valueobject.ParseDate(query.Date)
		if err != nil {
			handleError(ctx, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidDateFormat,
				"date must use the YYYY-MM-DD format",
				domainerror.ErrInvalidDateFormat,
			))
			return
		}
		input.Date = date
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetAnalytics handles GET /analytics requests. ?year= defaults to the current year.
func (c *DashboardController) GetAnalytics(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var query dto.AnalyticsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		invalidQuery(ctx, domainerror.ErrCodeInvalidYear, err)
		return
	}

	year := time.Now().UTC().Year()
	if query.Year != nil {
		year = *query.Year
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), dashboard.GetAnalyticsInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}

func invalidQuery(ctx *gin.Context, code domainerror.DashboardErrorCode, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid query parameters: " + err.Error(),
		Code:  string(code),
	})
}
