package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealth-planner/backend/internal/application/usecase/recurring"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/dto"
)

// RecurringEntryController handles recurring entry endpoints.
type RecurringEntryController struct {
	listUseCase   *recurring.ListRecurringEntriesUseCase
	createUseCase *recurring.CreateRecurringEntryUseCase
	cancelUseCase *recurring.CancelRecurringEntryUseCase
}

// NewRecurringEntryController creates a new recurring entry controller instance.
func NewRecurringEntryController(
	listUseCase *recurring.ListRecurringEntriesUseCase,
	createUseCase *recurring.CreateRecurringEntryUseCase,
	cancelUseCase *recurring.CancelRecurringEntryUseCase,
) *RecurringEntryController {
	return &RecurringEntryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		cancelUseCase: cancelUseCase,
	}
}

// List handles GET /recurring-entries requests. ?active=true limits the list to active entries.
func (c *RecurringEntryController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringEntriesInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active") == "true",
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringEntryListResponse(output.RecurringEntries))
}

// Create handles POST /recurring-entries requests.
func (c *RecurringEntryController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	startDate, err := valueobject.ParseDate(req.StartDate)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRecurringEntryInput{
		UserID:            userID,
		Kind:              entity.EntryKind(req.Kind),
		Category:          req.Category,
		Description:       req.Description,
		Amount:            req.Amount,
		StartDate:         startDate,
		TotalInstallments: req.TotalInstallments,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringEntryResponse(output.RecurringEntry))
}

// Cancel handles POST /recurring-entries/:id/cancel requests.
func (c *RecurringEntryController) Cancel(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	recurringID, ok := pathID(ctx, "recurring entry")
	if !ok {
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), recurring.CancelRecurringEntryInput{
		RecurringEntryID: recurringID,
		UserID:           userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringEntryResponse(output.RecurringEntry))
}
