package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealth-planner/backend/internal/application/usecase/entry"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/dto"
)

// EntryController handles ledger entry endpoints.
type EntryController struct {
	listUseCase   *entry.ListEntriesUseCase
	createUseCase *entry.CreateEntryUseCase
	updateUseCase *entry.UpdateEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	listUseCase *entry.ListEntriesUseCase,
	createUseCase *entry.CreateEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var query dto.ListEntriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	input := entry.ListEntriesInput{
		UserID:   userID,
		Category: query.Category,
	}
	if query.StartDate != "" {
		start, _ := valueobject.ParseDate(query.StartDate)
		input.StartDate = &start
	}
	if query.EndDate != "" {
		end, _ := valueobject.ParseDate(query.EndDate)
		input.EndDate = &end
	}
	if query.Kind != "" {
		kind := entity.EntryKind(query.Kind)
		input.Kind = &kind
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}

	date, err := valueobject.ParseDate(req.Date)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidEntryDate), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), entry.CreateEntryInput{
		UserID:      userID,
		Kind:        entity.EntryKind(req.Kind),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx, "entry")
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}

	input := entry.UpdateEntryInput{
		EntryID:     entryID,
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Kind != nil {
		kind := entity.EntryKind(*req.Kind)
		input.Kind = &kind
	}
	if req.Date != nil {
		date, err := valueobject.ParseDate(*req.Date)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeInvalidEntryDate), err)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx, "entry")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
