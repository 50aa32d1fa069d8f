package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealth-planner/backend/internal/application/usecase/asset"
	"github.com/wealth-planner/backend/internal/domain/entity"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/dto"
)

// AssetController handles asset endpoints.
type AssetController struct {
	listUseCase   *asset.ListAssetsUseCase
	createUseCase *asset.CreateAssetUseCase
	updateUseCase *asset.UpdateAssetUseCase
	deleteUseCase *asset.DeleteAssetUseCase
}

// NewAssetController creates a new asset controller instance.
func NewAssetController(
	listUseCase *asset.ListAssetsUseCase,
	createUseCase *asset.CreateAssetUseCase,
	updateUseCase *asset.UpdateAssetUseCase,
	deleteUseCase *asset.DeleteAssetUseCase,
) *AssetController {
	return &AssetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /assets requests.
func (c *AssetController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), asset.ListAssetsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetListResponse(output.Assets))
}

// Create handles POST /assets requests.
func (c *AssetController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), asset.CreateAssetInput{
		UserID:         userID,
		Kind:           entity.AssetKind(req.Kind),
		Name:           req.Name,
		Description:    req.Description,
		EstimatedValue: req.EstimatedValue,
		Liquidity:      entity.AssetLiquidity(req.Liquidity),
		Metadata:       req.Metadata,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(output.Asset))
}

// Update handles PATCH /assets/:id requests.
func (c *AssetController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	assetID, ok := pathID(ctx, "asset")
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "", err)
		return
	}

	input := asset.UpdateAssetInput{
		AssetID:        assetID,
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		EstimatedValue: req.EstimatedValue,
		Metadata:       req.Metadata,
	}
	if req.Kind != nil {
		kind := entity.AssetKind(*req.Kind)
		input.Kind = &kind
	}
	if req.Liquidity != nil {
		liquidity := entity.AssetLiquidity(*req.Liquidity)
		input.Liquidity = &liquidity
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(output.Asset))
}

// Delete handles DELETE /assets/:id requests.
func (c *AssetController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	assetID, ok := pathID(ctx, "asset")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), asset.DeleteAssetInput{
		AssetID: assetID,
		UserID:  userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
