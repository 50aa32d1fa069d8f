package asset

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

type memoryAssetRepo struct {
	adapter.AssetRepository
	assets map[uuid.UUID]*entity.Asset
}

func (r *memoryAssetRepo) Create(_ context.Context, a *entity.Asset) error {
	r.assets[a.ID] = a
	return nil
}

func (r *memoryAssetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, domainerror.ErrAssetNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *memoryAssetRepo) Update(_ context.Context, a *entity.Asset) error {
	r.assets[a.ID] = a
	return nil
}

func (r *memoryAssetRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range r.assets {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryAssetRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	a, ok := r.assets[id]
	if !ok || a.UserID != userID {
		return domainerror.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

func TestCreateAssetUseCase_Validation(t *testing.T) {
	tests := []struct {
		name      string
		kind      entity.AssetKind
		assetName string
		value     string
		liquidity entity.AssetLiquidity
		wantCode  domainerror.AssetErrorCode
	}{
		{name: "valid investment", kind: entity.AssetKindInvestment, assetName: "Treasury bonds", value: "15000", liquidity: entity.AssetLiquidityLiquid},
		{name: "unknown kind", kind: "art", assetName: "Painting", value: "100", liquidity: entity.AssetLiquidityIlliquid, wantCode: domainerror.ErrCodeInvalidAssetKind},
		{name: "short name", kind: entity.AssetKindVehicle, assetName: "VW", value: "100", liquidity: entity.AssetLiquidityConditional, wantCode: domainerror.ErrCodeInvalidAssetName},
		{name: "zero value", kind: entity.AssetKindProperty, assetName: "Beach house", value: "0", liquidity: entity.AssetLiquidityIlliquid, wantCode: domainerror.ErrCodeInvalidAssetValue},
		{name: "unknown liquidity", kind: entity.AssetKindProperty, assetName: "Beach house", value: "1", liquidity: "frozen", wantCode: domainerror.ErrCodeInvalidAssetLiquidity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryAssetRepo{assets: map[uuid.UUID]*entity.Asset{}}
			out, err := NewCreateAssetUseCase(repo).Execute(context.Background(), CreateAssetInput{
				UserID:         uuid.New(),
				Kind:           tt.kind,
				Name:           tt.assetName,
				EstimatedValue: decimal.RequireFromString(tt.value),
				Liquidity:      tt.liquidity,
				Metadata:       map[string]any{entity.MetadataAnnualYield: 11.2},
			})

			if tt.wantCode != "" {
				var assetErr *domainerror.AssetError
				if !errors.As(err, &assetErr) || assetErr.Code != tt.wantCode {
					t.Fatalf("error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if yield, ok := out.Asset.AnnualYield(); !ok || !yield.Equal(decimal.RequireFromString("11.2")) {
				t.Errorf("AnnualYield() = %s, %v", yield, ok)
			}
		})
	}
}

func TestUpdateAssetUseCase_Ownership(t *testing.T) {
	owner := uuid.New()
	a := entity.NewAsset(owner, entity.AssetKindVehicle, "Hatchback", "", decimal.NewFromInt(40000), entity.AssetLiquidityConditional, nil)
	repo := &memoryAssetRepo{assets: map[uuid.UUID]*entity.Asset{a.ID: a}}
	uc := NewUpdateAssetUseCase(repo)
	value := decimal.NewFromInt(38000)

	if _, err := uc.Execute(context.Background(), UpdateAssetInput{AssetID: a.ID, UserID: uuid.New(), EstimatedValue: &value}); !errors.Is(err, domainerror.ErrUnauthorizedAssetAccess) {
		t.Errorf("foreign update error = %v", err)
	}

	out, err := uc.Execute(context.Background(), UpdateAssetInput{AssetID: a.ID, UserID: owner, EstimatedValue: &value})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !out.Asset.EstimatedValue.Equal(value) {
		t.Errorf("EstimatedValue = %s, want %s", out.Asset.EstimatedValue, value)
	}
}

func TestDeleteAssetUseCase(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		caller  uuid.UUID
		assetID func(a *entity.Asset) uuid.UUID
		wantErr error
		wantLen int
	}{
		{name: "owner deletes", caller: owner, assetID: func(a *entity.Asset) uuid.UUID { return a.ID }, wantLen: 0},
		{name: "foreign caller", caller: uuid.New(), assetID: func(a *entity.Asset) uuid.UUID { return a.ID }, wantErr: domainerror.ErrUnauthorizedAssetAccess, wantLen: 1},
		{name: "unknown asset", caller: owner, assetID: func(*entity.Asset) uuid.UUID { return uuid.New() }, wantErr: domainerror.ErrAssetNotFound, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := entity.NewAsset(owner, entity.AssetKindProperty, "Apartment", "", decimal.NewFromInt(300000), entity.AssetLiquidityIlliquid, nil)
			repo := &memoryAssetRepo{assets: map[uuid.UUID]*entity.Asset{a.ID: a}}

			_, err := NewDeleteAssetUseCase(repo).Execute(context.Background(), DeleteAssetInput{AssetID: tt.assetID(a), UserID: tt.caller})
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}

			listed, err := NewListAssetsUseCase(repo).Execute(context.Background(), ListAssetsInput{UserID: owner})
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(listed.Assets) != tt.wantLen {
				t.Errorf("owner has %d assets, want %d", len(listed.Assets), tt.wantLen)
			}
		})
	}
}
