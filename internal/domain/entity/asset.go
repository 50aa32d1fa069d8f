// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetKind represents the type of an asset.
type AssetKind string

const (
	AssetKindProperty   AssetKind = "property"
	AssetKindVehicle    AssetKind = "vehicle"
	AssetKindInvestment AssetKind = "investment"
)

// IsValid reports whether k is a known asset kind.
func (k AssetKind) IsValid() bool {
	return k == AssetKindProperty || k == AssetKindVehicle || k == AssetKindInvestment
}

// AssetLiquidity represents how readily an asset can be sold.
type AssetLiquidity string

const (
	AssetLiquidityLiquid      AssetLiquidity = "liquid"
	AssetLiquidityConditional AssetLiquidity = "conditional"
	AssetLiquidityIlliquid    AssetLiquidity = "illiquid"
)

// IsValid reports whether l is a known liquidity classification.
func (l AssetLiquidity) IsValid() bool {
	return l == AssetLiquidityLiquid || l == AssetLiquidityConditional || l == AssetLiquidityIlliquid
}

// MetadataAnnualYield is the metadata key holding an investment's annual yield, in percent.
const MetadataAnnualYield = "annual_yield"

// Asset represents a property, vehicle or investment owned by a user.
type Asset struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Kind           AssetKind
	Name           string
	Description    string
	EstimatedValue decimal.Decimal
	Liquidity      AssetLiquidity
	Metadata       map[string]any // Kind-specific free-form attributes
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAsset creates a new Asset entity.
func NewAsset(
	userID uuid.UUID,
	kind AssetKind,
	name string,
	description string,
	estimatedValue decimal.Decimal,
	liquidity AssetLiquidity,
	metadata map[string]any,
) *Asset {
	now := time.Now().UTC()
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &Asset{
		ID:             uuid.New(),
		UserID:         userID,
		Kind:           kind,
		Name:           name,
		Description:    description,
		EstimatedValue: estimatedValue,
		Liquidity:      liquidity,
		Metadata:       metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsInvestment reports whether the asset is an investment.
func (a *Asset) IsInvestment() bool {
	return a.Kind == AssetKindInvestment
}

// AnnualYield returns the annual yield percentage stored in the metadata.
// The second value is false when no usable yield is recorded.
func (a *Asset) AnnualYield() (decimal.Decimal, bool) {
	raw, ok := a.Metadata[MetadataAnnualYield]
	if !ok || raw == nil {
		return decimal.Zero, false
	}

	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case decimal.Decimal:
		return v, true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		d, err := decimal.NewFromString(fmt.Sprint(v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
}
