package error

import "errors"

// Asset domain errors.
var (
	// ErrAssetNotFound is returned when an asset is not found.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetName is returned when the asset name is shorter than 3 characters.
	ErrInvalidAssetName = errors.New("name must have at least 3 characters")

	// ErrInvalidAssetValue is returned when the estimated value is zero or negative.
	ErrInvalidAssetValue = errors.New("estimated value must be greater than zero")

	// ErrInvalidAssetKind is returned when the kind is not a known asset kind.
	ErrInvalidAssetKind = errors.New("kind must be: property, vehicle, or investment")

	// ErrInvalidAssetLiquidity is returned when the liquidity is not a known classification.
	ErrInvalidAssetLiquidity = errors.New("liquidity must be: liquid, conditional, or illiquid")

	// ErrUnauthorizedAssetAccess is returned when a user accesses another user's asset.
	ErrUnauthorizedAssetAccess = errors.New("unauthorized access to asset")
)

// AssetErrorCode defines error codes for asset errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAssetNotFound           AssetErrorCode = "AST-010001"
	ErrCodeInvalidAssetName        AssetErrorCode = "AST-010002"
	ErrCodeInvalidAssetValue       AssetErrorCode = "AST-010003"
	ErrCodeInvalidAssetKind        AssetErrorCode = "AST-010004"
	ErrCodeInvalidAssetLiquidity   AssetErrorCode = "AST-010005"
	ErrCodeUnauthorizedAssetAccess AssetErrorCode = "AST-010006"

	// Internal errors (99XXXX)
	ErrCodeAssetInternalError AssetErrorCode = "AST-990001"
)

// AssetError is the coded error returned for asset failures.
type AssetError = CodedError[AssetErrorCode]

// NewAssetError creates a new AssetError.
func NewAssetError(code AssetErrorCode, message string, err error) *AssetError {
	return &AssetError{Code: code, Message: message, Err: err}
}
