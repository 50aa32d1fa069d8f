// Package entry contains ledger entry use cases.
package entry

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

const (
	minDescriptionLength = 3
	maxDescriptionLength = 200
)

var minAmount = decimal.RequireFromString("0.01")

func validateKind(kind entity.EntryKind) error {
	if !kind.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidEntryKind,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThan(minAmount) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be at least 0.01",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if n := len([]rune(strings.TrimSpace(description))); n < minDescriptionLength || n > maxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDescription,
			"description must be between 3 and 200 characters",
			domainerror.ErrInvalidEntryDescription,
		)
	}
	return nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryCategory,
			"category is required",
			domainerror.ErrInvalidEntryCategory,
		)
	}
	return nil
}
