package dashboard

import (
	"fmt"

	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

// ValidateEntries rejects entries the aggregation functions cannot handle:
// non-positive amounts and unknown kinds.
func ValidateEntries(entries []*entity.Entry) error {
	for _, e := range entries {
		if !e.Amount.IsPositive() || !e.Kind.IsValid() {
			return invalidInput(fmt.Sprintf("entry %s has amount %s and kind %q", e.ID, e.Amount, e.Kind))
		}
	}
	return nil
}

// ValidateGoals rejects goals with a negative saved amount.
func ValidateGoals(goals []*entity.Goal) error {
	for _, g := range goals {
		if g.CurrentAmount.IsNegative() {
			return invalidInput(fmt.Sprintf("goal %s has negative current amount %s", g.ID, g.CurrentAmount))
		}
	}
	return nil
}

// ValidateAssets rejects assets with a negative estimated value.
func ValidateAssets(assets []*entity.Asset) error {
	for _, a := range assets {
		if a.EstimatedValue.IsNegative() {
			return invalidInput(fmt.Sprintf("asset %s has negative value %s", a.ID, a.EstimatedValue))
		}
	}
	return nil
}

func invalidInput(message string) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeInvalidAggregateInput,
		message,
		domainerror.ErrInvalidAggregateInput,
	)
}
