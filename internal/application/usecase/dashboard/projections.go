package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// MaxProjectedGoals caps how many goals the dashboard projects.
const MaxProjectedGoals = 6

// GoalRecommendation is a hint attached to a goal projection.
type GoalRecommendation string

const (
	RecommendationNone             GoalRecommendation = ""
	RecommendationTopPriority      GoalRecommendation = "top_priority"
	RecommendationIncreaseCapacity GoalRecommendation = "increase_capacity"
)

// GoalProjection estimates when an active goal will be reached at the current monthly capacity.
type GoalProjection struct {
	Goal           *entity.Goal
	Remaining      decimal.Decimal
	MonthsNeeded   *int // Nil when capacity is not positive
	IsReserve      bool
	Recommendation GoalRecommendation
}

// ProjectGoals returns up to MaxProjectedGoals active goals, highest priority
// first, with the months needed to close each gap saving capacity per month.
func ProjectGoals(goals []*entity.Goal, capacity decimal.Decimal) []GoalProjection {
	active := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if g.IsActive() {
			active = append(active, g)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})
	if len(active) > MaxProjectedGoals {
		active = active[:MaxProjectedGoals]
	}

	projections := make([]GoalProjection, 0, len(active))
	for _, g := range active {
		p := GoalProjection{
			Goal:      g,
			Remaining: g.Remaining(),
			IsReserve: g.IsEmergencyReserve(),
		}
		if capacity.IsPositive() {
			months := int(p.Remaining.Div(capacity).Ceil().IntPart())
			p.MonthsNeeded = &months
		}
		switch {
		case p.IsReserve:
			p.Recommendation = RecommendationTopPriority
		case !capacity.IsPositive():
			p.Recommendation = RecommendationIncreaseCapacity
		}
		projections = append(projections, p)
	}
	return projections
}
