package dashboard

import (
	"testing"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

func TestProjectGoals(t *testing.T) {
	goals := []*entity.Goal{
		goal("Car", "vehicle", "30000", "10000", 5),
		goal("Emergency reserve", "savings", "12000", "6000", 10),
		goal("Trip", "travel", "4000", "4500", 7),
		goal("House", "property", "100000", "0", 3),
		goal("Course", "education", "2000", "0", 2),
		goal("Watch", "other", "500", "0", 1),
		goal("Bike", "other", "900", "0", 4),
	}
	cancelled := goal("Boat", "other", "50000", "0", 9)
	cancelled.Status = entity.GoalStatusCancelled
	goals = append(goals, cancelled)

	t.Run("positive capacity", func(t *testing.T) {
		projections := ProjectGoals(goals, dec("1000"))

		if len(projections) != MaxProjectedGoals {
			t.Fatalf("len = %d, want %d", len(projections), MaxProjectedGoals)
		}
		wantNames := []string{"Emergency reserve", "Trip", "Car", "Bike", "House", "Course"}
		wantMonths := []int{6, 0, 20, 1, 100, 2}
		for i, p := range projections {
			if p.Goal.Name != wantNames[i] {
				t.Errorf("projections[%d] = %s, want %s", i, p.Goal.Name, wantNames[i])
			}
			if p.MonthsNeeded == nil || *p.MonthsNeeded != wantMonths[i] {
				t.Errorf("%s months = %v, want %d", p.Goal.Name, p.MonthsNeeded, wantMonths[i])
			}
		}
		if !projections[0].IsReserve || projections[0].Recommendation != RecommendationTopPriority {
			t.Errorf("reserve projection = %+v", projections[0])
		}
		if projections[2].Recommendation != RecommendationNone {
			t.Errorf("car recommendation = %q, want none", projections[2].Recommendation)
		}
	})

	t.Run("no capacity", func(t *testing.T) {
		projections := ProjectGoals(goals, dec("-10"))
		for _, p := range projections {
			if p.MonthsNeeded != nil {
				t.Errorf("%s has months %d without capacity", p.Goal.Name, *p.MonthsNeeded)
			}
			if !p.IsReserve && p.Recommendation != RecommendationIncreaseCapacity {
				t.Errorf("%s recommendation = %q", p.Goal.Name, p.Recommendation)
			}
		}
	})
}

func TestCapacityChange(t *testing.T) {
	tests := []struct {
		current, previous string
		want              float64
	}{
		{"1500", "1000", 50},
		{"500", "-1000", 150},
		{"-200", "400", -150},
		{"300", "0", 0},
		{"333", "999", -66.7},
	}
	for _, tt := range tests {
		if got := CapacityChange(dec(tt.current), dec(tt.previous)); got != tt.want {
			t.Errorf("CapacityChange(%s, %s) = %v, want %v", tt.current, tt.previous, got, tt.want)
		}
	}
}
