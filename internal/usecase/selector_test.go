package usecase

import (
	"testing"

	"github.com/macrotally/backend/internal/domain"
)

func TestPickBest(t *testing.T) {
	t.Run("returns nil for empty list", func(t *testing.T) {
		if got := PickBest(nil); got != nil {
			t.Errorf("PickBest(nil) = %v, want nil", got)
		}
		if got := PickBest([]domain.FoodCandidate{}); got != nil {
			t.Errorf("PickBest(empty) = %v, want nil", got)
		}
	})

	t.Run("prefers foundation over sr and branded", func(t *testing.T) {
		candidates := []domain.FoodCandidate{
			{FdcID: 1, DataType: "Branded"},
			{FdcID: 2, DataType: "Foundation"},
			{FdcID: 3, DataType: "SR Legacy"},
		}

		best := PickBest(candidates)
		if best == nil || best.FdcID != 2 {
			t.Fatalf("best = %+v, want the Foundation candidate", best)
		}
	})

	t.Run("tie keeps the search service order", func(t *testing.T) {
		candidates := []domain.FoodCandidate{
			{FdcID: 10, DataType: "Branded"},
			{FdcID: 11, DataType: "Branded"},
		}

		best := PickBest(candidates)
		if best == nil || best.FdcID != 10 {
			t.Fatalf("best = %+v, want the first branded candidate", best)
		}
	})

	t.Run("nutrient data breaks a data type tie", func(t *testing.T) {
		candidates := []domain.FoodCandidate{
			{FdcID: 20, DataType: "Branded"},
			{FdcID: 21, DataType: "Branded", HasNutrientData: true},
		}

		best := PickBest(candidates)
		if best == nil || best.FdcID != 21 {
			t.Fatalf("best = %+v, want the candidate with nutrient data", best)
		}
	})

	t.Run("survey beats branded", func(t *testing.T) {
		candidates := []domain.FoodCandidate{
			{FdcID: 30, DataType: "Branded", HasNutrientData: true},
			{FdcID: 31, DataType: "Survey (FNDDS)"},
		}

		best := PickBest(candidates)
		if best == nil || best.FdcID != 31 {
			t.Fatalf("best = %+v, want the survey candidate", best)
		}
	})

	t.Run("single candidate wins regardless of score", func(t *testing.T) {
		candidates := []domain.FoodCandidate{
			{FdcID: 40, DataType: "Experimental"},
		}

		best := PickBest(candidates)
		if best == nil || best.FdcID != 40 {
			t.Fatalf("best = %+v, want the only candidate", best)
		}
	})
}

func TestScoreCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.FoodCandidate
		want      float64
	}{
		{"foundation", domain.FoodCandidate{DataType: "Foundation"}, 6},
		{"sr legacy", domain.FoodCandidate{DataType: "SR Legacy"}, 5},
		{"survey", domain.FoodCandidate{DataType: "Survey (FNDDS)"}, 4},
		{"branded", domain.FoodCandidate{DataType: "Branded"}, 2},
		{"branded with data", domain.FoodCandidate{DataType: "Branded", HasNutrientData: true}, 3},
		{"unknown tag", domain.FoodCandidate{DataType: "Other"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreCandidate(tt.candidate); got != tt.want {
				t.Errorf("scoreCandidate(%q) = %v, want %v", tt.candidate.DataType, got, tt.want)
			}
		})
	}
}
