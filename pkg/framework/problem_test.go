package framework_test

import (
	"testing"

	"github.com/mooptim/ibmols/pkg/framework"
)

func TestNewProblemValidation(t *testing.T) {
	tests := []struct {
		name       string
		capacities []float64
		weights    [][]int
		profits    [][]int
		wantErr    bool
	}{
		{
			name:       "valid single objective",
			capacities: []float64{5},
			weights:    [][]int{{1, 2}},
			profits:    [][]int{{3, 4}},
		},
		{
			name:       "no objectives",
			capacities: []float64{},
			weights:    [][]int{},
			profits:    [][]int{},
			wantErr:    true,
		},
		{
			name:       "too many objectives",
			capacities: []float64{1, 2, 3, 4, 5},
			weights:    [][]int{{1}, {1}, {1}, {1}, {1}},
			profits:    [][]int{{1}, {1}, {1}, {1}, {1}},
			wantErr:    true,
		},
		{
			name:       "row count mismatch",
			capacities: []float64{5, 6},
			weights:    [][]int{{1, 2}},
			profits:    [][]int{{3, 4}, {5, 6}},
			wantErr:    true,
		},
		{
			name:       "ragged rows",
			capacities: []float64{5, 6},
			weights:    [][]int{{1, 2}, {1}},
			profits:    [][]int{{3, 4}, {5, 6}},
			wantErr:    true,
		},
		{
			name:       "no items",
			capacities: []float64{5},
			weights:    [][]int{{}},
			profits:    [][]int{{}},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := framework.NewProblem(tt.capacities, tt.weights, tt.profits)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewProblem error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFitsCapacity(t *testing.T) {
	p := tinyProblem(t)

	if !p.FitsCapacity([]float64{0, 0}, 3) {
		t.Error("item 3 should fit an empty knapsack")
	}
	if p.FitsCapacity([]float64{6, 0}, 3) {
		t.Error("item 3 must not fit: 6+5 exceeds the first capacity")
	}
	if p.FitsCapacity([]float64{0, 12}, 3) {
		t.Error("item 3 must not fit: 12+4 exceeds the second capacity")
	}
}

func TestSelectionFeasible(t *testing.T) {
	p := tinyProblem(t)

	if !p.SelectionFeasible([]bool{true, true, true, false, true}) {
		t.Error("greedy selection should be feasible")
	}
	if p.SelectionFeasible([]bool{true, true, true, true, true}) {
		t.Error("selecting every item overruns the first capacity")
	}
	if p.SelectionFeasible([]bool{true, true}) {
		t.Error("wrong-length selections are infeasible")
	}
}
