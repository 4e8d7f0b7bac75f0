package framework

import (
	"fmt"
)

const (
	// MinObjectives and MaxObjectives bound the objective count of a
	// loadable instance. The bounds are validation limits only; storage
	// is sized from the actual instance.
	MinObjectives = 1
	MaxObjectives = 4
)

// ProblemDescriptor holds the immutable data of one multi-objective
// knapsack instance: per-objective capacities and the weight and profit
// matrices, both indexed [objective][item]. All other entities reference
// it read-only.
type ProblemDescriptor struct {
	NumObjectives int
	NumItems      int
	Capacities    []float64
	Weights       [][]int
	Profits       [][]int
}

// NewProblem validates and wraps instance data. The slices are referenced,
// not copied; callers must not mutate them afterwards.
func NewProblem(capacities []float64, weights, profits [][]int) (*ProblemDescriptor, error) {
	nf := len(capacities)
	if nf < MinObjectives || nf > MaxObjectives {
		return nil, fmt.Errorf("objective count %d outside [%d,%d]", nf, MinObjectives, MaxObjectives)
	}
	if len(weights) != nf || len(profits) != nf {
		return nil, fmt.Errorf("weight/profit matrices have %d/%d rows, want %d", len(weights), len(profits), nf)
	}
	ni := len(weights[0])
	if ni <= 0 {
		return nil, fmt.Errorf("item count must be positive, got %d", ni)
	}
	for k := 0; k < nf; k++ {
		if len(weights[k]) != ni || len(profits[k]) != ni {
			return nil, fmt.Errorf("objective %d: weight/profit rows have %d/%d items, want %d",
				k, len(weights[k]), len(profits[k]), ni)
		}
	}

	return &ProblemDescriptor{
		NumObjectives: nf,
		NumItems:      ni,
		Capacities:    capacities,
		Weights:       weights,
		Profits:       profits,
	}, nil
}

// FitsCapacity reports whether adding item to the given capacity-used
// totals keeps every objective within its capacity bound. The first
// violated objective short-circuits the scan.
func (p *ProblemDescriptor) FitsCapacity(capacityUsed []float64, item int) bool {
	for k := 0; k < p.NumObjectives; k++ {
		if capacityUsed[k]+float64(p.Weights[k][item]) > p.Capacities[k] {
			return false
		}
	}
	return true
}

// SelectionFeasible reports whether a 0/1 selection respects every
// capacity bound.
func (p *ProblemDescriptor) SelectionFeasible(selected []bool) bool {
	if len(selected) != p.NumItems {
		return false
	}
	for k := 0; k < p.NumObjectives; k++ {
		used := 0.0
		for i, in := range selected {
			if in {
				used += float64(p.Weights[k][i])
			}
		}
		if used > p.Capacities[k] {
			return false
		}
	}
	return true
}
