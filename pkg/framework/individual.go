package framework

import (
	"golang.org/x/exp/rand"
)

// FitnessSentinel marks an individual whose fitness has not been assigned
// yet. Any assigned fitness is strictly greater.
const FitnessSentinel = -1.0

// ObjectiveSpacePoint represents an N-dimensional point in the objective
// space. For a 2-objective instance a point is [f1(x'), f2(x')].
type ObjectiveSpacePoint []float64

// Individual is one candidate solution. The permutation is the
// construction order; the selection and all derived vectors are recomputed
// from it by Evaluate, and incrementally maintained by the local search.
type Individual struct {
	Permutation []int
	Selected    []bool

	ProfitVector ObjectiveSpacePoint
	CapacityUsed []float64
	Scalarized   []float64

	SelectedCount int
	RejectedCount int

	Fitness  float64
	Explored bool
}

// NewIndividual allocates an individual sized for the given instance.
// The permutation starts as the identity; callers randomize it via Shuffle.
func NewIndividual(p *ProblemDescriptor) *Individual {
	x := &Individual{
		Permutation:  make([]int, p.NumItems),
		Selected:     make([]bool, p.NumItems),
		ProfitVector: make(ObjectiveSpacePoint, p.NumObjectives),
		CapacityUsed: make([]float64, p.NumObjectives),
		Scalarized:   make([]float64, p.NumObjectives),
		Fitness:      FitnessSentinel,
	}
	for i := range x.Permutation {
		x.Permutation[i] = i
	}
	return x
}

// Shuffle randomizes the construction order in place.
func (x *Individual) Shuffle(rng *rand.Rand) {
	for i := range x.Permutation {
		r := rng.Intn(len(x.Permutation))
		x.Permutation[i], x.Permutation[r] = x.Permutation[r], x.Permutation[i]
	}
}

// Evaluate recomputes the selection and all derived vectors from the
// permutation with a greedy first-fit walk: an item is accepted iff adding
// its weight keeps every capacity bound satisfied. Deterministic; the
// permutation alone decides the outcome.
func (x *Individual) Evaluate(p *ProblemDescriptor) {
	x.SelectedCount = 0
	x.RejectedCount = 0
	for k := 0; k < p.NumObjectives; k++ {
		x.CapacityUsed[k] = 0
		x.ProfitVector[k] = 0
	}
	for i := range x.Selected {
		x.Selected[i] = false
	}

	for _, item := range x.Permutation {
		if p.FitsCapacity(x.CapacityUsed, item) {
			for k := 0; k < p.NumObjectives; k++ {
				x.CapacityUsed[k] += float64(p.Weights[k][item])
				x.ProfitVector[k] += float64(p.Profits[k][item])
			}
			x.Selected[item] = true
			x.SelectedCount++
		} else {
			x.RejectedCount++
		}
	}
}

// AddItem inserts an unselected item, updating profit/capacity totals.
// Feasibility is the caller's responsibility.
func (x *Individual) AddItem(p *ProblemDescriptor, item int) {
	x.Selected[item] = true
	x.SelectedCount++
	x.RejectedCount--
	for k := 0; k < p.NumObjectives; k++ {
		x.CapacityUsed[k] += float64(p.Weights[k][item])
		x.ProfitVector[k] += float64(p.Profits[k][item])
	}
}

// RemoveItem drops a selected item, updating profit/capacity totals.
func (x *Individual) RemoveItem(p *ProblemDescriptor, item int) {
	x.Selected[item] = false
	x.SelectedCount--
	x.RejectedCount++
	for k := 0; k < p.NumObjectives; k++ {
		x.CapacityUsed[k] -= float64(p.Weights[k][item])
		x.ProfitVector[k] -= float64(p.Profits[k][item])
	}
}

// Scalarize weighs the profit vector by the active weight vector.
func (x *Individual) Scalarize(weights []float64) {
	for k := range x.Scalarized {
		x.Scalarized[k] = x.ProfitVector[k] * weights[k]
	}
}

// Clone deep-copies the individual.
func (x *Individual) Clone() *Individual {
	c := &Individual{
		Permutation:   make([]int, len(x.Permutation)),
		Selected:      make([]bool, len(x.Selected)),
		ProfitVector:  make(ObjectiveSpacePoint, len(x.ProfitVector)),
		CapacityUsed:  make([]float64, len(x.CapacityUsed)),
		Scalarized:    make([]float64, len(x.Scalarized)),
		SelectedCount: x.SelectedCount,
		RejectedCount: x.RejectedCount,
		Fitness:       x.Fitness,
		Explored:      x.Explored,
	}
	copy(c.Permutation, x.Permutation)
	copy(c.Selected, x.Selected)
	copy(c.ProfitVector, x.ProfitVector)
	copy(c.CapacityUsed, x.CapacityUsed)
	copy(c.Scalarized, x.Scalarized)
	return c
}
