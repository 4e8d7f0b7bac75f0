package algorithms

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mooptim/ibmols/pkg/framework"
)

// NoReplacement is returned by SelectAndReplace when the candidate did not
// displace anyone.
const NoReplacement = -1

// DefaultReplacementThreshold is the minimum fitness margin a candidate
// needs over the worst member before a replacement happens.
const DefaultReplacementThreshold = 1e-7

// FitnessEngine assigns indicator-based fitness: each individual
// accumulates exp(-I/kappa) over its pairwise indicator values against the
// rest of the reference population. Lower fitness means more dominated.
// Kappa sharpens the exponential; smaller values amplify small indicator
// differences.
type FitnessEngine struct {
	Kind      IndicatorKind
	Rho       float64
	Kappa     float64
	Threshold float64

	maxBound float64
}

// NewFitnessEngine builds an engine with the default replacement threshold.
func NewFitnessEngine(kind IndicatorKind, rho, kappa float64) *FitnessEngine {
	return &FitnessEngine{
		Kind:      kind,
		Rho:       rho,
		Kappa:     kappa,
		Threshold: DefaultReplacementThreshold,
	}
}

// UpdateBound recomputes the normalization bound as the largest scalarized
// objective value across the population. Must be called after any
// scalarization change and before fitness computation.
func (e *FitnessEngine) UpdateBound(pop *framework.Population) {
	if pop.Size() == 0 {
		e.maxBound = 1
		return
	}
	bound := floats.Max(pop.Members[0].Scalarized)
	for _, y := range pop.Members[1:] {
		if m := floats.Max(y.Scalarized); m > bound {
			bound = m
		}
	}
	e.maxBound = bound
}

// Bound returns the current normalization bound.
func (e *FitnessEngine) Bound() float64 {
	return e.maxBound
}

// contribution is the fitness term individual y contributes to x.
func (e *FitnessEngine) contribution(y, x *framework.Individual) float64 {
	return math.Exp(-IndicatorValue(y.Scalarized, x.Scalarized, e.Kind, e.Rho, e.maxBound) / e.Kappa)
}

// ComputeFitness fully recomputes the fitness of x against pop, skipping
// x itself if it is a member.
func (e *FitnessEngine) ComputeFitness(x *framework.Individual, pop *framework.Population) {
	x.Fitness = 0
	for _, y := range pop.Members {
		if y == x {
			continue
		}
		x.Fitness += e.contribution(y, x)
	}
}

// ComputeAll assigns fitness to every member of pop.
func (e *FitnessEngine) ComputeAll(pop *framework.Population) {
	for _, x := range pop.Members {
		e.ComputeFitness(x, pop)
	}
}

// OnInsert adds the inserted member's indicator contribution to every
// other member's fitness.
func (e *FitnessEngine) OnInsert(inserted *framework.Individual, pop *framework.Population) {
	for _, y := range pop.Members {
		if y == inserted {
			continue
		}
		y.Fitness += e.contribution(inserted, y)
	}
}

// OnRemove subtracts the removed member's prior contribution from every
// remaining member's fitness.
func (e *FitnessEngine) OnRemove(removed *framework.Individual, pop *framework.Population) {
	for _, y := range pop.Members {
		if y == removed {
			continue
		}
		y.Fitness -= e.contribution(removed, y)
	}
}

// SelectAndReplace evaluates candidate against pop and replaces the
// worst-fitness member with a copy of it, but only when the candidate's
// fitness exceeds the worst one's by more than the threshold. The
// population is untouched on rejection, so callers can revert tentative
// mutations. Returns the replaced index or NoReplacement.
func (e *FitnessEngine) SelectAndReplace(pop *framework.Population, candidate *framework.Individual) int {
	if pop.Size() == 0 {
		return NoReplacement
	}

	e.ComputeFitness(candidate, pop)

	worst := 0
	for i, y := range pop.Members[1:] {
		if y.Fitness < pop.Members[worst].Fitness {
			worst = i + 1
		}
	}

	removed := pop.Members[worst]
	if candidate.Fitness-removed.Fitness <= e.Threshold {
		return NoReplacement
	}

	// Signed incremental maintenance: drop the displaced member's
	// contribution, add the incoming one's.
	e.OnRemove(removed, pop)
	incoming := candidate.Clone()
	// The candidate's fitness was summed against a population that still
	// contained the displaced member.
	incoming.Fitness -= e.contribution(removed, candidate)
	pop.Members[worst] = incoming
	e.OnInsert(incoming, pop)

	return worst
}
