package algorithms

import (
	"golang.org/x/exp/rand"

	"github.com/mooptim/ibmols/pkg/framework"
)

// PerturbationName identifies the simpler variant in logs and reports.
const PerturbationName = "Perturbation"

// ReseedInterval is the iteration period after which the back half of
// the working population is reinitialized.
const ReseedInterval = 10

// Perturbation is the perturbation-only local search: each iteration
// applies a handful of random transpositions to every individual's
// construction order, re-runs the greedy evaluator, and harvests the
// population into the archive. No fitness model is involved; the
// non-dominated filter alone decides what survives.
type Perturbation struct {
	problem *framework.ProblemDescriptor
	rate    float64
	rng     *rand.Rand
}

// NewPerturbation wires the variant with the given perturbation rate.
func NewPerturbation(problem *framework.ProblemDescriptor, rate float64, rng *rand.Rand) *Perturbation {
	return &Perturbation{
		problem: problem,
		rate:    rate,
		rng:     rng,
	}
}

// Search runs the given number of perturbation iterations over pop,
// harvesting into archive each time. Returns total archive admissions.
func (s *Perturbation) Search(pop, archive *framework.Population, iterations int) int {
	n := s.problem.NumItems
	total := 0
	for iter := 0; iter < iterations; iter++ {
		for _, x := range pop.Members {
			changes := int(s.rate*float64(x.SelectedCount)) + 1
			for c := 0; c < changes; c++ {
				i, j := s.rng.Intn(n), s.rng.Intn(n)
				x.Permutation[i], x.Permutation[j] = x.Permutation[j], x.Permutation[i]
			}
			x.Evaluate(s.problem)
		}

		total += ExtractToArchive(pop, archive)

		// Periodically restart the back half to escape stagnation.
		if iter%ReseedInterval == ReseedInterval-1 {
			for i := pop.Size() / 2; i < pop.Size(); i++ {
				x := framework.NewIndividual(s.problem)
				x.Shuffle(s.rng)
				x.Evaluate(s.problem)
				pop.Members[i] = x
			}
		}
	}
	return total
}
