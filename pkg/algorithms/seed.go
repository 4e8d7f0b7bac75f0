package algorithms

import (
	"golang.org/x/exp/rand"

	"github.com/mooptim/ibmols/pkg/framework"
)

// SeedFromArchive builds a working population of the given size. Archive
// members are drawn without replacement in shuffled order; when the
// archive is smaller than the working set, the remaining slots are filled
// with random greedy-evaluated individuals. Exploration flags and fitness
// are reset on every seeded member.
func SeedFromArchive(problem *framework.ProblemDescriptor, archive *framework.Population, size int, rng *rand.Rand) *framework.Population {
	pool := size
	if archive.Size() > pool {
		pool = archive.Size()
	}
	perm := rng.Perm(pool)

	pop := framework.NewPopulation(size)
	for i := 0; i < size; i++ {
		var x *framework.Individual
		if perm[i] < archive.Size() {
			x = archive.Members[perm[i]].Clone()
		} else {
			x = framework.NewIndividual(problem)
			x.Shuffle(rng)
			x.Evaluate(problem)
		}
		x.Explored = false
		x.Fitness = framework.FitnessSentinel
		pop.Append(x)
	}
	return pop
}
