package benchmarks

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/mooptim/ibmols/pkg/framework"
)

// Instance is a named knapsack benchmark instance.
type Instance struct {
	name    string
	problem *framework.ProblemDescriptor
}

// Name returns the instance identifier used in reports and filenames.
func (b *Instance) Name() string {
	return b.name
}

// Problem returns the instance data.
func (b *Instance) Problem() *framework.ProblemDescriptor {
	return b.problem
}

// NewRandom generates an uncorrelated instance: weights and profits
// uniform in [10,100], each capacity at half the total weight of its
// objective, the standard setup in the multi-objective knapsack
// literature.
func NewRandom(numObjectives, numItems int, rng *rand.Rand) (*Instance, error) {
	capacities := make([]float64, numObjectives)
	weights := make([][]int, numObjectives)
	profits := make([][]int, numObjectives)
	for k := 0; k < numObjectives; k++ {
		weights[k] = make([]int, numItems)
		profits[k] = make([]int, numItems)
		total := 0
		for i := 0; i < numItems; i++ {
			weights[k][i] = 10 + rng.Intn(91)
			profits[k][i] = 10 + rng.Intn(91)
			total += weights[k][i]
		}
		capacities[k] = float64(total) / 2
	}

	problem, err := framework.NewProblem(capacities, weights, profits)
	if err != nil {
		return nil, err
	}
	return &Instance{
		name:    fmt.Sprintf("MOKP-%do-%di", numObjectives, numItems),
		problem: problem,
	}, nil
}

// NewTiny returns the fixed 5-item, 2-objective instance used across the
// test suite: a feasible instance small enough to reason about by hand.
func NewTiny() *Instance {
	capacities := []float64{10, 15}
	weights := [][]int{
		{2, 3, 4, 5, 1},
		{1, 2, 3, 4, 2},
	}
	profits := [][]int{
		{3, 4, 5, 6, 2},
		{5, 6, 7, 8, 4},
	}
	problem, err := framework.NewProblem(capacities, weights, profits)
	if err != nil {
		// Static data; cannot fail.
		panic(err)
	}
	return &Instance{name: "MOKP-tiny", problem: problem}
}
