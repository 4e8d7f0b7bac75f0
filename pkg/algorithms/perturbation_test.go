package algorithms_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/mooptim/ibmols/pkg/algorithms"
	"github.com/mooptim/ibmols/pkg/benchmarks"
	"github.com/mooptim/ibmols/pkg/framework"
)

func TestPerturbationArchivesFeasibleFront(t *testing.T) {
	problem := benchmarks.NewTiny().Problem()
	rng := rand.New(rand.NewSource(2))

	pop := algorithms.SeedFromArchive(problem, framework.NewPopulation(0), 6, rng)
	archive := framework.NewPopulation(100)

	search := algorithms.NewPerturbation(problem, 0.05, rng)
	search.Search(pop, archive, 2*algorithms.ReseedInterval)

	if archive.Size() == 0 {
		t.Fatal("perturbation archived nothing")
	}
	points := algorithms.ParetoPoints(archive)
	for i, p := range points {
		for j, q := range points {
			if i != j && algorithms.Dominates(q, p) {
				t.Errorf("archived point %v dominated by %v", p, q)
			}
		}
	}
	for i, x := range archive.Members {
		if !problem.SelectionFeasible(x.Selected) {
			t.Errorf("archive member %d infeasible: %v", i, x.Selected)
		}
	}
}

func TestPerturbationKeepsPopulationSize(t *testing.T) {
	problem := benchmarks.NewTiny().Problem()
	rng := rand.New(rand.NewSource(9))

	pop := algorithms.SeedFromArchive(problem, framework.NewPopulation(0), 8, rng)
	archive := framework.NewPopulation(100)

	search := algorithms.NewPerturbation(problem, 0.1, rng)
	search.Search(pop, archive, algorithms.ReseedInterval)

	if pop.Size() != 8 {
		t.Errorf("population size drifted: got %d, want 8", pop.Size())
	}
}
