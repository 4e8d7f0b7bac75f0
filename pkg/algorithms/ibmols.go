package algorithms

import (
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mooptim/ibmols/pkg/framework"
)

const (
	// Name identifies the driver in logs and reports.
	Name = "IBMOLS"

	// DefaultLocalSearchDepth is the number of fill attempts per removal step.
	DefaultLocalSearchDepth = 5
)

// IBMOLS is the indicator-based multi-objective local search driver. Each
// individual of a working population is perturbed by remove-one/fill-some
// moves; a move survives only if the mutated individual displaces the
// worst member of the working population under indicator-based fitness.
// Non-dominated solutions are harvested into a generation archive after
// every individual's sweep.
type IBMOLS struct {
	problem *framework.ProblemDescriptor
	fitness *FitnessEngine
	depth   int
	rng     *rand.Rand
}

// NewIBMOLS wires the driver. A non-positive depth falls back to the default.
func NewIBMOLS(problem *framework.ProblemDescriptor, fitness *FitnessEngine, depth int, rng *rand.Rand) *IBMOLS {
	if depth <= 0 {
		depth = DefaultLocalSearchDepth
	}
	return &IBMOLS{
		problem: problem,
		fitness: fitness,
		depth:   depth,
		rng:     rng,
	}
}

// Search runs full passes over pop until a pass admits nothing into the
// archive. weight is the active scalarizing vector for this generation.
// Returns the total number of archive admissions.
func (s *IBMOLS) Search(pop, archive *framework.Population, weight []float64) int {
	total := ExtractToArchive(pop, archive)

	for pass := 0; ; pass++ {
		admitted := 0
		for i := 0; i < pop.Size(); i++ {
			if pop.Members[i].Explored {
				continue
			}

			x := pop.Members[i].Clone()
			changed := false
			// Selection count snapshot: one removal step per item selected
			// at sweep start, however the selection evolves.
			moves := x.SelectedCount
			for m := 0; m < moves && x.SelectedCount > 0; m++ {
				slot := s.step(pop, x, weight)
				if slot == NoReplacement {
					continue
				}
				changed = true
				if slot > i {
					// Keep the freshly admitted copy out of the remainder
					// of this pass without disturbing exploration order.
					pop.Members[i+1], pop.Members[slot] = pop.Members[slot], pop.Members[i+1]
					i++
				}
			}
			if !changed {
				pop.Members[i].Explored = true
			}

			admitted += ExtractToArchive(pop, archive)
		}
		total += admitted
		klog.V(4).InfoS("local search pass finished", "algorithm", Name, "pass", pass, "admitted", admitted)
		if admitted == 0 {
			return total
		}
	}
}

// step performs one remove/fill move on x and tries to place it in pop.
// On rejection x is restored bit-for-bit to its pre-step state. Returns
// the replaced population index or NoReplacement.
func (s *IBMOLS) step(pop *framework.Population, x *framework.Individual, weight []float64) int {
	removed := s.randomSelected(x)
	if removed < 0 {
		return NoReplacement
	}
	x.RemoveItem(s.problem, removed)

	tried := make([]int, 0, s.depth)
	accepted := make([]int, 0, s.depth)
	for attempt := 0; attempt < s.depth; attempt++ {
		item := s.randomUnselected(x)
		if item < 0 {
			break
		}
		if item == removed || contains(tried, item) {
			continue
		}
		tried = append(tried, item)
		if !s.problem.FitsCapacity(x.CapacityUsed, item) {
			continue
		}
		x.AddItem(s.problem, item)
		accepted = append(accepted, item)
	}

	x.Scalarize(weight)
	s.fitness.UpdateBound(pop)
	slot := s.fitness.SelectAndReplace(pop, x)
	if slot == NoReplacement {
		// Revert: the removed item comes back, every fill is undone.
		x.AddItem(s.problem, removed)
		for _, item := range accepted {
			x.RemoveItem(s.problem, item)
		}
		x.Scalarize(weight)
	}
	return slot
}

// randomSelected picks a uniformly random selected item of x, or -1 when
// nothing is selected.
func (s *IBMOLS) randomSelected(x *framework.Individual) int {
	return s.randomItem(x, true)
}

// randomUnselected picks a uniformly random unselected item of x, or -1
// when everything is selected.
func (s *IBMOLS) randomUnselected(x *framework.Individual) int {
	return s.randomItem(x, false)
}

func (s *IBMOLS) randomItem(x *framework.Individual, selected bool) int {
	n := len(x.Selected)
	// Rejection sampling with a bounded number of draws, then a uniform
	// pick over the explicit index list.
	for tries := 0; tries < n; tries++ {
		item := s.rng.Intn(n)
		if x.Selected[item] == selected {
			return item
		}
	}
	matching := make([]int, 0, n)
	for item, sel := range x.Selected {
		if sel == selected {
			matching = append(matching, item)
		}
	}
	if len(matching) == 0 {
		return -1
	}
	return matching[s.rng.Intn(len(matching))]
}

func contains(items []int, item int) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
