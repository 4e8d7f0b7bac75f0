package mokp

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mooptim/ibmols/pkg/algorithms"
	"github.com/mooptim/ibmols/pkg/framework"
)

// Name identifies the library boundary in logs.
const Name = "MOKP"

// indicatorRho is the scaling constant handed to the indicator kernel.
const indicatorRho = 0.05

// State reports where an Optimizer is in its lifecycle.
type State int

const (
	// StateCreated: parameters accepted, no problem loaded.
	StateCreated State = iota
	// StateReady: problem loaded, generations can run.
	StateReady
	// StateClosed: released, no further use.
	StateClosed
)

// Optimizer is the run context: it owns the problem descriptor, the
// persistent archive, the weight table and cursor, and the PRNG, so
// independent runs can coexist in one process. All methods are intended
// for a single goroutine; the algorithm is synchronous and deterministic
// for a fixed seed.
type Optimizer struct {
	logger  klog.Logger
	params  Parameters
	seed    uint64
	rng     *rand.Rand
	fitness *algorithms.FitnessEngine
	metrics *Metrics

	problem *framework.ProblemDescriptor
	weights *framework.WeightTable
	archive *framework.Population

	state          State
	generations    int
	lastGeneration time.Duration
}

// New builds a run context from parameters. Unset fields are defaulted;
// invalid parameters fail construction.
func New(params Parameters) (*Optimizer, error) {
	SetDefaultsParameters(&params)
	if err := ValidateParameters(&params); err != nil {
		return nil, err
	}

	seed := params.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Optimizer{
		logger:  klog.Background().WithValues("component", Name, "algorithm", params.Algorithm),
		params:  params,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		fitness: algorithms.NewFitnessEngine(algorithms.IndicatorEpsilon, indicatorRho, params.Kappa),
	}, nil
}

// SetMetrics attaches Prometheus collectors; nil detaches.
func (o *Optimizer) SetMetrics(m *Metrics) {
	o.metrics = m
}

// SetProblem installs an instance built from arrays and resets the
// archive. The weight table falls back to uniform weights until
// LoadWeights supplies one.
func (o *Optimizer) SetProblem(capacities []float64, weights, profits [][]int) error {
	if o.state == StateClosed {
		return ErrClosed
	}
	problem, err := framework.NewProblem(capacities, weights, profits)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}
	o.install(problem)
	return nil
}

// LoadProblem installs an instance parsed from a problem file.
func (o *Optimizer) LoadProblem(path string) error {
	if o.state == StateClosed {
		return ErrClosed
	}
	problem, err := ReadProblemFile(path)
	if err != nil {
		return err
	}
	o.install(problem)
	return nil
}

func (o *Optimizer) install(problem *framework.ProblemDescriptor) {
	o.problem = problem
	o.weights = framework.UniformWeightTable(problem.NumObjectives)
	o.archive = framework.NewPopulation(o.params.ArchiveCapacity)
	o.generations = 0
	o.state = StateReady
	o.logger.V(2).Info("Problem installed",
		"objectives", problem.NumObjectives, "items", problem.NumItems, "seed", o.seed)
}

// LoadWeights installs a scalarizing-weight table; requires a loaded
// problem so row width can be checked.
func (o *Optimizer) LoadWeights(path string) error {
	if err := o.ready(); err != nil {
		return err
	}
	table, err := ReadWeightTableFile(path, o.problem.NumObjectives)
	if err != nil {
		return err
	}
	o.weights = table
	return nil
}

// SetWeightTable installs a table built from rows in memory.
func (o *Optimizer) SetWeightTable(rows [][]float64) error {
	if err := o.ready(); err != nil {
		return err
	}
	table, err := framework.NewWeightTable(rows, o.problem.NumObjectives)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	o.weights = table
	return nil
}

// RunGeneration executes one generation: pull the next weight vector,
// seed a working population from the archive, run the local search, and
// harvest into the persistent archive. Returns the number of admitted
// candidate solutions; zero signals no forward progress this generation.
func (o *Optimizer) RunGeneration() (int, error) {
	if err := o.ready(); err != nil {
		return 0, err
	}
	start := time.Now()

	weight := o.weights.Next()
	working := algorithms.SeedFromArchive(o.problem, o.archive, o.params.PopulationSize, o.rng)
	algorithms.ExtractToArchive(working, o.archive)

	for _, x := range working.Members {
		x.Scalarize(weight)
	}
	o.fitness.UpdateBound(working)
	o.fitness.ComputeAll(working)

	generation := framework.NewPopulation(o.params.ArchiveCapacity)
	switch o.params.Algorithm {
	case AlgorithmPerturbation:
		search := algorithms.NewPerturbation(o.problem, o.params.PerturbationRate, o.rng)
		search.Search(working, generation, algorithms.ReseedInterval)
	default:
		search := algorithms.NewIBMOLS(o.problem, o.fitness, o.params.LocalSearchDepth, o.rng)
		search.Search(working, generation, weight)
	}

	admitted := algorithms.ExtractToArchive(generation, o.archive)

	o.generations++
	o.lastGeneration = time.Since(start)
	o.metrics.observe(admitted, o.archive.Size(), o.lastGeneration.Seconds())
	o.logger.V(3).Info("Generation finished",
		"generation", o.generations, "admitted", admitted, "archiveSize", o.archive.Size(),
		"duration", o.lastGeneration)

	return admitted, nil
}

// Run executes up to generations generations, bounded by the configured
// MaxGenerations when generations is non-positive.
func (o *Optimizer) Run(generations int) error {
	if generations <= 0 {
		generations = o.params.MaxGenerations
	}
	for g := 0; g < generations; g++ {
		if _, err := o.RunGeneration(); err != nil {
			return err
		}
	}
	return nil
}

// ParetoSet snapshots the archived front as independent objective
// vectors.
func (o *Optimizer) ParetoSet() []framework.ObjectiveSpacePoint {
	return algorithms.ParetoPoints(o.archive)
}

// ArchiveSize returns the archived solution count.
func (o *Optimizer) ArchiveSize() int {
	if o.archive == nil {
		return 0
	}
	return o.archive.Size()
}

// Result returns the objective vector and item selection of one archived
// solution.
func (o *Optimizer) Result(index int) (framework.ObjectiveSpacePoint, []bool, error) {
	if err := o.ready(); err != nil {
		return nil, nil, err
	}
	if index < 0 || index >= o.archive.Size() {
		return nil, nil, fmt.Errorf("%w: result %d of %d", ErrIndexOutOfRange, index, o.archive.Size())
	}
	x := o.archive.Members[index]
	point := make(framework.ObjectiveSpacePoint, len(x.ProfitVector))
	copy(point, x.ProfitVector)
	selected := make([]bool, len(x.Selected))
	copy(selected, x.Selected)
	return point, selected, nil
}

// SaveResults writes the archived front to a file, one profit vector per
// line.
func (o *Optimizer) SaveResults(path string) error {
	if err := o.ready(); err != nil {
		return err
	}
	return WriteResultsFile(path, o.ParetoSet())
}

// EvaluateSelection computes the objective vector of a caller-supplied
// selection and reports its feasibility.
func (o *Optimizer) EvaluateSelection(selected []bool) (framework.ObjectiveSpacePoint, bool, error) {
	if err := o.ready(); err != nil {
		return nil, false, err
	}
	if len(selected) != o.problem.NumItems {
		return nil, false, fmt.Errorf("%w: selection has %d items, want %d",
			ErrInvalidDimensions, len(selected), o.problem.NumItems)
	}
	point := make(framework.ObjectiveSpacePoint, o.problem.NumObjectives)
	for k := 0; k < o.problem.NumObjectives; k++ {
		for i, in := range selected {
			if in {
				point[k] += float64(o.problem.Profits[k][i])
			}
		}
	}
	return point, o.problem.SelectionFeasible(selected), nil
}

// FeasibleSelection reports whether a selection respects every capacity.
func (o *Optimizer) FeasibleSelection(selected []bool) bool {
	if o.problem == nil {
		return false
	}
	return o.problem.SelectionFeasible(selected)
}

// State reports the lifecycle stage.
func (o *Optimizer) State() State {
	return o.state
}

// Seed returns the effective PRNG seed, useful for reproducing
// time-seeded runs.
func (o *Optimizer) Seed() uint64 {
	return o.seed
}

// Generations returns how many generations have run.
func (o *Optimizer) Generations() int {
	return o.generations
}

// LastGenerationDuration returns the wall-clock time of the most recent
// generation.
func (o *Optimizer) LastGenerationDuration() time.Duration {
	return o.lastGeneration
}

// Close releases the run context. Further calls fail with ErrClosed.
func (o *Optimizer) Close() {
	o.problem = nil
	o.weights = nil
	o.archive = nil
	o.state = StateClosed
}

func (o *Optimizer) ready() error {
	switch o.state {
	case StateClosed:
		return ErrClosed
	case StateCreated:
		return ErrNotLoaded
	}
	return nil
}
