package mokp

// Algorithm names accepted by Parameters.Algorithm.
const (
	AlgorithmIBMOLS       = "IBMOLS"
	AlgorithmPerturbation = "Perturbation"
)

// Parameters configures one optimization run. Zero values are filled by
// SetDefaultsParameters; ValidateParameters rejects anything the engine
// cannot run with. The JSON tags serve the YAML config loading of the CLI.
type Parameters struct {
	// PopulationSize is the working-set size seeded from the archive each
	// generation.
	PopulationSize int `json:"populationSize,omitempty"`

	// MaxGenerations bounds Run; RunGeneration ignores it.
	MaxGenerations int `json:"maxGenerations,omitempty"`

	// ArchiveCapacity bounds the persistent non-dominated archive.
	ArchiveCapacity int `json:"archiveCapacity,omitempty"`

	// PerturbationRate drives the perturbation-only variant; the IBMOLS
	// driver does not read it.
	PerturbationRate float64 `json:"perturbationRate,omitempty"`

	// Kappa is the fitness sharpness constant; smaller values amplify
	// small indicator differences.
	Kappa float64 `json:"kappa,omitempty"`

	// LocalSearchDepth is the number of fill attempts per removal step.
	LocalSearchDepth int `json:"localSearchDepth,omitempty"`

	// RandomSeed seeds the run's PRNG; zero derives a seed from the clock.
	RandomSeed uint64 `json:"randomSeed,omitempty"`

	// Algorithm selects the local search driver.
	Algorithm string `json:"algorithm,omitempty"`
}
