package mokp

import (
	"fmt"
)

// ValidateParameters checks a defaulted parameter set.
func ValidateParameters(params *Parameters) error {
	if params.PopulationSize < 1 {
		return fmt.Errorf("population size must be positive, got %d", params.PopulationSize)
	}
	if params.MaxGenerations < 1 {
		return fmt.Errorf("max generations must be positive, got %d", params.MaxGenerations)
	}
	if params.ArchiveCapacity < 1 {
		return fmt.Errorf("archive capacity must be positive, got %d", params.ArchiveCapacity)
	}
	if params.PerturbationRate < 0 || params.PerturbationRate > 1 {
		return fmt.Errorf("perturbation rate must be between 0 and 1, got %v", params.PerturbationRate)
	}
	if params.Kappa <= 0 {
		return fmt.Errorf("kappa must be positive, got %v", params.Kappa)
	}
	if params.LocalSearchDepth < 1 {
		return fmt.Errorf("local search depth must be positive, got %d", params.LocalSearchDepth)
	}
	switch params.Algorithm {
	case AlgorithmIBMOLS, AlgorithmPerturbation:
	default:
		return fmt.Errorf("unknown algorithm %q", params.Algorithm)
	}
	return nil
}
