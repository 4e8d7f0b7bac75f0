package mokp

import (
	"k8s.io/klog/v2"
)

// Default run parameters.
const (
	DefaultPopulationSize   = 10
	DefaultMaxGenerations   = 100
	DefaultArchiveCapacity  = 28000
	DefaultPerturbationRate = 0.05
	DefaultKappa            = 0.05
	DefaultLocalSearchDepth = 5
)

// SetDefaultsParameters fills unset parameter fields in place.
func SetDefaultsParameters(params *Parameters) {
	klog.V(5).InfoS("Applying parameter defaults", "component", Name)

	if params.PopulationSize == 0 {
		params.PopulationSize = DefaultPopulationSize
	}
	if params.MaxGenerations == 0 {
		params.MaxGenerations = DefaultMaxGenerations
	}
	if params.ArchiveCapacity == 0 {
		params.ArchiveCapacity = DefaultArchiveCapacity
	}
	if params.PerturbationRate == 0 {
		params.PerturbationRate = DefaultPerturbationRate
	}
	if params.Kappa == 0 {
		params.Kappa = DefaultKappa
	}
	if params.LocalSearchDepth == 0 {
		params.LocalSearchDepth = DefaultLocalSearchDepth
	}
	if params.Algorithm == "" {
		params.Algorithm = AlgorithmIBMOLS
	}
}
