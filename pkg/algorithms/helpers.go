package algorithms

import (
	"github.com/mooptim/ibmols/pkg/framework"
)

// ParetoPoints extracts the objective vectors of a population as
// independent copies, the form the plotting and analysis layers consume.
func ParetoPoints(pop *framework.Population) []framework.ObjectiveSpacePoint {
	if pop == nil || pop.Size() == 0 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, pop.Size())
	for i, x := range pop.Members {
		point := make(framework.ObjectiveSpacePoint, len(x.ProfitVector))
		copy(point, x.ProfitVector)
		points[i] = point
	}
	return points
}
