package algorithms

import (
	"github.com/mooptim/ibmols/pkg/framework"
)

// ExtractToArchive merges the archive's members with the candidate
// population and rebuilds the archive from the non-dominated subset, up to
// the archive's capacity. Duplicates are resolved in favor of the lower
// merge-pool index, so a candidate identical to an archived member never
// re-enters. Returns the number of admitted candidate-sourced survivors,
// the driver's progress signal: zero means the pass contributed nothing
// new to the front.
//
// O(t^2) objective comparisons over the merge pool of size
// t = |archive| + |candidates|; admitted members are deep copies.
func ExtractToArchive(candidates, archive *framework.Population) int {
	base := archive.Size()
	pool := make([]*framework.Individual, 0, base+candidates.Size())
	pool = append(pool, archive.Members...)
	pool = append(pool, candidates.Members...)

	archive.Reset()
	admitted := 0
	for i, xi := range pool {
		discarded := false
		for j, xj := range pool {
			if i == j {
				continue
			}
			switch Compare(xi.ProfitVector, xj.ProfitVector) {
			case PreferB:
				discarded = true
			case Duplicate:
				if i > j {
					discarded = true
				}
			}
			if discarded {
				break
			}
		}
		if discarded {
			continue
		}
		if !archive.Append(xi.Clone()) {
			// Capacity reached: remaining survivors are dropped, existing
			// members are never displaced.
			break
		}
		if i >= base {
			admitted++
		}
	}
	return admitted
}
