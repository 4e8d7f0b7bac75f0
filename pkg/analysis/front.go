// Package analysis computes quality metrics over approximated Pareto
// fronts, for benchmarking runs against each other.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mooptim/ibmols/pkg/framework"
)

// Spacing is Schott's spacing metric: the standard deviation of
// nearest-neighbor distances within the front. Zero means perfectly even
// spacing; it is also zero for fronts of fewer than three points.
func Spacing(front []framework.ObjectiveSpacePoint) float64 {
	if len(front) < 3 {
		return 0
	}
	nearest := make([]float64, len(front))
	for i, p := range front {
		best := -1.0
		for j, q := range front {
			if i == j {
				continue
			}
			if d := floats.Distance(p, q, 2); best < 0 || d < best {
				best = d
			}
		}
		nearest[i] = best
	}
	return stat.StdDev(nearest, nil)
}

// Hypervolume2D computes the hypervolume of a two-objective front with
// respect to a reference point dominated by every front member (both
// objectives maximized). Dominated and out-of-range points contribute
// nothing.
func Hypervolume2D(front []framework.ObjectiveSpacePoint, reference framework.ObjectiveSpacePoint) float64 {
	points := make([]framework.ObjectiveSpacePoint, 0, len(front))
	for _, p := range front {
		if len(p) != 2 || p[0] <= reference[0] || p[1] <= reference[1] {
			continue
		}
		dominated := false
		for _, q := range front {
			if len(q) == 2 && q[0] >= p[0] && q[1] >= p[1] && (q[0] > p[0] || q[1] > p[1]) {
				dominated = true
				break
			}
		}
		if !dominated {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return 0
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i][0] != points[j][0] {
			return points[i][0] > points[j][0]
		}
		return points[i][1] > points[j][1]
	})

	volume := 0.0
	prev := reference[1]
	for _, p := range points {
		if p[1] <= prev {
			continue
		}
		volume += (p[0] - reference[0]) * (p[1] - prev)
		prev = p[1]
	}
	return volume
}

// Coverage returns the fraction of front b whose points are weakly
// dominated by at least one point of front a (the C-metric). One means a
// covers b entirely; zero means it covers nothing.
func Coverage(a, b []framework.ObjectiveSpacePoint) float64 {
	if len(b) == 0 {
		return 0
	}
	covered := 0
	for _, q := range b {
		for _, p := range a {
			if weaklyDominates(p, q) {
				covered++
				break
			}
		}
	}
	return float64(covered) / float64(len(b))
}

func weaklyDominates(p, q framework.ObjectiveSpacePoint) bool {
	for k := range p {
		if p[k] < q[k] {
			return false
		}
	}
	return true
}
