package algorithms

import (
	"github.com/mooptim/ibmols/pkg/framework"
)

// IndicatorKind selects the binary quality indicator family feeding the
// fitness engine.
type IndicatorKind int

const (
	// IndicatorEpsilon is the additive epsilon indicator, the kernel the
	// local search runs on.
	IndicatorEpsilon IndicatorKind = iota
	// IndicatorHypervolume is the signed hypervolume-difference indicator,
	// scaled by rho.
	IndicatorHypervolume
)

// Dominance is the tri-state outcome of a pairwise comparison under the
// maximization convention.
type Dominance int

const (
	// PreferA: a is strictly better on at least one objective.
	PreferA Dominance = 1
	// Duplicate: identical on every objective; callers break the tie by index.
	Duplicate Dominance = 0
	// PreferB: a is nowhere better and somewhere worse, so b dominates a.
	PreferB Dominance = -1
)

// Dominates reports whether a dominates b: not worse on every objective
// and strictly better on at least one. All objectives are maximized.
func Dominates(a, b framework.ObjectiveSpacePoint) bool {
	better := false
	for i := range a {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			better = true
		}
	}
	return better
}

// Compare classifies the pair (a, b) for the archive filter.
func Compare(a, b framework.ObjectiveSpacePoint) Dominance {
	good := PreferB
	equal := true
	for i := range a {
		if a[i] > b[i] {
			good = PreferA
		}
		if a[i] != b[i] {
			equal = false
		}
	}
	if equal {
		return Duplicate
	}
	return good
}

// AdditiveEpsilon returns the minimal epsilon such that shifting every
// objective of a by epsilon makes it weakly dominate b. Negative iff a
// already strictly exceeds b everywhere; zero for identical points.
func AdditiveEpsilon(a, b []float64) float64 {
	eps := b[0] - a[0]
	for k := 1; k < len(a); k++ {
		if d := b[k] - a[k]; d > eps {
			eps = d
		}
	}
	return eps
}

// IndicatorValue is the numeric kernel of the fitness engine. It measures
// the quality of b relative to a: negative when b dominates a, positive
// when b would have to improve to reach a. Values are normalized by
// maxBound, the largest scalarized objective value in the reference
// population; rho scales the hypervolume family only.
func IndicatorValue(a, b []float64, kind IndicatorKind, rho, maxBound float64) float64 {
	if maxBound == 0 {
		maxBound = 1
	}
	switch kind {
	case IndicatorHypervolume:
		return hypervolumeDiff(a, b, len(a), maxBound) / rho
	default:
		return AdditiveEpsilon(b, a) / maxBound
	}
}

// hypervolumeDiff returns vol(a not b) - vol(b not a) over the first d
// dimensions, with the origin as reference point and coordinates
// normalized by bound. Negative iff b claims more exclusive volume than a.
func hypervolumeDiff(a, b []float64, d int, bound float64) float64 {
	return exclusiveVolume(a, b, d, bound) - exclusiveVolume(b, a, d, bound)
}

// exclusiveVolume computes the normalized volume dominated by a but not
// by b in the first d dimensions. A nil b yields the full box of a.
func exclusiveVolume(a, b []float64, d int, bound float64) float64 {
	av := a[d-1] / bound
	if d == 1 {
		if b == nil {
			return av
		}
		if bv := b[0] / bound; av > bv {
			return av - bv
		}
		return 0
	}
	if b == nil {
		return exclusiveVolume(a, nil, d-1, bound) * av
	}
	bv := b[d-1] / bound
	if av > bv {
		return exclusiveVolume(a, nil, d-1, bound)*(av-bv) +
			exclusiveVolume(a, b, d-1, bound)*bv
	}
	return exclusiveVolume(a, b, d-1, bound) * av
}
