package analysis_test

import (
	"math"
	"testing"

	"github.com/mooptim/ibmols/pkg/analysis"
	"github.com/mooptim/ibmols/pkg/framework"
)

func points(coords ...[2]float64) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, len(coords))
	for i, c := range coords {
		out[i] = framework.ObjectiveSpacePoint{c[0], c[1]}
	}
	return out
}

func TestSpacing(t *testing.T) {
	if s := analysis.Spacing(points([2]float64{1, 1}, [2]float64{2, 2})); s != 0 {
		t.Errorf("spacing of a two-point front: got %v, want 0", s)
	}

	// Evenly spaced collinear points: every nearest-neighbor distance is
	// identical, so the deviation vanishes.
	even := points([2]float64{0, 4}, [2]float64{1, 3}, [2]float64{2, 2}, [2]float64{3, 1})
	if s := analysis.Spacing(even); math.Abs(s) > 1e-12 {
		t.Errorf("spacing of an even front: got %v, want 0", s)
	}

	uneven := points([2]float64{0, 10}, [2]float64{1, 9}, [2]float64{10, 0})
	if s := analysis.Spacing(uneven); s <= 0 {
		t.Errorf("spacing of an uneven front: got %v, want positive", s)
	}
}

func TestHypervolume2D(t *testing.T) {
	origin := framework.ObjectiveSpacePoint{0, 0}

	// Single point: a plain rectangle.
	if hv := analysis.Hypervolume2D(points([2]float64{2, 3}), origin); hv != 6 {
		t.Errorf("single-point hypervolume: got %v, want 6", hv)
	}

	// Two-point staircase: 3x2 plus the 1-wide strip up to 4.
	front := points([2]float64{3, 2}, [2]float64{1, 4})
	if hv := analysis.Hypervolume2D(front, origin); hv != 8 {
		t.Errorf("staircase hypervolume: got %v, want 8", hv)
	}

	// Dominated points contribute nothing.
	withDominated := points([2]float64{3, 2}, [2]float64{1, 4}, [2]float64{1, 1})
	if hv := analysis.Hypervolume2D(withDominated, origin); hv != 8 {
		t.Errorf("hypervolume with dominated point: got %v, want 8", hv)
	}

	// Points at or below the reference are ignored.
	shifted := framework.ObjectiveSpacePoint{1, 1}
	if hv := analysis.Hypervolume2D(points([2]float64{3, 2}, [2]float64{1, 4}), shifted); hv != 2 {
		t.Errorf("shifted-reference hypervolume: got %v, want 2", hv)
	}

	if hv := analysis.Hypervolume2D(nil, origin); hv != 0 {
		t.Errorf("empty-front hypervolume: got %v, want 0", hv)
	}
}

func TestCoverage(t *testing.T) {
	a := points([2]float64{3, 3}, [2]float64{1, 5})
	b := points([2]float64{2, 2}, [2]float64{1, 5}, [2]float64{5, 1})

	// (2,2) and the duplicate (1,5) are weakly dominated; (5,1) is not.
	got := analysis.Coverage(a, b)
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Coverage: got %v, want %v", got, want)
	}

	if analysis.Coverage(a, nil) != 0 {
		t.Error("coverage of an empty front must be 0")
	}
	if analysis.Coverage(a, a) != 1 {
		t.Error("a front covers itself")
	}
}
