package algorithms_test

import (
	"math"
	"testing"

	"github.com/mooptim/ibmols/pkg/algorithms"
	"github.com/mooptim/ibmols/pkg/framework"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b framework.ObjectiveSpacePoint
		want bool
	}{
		{"strictly better everywhere", framework.ObjectiveSpacePoint{2, 3}, framework.ObjectiveSpacePoint{1, 2}, true},
		{"better on one, equal on other", framework.ObjectiveSpacePoint{2, 2}, framework.ObjectiveSpacePoint{1, 2}, true},
		{"identical", framework.ObjectiveSpacePoint{2, 2}, framework.ObjectiveSpacePoint{2, 2}, false},
		{"incomparable", framework.ObjectiveSpacePoint{3, 1}, framework.ObjectiveSpacePoint{1, 3}, false},
		{"dominated", framework.ObjectiveSpacePoint{1, 1}, framework.ObjectiveSpacePoint{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := algorithms.Dominates(tt.a, tt.b); got != tt.want {
				t.Errorf("Dominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDominatesIsAsymmetric(t *testing.T) {
	a := framework.ObjectiveSpacePoint{5, 7}
	b := framework.ObjectiveSpacePoint{4, 6}
	if algorithms.Dominates(a, b) && algorithms.Dominates(b, a) {
		t.Error("both directions dominate")
	}
}

func TestCompare(t *testing.T) {
	a := framework.ObjectiveSpacePoint{2, 2}
	if algorithms.Compare(a, a) != algorithms.Duplicate {
		t.Error("identical points must compare as Duplicate")
	}
	if algorithms.Compare(framework.ObjectiveSpacePoint{1, 1}, framework.ObjectiveSpacePoint{2, 2}) != algorithms.PreferB {
		t.Error("dominated point must compare as PreferB")
	}
	if algorithms.Compare(framework.ObjectiveSpacePoint{3, 1}, framework.ObjectiveSpacePoint{1, 3}) != algorithms.PreferA {
		t.Error("incomparable pair must compare as PreferA")
	}
}

func TestAdditiveEpsilon(t *testing.T) {
	a := []float64{3, 5}
	if eps := algorithms.AdditiveEpsilon(a, a); eps != 0 {
		t.Errorf("epsilon of a point against itself: got %v, want 0", eps)
	}

	// a needs +2 on the second objective to weakly dominate b.
	b := []float64{1, 7}
	if eps := algorithms.AdditiveEpsilon(a, b); eps != 2 {
		t.Errorf("AdditiveEpsilon(%v, %v) = %v, want 2", a, b, eps)
	}
	// b needs +2 on the first objective to reach a.
	if eps := algorithms.AdditiveEpsilon(b, a); eps != 2 {
		t.Errorf("AdditiveEpsilon(%v, %v) = %v, want 2", b, a, eps)
	}

	// Strictly dominating points have negative epsilon.
	worse := []float64{2, 4}
	if eps := algorithms.AdditiveEpsilon(a, worse); eps != -1 {
		t.Errorf("AdditiveEpsilon(%v, %v) = %v, want -1", a, worse, eps)
	}
}

func TestIndicatorValueEpsilonSign(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{2, 2}

	// b dominates a, so the value of b relative to a is negative.
	if v := algorithms.IndicatorValue(a, b, algorithms.IndicatorEpsilon, 0.05, 2); v >= 0 {
		t.Errorf("IndicatorValue(a, dominating b) = %v, want negative", v)
	}
	if v := algorithms.IndicatorValue(b, a, algorithms.IndicatorEpsilon, 0.05, 2); v <= 0 {
		t.Errorf("IndicatorValue(b, dominated a) = %v, want positive", v)
	}
}

func TestIndicatorValueNormalization(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{2, 2}

	// AdditiveEpsilon(b, a) is -1; the bound divides it.
	if v := algorithms.IndicatorValue(a, b, algorithms.IndicatorEpsilon, 0.05, 4); math.Abs(v-(-0.25)) > 1e-12 {
		t.Errorf("normalized epsilon = %v, want -0.25", v)
	}
	// A zero bound falls back to 1.
	if v := algorithms.IndicatorValue(a, b, algorithms.IndicatorEpsilon, 0.05, 0); math.Abs(v-(-1)) > 1e-12 {
		t.Errorf("unbounded epsilon = %v, want -1", v)
	}
}

func TestIndicatorValueHypervolume(t *testing.T) {
	a := []float64{2, 2}
	b := []float64{1, 1}

	// Normalized by bound 2, a covers the unit box and b a quarter of
	// it; the exclusive difference is 0.75, scaled by 1/rho. The
	// dominated b scores negative relative to a.
	got := algorithms.IndicatorValue(a, b, algorithms.IndicatorHypervolume, 0.25, 2)
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("hypervolume indicator = %v, want 3", got)
	}
	got = algorithms.IndicatorValue(b, a, algorithms.IndicatorHypervolume, 0.25, 2)
	if math.Abs(got-(-3)) > 1e-12 {
		t.Errorf("hypervolume indicator reversed = %v, want -3", got)
	}
}
