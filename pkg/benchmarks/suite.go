package benchmarks

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mooptim/ibmols/pkg/analysis"
	"github.com/mooptim/ibmols/pkg/framework"
	"github.com/mooptim/ibmols/pkg/mokp"
	"github.com/mooptim/ibmols/pkg/util"
)

// TestSuite runs the optimizer over a set of knapsack instances.
type TestSuite struct {
	instances []*Instance
	params    mokp.Parameters
}

// NewTestSuite creates a new benchmark test suite.
func NewTestSuite(params mokp.Parameters) *TestSuite {
	mokp.SetDefaultsParameters(&params)
	return &TestSuite{
		params: params,
	}
}

// AddInstance adds an instance to the test suite.
func (ts *TestSuite) AddInstance(inst *Instance) {
	ts.instances = append(ts.instances, inst)
}

// AddStandardInstances adds randomly generated instances of the usual
// benchmark sizes, reproducible for a given seed.
func (ts *TestSuite) AddStandardInstances(seed uint64) {
	rng := rand.New(rand.NewSource(seed))

	sizes := []struct{ objectives, items int }{
		// Bi-objective instances of increasing size.
		{2, 50},
		{2, 100},
		{2, 250},
		// Tri- and quad-objective versions.
		{3, 100},
		{4, 100},
	}
	for _, s := range sizes {
		inst, err := NewRandom(s.objectives, s.items, rng)
		if err != nil {
			// Static sizes; cannot fail.
			panic(err)
		}
		ts.AddInstance(inst)
	}
}

// Run executes the test suite, writing result files (and plots for
// bi-objective instances) into outputDir.
func (ts *TestSuite) Run(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, inst := range ts.instances {
		klog.InfoS("Running benchmark instance", "algorithm", ts.params.Algorithm, "instance", inst.Name())

		opt, err := mokp.New(ts.params)
		if err != nil {
			return err
		}
		problem := inst.Problem()
		if err := opt.SetProblem(problem.Capacities, problem.Weights, problem.Profits); err != nil {
			return err
		}
		if err := opt.Run(0); err != nil {
			return err
		}

		front := opt.ParetoSet()
		outputFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results", inst.Name(), ts.params.Algorithm))
		if err := opt.SaveResults(outputFile); err != nil {
			klog.ErrorS(err, "Failed to save results", "instance", inst.Name())
		}

		if problem.NumObjectives == 2 {
			plotFile := outputFile + ".html"
			title := fmt.Sprintf("%s Results for %s", ts.params.Algorithm, inst.Name())
			if err := util.PlotFront(front, nil, title, plotFile); err != nil {
				klog.ErrorS(err, "Failed to plot results", "instance", inst.Name())
			}
			reference := framework.ObjectiveSpacePoint{0, 0}
			klog.InfoS("Benchmark instance done",
				"instance", inst.Name(),
				"archiveSize", len(front),
				"spacing", fmt.Sprintf("%.4f", analysis.Spacing(front)),
				"hypervolume", fmt.Sprintf("%.1f", analysis.Hypervolume2D(front, reference)))
		} else {
			klog.InfoS("Benchmark instance done",
				"instance", inst.Name(),
				"archiveSize", len(front),
				"spacing", fmt.Sprintf("%.4f", analysis.Spacing(front)))
		}

		opt.Close()
	}

	return nil
}
