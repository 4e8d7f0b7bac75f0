package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/mooptim/ibmols/pkg/benchmarks"
	"github.com/mooptim/ibmols/pkg/mokp"
	"github.com/mooptim/ibmols/pkg/util"
)

type runOptions struct {
	problemFile string
	weightsFile string
	configFile  string
	outputFile  string
	plotFile    string
	params      mokp.Parameters
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "ibmols",
		Short: "Indicator-based multi-objective local search for knapsack instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
		SilenceUsage: true,
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.problemFile, "problem", "", "path to the knapsack instance file")
	fs.StringVar(&opts.weightsFile, "weights", "", "path to a scalarizing-weight table (uniform weights when unset)")
	fs.StringVar(&opts.configFile, "config", "", "path to a YAML parameters file; flags override it")
	fs.StringVar(&opts.outputFile, "output", "", "path for the result file (stdout summary only when unset)")
	fs.StringVar(&opts.plotFile, "plot", "", "path for an HTML scatter plot of the front (2-objective instances only)")
	fs.IntVar(&opts.params.PopulationSize, "population", 0, "working population size")
	fs.IntVar(&opts.params.MaxGenerations, "generations", 0, "number of generations to run")
	fs.IntVar(&opts.params.ArchiveCapacity, "archive-capacity", 0, "persistent archive capacity")
	fs.IntVar(&opts.params.LocalSearchDepth, "depth", 0, "fill attempts per local-search step")
	fs.Float64Var(&opts.params.Kappa, "kappa", 0, "fitness sharpness constant")
	fs.Float64Var(&opts.params.PerturbationRate, "perturbation-rate", 0, "swap rate for the perturbation variant")
	fs.Uint64Var(&opts.params.RandomSeed, "seed", 0, "PRNG seed (0 derives one from the clock)")
	fs.StringVar(&opts.params.Algorithm, "algorithm", "", "search driver: IBMOLS or Perturbation")

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd.AddCommand(newBenchCommand())
	return cmd
}

func run(opts *runOptions) error {
	if opts.problemFile == "" {
		return fmt.Errorf("--problem is required")
	}

	params, err := loadParameters(opts)
	if err != nil {
		return err
	}
	mokp.SetDefaultsParameters(&params)

	opt, err := mokp.New(params)
	if err != nil {
		return err
	}
	defer opt.Close()

	if err := opt.LoadProblem(opts.problemFile); err != nil {
		return err
	}
	if opts.weightsFile != "" {
		if err := opt.LoadWeights(opts.weightsFile); err != nil {
			return err
		}
	}

	if err := opt.Run(params.MaxGenerations); err != nil {
		return err
	}

	front := opt.ParetoSet()
	klog.InfoS("Run finished",
		"generations", opt.Generations(),
		"archiveSize", len(front),
		"seed", opt.Seed(),
		"lastGeneration", opt.LastGenerationDuration())

	if opts.outputFile != "" {
		if err := opt.SaveResults(opts.outputFile); err != nil {
			return err
		}
	}
	if opts.plotFile != "" {
		title := fmt.Sprintf("%s Front for %s", params.Algorithm, opts.problemFile)
		if err := util.PlotFront(front, nil, title, opts.plotFile); err != nil {
			return err
		}
	}
	return nil
}

// loadParameters merges the YAML config file, if any, with the flag
// values. Flags win: YAML fills only fields the flags left at zero.
func loadParameters(opts *runOptions) (mokp.Parameters, error) {
	params := opts.params
	if opts.configFile == "" {
		return params, nil
	}

	data, err := os.ReadFile(opts.configFile)
	if err != nil {
		return params, err
	}
	var fromFile mokp.Parameters
	if err := yaml.UnmarshalStrict(data, &fromFile); err != nil {
		return params, fmt.Errorf("parsing %s: %w", opts.configFile, err)
	}

	if params.PopulationSize == 0 {
		params.PopulationSize = fromFile.PopulationSize
	}
	if params.MaxGenerations == 0 {
		params.MaxGenerations = fromFile.MaxGenerations
	}
	if params.ArchiveCapacity == 0 {
		params.ArchiveCapacity = fromFile.ArchiveCapacity
	}
	if params.LocalSearchDepth == 0 {
		params.LocalSearchDepth = fromFile.LocalSearchDepth
	}
	if params.Kappa == 0 {
		params.Kappa = fromFile.Kappa
	}
	if params.PerturbationRate == 0 {
		params.PerturbationRate = fromFile.PerturbationRate
	}
	if params.RandomSeed == 0 {
		params.RandomSeed = fromFile.RandomSeed
	}
	if params.Algorithm == "" {
		params.Algorithm = fromFile.Algorithm
	}
	return params, nil
}

func newBenchCommand() *cobra.Command {
	var (
		outputDir string
		seed      uint64
		params    mokp.Parameters
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the optimizer over the standard benchmark instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			params.RandomSeed = seed
			suite := benchmarks.NewTestSuite(params)
			suite.AddStandardInstances(seed)
			return suite.Run(outputDir)
		},
		SilenceUsage: true,
	}

	fs := cmd.Flags()
	fs.StringVar(&outputDir, "output-dir", "bench-results", "directory for result files and plots")
	fs.Uint64Var(&seed, "seed", 1, "seed for instance generation and the runs")
	fs.IntVar(&params.MaxGenerations, "generations", 0, "number of generations per instance")
	fs.StringVar(&params.Algorithm, "algorithm", "", "search driver: IBMOLS or Perturbation")
	return cmd
}
