// Command salesman solves Traveling Salesman instances from tour-definition
// JSON files using either the genetic algorithm or the matrix-reduction
// solver, optionally saving the solution and rendering plots.
//
// Usage:
//
//	salesman --input cities.json --algorithm bnb
//	salesman --input cities.json --algorithm genetic --population-size 100 --generations 500
//	salesman convert russia.json cities.json --min-population 500000 --max-cities 30
package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/genetic"
	"github.com/katalvlaran/salesman/reduction"
	"github.com/katalvlaran/salesman/tourio"
	"github.com/katalvlaran/salesman/viz"
)

const (
	algoGenetic = "genetic"
	algoBnB     = "bnb"

	defaultGenerations  = 500
	defaultBnBTimeLimit = 60.0 // seconds
)

var (
	inputPath      string
	algorithm      string
	populationSize int
	generations    int
	mutationProb   float64
	tournamentSize int
	noElitism      bool
	workers        int
	seed           int64
	bnbTimeLimit   float64
	outputPath     string
	plotRoutePath  string
	plotConvPath   string
	verbose        bool

	convertMinPopulation int
	convertMaxCities     int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "salesman",
		Short:         "Approximate Traveling Salesman tours with a genetic algorithm or matrix reduction",
		RunE:          runSolve,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to JSON file containing city coordinates")
	rootCmd.Flags().StringVarP(&algorithm, "algorithm", "a", algoGenetic, "algorithm to use: genetic or bnb")
	rootCmd.Flags().IntVarP(&populationSize, "population-size", "p", genetic.DefaultPopulationSize, "size of the population for the genetic algorithm")
	rootCmd.Flags().IntVarP(&generations, "generations", "g", defaultGenerations, "number of generations to run for the genetic algorithm")
	rootCmd.Flags().Float64VarP(&mutationProb, "mutation-prob", "m", genetic.DefaultMutationProb, "probability of mutation (0.0 to 1.0)")
	rootCmd.Flags().IntVarP(&tournamentSize, "tournament-size", "t", genetic.DefaultTournamentSize, "size of tournament selection")
	rootCmd.Flags().BoolVar(&noElitism, "no-elitism", false, "disable elitism (enabled by default)")
	rootCmd.Flags().IntVar(&workers, "workers", genetic.DefaultWorkers, "parallel child-construction workers (results are identical for any value)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 selects the fixed default stream")
	rootCmd.Flags().Float64Var(&bnbTimeLimit, "bnb-time-limit", defaultBnBTimeLimit, "time limit in seconds for the matrix-reduction solver")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to save the solution as JSON")
	rootCmd.Flags().StringVar(&plotRoutePath, "plot-route", "", "path to render the solved route as PNG")
	rootCmd.Flags().StringVar(&plotConvPath, "plot-convergence", "", "path to render GA convergence as PNG (genetic only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = rootCmd.MarkFlagRequired("input")

	var convertCmd = &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Convert a city-population dataset into the tour-definition format",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}
	convertCmd.Flags().IntVar(&convertMinPopulation, "min-population", tourio.DefaultMinPopulation, "minimum population threshold")
	convertCmd.Flags().IntVar(&convertMaxCities, "max-cities", 0, "maximum number of cities to include (0 = all)")
	rootCmd.AddCommand(convertCmd)

	return rootCmd
}

// validateSolveFlags rejects invalid combinations before any solver runs.
func validateSolveFlags() error {
	if algorithm != algoGenetic && algorithm != algoBnB {
		return fmt.Errorf("unknown algorithm %q (expected %q or %q)", algorithm, algoGenetic, algoBnB)
	}
	if algorithm == algoGenetic && generations < 1 {
		return genetic.ErrGenerations
	}
	if algorithm == algoGenetic {
		return gaOptions().Validate()
	}

	return nil
}

func gaOptions() genetic.Options {
	return genetic.Options{
		PopulationSize: populationSize,
		MutationProb:   mutationProb,
		TournamentSize: tournamentSize,
		Elitism:        !noElitism,
		Workers:        workers,
		Seed:           seed,
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := validateSolveFlags(); err != nil {
		return err
	}

	log.Infof("loading cities from %s", inputPath)
	var cities, err = tourio.LoadCities(inputPath)
	if err != nil {
		return err
	}
	log.Infof("loaded %d cities", len(cities))

	var (
		route   *core.Route
		history []float64
	)
	switch algorithm {
	case algoBnB:
		route, err = solveBnB(cities)
	default:
		route, history, err = solveGenetic(cities)
	}
	if err != nil {
		return err
	}

	log.Infof("total distance: %.2f units", route.Length)
	log.Infof("route order: %s", route)

	if outputPath != "" {
		log.Infof("saving solution to %s", outputPath)
		if err = tourio.SaveSolution(outputPath, route); err != nil {
			return err
		}
	}
	if plotRoutePath != "" {
		if err = viz.Route(route, fmt.Sprintf("%s solution", algorithm), plotRoutePath); err != nil {
			return err
		}
		log.Infof("route plot written to %s", plotRoutePath)
	}
	if plotConvPath != "" && len(history) > 0 {
		if err = viz.Convergence(history, "Fitness Convergence", plotConvPath); err != nil {
			return err
		}
		log.Infof("convergence plot written to %s", plotConvPath)
	}

	return nil
}

func solveGenetic(cities []*core.City) (*core.Route, []float64, error) {
	log.Info("running genetic algorithm")
	log.Debugf("population size: %d, generations: %d, mutation probability: %g, tournament size: %d, elitism: %t, workers: %d",
		populationSize, generations, mutationProb, tournamentSize, !noElitism, workers)

	var (
		history = make([]float64, 0, generations)
		opts    = gaOptions()
	)
	opts.Progress = func(gen int, best float64) {
		history = append(history, best)
		log.Debugf("generation %d: best length %.2f", gen, best)
	}

	var solver, err = genetic.New(opts)
	if err != nil {
		return nil, nil, err
	}

	var route *core.Route
	route, err = solver.Run(cities, generations)
	if err != nil {
		return nil, nil, err
	}

	return route, history, nil
}

func solveBnB(cities []*core.City) (*core.Route, error) {
	log.Info("running branch and bound (matrix reduction)")

	var res, err = reduction.Solve(cities, time.Duration(bnbTimeLimit*float64(time.Second)))
	if err != nil {
		return nil, err
	}
	if res.TimedOut {
		log.Warnf("time limit reached after %.2f seconds; lower bound is partial", res.Elapsed.Seconds())
	}
	log.Infof("time taken: %.2f seconds", res.Elapsed.Seconds())
	log.Infof("lower bound estimate: %.2f units", res.LowerBound)

	return res.Route, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	var count, err = tourio.Convert(args[0], args[1], tourio.ConvertOptions{
		MinPopulation: convertMinPopulation,
		MaxCities:     convertMaxCities,
	})
	if err != nil {
		return err
	}
	log.Infof("converted %d cities with population ≥ %d to %s", count, convertMinPopulation, args[1])

	return nil
}
