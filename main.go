// Aoc2020 solves Advent of Code 2020 puzzles. Puzzle inputs are parsed with
// the parser combinators in package parse.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile  string
	inputDir    string
	resultsFile string
	answersFile string
	onlyRule    string
	jobs        int
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:          "aoc2020",
	Short:        "Advent of Code 2020 solutions",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			if err := readConfigFile(cmd.Flags(), configFile); err != nil {
				return err
			}
		}

		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve puzzles (all registered days if none are given)",
	RunE:  runDays,
}

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the days that have solutions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, day := range registeredDays() {
			fmt.Fprintln(cmd.OutOrStdout(), day)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "configuration file")
	flags.StringVar(&inputDir, "inputs", "inputs", "directory containing the puzzle inputs (dayNN.txt, optionally compressed)")
	flags.StringVar(&resultsFile, "results", "", "CSV file to append answers to (default: standard output)")
	flags.StringVar(&answersFile, "answers", "", "YAML file of known answers to check against")
	flags.StringVar(&onlyRule, "only", "", `only solve the days matching a rule such as "1-20 &! 13"`)
	flags.IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of days to solve at once (0 for no limit)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(daysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDays(cmd *cobra.Command, args []string) error {
	days, err := selectDays(args, onlyRule)
	if err != nil {
		return err
	}

	var expected map[int]answers
	if answersFile != "" {
		expected, err = loadAnswers(answersFile)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner{inputDir: inputDir, jobs: jobs}
	results, err := r.run(ctx, days)
	if err != nil {
		return err
	}

	if resultsFile != "" {
		rl := openResultLog(resultsFile, cmd.OutOrStdout())
		for _, res := range results {
			if err := rl.Log(res); err != nil {
				logger.Error("error writing results log", zap.Error(err))
				break
			}
		}
		if err := rl.Close(); err != nil {
			logger.Error("error closing results log", zap.Error(err))
		}
	}

	if wrong := printResults(cmd.OutOrStdout(), results, expected); wrong > 0 {
		return fmt.Errorf("%d wrong answers", wrong)
	}
	return nil
}

// selectDays returns the days named in args (or all registered days if
// there are none) that match the rule in only.
func selectDays(args []string, only string) ([]int, error) {
	var days []int
	for _, a := range args {
		day, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", a)
		}
		if _, ok := solvers[day]; !ok {
			return nil, fmt.Errorf("no solution for day %d", day)
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		days = registeredDays()
	}

	if only != "" {
		r, err := parseRule(only)
		if err != nil {
			return nil, err
		}
		days = slices.DeleteFunc(days, func(day int) bool { return !r.matches(day) })
	}

	slices.Sort(days)
	return slices.Compact(days), nil
}
