package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// answers holds a day's solution. Part2 is empty for days that only have
// one part.
type answers struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2,omitempty"`
}

func (a answers) parts() []string {
	return []string{a.Part1, a.Part2}
}

// A solver computes the answers for a day from its puzzle input.
type solver func(input string) (answers, error)

var solvers = make(map[int]solver)

// register adds the solver for day. It is called from init functions.
func register(day int, s solver) {
	if _, dup := solvers[day]; dup {
		panic(fmt.Sprintf("day %d registered twice", day))
	}
	solvers[day] = s
}

func registeredDays() []int {
	return slices.Sorted(maps.Keys(solvers))
}

type result struct {
	Day     int
	Answers answers
	Elapsed time.Duration
}

// A runner solves days concurrently.
type runner struct {
	inputDir string
	// jobs limits the number of days being solved at once; 0 means no limit.
	jobs int
}

// run solves days, and returns the results in the same order. It stops at
// the first error.
func (r *runner) run(ctx context.Context, days []int) ([]result, error) {
	for _, day := range days {
		if _, ok := solvers[day]; !ok {
			return nil, fmt.Errorf("no solution for day %d", day)
		}
	}

	results := make([]result, len(days))
	g, ctx := errgroup.WithContext(ctx)
	if r.jobs > 0 {
		g.SetLimit(r.jobs)
	}
	for i, day := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			input, err := loadInput(r.inputDir, day)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}

			start := time.Now()
			a, err := solvers[day](input)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
			results[i] = result{Day: day, Answers: a, Elapsed: time.Since(start)}
			logger.Info("solved", zap.Int("day", day), zap.Duration("elapsed", results[i].Elapsed))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// printResults writes the answers in results to w. If expected has answers
// for a day, each part is marked as correct or wrong. It returns the number
// of wrong answers.
func printResults(w io.Writer, results []result, expected map[int]answers) (wrong int) {
	for _, r := range results {
		want := expected[r.Day]
		for i, answer := range r.Answers.parts() {
			if answer == "" {
				continue
			}
			fmt.Fprintf(w, "day %2d part %d: %s", r.Day, i+1, answer)
			if wantAnswer := want.parts()[i]; wantAnswer != "" {
				if answer == wantAnswer {
					fmt.Fprint(w, " (ok)")
				} else {
					fmt.Fprintf(w, " (WRONG, want %s)", wantAnswer)
					wrong++
				}
			}
			fmt.Fprintln(w)
		}
	}
	return wrong
}
