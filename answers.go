package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadAnswers reads a YAML file of known answers, keyed by day:
//
//	2:
//	  part1: "456"
//	  part2: "308"
func loadAnswers(filename string) (map[int]answers, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading answers: %w", err)
	}
	var expected map[int]answers
	if err := yaml.Unmarshal(b, &expected); err != nil {
		return nil, fmt.Errorf("error parsing answers file %s: %w", filename, err)
	}
	return expected, nil
}
