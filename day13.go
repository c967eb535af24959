package main

import (
	"errors"
	"fmt"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 13: Shuttle Search

// A busSchedule lists bus IDs by their offset in the departure pattern.
// An ID of 0 marks a slot with no constraint ("x").
type busSchedule struct {
	estimate int64
	buses    []int64
}

var busScheduleParser = parse.Pair(
	parse.WhitespaceWrap(parse.Integer),
	parse.SepBy(parse.Either(parse.Means(parse.MatchLiteral("x"), int64(0)), parse.Integer), parse.MatchLiteral(",")),
	func(estimate int64, buses []int64) busSchedule { return busSchedule{estimate, buses} },
)

var errNoBuses = errors.New("no buses in service")

// earliestBus returns the ID of the first bus to leave at or after the
// estimated time, and how long to wait for it.
func (s busSchedule) earliestBus() (id, wait int64, err error) {
	for _, b := range s.buses {
		if b == 0 {
			continue
		}
		w := (b - s.estimate%b) % b
		if id == 0 || w < wait {
			id, wait = b, w
		}
	}
	if id == 0 {
		return 0, 0, errNoBuses
	}
	return id, wait, nil
}

// alignedTimestamp returns the first time t >= after such that each bus
// departs at t plus its offset. It sieves one bus at a time, stepping by the
// least common multiple of the buses handled so far.
func (s busSchedule) alignedTimestamp(after int64) int64 {
	t, step := after, int64(1)
	for offset, b := range s.buses {
		if b == 0 {
			continue
		}
		for (t+int64(offset))%b != 0 {
			t += step
		}
		step = step / gcd(step, b) * b
	}
	return t
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func solveDay13(input string) (answers, error) {
	s, err := busScheduleParser.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	id, wait, err := s.earliestBus()
	if err != nil {
		return answers{}, err
	}
	return answers{fmt.Sprint(id * wait), fmt.Sprint(s.alignedTimestamp(100000000000000))}, nil
}

func init() {
	register(13, solveDay13)
}
