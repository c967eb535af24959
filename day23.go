package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 23: Crab Cups

var cupLabels = parse.WhitespaceWrap(parse.Map(parse.OneOrMore(parse.Digit), func(ds []int64) []int {
	labels := make([]int, len(ds))
	for i, d := range ds {
		labels[i] = int(d)
	}
	return labels
}))

var errTooFewCups = errors.New("the game needs at least 5 cups")

// A cupRing holds the cups in a circle. next[label] is the label of the cup
// clockwise from label; index 0 is unused.
type cupRing struct {
	next    []int32
	current int32
}

// newCupRing builds a ring from labels, followed by cups labeled from
// len(labels)+1 up to total.
func newCupRing(labels []int, total int) (*cupRing, error) {
	total = max(total, len(labels))
	// A move needs a destination cup that is neither current nor picked up.
	if total < 5 {
		return nil, errTooFewCups
	}
	seen := make([]bool, len(labels)+1)
	for _, l := range labels {
		if l < 1 || l > len(labels) || seen[l] {
			return nil, fmt.Errorf("cup labels must be 1 to %d, each used once", len(labels))
		}
		seen[l] = true
	}

	r := &cupRing{next: make([]int32, total+1)}
	order := func(i int) int32 {
		if i < len(labels) {
			return int32(labels[i])
		}
		return int32(i + 1)
	}
	for i := range total {
		r.next[order(i)] = order((i + 1) % total)
	}
	r.current = order(0)
	return r, nil
}

// move picks up the three cups after the current cup, puts them after the
// destination cup, and advances the current cup.
func (r *cupRing) move() {
	highest := int32(len(r.next) - 1)
	a := r.next[r.current]
	b := r.next[a]
	c := r.next[b]
	r.next[r.current] = r.next[c]

	dest := r.current
	for {
		dest--
		if dest == 0 {
			dest = highest
		}
		if dest != a && dest != b && dest != c {
			break
		}
	}
	r.next[c] = r.next[dest]
	r.next[dest] = a
	r.current = r.next[r.current]
}

// labelsAfterOne returns the labels clockwise from cup 1, not including it.
func (r *cupRing) labelsAfterOne() string {
	var b strings.Builder
	for l := r.next[1]; l != 1; l = r.next[l] {
		fmt.Fprint(&b, l)
	}
	return b.String()
}

func playCups(labels []int, total, moves int) (*cupRing, error) {
	r, err := newCupRing(labels, total)
	if err != nil {
		return nil, err
	}
	for range moves {
		r.move()
	}
	return r, nil
}

func solveDay23(input string) (answers, error) {
	labels, err := cupLabels.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	small, err := playCups(labels, len(labels), 100)
	if err != nil {
		return answers{}, err
	}
	big, err := playCups(labels, 1000000, 10000000)
	if err != nil {
		return answers{}, err
	}
	a := big.next[1]
	b := big.next[a]
	return answers{small.labelsAfterOne(), fmt.Sprint(int64(a) * int64(b))}, nil
}

func init() {
	register(23, solveDay23)
}
