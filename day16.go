package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 16: Ticket Translation

type span struct{ lo, hi int }

type ticketField struct {
	name   string
	ranges []span
}

func (f ticketField) allows(v int) bool {
	for _, r := range f.ranges {
		if r.lo <= v && v <= r.hi {
			return true
		}
	}
	return false
}

type ticketNotes struct {
	fields []ticketField
	yours  []int
	nearby [][]int
}

var ticketValues = parse.SepBy(parse.Map(parse.Integer, func(n int64) int { return int(n) }), parse.MatchLiteral(","))

var ticketFieldParser = parse.Pair(
	parse.Left(
		parse.TakeWhile1("field name", func(c rune) bool { return c != ':' && c != '\n' }),
		parse.MatchLiteral(":"),
	),
	parse.WhitespaceWrap(parse.SepBy(
		parse.Pair(
			parse.Left(parse.Integer, parse.MatchLiteral("-")),
			parse.Integer,
			func(lo, hi int64) span { return span{int(lo), int(hi)} },
		),
		parse.WhitespaceWrap(parse.MatchLiteral("or")),
	)),
	func(name string, ranges []span) ticketField { return ticketField{name, ranges} },
)

var ticketNotesParser = parse.Map(
	parse.Seq3(
		parse.OneOrMore(parse.WhitespaceWrap(ticketFieldParser)),
		parse.Right(parse.WhitespaceWrap(parse.MatchLiteral("your ticket:")), ticketValues),
		parse.Right(parse.WhitespaceWrap(parse.MatchLiteral("nearby tickets:")), parse.OneOrMore(parse.WhitespaceWrap(ticketValues))),
	),
	func(t parse.Triple[[]ticketField, []int, [][]int]) ticketNotes {
		return ticketNotes{t.First, t.Second, t.Third}
	},
)

// invalidValues returns the values in ticket that no field allows.
func (n ticketNotes) invalidValues(ticket []int) (invalid []int) {
	for _, v := range ticket {
		ok := false
		for _, f := range n.fields {
			if f.allows(v) {
				ok = true
				break
			}
		}
		if !ok {
			invalid = append(invalid, v)
		}
	}
	return invalid
}

func (n ticketNotes) errorRate() int {
	sum := 0
	for _, t := range n.nearby {
		for _, v := range n.invalidValues(t) {
			sum += v
		}
	}
	return sum
}

var errAmbiguousFields = errors.New("ticket fields can't be told apart")

// fieldPositions works out which position on the tickets holds each field,
// using only the nearby tickets that are valid.
func (n ticketNotes) fieldPositions() (map[string]int, error) {
	var valid [][]int
	for _, t := range n.nearby {
		if len(t) == len(n.fields) && len(n.invalidValues(t)) == 0 {
			valid = append(valid, t)
		}
	}

	// candidates[pos] holds the indexes of the fields that fit every
	// value at pos.
	candidates := make([]map[int]bool, len(n.fields))
	for pos := range candidates {
		candidates[pos] = make(map[int]bool)
		for fi, f := range n.fields {
			fits := true
			for _, t := range valid {
				if !f.allows(t[pos]) {
					fits = false
					break
				}
			}
			if fits {
				candidates[pos][fi] = true
			}
		}
	}

	positions := make(map[string]int)
	for len(positions) < len(n.fields) {
		progress := false
		for pos, c := range candidates {
			if len(c) != 1 {
				continue
			}
			var fi int
			for fi = range c {
			}
			positions[n.fields[fi].name] = pos
			for _, other := range candidates {
				delete(other, fi)
			}
			progress = true
		}
		if !progress {
			return nil, errAmbiguousFields
		}
	}
	return positions, nil
}

func solveDay16(input string) (answers, error) {
	notes, err := ticketNotesParser.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	positions, err := notes.fieldPositions()
	if err != nil {
		return answers{}, err
	}

	product := 1
	for name, pos := range positions {
		if strings.HasPrefix(name, "departure") {
			if pos >= len(notes.yours) {
				return answers{}, fmt.Errorf("your ticket has no value for %s", name)
			}
			product *= notes.yours[pos]
		}
	}
	return answers{fmt.Sprint(notes.errorRate()), fmt.Sprint(product)}, nil
}

func init() {
	register(16, solveDay16)
}
