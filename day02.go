package main

import (
	"fmt"
	"strings"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 2: Password Philosophy

type passwordEntry struct {
	lo, hi   int
	letter   rune
	password string
}

var passwordEntries = parse.OneOrMore(parse.WhitespaceWrap(parse.Pair(
	parse.Seq3(
		parse.Left(parse.Integer, parse.MatchLiteral("-")),
		parse.Left(parse.Integer, parse.MatchLiteral(" ")),
		parse.Left(parse.Letter, parse.MatchLiteral(": ")),
	),
	parse.Recognize(parse.OneOrMore(parse.Letter)),
	func(policy parse.Triple[int64, int64, rune], password string) passwordEntry {
		return passwordEntry{int(policy.First), int(policy.Second), policy.Third, password}
	},
)))

// validByCount reports whether the letter appears between lo and hi times.
func (e passwordEntry) validByCount() bool {
	n := strings.Count(e.password, string(e.letter))
	return e.lo <= n && n <= e.hi
}

// validByPosition reports whether exactly one of the 1-based positions lo
// and hi holds the letter.
func (e passwordEntry) validByPosition() bool {
	runes := []rune(e.password)
	at := func(pos int) bool {
		return pos >= 1 && pos <= len(runes) && runes[pos-1] == e.letter
	}
	return at(e.lo) != at(e.hi)
}

func solveDay2(input string) (answers, error) {
	entries, err := passwordEntries.ParseAll(input)
	if err != nil {
		return answers{}, err
	}

	var byCount, byPosition int
	for _, e := range entries {
		if e.validByCount() {
			byCount++
		}
		if e.validByPosition() {
			byPosition++
		}
	}
	return answers{fmt.Sprint(byCount), fmt.Sprint(byPosition)}, nil
}

func init() {
	register(2, solveDay2)
}
