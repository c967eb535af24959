package main

import (
	"fmt"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 7: Handy Haversacks

type bagContent struct {
	count int
	color string
}

type bagRules map[string][]bagContent

var bagColor = parse.Recognize(parse.Seq3(
	parse.OneOrMore(parse.Letter),
	parse.MatchLiteral(" "),
	parse.OneOrMore(parse.Letter),
))

var bagRuleParser = parse.Map(
	parse.OneOrMore(parse.WhitespaceWrap(parse.Seq(
		parse.Left(bagColor, parse.MatchLiteral(" bags contain ")),
		parse.Either(
			parse.Means(parse.MatchLiteral("no other bags."), []bagContent(nil)),
			parse.OneOrMore(parse.Pair(
				parse.Left(parse.Integer, parse.MatchLiteral(" ")),
				parse.Left(bagColor, parse.AnyLiteral(" bags, ", " bag, ", " bags.", " bag.")),
				func(n int64, color string) bagContent { return bagContent{int(n), color} },
			)),
		),
	))),
	func(rules []parse.Tuple[string, []bagContent]) bagRules {
		br := make(bagRules)
		for _, r := range rules {
			br[r.First] = r.Second
		}
		return br
	},
)

// canContain reports how many colors can eventually contain a bag of the
// given color.
func (br bagRules) canContain(target string) int {
	memo := make(map[string]bool)
	var reaches func(color string) bool
	reaches = func(color string) bool {
		if r, ok := memo[color]; ok {
			return r
		}
		memo[color] = false
		for _, c := range br[color] {
			if c.color == target || reaches(c.color) {
				memo[color] = true
				break
			}
		}
		return memo[color]
	}

	n := 0
	for color := range br {
		if color != target && reaches(color) {
			n++
		}
	}
	return n
}

// contents returns the number of bags inside a bag of the given color.
func (br bagRules) contents(color string) int {
	n := 0
	for _, c := range br[color] {
		n += c.count * (1 + br.contents(c.color))
	}
	return n
}

func solveDay7(input string) (answers, error) {
	br, err := bagRuleParser.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	return answers{fmt.Sprint(br.canContain("shiny gold")), fmt.Sprint(br.contents("shiny gold"))}, nil
}

func init() {
	register(7, solveDay7)
}
