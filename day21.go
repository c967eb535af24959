package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 21: Allergen Assessment

type food struct {
	ingredients []string
	allergens   []string
}

var foods = parse.OneOrMore(parse.WhitespaceWrap(parse.Pair(
	parse.OneOrMore(parse.WhitespaceWrap(parse.Identifier)),
	parse.Between(
		parse.MatchLiteral("(contains "),
		parse.SepBy(parse.Identifier, parse.MatchLiteral(", ")),
		parse.MatchLiteral(")"),
	),
	func(ingredients, allergens []string) food { return food{ingredients, allergens} },
)))

var errUnresolvedAllergens = errors.New("allergens can't be matched to ingredients")

// dangerousIngredients works out which ingredient contains each allergen.
// An allergen's ingredient must appear in every food that lists it.
func dangerousIngredients(fs []food) (map[string]string, error) {
	candidates := make(map[string]map[string]bool)
	for _, f := range fs {
		for _, a := range f.allergens {
			if c, ok := candidates[a]; ok {
				maps.DeleteFunc(c, func(ing string, _ bool) bool { return !slices.Contains(f.ingredients, ing) })
				continue
			}
			c := make(map[string]bool)
			for _, ing := range f.ingredients {
				c[ing] = true
			}
			candidates[a] = c
		}
	}

	found := make(map[string]string)
	for len(found) < len(candidates) {
		progress := false
		for a, c := range candidates {
			if _, done := found[a]; done || len(c) != 1 {
				continue
			}
			ing := slices.Collect(maps.Keys(c))[0]
			found[a] = ing
			for _, other := range candidates {
				if len(other) > 1 {
					delete(other, ing)
				}
			}
			progress = true
		}
		if !progress {
			return nil, errUnresolvedAllergens
		}
	}
	return found, nil
}

func solveDay21(input string) (answers, error) {
	fs, err := foods.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	found, err := dangerousIngredients(fs)
	if err != nil {
		return answers{}, err
	}

	dangerous := make(map[string]bool)
	for _, ing := range found {
		dangerous[ing] = true
	}
	safe := 0
	for _, f := range fs {
		for _, ing := range f.ingredients {
			if !dangerous[ing] {
				safe++
			}
		}
	}

	var list []string
	for _, a := range slices.Sorted(maps.Keys(found)) {
		list = append(list, found[a])
	}
	return answers{fmt.Sprint(safe), strings.Join(list, ",")}, nil
}

func init() {
	register(21, solveDay21)
}
