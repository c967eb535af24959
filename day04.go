package main

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 4: Passport Processing

type passport map[string]string

var passportField = parse.Seq(
	parse.Left(parse.TakeWhile1("field name", unicode.IsLetter), parse.MatchLiteral(":")),
	parse.TakeWhile1("field value", func(c rune) bool { return !unicode.IsSpace(c) }),
)

// Fields within a passport are separated by a space or a single newline;
// passports are separated by blank lines.
var passports = parse.WhitespaceWrap(parse.SepBy(
	parse.Map(
		parse.SepBy(passportField, parse.AnyLiteral(" ", "\n")),
		func(fields []parse.Tuple[string, string]) passport {
			p := make(passport)
			for _, f := range fields {
				p[f.First] = f.Second
			}
			return p
		},
	),
	parse.MatchLiteral("\n\n"),
))

var requiredPassportFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

func (p passport) hasRequiredFields() bool {
	for _, f := range requiredPassportFields {
		if _, ok := p[f]; !ok {
			return false
		}
	}
	return true
}

func (p passport) fieldsValid() bool {
	return p.hasRequiredFields() &&
		yearInRange(p["byr"], 1920, 2002) &&
		yearInRange(p["iyr"], 2010, 2020) &&
		yearInRange(p["eyr"], 2020, 2030) &&
		validHeight(p["hgt"]) &&
		validHairColor(p["hcl"]) &&
		validEyeColor(p["ecl"]) &&
		validPassportID(p["pid"])
}

func yearInRange(s string, lo, hi int64) bool {
	y, err := parse.Integer.ParseAll(s)
	return err == nil && len(s) == 4 && lo <= y && y <= hi
}

var height = parse.Either(
	parse.Left(parse.Integer, parse.MatchLiteral("cm")).Pred(func(n int64) bool { return 150 <= n && n <= 193 }),
	parse.Left(parse.Integer, parse.MatchLiteral("in")).Pred(func(n int64) bool { return 59 <= n && n <= 76 }),
)

func validHeight(s string) bool {
	_, err := height.ParseAll(s)
	return err == nil
}

var hairColor = parse.Right(
	parse.MatchLiteral("#"),
	parse.TakeWhile1("hex digit", func(c rune) bool { return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' }),
).Pred(func(s string) bool { return len(s) == 6 })

func validHairColor(s string) bool {
	_, err := hairColor.ParseAll(s)
	return err == nil
}

func validEyeColor(s string) bool {
	return slices.Contains([]string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}, s)
}

func validPassportID(s string) bool {
	_, err := parse.Integer.ParseAll(s)
	return err == nil && len(s) == 9
}

func solveDay4(input string) (answers, error) {
	ps, err := passports.ParseAll(input)
	if err != nil {
		return answers{}, err
	}

	var present, valid int
	for _, p := range ps {
		if p.hasRequiredFields() {
			present++
		}
		if p.fieldsValid() {
			valid++
		}
	}
	return answers{fmt.Sprint(present), fmt.Sprint(valid)}, nil
}

func init() {
	register(4, solveDay4)
}
