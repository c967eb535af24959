package main

// day-selection rules for "run --only"

import (
	"fmt"
	"strconv"

	"github.com/andybalholm/aoc2020/parse"
)

type rule interface {
	isARule()
	fmt.Stringer
	matches(day int) bool
}

// A simpleRule matches a range of days. The zero value matches every day.
type simpleRule struct {
	lo, hi int
}

func (r simpleRule) String() string {
	switch {
	case r == (simpleRule{}):
		return "all"
	case r.lo == r.hi:
		return strconv.Itoa(r.lo)
	default:
		return fmt.Sprintf("%d-%d", r.lo, r.hi)
	}
}

func (r simpleRule) matches(day int) bool {
	if r == (simpleRule{}) {
		return true
	}
	return r.lo <= day && day <= r.hi
}

func (simpleRule) isARule() {}

// a compoundRule is two rules (or compoundRules) joined by a boolean operator
// (&, |, or &! [AND NOT]).
type compoundRule struct {
	left  rule
	op    string
	right rule
}

func (compoundRule) isARule() {}

func (r compoundRule) matches(day int) bool {
	switch r.op {
	case "&":
		return r.left.matches(day) && r.right.matches(day)
	case "|":
		return r.left.matches(day) || r.right.matches(day)
	case "&!":
		return r.left.matches(day) && !r.right.matches(day)
	}
	panic("unknown operator " + r.op)
}

func parenthesesIfCompound(r rule) string {
	switch r := r.(type) {
	case compoundRule:
		return "(" + r.String() + ")"
	default:
		return r.String()
	}
}

func (r compoundRule) String() string {
	return parenthesesIfCompound(r.left) + " " + r.op + " " + parenthesesIfCompound(r.right)
}

// tag matches s after optional whitespace.
func tag(s string) parse.Parser[struct{}] {
	return parse.Right(parse.Whitespace, parse.MatchLiteral(s))
}

var dayNumber = parse.Right(parse.Whitespace, parse.Map(parse.Integer, func(n int64) int { return int(n) }))

var simpleRuleParser = parse.Either(
	parse.Means(tag("all"), simpleRule{}),
	parse.Pair(dayNumber, parse.Opt(parse.Right(tag("-"), dayNumber)), func(lo int, hi *int) simpleRule {
		if hi == nil {
			return simpleRule{lo, lo}
		}
		return simpleRule{lo, *hi}
	}).Pred(func(r simpleRule) bool { return 0 < r.lo && r.lo <= r.hi }),
)

// compoundRuleParser parses rules joined by operators, grouping from the
// left unless parentheses say otherwise.
var compoundRuleParser = compoundRuleGrammar()

func compoundRuleGrammar() parse.Parser[rule] {
	var compound parse.Parser[rule]
	compound = parse.Lazy(func() parse.Parser[rule] {
		operand := parse.Either(
			parse.Between(tag("("), compound, tag(")")),
			parse.Map(simpleRuleParser, func(r simpleRule) rule { return r }),
		)
		op := parse.Right(parse.Whitespace, parse.AnyLiteral("&!", "&", "|"))

		return parse.Pair(operand, parse.ZeroOrMore(parse.Seq(op, operand)), func(first rule, more []parse.Tuple[string, rule]) rule {
			r := first
			for _, m := range more {
				r = compoundRule{r, m.First, m.Second}
			}
			return r
		})
	})
	return compound
}

// parseRule parses a complete day-selection rule, such as "1-20 &! 13".
func parseRule(s string) (rule, error) {
	r, err := compoundRuleParser.ParseAll(s)
	if err != nil {
		return nil, fmt.Errorf("invalid rule %q: %w", s, err)
	}
	return r, nil
}
