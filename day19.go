package main

import (
	"errors"
	"fmt"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 19: Monster Messages

// A messageRule either matches a single character, or matches any of its
// alternatives, each a sequence of rule numbers.
type messageRule struct {
	char    byte
	defined bool
	alts    [][]int
}

// messageRules is indexed by rule number.
type messageRules []messageRule

type numberedRule struct {
	id   int
	rule messageRule
}

var ruleNumber = parse.Map(parse.Integer, func(n int64) int { return int(n) })

var messageRuleLine = parse.Pair(
	parse.Left(ruleNumber, parse.MatchLiteral(":")),
	parse.Either(
		parse.Map(
			parse.Between(parse.MatchLiteral(` "`), parse.AnyChar.Pred(func(c rune) bool { return c < 128 }), parse.MatchLiteral(`"`)),
			func(c rune) messageRule { return messageRule{char: byte(c), defined: true} },
		),
		parse.Map(
			parse.SepBy(parse.OneOrMore(parse.Right(parse.MatchLiteral(" "), ruleNumber)), parse.MatchLiteral(" |")),
			func(alts [][]int) messageRule { return messageRule{defined: true, alts: alts} },
		),
	),
	func(id int, r messageRule) numberedRule { return numberedRule{id, r} },
)

var messageRuleList = parse.MapErr(parse.OneOrMore(parse.WhitespaceWrap(messageRuleLine)), newMessageRules)

var monsterMessages = parse.Seq(
	messageRuleList,
	parse.ZeroOrMore(parse.WhitespaceWrap(parse.Recognize(parse.OneOrMore(parse.Letter)))),
)

func newMessageRules(list []numberedRule) (messageRules, error) {
	var rs messageRules
	for _, nr := range list {
		if nr.id >= len(rs) {
			rs = append(rs, make(messageRules, nr.id+1-len(rs))...)
		}
		if rs[nr.id].defined {
			return nil, fmt.Errorf("rule %d is defined twice", nr.id)
		}
		rs[nr.id] = nr.rule
	}
	for id, r := range rs {
		for _, alt := range r.alts {
			for _, ref := range alt {
				if !rs.has(ref) {
					return nil, fmt.Errorf("rule %d refers to undefined rule %d", id, ref)
				}
			}
		}
	}
	return rs, nil
}

func (rs messageRules) has(id int) bool {
	return id >= 0 && id < len(rs) && rs[id].defined
}

// remainders returns what is left of s after each way rule id can match a
// prefix of it.
func (rs messageRules) remainders(id int, s string) []string {
	r := rs[id]
	if r.char != 0 {
		if s != "" && s[0] == r.char {
			return []string{s[1:]}
		}
		return nil
	}

	var result []string
	for _, alt := range r.alts {
		rest := []string{s}
		for _, sub := range alt {
			var next []string
			for _, s := range rest {
				next = append(next, rs.remainders(sub, s)...)
			}
			rest = next
			if len(rest) == 0 {
				break
			}
		}
		result = append(result, rest...)
	}
	return result
}

// matches reports whether rule 0 matches all of s.
func (rs messageRules) matches(s string) bool {
	for _, rest := range rs.remainders(0, s) {
		if rest == "" {
			return true
		}
	}
	return false
}

func (rs messageRules) count(messages []string) int {
	n := 0
	for _, m := range messages {
		if rs.matches(m) {
			n++
		}
	}
	return n
}

// withLoops returns a copy of rs with rules 8 and 11 replaced by their
// looping versions: "8: 42 | 42 8" and "11: 42 31 | 42 11 31".
func (rs messageRules) withLoops() (messageRules, error) {
	if !rs.has(42) || !rs.has(31) {
		return nil, errors.New("rules 42 and 31 are needed for the looping rules")
	}
	looped := append(messageRules(nil), rs...)
	looped[8] = messageRule{defined: true, alts: [][]int{{42}, {42, 8}}}
	looped[11] = messageRule{defined: true, alts: [][]int{{42, 31}, {42, 11, 31}}}
	return looped, nil
}

func solveDay19(input string) (answers, error) {
	parsed, err := monsterMessages.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	rs, messages := parsed.First, parsed.Second
	if !rs.has(0) {
		return answers{}, errors.New("there is no rule 0")
	}

	looped, err := rs.withLoops()
	if err != nil {
		return answers{}, err
	}
	return answers{fmt.Sprint(rs.count(messages)), fmt.Sprint(looped.count(messages))}, nil
}

func init() {
	register(19, solveDay19)
}
