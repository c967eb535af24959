package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 18: Operation Order

type tokenKind int

const (
	numToken tokenKind = iota
	addToken
	mulToken
	openToken
	closeToken
)

type token struct {
	kind tokenKind
	n    int64
}

var tokens = parse.OneOrMore(parse.WhitespaceWrap(parse.OneOf(
	parse.Map(parse.Integer, func(n int64) token { return token{numToken, n} }),
	parse.Means(parse.MatchLiteral("+"), token{kind: addToken}),
	parse.Means(parse.MatchLiteral("*"), token{kind: mulToken}),
	parse.Means(parse.MatchLiteral("("), token{kind: openToken}),
	parse.Means(parse.MatchLiteral(")"), token{kind: closeToken}),
)))

var errMismatchedParens = errors.New("mismatched parentheses")

// toRPN converts infix tokens to reverse Polish notation with the
// shunting-yard algorithm. Operators bind according to precedence, and
// operators of equal precedence group from the left.
func toRPN(infix []token, precedence map[tokenKind]int) ([]token, error) {
	var stack, out []token
	for _, t := range infix {
		switch t.kind {
		case numToken:
			out = append(out, t)
		case addToken, mulToken:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == openToken || precedence[top.kind] < precedence[t.kind] {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		case openToken:
			stack = append(stack, t)
		case closeToken:
			for {
				if len(stack) == 0 {
					return nil, errMismatchedParens
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == openToken {
					break
				}
				out = append(out, top)
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.kind == openToken {
			return nil, errMismatchedParens
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

var errMalformedExpression = errors.New("malformed expression")

func evalRPN(rpn []token) (int64, error) {
	var stack []int64
	for _, t := range rpn {
		if t.kind == numToken {
			stack = append(stack, t.n)
			continue
		}
		if len(stack) < 2 {
			return 0, errMalformedExpression
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		if t.kind == addToken {
			stack = append(stack, a+b)
		} else {
			stack = append(stack, a*b)
		}
	}
	if len(stack) != 1 {
		return 0, errMalformedExpression
	}
	return stack[0], nil
}

var (
	leftToRight   = map[tokenKind]int{addToken: 1, mulToken: 1}
	additionFirst = map[tokenKind]int{addToken: 2, mulToken: 1}
)

func evaluate(expr string, precedence map[tokenKind]int) (int64, error) {
	infix, err := tokens.ParseAll(expr)
	if err != nil {
		return 0, err
	}
	rpn, err := toRPN(infix, precedence)
	if err != nil {
		return 0, err
	}
	return evalRPN(rpn)
}

// sumExpressions evaluates each line of input and adds up the results.
func sumExpressions(input string, precedence map[tokenKind]int) (int64, error) {
	var sum int64
	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := evaluate(line, precedence)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += n
	}
	return sum, nil
}

func solveDay18(input string) (answers, error) {
	part1, err := sumExpressions(input, leftToRight)
	if err != nil {
		return answers{}, err
	}
	part2, err := sumExpressions(input, additionFirst)
	if err != nil {
		return answers{}, err
	}
	return answers{fmt.Sprint(part1), fmt.Sprint(part2)}, nil
}

func init() {
	register(18, solveDay18)
}
