// Package parse provides parser combinators, inspired by nom.
//
// A Parser is a function that tries to recognize a value at the start of
// its input. On success it returns the value and the rest of the input; the
// rest is always a suffix of the input, so parsing never copies text. On
// failure it returns a *Error and the input where the failing parser
// started.
//
// Grammars are built by combining the primitives (Digit, Letter, Integer,
// MatchLiteral, Whitespace, AnyChar, ...) with combinators (Map, Pair,
// Either, OneOrMore, SepBy, ...), and the resulting root parser is run once
// over the whole input:
//
//	rng := parse.Pair(parse.Left(parse.Integer, parse.MatchLiteral("-")), parse.Integer,
//		func(lo, hi int64) [2]int64 { return [2]int64{lo, hi} })
//	r, rest, err := rng.Parse("1-3 a")
//
// Parsers hold no state, so one parser value may be reused and shared
// between goroutines.
package parse

import (
	"strings"
	"unicode"
)

// A Parser recognizes a T at the start of input.
type Parser[T any] func(input string) (value T, rest string, err error)

// Parse runs p on input.
func (p Parser[T]) Parse(input string) (value T, rest string, err error) {
	return p(input)
}

// ParseAll runs p on input and fails with UnconsumedInput unless nothing but
// whitespace is left over.
func (p Parser[T]) ParseAll(input string) (T, error) {
	value, rest, err := p(input)
	if err != nil {
		return value, err
	}
	if strings.TrimLeftFunc(rest, unicode.IsSpace) != "" {
		var zero T
		return zero, &Error{Kind: UnconsumedInput, Input: rest}
	}
	return value, nil
}

// Or is Either(p, q).
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return Either(p, q)
}

// Pred is Pred(p, f).
func (p Parser[T]) Pred(f func(T) bool) Parser[T] {
	return Pred(p, f)
}

// fail returns a failure of the given kind at input.
func fail[T any](kind Kind, input string) (T, string, error) {
	var zero T
	return zero, input, &Error{Kind: kind, Input: input}
}
