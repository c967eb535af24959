package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Digit parses one ASCII decimal digit and returns its value.
var Digit Parser[int64] = func(input string) (int64, string, error) {
	if input != "" && '0' <= input[0] && input[0] <= '9' {
		return int64(input[0] - '0'), input[1:], nil
	}
	return fail[int64](ExpectedDigit, input)
}

// Letter parses one alphabetic character.
var Letter Parser[rune] = func(input string) (rune, string, error) {
	c, size := utf8.DecodeRuneInString(input)
	if size > 0 && unicode.IsLetter(c) {
		return c, input[size:], nil
	}
	return fail[rune](ExpectedLetter, input)
}

// Integer parses a run of decimal digits. There is no sign and no overflow
// check; values past the range of int64 wrap.
var Integer Parser[int64] = func(input string) (int64, string, error) {
	n, rest, err := Digit(input)
	if err != nil {
		return 0, input, &Error{Kind: ExpectedInteger, Input: input}
	}
	for {
		d, r, err := Digit(rest)
		if err != nil {
			return n, rest, nil
		}
		n = n*10 + d
		rest = r
	}
}

// Whitespace skips any leading whitespace. It never fails.
var Whitespace Parser[struct{}] = func(input string) (struct{}, string, error) {
	return struct{}{}, strings.TrimLeftFunc(input, unicode.IsSpace), nil
}

// AnyChar parses any one character.
var AnyChar Parser[rune] = func(input string) (rune, string, error) {
	if input == "" {
		return fail[rune](UnexpectedEndOfInput, input)
	}
	c, size := utf8.DecodeRuneInString(input)
	return c, input[size:], nil
}

// NonWhitespace parses one character that is not whitespace.
var NonWhitespace = AnyChar.Pred(func(c rune) bool { return !unicode.IsSpace(c) })

// Identifier parses a run of letters, digits and underscores.
var Identifier Parser[string] = func(input string) (string, string, error) {
	rest := strings.TrimLeftFunc(input, isIdentRune)
	if len(rest) == len(input) {
		return fail[string](ExpectedIdentifier, input)
	}
	return input[:len(input)-len(rest)], rest, nil
}

func isIdentRune(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// MatchLiteral returns a parser that matches s exactly.
func MatchLiteral(s string) Parser[struct{}] {
	return func(input string) (struct{}, string, error) {
		if rest, ok := strings.CutPrefix(input, s); ok {
			return struct{}{}, rest, nil
		}
		return struct{}{}, input, &Error{Kind: ExpectedLiteral, Literal: s, Input: input}
	}
}

// AnyLiteral returns a parser that matches the first of literals that the
// input starts with, and returns it.
func AnyLiteral(literals ...string) Parser[string] {
	return func(input string) (string, string, error) {
		for _, s := range literals {
			if rest, ok := strings.CutPrefix(input, s); ok {
				return s, rest, nil
			}
		}
		return "", input, &Error{Kind: ExpectedLiteral, Literal: strings.Join(literals, ", "), Input: input}
	}
}

// TakeWhile1 returns a parser for the longest run of characters that
// satisfy f. The run must not be empty. The name is used in error messages.
func TakeWhile1(name string, f func(rune) bool) Parser[string] {
	return func(input string) (string, string, error) {
		rest := strings.TrimLeftFunc(input, f)
		if len(rest) == len(input) {
			return "", input, &Error{Kind: PredicateRejected, Literal: name, Input: input}
		}
		return input[:len(input)-len(rest)], rest, nil
	}
}
