package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// A Kind says what a failed parser expected to find.
type Kind int

const (
	ExpectedDigit Kind = iota + 1
	ExpectedLetter
	ExpectedInteger
	ExpectedLiteral
	ExpectedAtLeastOne
	ExpectedIdentifier
	UnexpectedEndOfInput
	PredicateRejected
	UnconsumedInput
)

func (k Kind) String() string {
	switch k {
	case ExpectedDigit:
		return "expected digit"
	case ExpectedLetter:
		return "expected letter"
	case ExpectedInteger:
		return "expected integer"
	case ExpectedLiteral:
		return "expected literal"
	case ExpectedAtLeastOne:
		return "expected at least one"
	case ExpectedIdentifier:
		return "expected identifier"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case PredicateRejected:
		return "predicate rejected"
	case UnconsumedInput:
		return "unconsumed input"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Error reports a failed parse.
type Error struct {
	Kind Kind

	// Literal is the text an ExpectedLiteral failure was looking for, or
	// the name given to a TakeWhile1 parser.
	Literal string

	// Input is the input at the point where the failing parser started.
	Input string

	// Err is the failure underneath this one, if any (the item failure
	// inside ExpectedAtLeastOne, or the error returned by a MapErr
	// function).
	Err error
}

// Sentinel errors for use with errors.Is; they match any *Error of the same
// Kind.
var (
	ErrExpectedDigit        = &Error{Kind: ExpectedDigit}
	ErrExpectedLetter       = &Error{Kind: ExpectedLetter}
	ErrExpectedInteger      = &Error{Kind: ExpectedInteger}
	ErrExpectedLiteral      = &Error{Kind: ExpectedLiteral}
	ErrExpectedAtLeastOne   = &Error{Kind: ExpectedAtLeastOne}
	ErrExpectedIdentifier   = &Error{Kind: ExpectedIdentifier}
	ErrUnexpectedEndOfInput = &Error{Kind: UnexpectedEndOfInput}
	ErrPredicateRejected    = &Error{Kind: PredicateRejected}
	ErrUnconsumedInput      = &Error{Kind: UnconsumedInput}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Literal != "" {
		fmt.Fprintf(&b, " %q", e.Literal)
	}
	b.WriteString(" at ")
	b.WriteString(excerpt(e.Input))
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// excerpt quotes the beginning of the first line of s, for error messages.
func excerpt(s string) string {
	if s == "" {
		return "end of input"
	}
	if nl := strings.IndexByte(s, '\n'); nl != -1 {
		s = s[:nl]
	}
	const max = 24
	if utf8.RuneCountInString(s) > max {
		runes := []rune(s)
		return fmt.Sprintf("%q...", string(runes[:max]))
	}
	return fmt.Sprintf("%q", s)
}
