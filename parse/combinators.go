package parse

import "sync"

// A Tuple holds the results of Seq.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// A Triple holds the results of Seq3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Map returns a parser that transforms p's result with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (value B, rest string, err error) {
		a, rest, err := p(input)
		if err != nil {
			return value, rest, err
		}
		return f(a), rest, nil
	}
}

// Means returns a parser that replaces p's result with v.
func Means[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// MapErr is like Map, but f may reject the value. A rejected value fails
// with PredicateRejected at the original input, wrapping f's error.
func MapErr[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return func(input string) (value B, rest string, err error) {
		a, rest, err := p(input)
		if err != nil {
			return value, rest, err
		}
		value, err = f(a)
		if err != nil {
			return value, input, &Error{Kind: PredicateRejected, Input: input, Err: err}
		}
		return value, rest, nil
	}
}

// Seq runs p1 and then p2 on what p1 left over.
//
// A failure of p2 is not rolled back: the sequence reports p2's error and
// p2's starting point, after whatever p1 consumed. Combinators outside the
// sequence still see only the input they passed in, so alternation around
// a whole sequence retries from the start.
func Seq[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple[A, B]] {
	return Pair(p1, p2, func(a A, b B) Tuple[A, B] { return Tuple[A, B]{a, b} })
}

// Pair runs p1 then p2, and combines their results with f.
func Pair[A, B, C any](p1 Parser[A], p2 Parser[B], f func(A, B) C) Parser[C] {
	return func(input string) (value C, rest string, err error) {
		a, rest, err := p1(input)
		if err != nil {
			return value, rest, err
		}
		b, rest, err := p2(rest)
		if err != nil {
			return value, rest, err
		}
		return f(a, b), rest, nil
	}
}

// Seq3 runs three parsers in sequence.
func Seq3[A, B, C any](p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[Triple[A, B, C]] {
	return Pair(Seq(p1, p2), p3, func(ab Tuple[A, B], c C) Triple[A, B, C] {
		return Triple[A, B, C]{ab.First, ab.Second, c}
	})
}

// Left runs p1 then p2 and keeps p1's result.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Pair(p1, p2, func(a A, _ B) A { return a })
}

// Right runs p1 then p2 and keeps p2's result.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Pair(p1, p2, func(_ A, b B) B { return b })
}

// Either tries p1, and if it fails, tries p2 on the same input.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		if value, rest, err := p1(input); err == nil {
			return value, rest, nil
		}
		return p2(input)
	}
}

// OneOf tries each parser in turn on the same input, returning the first
// success, or the last failure.
func OneOf[T any](options ...Parser[T]) Parser[T] {
	return func(input string) (value T, rest string, err error) {
		if len(options) == 0 {
			return fail[T](PredicateRejected, input)
		}
		for _, p := range options {
			value, rest, err = p(input)
			if err == nil {
				return
			}
		}
		return
	}
}

// ZeroOrMore applies p until it fails, and returns the results collected so
// far. It always succeeds. p must consume input when it succeeds, or
// ZeroOrMore will loop forever.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		var result []T
		for {
			value, rest, err := p(input)
			if err != nil {
				return result, input, nil
			}
			result = append(result, value)
			input = rest
		}
	}
}

// OneOrMore is like ZeroOrMore, but fails with ExpectedAtLeastOne unless p
// succeeds at least once.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	more := ZeroOrMore(p)
	return func(input string) ([]T, string, error) {
		first, rest, err := p(input)
		if err != nil {
			return nil, input, &Error{Kind: ExpectedAtLeastOne, Input: input, Err: err}
		}
		values, rest, _ := more(rest)
		return append([]T{first}, values...), rest, nil
	}
}

// Pred returns a parser that succeeds only when p succeeds with a value for
// which f returns true. Any failure leaves the input unconsumed.
func Pred[T any](p Parser[T], f func(T) bool) Parser[T] {
	return func(input string) (value T, rest string, err error) {
		value, rest, err = p(input)
		if err != nil {
			return value, input, err
		}
		if !f(value) {
			return fail[T](PredicateRejected, input)
		}
		return value, rest, nil
	}
}

// Between parses open, p and close in sequence and keeps p's result.
func Between[A, B, C any](open Parser[A], p Parser[B], close Parser[C]) Parser[B] {
	return func(input string) (value B, rest string, err error) {
		_, rest, err = open(input)
		if err != nil {
			return
		}
		value, rest, err = p(rest)
		if err != nil {
			return
		}
		_, rest, err = close(rest)
		return
	}
}

// SepBy parses one or more items separated by sep. A separator that is not
// followed by an item is left unconsumed.
func SepBy[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return Pair(item, ZeroOrMore(Right(sep, item)), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// WhitespaceWrap parses p with optional whitespace before and after it.
func WhitespaceWrap[T any](p Parser[T]) Parser[T] {
	return Between(Whitespace, p, Whitespace)
}

// Opt returns a parser that never fails: it returns a pointer to p's result,
// or nil (consuming nothing) if p fails.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(input string) (*T, string, error) {
		value, rest, err := p(input)
		if err != nil {
			return nil, input, nil
		}
		return &value, rest, nil
	}
}

// Recognize returns a parser that returns the text p consumed, instead of
// p's result.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(input string) (string, string, error) {
		_, rest, err := p(input)
		if err != nil {
			return "", rest, err
		}
		return input[:len(input)-len(rest)], rest, nil
	}
}

// Boxed converts any function with a parser's signature (a method value, a
// recursive helper) into a Parser, so it can be stored and combined like
// any other.
func Boxed[T any](f func(input string) (T, string, error)) Parser[T] {
	return Parser[T](f)
}

// Lazy returns a parser that calls build the first time it is used, and
// delegates to the parser it returns. It allows grammars that refer to
// themselves.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return func(input string) (T, string, error) {
		return get()(input)
	}
}
