package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	got, err := tokens.ParseAll("1 + 2 * (3+9)")
	require.NoError(t, err)
	assert.Equal(t, []token{
		{numToken, 1}, {kind: addToken}, {numToken, 2}, {kind: mulToken},
		{kind: openToken}, {numToken, 3}, {kind: addToken}, {numToken, 9}, {kind: closeToken},
	}, got)
}

func TestToRPN(t *testing.T) {
	infix := []token{{numToken, 1}, {kind: addToken}, {kind: openToken}, {numToken, 2}, {kind: mulToken}, {numToken, 3}, {kind: closeToken}, {kind: addToken}, {numToken, 7}}
	rpn, err := toRPN(infix, leftToRight)
	require.NoError(t, err)
	assert.Equal(t, []token{{numToken, 1}, {numToken, 2}, {numToken, 3}, {kind: mulToken}, {kind: addToken}, {numToken, 7}, {kind: addToken}}, rpn)

	_, err = toRPN([]token{{numToken, 1}, {kind: closeToken}}, leftToRight)
	assert.ErrorIs(t, err, errMismatchedParens)
	_, err = toRPN([]token{{kind: openToken}, {numToken, 1}}, leftToRight)
	assert.ErrorIs(t, err, errMismatchedParens)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr          string
		leftToRight   int64
		additionFirst int64
	}{
		{"1 + 2 * 3 + 4 * 5 + 6", 71, 231},
		{"2 * 3 + (4 * 5)", 26, 46},
		{"5 + (8 * 3 + 9 + 3 * 4 * 3)", 437, 1445},
		{"5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))", 12240, 669060},
		{"((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2", 13632, 23340},
	}
	for _, tt := range tests {
		n, err := evaluate(tt.expr, leftToRight)
		require.NoError(t, err)
		assert.Equal(t, tt.leftToRight, n, tt.expr)

		n, err = evaluate(tt.expr, additionFirst)
		require.NoError(t, err)
		assert.Equal(t, tt.additionFirst, n, tt.expr)
	}

	_, err := evaluate("1 + * 2", leftToRight)
	assert.ErrorIs(t, err, errMalformedExpression)
}

func TestSolveDay18(t *testing.T) {
	a, err := solveDay18("2 * 3 + (4 * 5)\n5 + (8 * 3 + 9 + 3 * 4 * 3)\n")
	require.NoError(t, err)
	assert.Equal(t, answers{"463", "1491"}, a)
}
