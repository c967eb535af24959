package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		matches []int
	}{
		{"all", "all", registeredDays()},
		{"7", "7", []int{7}},
		{" 2-8 ", "2-8", []int{2, 4, 7, 8}},
		{"1-20 &! 13", "1-20 &! 13", []int{2, 4, 7, 8, 11, 12, 14, 16, 18, 19, 20}},
		{"2|4|7", "(2 | 4) | 7", []int{2, 4, 7}},
		{"1-25 &! (10-20 | 2)", "1-25 &! (10-20 | 2)", []int{4, 7, 8, 21, 22, 23}},
		{"(1-10 & 5-25) | 23", "(1-10 & 5-25) | 23", []int{7, 8, 23}},
	}
	for _, tt := range tests {
		r, err := parseRule(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, r.String(), tt.in)

		var got []int
		for _, d := range registeredDays() {
			if r.matches(d) {
				got = append(got, d)
			}
		}
		assert.Equal(t, tt.matches, got, tt.in)
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{"", "0", "8-2", "1 &", "(1 | 2", "1 2", "seven"} {
		_, err := parseRule(in)
		assert.Error(t, err, in)
	}
}

func TestSelectDays(t *testing.T) {
	days, err := selectDays(nil, "")
	require.NoError(t, err)
	assert.Equal(t, registeredDays(), days)

	days, err = selectDays([]string{"8", "2", "8"}, "")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8}, days)

	days, err = selectDays(nil, "10-20 &! 13-16")
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12, 18, 19, 20}, days)

	_, err = selectDays([]string{"x"}, "")
	assert.Error(t, err)
	_, err = selectDays([]string{"1"}, "")
	assert.EqualError(t, err, "no solution for day 1")
	_, err = selectDays(nil, "1 |")
	assert.Error(t, err)
}
