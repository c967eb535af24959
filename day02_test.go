package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day2Example = `1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
`

func TestPasswordEntries(t *testing.T) {
	entries, err := passwordEntries.ParseAll(day2Example)
	require.NoError(t, err)

	want := []passwordEntry{
		{1, 3, 'a', "abcde"},
		{1, 3, 'b', "cdefg"},
		{2, 9, 'c', "ccccccccc"},
	}
	if diff := cmp.Diff(want, entries, cmp.AllowUnexported(passwordEntry{})); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, entries[0].validByPosition())
	assert.False(t, entries[1].validByPosition())
	assert.False(t, entries[2].validByPosition())
}

func TestSolveDay2(t *testing.T) {
	a, err := solveDay2(day2Example)
	require.NoError(t, err)
	assert.Equal(t, answers{"2", "1"}, a)

	_, err = solveDay2("1-3 a abcde\n")
	assert.Error(t, err)
}
