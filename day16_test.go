package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day16Example = `class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
`

func TestTicketNotes(t *testing.T) {
	notes, err := ticketNotesParser.ParseAll(day16Example)
	require.NoError(t, err)

	want := ticketNotes{
		fields: []ticketField{
			{"class", []span{{1, 3}, {5, 7}}},
			{"row", []span{{6, 11}, {33, 44}}},
			{"seat", []span{{13, 40}, {45, 50}}},
		},
		yours:  []int{7, 1, 14},
		nearby: [][]int{{7, 3, 47}, {40, 4, 50}, {55, 2, 20}, {38, 6, 12}},
	}
	if diff := cmp.Diff(want, notes, cmp.AllowUnexported(ticketNotes{}, ticketField{}, span{})); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 71, notes.errorRate())
}

func TestFieldPositions(t *testing.T) {
	notes, err := ticketNotesParser.ParseAll(`
	class: 0-1 or 4-19
	row: 0-5 or 8-19
	seat: 0-13 or 16-19

	your ticket:
	11,12,13

	nearby tickets:
	3,9,18
	15,1,5
	5,14,9`)
	require.NoError(t, err)

	positions, err := notes.fieldPositions()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"row": 0, "class": 1, "seat": 2}, positions)

	values := make(map[string]int)
	for name, pos := range positions {
		values[name] = notes.yours[pos]
	}
	assert.Equal(t, map[string]int{"class": 12, "row": 11, "seat": 13}, values)
}

func TestFieldPositionsAmbiguous(t *testing.T) {
	notes, err := ticketNotesParser.ParseAll("a: 1-5\nb: 1-5\n\nyour ticket:\n1,2\n\nnearby tickets:\n3,4\n")
	require.NoError(t, err)
	_, err = notes.fieldPositions()
	assert.ErrorIs(t, err, errAmbiguousFields)
}

func TestSolveDay16(t *testing.T) {
	a, err := solveDay16(`departure time: 1-10
departure date: 5-30
zone: 20-40

your ticket:
3,25,30

nearby tickets:
1,8,21
9,29,39
2,6,35
100,1,1
`)
	require.NoError(t, err)
	assert.Equal(t, answers{"100", "75"}, a)
}
