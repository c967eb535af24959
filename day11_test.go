package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day11Example = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func TestSeatNeighbors(t *testing.T) {
	rows, err := seatRows.ParseAll(".......#.\n...#.....\n.#.......\n.........\n..#L....#\n....#....\n.........\n#........\n...#.....\n")
	require.NoError(t, err)
	l, err := newSeatLayout(rows)
	require.NoError(t, err)

	l.findNeighbors(true)
	empty := 4*9 + 3
	assert.Len(t, l.neighbors[empty], 8)

	l.findNeighbors(false)
	assert.Equal(t, []int{4*9 + 2, 5*9 + 4}, l.neighbors[empty])
}

func TestSolveDay11(t *testing.T) {
	a, err := solveDay11(day11Example)
	require.NoError(t, err)
	assert.Equal(t, answers{"37", "26"}, a)

	_, err = solveDay11("L.L\nLL\n")
	assert.ErrorIs(t, err, errRaggedGrid)
}
