package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tile2311 = `Tile 2311:
..##.#..#.
##..#.....
#...##..#.
####.#...#
##.##.###.
##...#.###
.#.#.#..##
..#....#..
###...#.#.
..###..###
`

func TestTileParser(t *testing.T) {
	tiles, err := tilesParser.ParseAll(tile2311 + "\n" + tile2311)
	require.NoError(t, err)
	require.Len(t, tiles, 2)
	assert.Equal(t, tile{id: 2311, edges: [4]uint16{top: 0x0d2, right: 0x059, bottom: 0x0e7, left: 0x1f2}}, tiles[0])

	_, err = tilesParser.ParseAll("Tile 1:\n#.#\n.#.\n#.#\n")
	assert.Error(t, err)
}

func TestReverseEdge(t *testing.T) {
	assert.Equal(t, uint16(0b0000000001), reverseEdge(0b1000000000))
	assert.Equal(t, uint16(0b1101000000), reverseEdge(0b0000001011))
	assert.Equal(t, uint16(0x0d2), reverseEdge(reverseEdge(0x0d2)))
}

func TestOrientations(t *testing.T) {
	tl := tile{edges: [4]uint16{top: 0x2f9, right: 0x16d, bottom: 0x077, left: 0x325}}

	r90 := [4]uint16{tl.edge(r90, top), tl.edge(r90, right), tl.edge(r90, bottom), tl.edge(r90, left)}
	assert.Equal(t, [4]uint16{0x16d, 0x3b8, 0x325, 0x27d}, r90)

	// Every orientation keeps the same set of patterns, up to reversal.
	canonical := func(e uint16) uint16 { return min(e, reverseEdge(e)) }
	var want []uint16
	for _, e := range tl.edges {
		want = append(want, canonical(e))
	}
	slices.Sort(want)
	for o := r0; o <= r90FlipV; o++ {
		var got []uint16
		for side := top; side <= left; side++ {
			got = append(got, canonical(tl.edge(o, side)))
		}
		slices.Sort(got)
		assert.Equal(t, want, got, "orientation %d", o)
	}

	// Opposite sides stay opposite.
	for o := r0; o <= r90FlipV; o++ {
		tb := []uint16{canonical(tl.edge(o, top)), canonical(tl.edge(o, bottom))}
		slices.Sort(tb)
		assert.True(t, slices.Equal(tb, []uint16{canonical(0x077), canonical(0x2f9)}) ||
			slices.Equal(tb, []uint16{canonical(0x16d), canonical(0x325)}), "orientation %d", o)
	}
}

// syntheticTiles cuts a side×side square into tiles whose shared edges have
// distinct patterns, turns each tile to a different orientation, and
// shuffles them. It returns the tiles and the IDs of the corners.
func syntheticTiles(side int) ([]tile, []int) {
	used := make(map[uint16]bool)
	next := uint16(1)
	pattern := func() uint16 {
		for {
			next++
			r := reverseEdge(next)
			if r != next && !used[next] && !used[r] {
				used[next], used[r] = true, true
				return next
			}
		}
	}

	// horizontal[y][x] is the top edge of the tile at (x, y);
	// vertical[y][x] is its left edge.
	horizontal := make([][]uint16, side+1)
	for y := range horizontal {
		for range side {
			horizontal[y] = append(horizontal[y], pattern())
		}
	}
	vertical := make([][]uint16, side)
	for y := range vertical {
		for range side + 1 {
			vertical[y] = append(vertical[y], pattern())
		}
	}

	var tiles []tile
	for y := range side {
		for x := range side {
			t := tile{id: 1000 + y*side + x}
			t.edges = [4]uint16{
				top:    horizontal[y][x],
				right:  vertical[y][x+1],
				bottom: horizontal[y+1][x],
				left:   vertical[y][x],
			}
			o := orientation((x + 3*y) % 8)
			t.edges = [4]uint16{t.edge(o, top), t.edge(o, right), t.edge(o, bottom), t.edge(o, left)}
			tiles = append(tiles, t)
		}
	}
	slices.Reverse(tiles)

	corners := []int{1000, 1000 + side - 1, 1000 + side*(side-1), 1000 + side*side - 1}
	return tiles, corners
}

func TestArrangeTiles(t *testing.T) {
	for _, side := range []int{1, 2, 3, 5} {
		tiles, corners := syntheticTiles(side)
		a, err := arrangeTiles(tiles)
		require.NoError(t, err, "side %d", side)

		var got []int
		for _, pos := range []int{0, side - 1, side * (side - 1), side*side - 1} {
			got = append(got, a.tiles[a.grid[pos].tile].id)
		}
		assert.ElementsMatch(t, corners, got, "side %d", side)

		product := 1
		for _, id := range corners {
			product *= id
		}
		assert.Equal(t, product, a.cornerProduct(), "side %d", side)
	}
}

func TestArrangeTilesErrors(t *testing.T) {
	tiles, _ := syntheticTiles(2)
	_, err := arrangeTiles(tiles[:3])
	assert.Error(t, err)

	tiles[0].edges = [4]uint16{0x3f0, 0x3e8, 0x3d8, 0x3b8}
	_, err = arrangeTiles(tiles)
	assert.ErrorIs(t, err, errNoArrangement)
}
