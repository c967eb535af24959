package main

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"

	"github.com/andybalholm/aoc2020/parse"
	"go.uber.org/zap"
)

// Day 20: Jurassic Jigsaw

const tileSize = 10

// Edge patterns read left to right along the top and bottom, and top to
// bottom along the sides, with the first pixel in the high bit.
const (
	top = iota
	right
	bottom
	left
)

type tile struct {
	id    int
	edges [4]uint16
}

var reversedEdges = sync.OnceValue(func() []uint16 {
	table := make([]uint16, 1<<tileSize)
	for i := range table {
		table[i] = bits.Reverse16(uint16(i)) >> (16 - tileSize)
	}
	return table
})

func reverseEdge(e uint16) uint16 {
	return reversedEdges()[e]
}

var errTileShape = fmt.Errorf("tiles must be %dx%d", tileSize, tileSize)

var tileParser = parse.MapErr(
	parse.Seq(
		parse.WhitespaceWrap(parse.Between(parse.MatchLiteral("Tile "), parse.Integer, parse.MatchLiteral(":"))),
		parse.OneOrMore(parse.WhitespaceWrap(parse.OneOrMore(parse.Either(
			parse.Means(parse.MatchLiteral("#"), uint16(1)),
			parse.Means(parse.MatchLiteral("."), uint16(0)),
		)))),
	),
	func(t parse.Tuple[int64, [][]uint16]) (tile, error) {
		rows := t.Second
		if len(rows) != tileSize {
			return tile{}, errTileShape
		}
		result := tile{id: int(t.First)}
		for i, row := range rows {
			if len(row) != tileSize {
				return tile{}, errTileShape
			}
			result.edges[left] = result.edges[left]<<1 | row[0]
			result.edges[right] = result.edges[right]<<1 | row[tileSize-1]
			if i == 0 {
				result.edges[top] = packPixels(row)
			}
			if i == tileSize-1 {
				result.edges[bottom] = packPixels(row)
			}
		}
		return result, nil
	},
)

var tilesParser = parse.OneOrMore(tileParser)

func packPixels(row []uint16) uint16 {
	var e uint16
	for _, p := range row {
		e = e<<1 | p
	}
	return e
}

// An orientation is one of the 8 ways to rotate or flip a tile.
type orientation int

const (
	r0 orientation = iota
	r90
	r180
	r270
	flipH
	flipV
	r90FlipH
	r90FlipV
)

// orientedEdges[o][side] tells which edge of the original tile ends up on
// side after orientation o, and whether it is reversed.
var orientedEdges = [8][4]struct {
	from     int
	reversed bool
}{
	r0:       {{top, false}, {right, false}, {bottom, false}, {left, false}},
	r90:      {{right, false}, {bottom, true}, {left, false}, {top, true}},
	r180:     {{bottom, true}, {left, true}, {top, true}, {right, true}},
	r270:     {{left, true}, {top, false}, {right, true}, {bottom, false}},
	flipH:    {{top, true}, {left, false}, {bottom, true}, {right, false}},
	flipV:    {{bottom, false}, {right, true}, {top, false}, {left, true}},
	r90FlipH: {{right, true}, {top, true}, {left, true}, {bottom, true}},
	r90FlipV: {{left, false}, {bottom, false}, {right, false}, {top, false}},
}

// edge returns the pattern on side of t after orientation o.
func (t tile) edge(o orientation, side int) uint16 {
	oe := orientedEdges[o][side]
	e := t.edges[oe.from]
	if oe.reversed {
		e = reverseEdge(e)
	}
	return e
}

type placement struct {
	tile   int
	orient orientation
}

// An arrangement fills a square grid with tiles, row by row, so that
// neighboring edges match.
type arrangement struct {
	tiles []tile
	side  int
	grid  []placement
	used  []bool
}

var errNoArrangement = errors.New("the tiles can't be assembled into a square")

func arrangeTiles(tiles []tile) (*arrangement, error) {
	side := 0
	for side*side < len(tiles) {
		side++
	}
	if side*side != len(tiles) {
		return nil, fmt.Errorf("%d tiles can't make a square", len(tiles))
	}

	a := &arrangement{
		tiles: tiles,
		side:  side,
		grid:  make([]placement, 0, len(tiles)),
		used:  make([]bool, len(tiles)),
	}
	if !a.fill() {
		return nil, errNoArrangement
	}
	return a, nil
}

func (a *arrangement) fits(t tile, o orientation) bool {
	pos := len(a.grid)
	if pos%a.side > 0 {
		l := a.grid[pos-1]
		if a.tiles[l.tile].edge(l.orient, right) != t.edge(o, left) {
			return false
		}
	}
	if pos >= a.side {
		u := a.grid[pos-a.side]
		if a.tiles[u.tile].edge(u.orient, bottom) != t.edge(o, top) {
			return false
		}
	}
	return true
}

// fill places tiles in the remaining positions, backtracking when it gets
// stuck.
func (a *arrangement) fill() bool {
	if len(a.grid) == len(a.tiles) {
		return true
	}
	for i, t := range a.tiles {
		if a.used[i] {
			continue
		}
		for o := r0; o <= r90FlipV; o++ {
			if !a.fits(t, o) {
				continue
			}
			if len(a.grid) == 0 {
				logger.Debug("trying first tile", zap.Int("tile", t.id), zap.Int("orientation", int(o)))
			}
			a.grid = append(a.grid, placement{i, o})
			a.used[i] = true
			if a.fill() {
				return true
			}
			a.grid = a.grid[:len(a.grid)-1]
			a.used[i] = false
		}
	}
	return false
}

func (a *arrangement) cornerProduct() int {
	product := 1
	for _, pos := range []int{0, a.side - 1, len(a.grid) - a.side, len(a.grid) - 1} {
		product *= a.tiles[a.grid[pos].tile].id
	}
	return product
}

func solveDay20(input string) (answers, error) {
	tiles, err := tilesParser.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	a, err := arrangeTiles(tiles)
	if err != nil {
		return answers{}, err
	}
	return answers{Part1: fmt.Sprint(a.cornerProduct())}, nil
}

func init() {
	register(20, solveDay20)
}
