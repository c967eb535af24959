package main

import (
	"errors"
	"fmt"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 11: Seating System

type seat byte

const (
	floor seat = iota
	emptySeat
	occupiedSeat
)

var seatRows = parse.OneOrMore(parse.WhitespaceWrap(parse.OneOrMore(parse.OneOf(
	parse.Means(parse.MatchLiteral("."), floor),
	parse.Means(parse.MatchLiteral("L"), emptySeat),
	parse.Means(parse.MatchLiteral("#"), occupiedSeat),
))))

// A seatLayout is a grid of seats stored row by row. neighbors[i] lists the
// indexes of the seats that seat i looks at.
type seatLayout struct {
	width     int
	cells     []seat
	neighbors [][]int
}

var errRaggedGrid = errors.New("rows are not all the same length")

func newSeatLayout(rows [][]seat) (*seatLayout, error) {
	l := &seatLayout{width: len(rows[0])}
	for _, r := range rows {
		if len(r) != l.width {
			return nil, errRaggedGrid
		}
		l.cells = append(l.cells, r...)
	}
	return l, nil
}

var directions = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// findNeighbors fills in l.neighbors. If lineOfSight is false, each seat
// looks at its adjacent cells; otherwise it looks at the first seat in each
// direction.
func (l *seatLayout) findNeighbors(lineOfSight bool) {
	height := len(l.cells) / l.width
	l.neighbors = make([][]int, len(l.cells))
	for i, c := range l.cells {
		if c == floor {
			continue
		}
		x0, y0 := i%l.width, i/l.width
		for _, d := range directions {
			x, y := x0+d[0], y0+d[1]
			for x >= 0 && x < l.width && y >= 0 && y < height {
				j := y*l.width + x
				if l.cells[j] != floor {
					l.neighbors[i] = append(l.neighbors[i], j)
					break
				}
				if !lineOfSight {
					break
				}
				x, y = x+d[0], y+d[1]
			}
		}
	}
}

// settle applies the seating rules until nothing changes, and returns the
// number of occupied seats. An occupied seat empties when at least
// tolerance of its neighbors are occupied.
func (l *seatLayout) settle(tolerance int) int {
	cells := append([]seat(nil), l.cells...)
	next := make([]seat, len(cells))
	for {
		changed := false
		for i, c := range cells {
			occupied := 0
			for _, j := range l.neighbors[i] {
				if cells[j] == occupiedSeat {
					occupied++
				}
			}
			switch {
			case c == emptySeat && occupied == 0:
				c = occupiedSeat
				changed = true
			case c == occupiedSeat && occupied >= tolerance:
				c = emptySeat
				changed = true
			}
			next[i] = c
		}
		cells, next = next, cells
		if !changed {
			break
		}
	}

	n := 0
	for _, c := range cells {
		if c == occupiedSeat {
			n++
		}
	}
	return n
}

func solveDay11(input string) (answers, error) {
	rows, err := seatRows.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	l, err := newSeatLayout(rows)
	if err != nil {
		return answers{}, err
	}

	l.findNeighbors(false)
	adjacent := l.settle(4)
	l.findNeighbors(true)
	visible := l.settle(5)
	return answers{fmt.Sprint(adjacent), fmt.Sprint(visible)}, nil
}

func init() {
	register(11, solveDay11)
}
