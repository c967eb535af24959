package main

import (
	"fmt"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 12: Rain Risk

type navAction struct {
	action string
	value  int
}

var navActions = parse.OneOrMore(parse.WhitespaceWrap(parse.Pair(
	parse.AnyLiteral("N", "S", "E", "W", "L", "R", "F"),
	parse.Integer,
	func(a string, n int64) navAction { return navAction{a, int(n)} },
)))

// A vec is a position or offset, with x to the east and y to the north.
type vec struct{ x, y int }

func (v vec) add(w vec, times int) vec {
	return vec{v.x + w.x*times, v.y + w.y*times}
}

// rotate turns v counterclockwise by degrees, which must be a multiple of 90.
func (v vec) rotate(degrees int) vec {
	for range ((degrees%360 + 360) % 360) / 90 {
		v = vec{-v.y, v.x}
	}
	return v
}

func (v vec) manhattan() int {
	return abs(v.x) + abs(v.y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var compass = map[string]vec{"N": {0, 1}, "S": {0, -1}, "E": {1, 0}, "W": {-1, 0}}

// navigate follows the actions. If moveWaypoint is false, N/S/E/W move the
// ship and L/R/F steer it; otherwise N/S/E/W move the waypoint, L/R rotate
// it around the ship, and F moves the ship toward it.
func navigate(actions []navAction, waypoint vec, moveWaypoint bool) vec {
	var ship vec
	for _, a := range actions {
		switch a.action {
		case "L":
			waypoint = waypoint.rotate(a.value)
		case "R":
			waypoint = waypoint.rotate(-a.value)
		case "F":
			ship = ship.add(waypoint, a.value)
		default:
			if moveWaypoint {
				waypoint = waypoint.add(compass[a.action], a.value)
			} else {
				ship = ship.add(compass[a.action], a.value)
			}
		}
	}
	return ship
}

func solveDay12(input string) (answers, error) {
	actions, err := navActions.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	heading := navigate(actions, vec{1, 0}, false)
	waypoint := navigate(actions, vec{10, 1}, true)
	return answers{fmt.Sprint(heading.manhattan()), fmt.Sprint(waypoint.manhattan())}, nil
}

func init() {
	register(12, solveDay12)
}
