package main

import (
	"fmt"
	"slices"

	"github.com/andybalholm/aoc2020/parse"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
)

// Day 22: Crab Combat

type decks [2][]int

var deckParser = parse.MapErr(
	parse.OneOrMore(parse.WhitespaceWrap(parse.Right(
		parse.Between(parse.MatchLiteral("Player "), parse.Integer, parse.MatchLiteral(":")),
		parse.OneOrMore(parse.WhitespaceWrap(parse.Map(parse.Integer, func(n int64) int { return int(n) }))),
	))),
	func(ds [][]int) (decks, error) {
		if len(ds) != 2 {
			return decks{}, fmt.Errorf("found %d players; want 2", len(ds))
		}
		return decks{ds[0], ds[1]}, nil
	},
)

// key encodes the cards in both decks, one byte per card.
func (d decks) key() []byte {
	b := make([]byte, 0, len(d[0])+len(d[1])+1)
	for _, c := range d[0] {
		b = append(b, byte(c))
	}
	b = append(b, 0xff)
	for _, c := range d[1] {
		b = append(b, byte(c))
	}
	return b
}

type gameResult struct {
	winner int
	decks  decks
	rounds int
}

func (g gameResult) score() int {
	deck := g.decks[g.winner]
	score := 0
	for i, c := range deck {
		score += c * (len(deck) - i)
	}
	return score
}

// A combatGame plays Combat. In recursive games, sub-game winners are
// remembered in memo, keyed by the starting decks.
type combatGame struct {
	recursive bool
	memo      *memo
}

func (g *combatGame) play(d decks, depth int) gameResult {
	d = decks{slices.Clone(d[0]), slices.Clone(d[1])}
	seen := make(map[xxh3.Uint128]bool)
	rounds := 0

	for len(d[0]) > 0 && len(d[1]) > 0 {
		if g.recursive {
			h := xxh3.Hash128(d.key())
			if seen[h] {
				// A repeated position ends the game in player 1's favor.
				return gameResult{winner: 0, decks: d, rounds: rounds}
			}
			seen[h] = true
		}
		rounds++

		a, b := d[0][0], d[1][0]
		d[0], d[1] = d[0][1:], d[1][1:]

		var winner int
		switch {
		case g.recursive && len(d[0]) >= a && len(d[1]) >= b:
			winner = g.subGame(decks{d[0][:a], d[1][:b]}, depth+1)
		case a > b:
			winner = 0
		default:
			winner = 1
		}

		if winner == 0 {
			d[0] = append(d[0], a, b)
		} else {
			d[1] = append(d[1], b, a)
		}
	}

	winner := 0
	if len(d[0]) == 0 {
		winner = 1
	}
	if depth == 0 {
		logger.Debug("game over", zap.Bool("recursive", g.recursive), zap.Int("rounds", rounds), zap.Int("winner", winner+1))
	}
	return gameResult{winner: winner, decks: d, rounds: rounds}
}

func (g *combatGame) subGame(d decks, depth int) int {
	key := string(d.key())
	if w, ok := g.memo.get(key); ok {
		return w
	}
	w := g.play(d, depth).winner
	g.memo.set(key, w)
	return w
}

func solveDay22(input string) (answers, error) {
	d, err := deckParser.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	for _, deck := range d {
		for _, c := range deck {
			if c >= 0xff {
				return answers{}, fmt.Errorf("card %d is too large", c)
			}
		}
	}

	normal := (&combatGame{}).play(d, 0)

	m := newMemo(1 << 16)
	defer m.close()
	recursive := (&combatGame{recursive: true, memo: m}).play(d, 0)

	return answers{fmt.Sprint(normal.score()), fmt.Sprint(recursive.score())}, nil
}

func init() {
	register(22, solveDay22)
}
