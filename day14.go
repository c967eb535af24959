package main

import (
	"fmt"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 14: Docking Data

const addressBits = 1<<36 - 1

// A dockingInstruction is either a mask (isMask is true) or a memory write.
type dockingInstruction struct {
	isMask bool
	// zeros and ones are the bits the mask sets to 0 and 1; the rest are
	// floating.
	zeros, ones uint64
	addr, value uint64
}

func (in dockingInstruction) floating() uint64 {
	return addressBits &^ (in.zeros | in.ones)
}

var maskInstruction = parse.Map(
	parse.Right(
		parse.MatchLiteral("mask = "),
		parse.OneOrMore(parse.AnyLiteral("X", "0", "1")).Pred(func(bits []string) bool { return len(bits) == 36 }),
	),
	func(bits []string) dockingInstruction {
		in := dockingInstruction{isMask: true}
		for _, b := range bits {
			in.zeros <<= 1
			in.ones <<= 1
			switch b {
			case "0":
				in.zeros |= 1
			case "1":
				in.ones |= 1
			}
		}
		return in
	},
)

var writeInstruction = parse.Pair(
	parse.Between(parse.MatchLiteral("mem["), parse.Integer, parse.MatchLiteral("] = ")),
	parse.Integer,
	func(addr, value int64) dockingInstruction {
		return dockingInstruction{addr: uint64(addr), value: uint64(value)}
	},
)

var initProgram = parse.ZeroOrMore(parse.WhitespaceWrap(parse.Either(maskInstruction, writeInstruction)))

// runMaskedValues applies each mask to the values written.
func runMaskedValues(program []dockingInstruction) uint64 {
	mem := make(map[uint64]uint64)
	var mask dockingInstruction
	for _, in := range program {
		if in.isMask {
			mask = in
			continue
		}
		mem[in.addr] = in.value&^mask.zeros | mask.ones
	}
	return sumValues(mem)
}

// runFloatingAddresses applies each mask to the addresses written, writing
// every combination of the floating bits.
func runFloatingAddresses(program []dockingInstruction) uint64 {
	mem := make(map[uint64]uint64)
	var mask dockingInstruction
	for _, in := range program {
		if in.isMask {
			mask = in
			continue
		}
		floating := mask.floating()
		base := (in.addr | mask.ones) &^ floating
		for sub := floating; ; sub = (sub - 1) & floating {
			mem[base|sub] = in.value
			if sub == 0 {
				break
			}
		}
	}
	return sumValues(mem)
}

func sumValues(mem map[uint64]uint64) uint64 {
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum
}

func solveDay14(input string) (answers, error) {
	program, err := initProgram.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	return answers{fmt.Sprint(runMaskedValues(program)), fmt.Sprint(runFloatingAddresses(program))}, nil
}

func init() {
	register(14, solveDay14)
}
