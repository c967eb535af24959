package main

import (
	"errors"
	"fmt"

	"github.com/andybalholm/aoc2020/parse"
)

// Day 8: Handheld Halting

type opcode int

const (
	opAcc opcode = iota
	opJmp
	opNop
)

type instruction struct {
	op  opcode
	arg int
}

var signedInteger = parse.Pair(
	parse.Either(
		parse.Means(parse.MatchLiteral("+"), int64(1)),
		parse.Means(parse.MatchLiteral("-"), int64(-1)),
	),
	parse.Integer,
	func(sign, n int64) int { return int(sign * n) },
)

var bootCode = parse.OneOrMore(parse.WhitespaceWrap(parse.Pair(
	parse.OneOf(
		parse.Means(parse.MatchLiteral("acc "), opAcc),
		parse.Means(parse.MatchLiteral("jmp "), opJmp),
		parse.Means(parse.MatchLiteral("nop "), opNop),
	),
	signedInteger,
	func(op opcode, arg int) instruction { return instruction{op, arg} },
)))

// run executes program until it would run an instruction for the second
// time, or until it terminates by moving just past its last instruction.
// It returns the accumulator and whether the program terminated.
func run(program []instruction) (acc int, terminated bool) {
	visited := make([]bool, len(program))
	pc := 0
	for pc >= 0 && pc < len(program) && !visited[pc] {
		visited[pc] = true
		switch in := program[pc]; in.op {
		case opAcc:
			acc += in.arg
			pc++
		case opJmp:
			pc += in.arg
		case opNop:
			pc++
		}
	}
	return acc, pc == len(program)
}

var errNoRepair = errors.New("no single jmp/nop swap makes the program terminate")

// repair swaps one jmp for a nop (or vice versa) so that the program
// terminates, and returns the final accumulator.
func repair(program []instruction) (int, error) {
	swapped := map[opcode]opcode{opJmp: opNop, opNop: opJmp}
	for i, in := range program {
		other, ok := swapped[in.op]
		if !ok {
			continue
		}
		program[i].op = other
		acc, terminated := run(program)
		program[i].op = in.op
		if terminated {
			return acc, nil
		}
	}
	return 0, errNoRepair
}

func solveDay8(input string) (answers, error) {
	program, err := bootCode.ParseAll(input)
	if err != nil {
		return answers{}, err
	}
	loopAcc, _ := run(program)
	fixedAcc, err := repair(program)
	if err != nil {
		return answers{}, err
	}
	return answers{fmt.Sprint(loopAcc), fmt.Sprint(fixedAcc)}, nil
}

func init() {
	register(8, solveDay8)
}
