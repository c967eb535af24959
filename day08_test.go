package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day8Example = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
`

func TestBootCode(t *testing.T) {
	program, err := bootCode.ParseAll(day8Example)
	require.NoError(t, err)
	require.Len(t, program, 9)
	assert.Equal(t, instruction{opJmp, -3}, program[4])
	assert.Equal(t, instruction{opAcc, -99}, program[5])

	acc, terminated := run(program)
	assert.Equal(t, 5, acc)
	assert.False(t, terminated)

	_, err = bootCode.ParseAll("acc 1\n")
	assert.Error(t, err)
}

func TestRepair(t *testing.T) {
	program, err := bootCode.ParseAll(day8Example)
	require.NoError(t, err)

	acc, err := repair(program)
	require.NoError(t, err)
	assert.Equal(t, 8, acc)

	_, err = repair([]instruction{{opJmp, 0}, {opJmp, 5}})
	assert.ErrorIs(t, err, errNoRepair)
}

func TestSolveDay8(t *testing.T) {
	a, err := solveDay8(day8Example)
	require.NoError(t, err)
	assert.Equal(t, answers{"5", "8"}, a)
}
