package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskedValues(t *testing.T) {
	program, err := initProgram.ParseAll(`mask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X
mem[8] = 11
mem[7] = 101
mem[8] = 0
`)
	require.NoError(t, err)
	require.Len(t, program, 4)
	assert.Equal(t, dockingInstruction{isMask: true, zeros: 2, ones: 64}, program[0])
	assert.Equal(t, dockingInstruction{addr: 7, value: 101}, program[2])

	assert.Equal(t, uint64(165), runMaskedValues(program))
}

func TestFloatingAddresses(t *testing.T) {
	program, err := initProgram.ParseAll(`mask = 000000000000000000000000000000X1001X
mem[42] = 100
mask = 00000000000000000000000000000000X0XX
mem[26] = 1
`)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b100001), program[0].floating())
	assert.Equal(t, uint64(208), runFloatingAddresses(program))
}

func TestSolveDay14(t *testing.T) {
	_, err := solveDay14("mask = 0\nmem[1] = x\n")
	assert.Error(t, err)
}
