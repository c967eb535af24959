package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day12Example = "F10\nN3\nF7\nR90\nF11\n"

func TestVecRotate(t *testing.T) {
	tests := []struct {
		degrees int
		want    vec
	}{
		{0, vec{10, 4}},
		{90, vec{-4, 10}},
		{180, vec{-10, -4}},
		{270, vec{4, -10}},
		{-90, vec{4, -10}},
		{450, vec{-4, 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, vec{10, 4}.rotate(tt.degrees), "rotate %d", tt.degrees)
	}
}

func TestSolveDay12(t *testing.T) {
	actions, err := navActions.ParseAll(day12Example)
	require.NoError(t, err)
	assert.Equal(t, navAction{"R", 90}, actions[3])
	assert.Equal(t, vec{17, -8}, navigate(actions, vec{1, 0}, false))
	assert.Equal(t, vec{214, -72}, navigate(actions, vec{10, 1}, true))

	a, err := solveDay12(day12Example)
	require.NoError(t, err)
	assert.Equal(t, answers{"25", "286"}, a)
}
