package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// baseGrid is the canonical complete solution built from the algebraic
// pattern (3*(r%3) + r/3 + c) % 9.
func baseGrid() [9][9]uint8 {
	var g [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = uint8((3*(r%3)+r/3+c)%9) + 1
		}
	}
	return g
}

func TestAllowedOnEmptyBoard(t *testing.T) {
	var g [9][9]uint8
	for v := uint8(1); v <= 9; v++ {
		require.True(t, Allowed(&g, 4, 4, v))
	}
}

func TestAllowedRejectsDuplicates(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 5

	require.False(t, Allowed(&g, 0, 8, 5), "same row")
	require.False(t, Allowed(&g, 8, 0, 5), "same column")
	require.False(t, Allowed(&g, 1, 1, 5), "same box")
	require.True(t, Allowed(&g, 1, 1, 6))
	require.True(t, Allowed(&g, 8, 8, 5), "unrelated cell")
}

func TestAllowedExcludesOwnCell(t *testing.T) {
	g := baseGrid()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.True(t, Allowed(&g, r, c, g[r][c]),
				"cell (%d,%d) must not conflict with itself", r, c)
		}
	}
	// But the same value is still rejected elsewhere in the row.
	v := g[0][0]
	for c := 1; c < 9; c++ {
		require.False(t, Allowed(&g, 0, c, v))
	}
}

func TestAllowedIdempotent(t *testing.T) {
	var g [9][9]uint8
	g[3][3] = 7
	first := Allowed(&g, 3, 5, 7)
	second := Allowed(&g, 3, 5, 7)
	require.Equal(t, first, second)
	require.False(t, first)
}

func TestCandidates(t *testing.T) {
	g := baseGrid()
	g[0][0] = 0
	mask, count := Candidates(&g, 0, 0)
	require.Equal(t, 1, count)
	require.Equal(t, uint16(1)<<baseGrid()[0][0], mask)

	var empty [9][9]uint8
	_, count = Candidates(&empty, 4, 4)
	require.Equal(t, 9, count)
}

func TestSole(t *testing.T) {
	g := baseGrid()
	want := g[5][5]
	g[5][5] = 0
	v, ok := Sole(&g, 5, 5)
	require.True(t, ok)
	require.Equal(t, want, v)

	var empty [9][9]uint8
	_, ok = Sole(&empty, 0, 0)
	require.False(t, ok)
}
