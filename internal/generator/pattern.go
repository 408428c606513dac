// Package generator produces puzzles from a shuffled algebraic base
// pattern rather than by search, so generation never backtracks and
// always succeeds.
package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/ports"
)

// PatternGenerator builds a complete solution from the base pattern
// value(r,c) = (3*(r%3) + r/3 + c) % 9 and randomizes it with three
// independent permutations: row bands and rows within each band, column
// bands and columns within each band, and the digit labels. Each of
// those operations preserves row, column, and box uniqueness, so the
// shuffled grid is always a valid solution.
//
// Known limitation: cleared boards are not checked for solvability or
// solution uniqueness. At medium and hard most of the grid is blanked
// and multiple solutions are likely; callers treat generation as
// best-effort.
type PatternGenerator struct{}

func NewPatternGenerator() *PatternGenerator { return &PatternGenerator{} }

// cellsCleared maps difficulty to how many of the 81 cells are blanked.
func cellsCleared(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 81 / 5 // 16
	case domain.Medium:
		return 81 * 3 / 4 // 60
	case domain.Hard:
		return 81 * 7 / 8 // 70
	default:
		return 81 / 2 // 40
	}
}

// shuffledLines returns a permutation of 0..8 that keeps each group of
// three lines (a band or stack) together: the three groups are shuffled,
// then the three lines within each group.
func shuffledLines(rng *rand.Rand) [9]int {
	groups := [3]int{0, 1, 2}
	rng.Shuffle(3, func(i, j int) { groups[i], groups[j] = groups[j], groups[i] })
	var out [9]int
	for gi, g := range groups {
		lines := [3]int{0, 1, 2}
		rng.Shuffle(3, func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
		for li, l := range lines {
			out[gi*3+li] = g*3 + l
		}
	}
	return out
}

// Generate builds a randomized complete solution for the given seed,
// then blanks a difficulty-determined number of cells chosen uniformly
// without replacement. Surviving cells become fixed givens.
func (g *PatternGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	rng := rand.New(rand.NewSource(seed))

	rows := shuffledLines(rng)
	cols := shuffledLines(rng)
	var digits [9]uint8
	for i := range digits {
		digits[i] = uint8(i + 1)
	}
	rng.Shuffle(9, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })

	var grid [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sr, sc := rows[r], cols[c]
			grid[r][c] = digits[(3*(sr%3)+sr/3+sc)%9]
		}
	}

	for _, pos := range rng.Perm(81)[:cellsCleared(diff)] {
		grid[pos/9][pos%9] = 0
	}
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = grid[r][c] != 0
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: grid, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Duration: time.Since(start)}, nil
}
