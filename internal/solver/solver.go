// Package solver implements the solving engines: a two-phase solver that
// runs a bounded domain-reduction pass before searching, and a plain
// backtracking solver kept as a fallback engine.
package solver

import (
	"context"
	"errors"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/rules"
)

// ErrUnsolvable reports that every branch of the search was exhausted or
// that the reduction pass found a cell with no legal digit.
var ErrUnsolvable = errors.New("board has no solution")

// StepFunc observes reduction-pass progress. It is called once per
// revised cell; value is the digit assigned when the cell's domain
// collapsed to a single candidate (forced == true), and 0 otherwise.
// Observers must not mutate the board; a nil StepFunc disables tracing.
type StepFunc func(cell domain.CellCoord, value uint8, forced bool)

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// search runs depth-first backtracking: first empty cell in row-major
// order, digits tried ascending, assignment undone on the failing path.
// Returns true when the grid is complete.
func search(ctx context.Context, grid *[9][9]uint8, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := findEmpty(grid)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if rules.Allowed(grid, r, c, v) {
			grid[r][c] = v
			if search(ctx, grid, nodes) {
				return true
			}
			grid[r][c] = 0
		}
	}
	return false
}

// countSolutions counts complete assignments, stopping at limit.
func countSolutions(ctx context.Context, grid *[9][9]uint8, limit int, nodes *int) int {
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			*nodes++
			if rules.Allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count
}
