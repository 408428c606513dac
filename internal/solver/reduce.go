package solver

import (
	"context"
	"math/bits"
	"time"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/ports"
	"svw.info/gridlock/internal/rules"
)

// ReducingSolver narrows cell domains with a single bounded pass before
// handing the rest of the board to backtracking search.
//
// The pass is deliberately weaker than full arc consistency: it visits
// each cell that was empty when the pass started exactly once, in
// row-major discovery order, and neither re-queues neighbors after an
// assignment nor iterates to a fixpoint. Forced assignments made early
// in the pass are still visible to cells visited later.
type ReducingSolver struct {
	// Observer, when non-nil, receives one callback per revised cell.
	Observer StepFunc
}

func NewReducingSolver() *ReducingSolver { return &ReducingSolver{} }

// NewTracedSolver wires an observer for presentation-side step logging.
func NewTracedSolver(fn StepFunc) *ReducingSolver { return &ReducingSolver{Observer: fn} }

// Solve runs the reduction pass and then backtracking over a private
// copy of b. On success the returned board is complete and valid; on
// failure it returns ErrUnsolvable (or the context's error when the
// search was canceled).
func (s *ReducingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	st := ports.Stats{}

	if err := s.reduce(ctx, &grid, &st); err != nil {
		st.Duration = time.Since(start)
		return nil, st, err
	}
	if !search(ctx, &grid, &st.Nodes) {
		st.Duration = time.Since(start)
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	st.Duration = time.Since(start)
	return &domain.Board{Values: grid, Fixed: b.Fixed}, st, nil
}

// reduce performs the single bounded pass. The worklist holds the cells
// empty at pass start, FIFO in row-major order. An empty domain fails
// the whole solve; a one-candidate domain is assigned on the spot.
func (s *ReducingSolver) reduce(ctx context.Context, grid *[9][9]uint8, st *ports.Stats) error {
	queue := make([]domain.CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] == 0 {
				queue = append(queue, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	for _, cell := range queue {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		mask, count := rules.Candidates(grid, cell.Row, cell.Col)
		st.Revisions++
		switch count {
		case 0:
			return ErrUnsolvable
		case 1:
			v := uint8(bits.TrailingZeros16(mask))
			grid[cell.Row][cell.Col] = v
			if s.Observer != nil {
				s.Observer(cell, v, true)
			}
		default:
			if s.Observer != nil {
				s.Observer(cell, 0, false)
			}
		}
	}
	return nil
}

// Unique counts solutions up to 2 and reports whether exactly one
// exists. Runs plain search without the reduction pass so that counting
// sees the caller's board exactly as given.
func (s *ReducingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	st := ports.Stats{}
	n := countSolutions(ctx, &grid, 2, &st.Nodes)
	st.Duration = time.Since(start)
	return n == 1, st, nil
}
