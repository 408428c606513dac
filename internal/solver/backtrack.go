package solver

import (
	"context"
	"time"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver with no
// reduction pass. Kept as an alternate engine selectable at wiring time.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	st := ports.Stats{}
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

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	st := ports.Stats{}
	n := countSolutions(ctx, &grid, 2, &st.Nodes)
	st.Duration = time.Since(start)
	return n == 1, st, nil
}
