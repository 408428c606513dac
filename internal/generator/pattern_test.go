package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/rules"
	"svw.info/gridlock/internal/solver"
	"svw.info/gridlock/internal/validator"
)

func blanks(b *domain.Board) int { return b.EmptyCount() }

func requireGivensConsistent(t *testing.T, b *domain.Board) {
	t.Helper()
	ok, conf, err := validator.New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok, "given cells conflict: %v", conf)
}

func TestBasePatternIsValidSolution(t *testing.T) {
	// The unshuffled algebraic construction must already be a complete
	// valid solution.
	var b domain.Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8((3*(r%3)+r/3+c)%9) + 1
		}
	}
	require.True(t, b.Complete())
	requireGivensConsistent(t, &b)

	// Solving an already complete board succeeds and changes nothing.
	out, _, err := solver.NewReducingSolver().Solve(context.Background(), &b)
	require.NoError(t, err)
	require.Equal(t, b.Values, out.Values)
}

func TestGenerateEasyClearsExactly16(t *testing.T) {
	p, _, err := NewPatternGenerator().Generate(context.Background(), 12345, domain.Easy)
	require.NoError(t, err)
	require.Equal(t, 16, blanks(&p.Board))
	requireGivensConsistent(t, &p.Board)

	// Every given must be individually re-placeable: it may not clash
	// with any other given in its row, column, or box.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := p.Board.Values[r][c]; v != 0 {
				require.True(t, rules.Allowed(&p.Board.Values, r, c, v))
			}
		}
	}
}

func TestDifficultyClearCounts(t *testing.T) {
	cases := []struct {
		diff domain.Difficulty
		want int
	}{
		{domain.Easy, 16},
		{domain.Medium, 60},
		{domain.Hard, 70},
		{domain.Unknown, 40},
	}
	for _, tc := range cases {
		t.Run(tc.diff.String(), func(t *testing.T) {
			p, _, err := NewPatternGenerator().Generate(context.Background(), 7, tc.diff)
			require.NoError(t, err)
			require.Equal(t, tc.want, blanks(&p.Board))
			requireGivensConsistent(t, &p.Board)
		})
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	require.Less(t, cellsCleared(domain.Easy), cellsCleared(domain.Medium))
	require.LessOrEqual(t, cellsCleared(domain.Medium), cellsCleared(domain.Hard))
}

func TestFixedMaskMatchesGivens(t *testing.T) {
	p, _, err := NewPatternGenerator().Generate(context.Background(), 99, domain.Medium)
	require.NoError(t, err)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.Equal(t, p.Board.Values[r][c] != 0, p.Board.Fixed[r][c])
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := NewPatternGenerator()
	a, _, err := g.Generate(context.Background(), 42, domain.Hard)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 42, domain.Hard)
	require.NoError(t, err)
	require.Equal(t, a.Board, b.Board)

	c, _, err := g.Generate(context.Background(), 43, domain.Hard)
	require.NoError(t, err)
	require.NotEqual(t, a.Board.Values, c.Board.Values)
}

func TestGeneratedMediumSolves(t *testing.T) {
	// Best-effort contract: a medium board may admit multiple
	// solutions, but solving it must terminate; on success the result
	// must be fully valid.
	for seed := int64(1); seed <= 3; seed++ {
		p, _, err := NewPatternGenerator().Generate(context.Background(), seed, domain.Medium)
		require.NoError(t, err)
		out, _, err := solver.NewReducingSolver().Solve(context.Background(), &p.Board)
		if err != nil {
			require.ErrorIs(t, err, solver.ErrUnsolvable)
			continue
		}
		require.True(t, out.Complete())
		requireGivensConsistent(t, out)
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewPatternGenerator().Generate(ctx, 1, domain.Easy)
	require.ErrorIs(t, err, context.Canceled)
}
