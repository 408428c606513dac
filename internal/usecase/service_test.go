package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/solver"
)

func TestNilDependenciesAreGuarded(t *testing.T) {
	u := NewService(nil, nil, nil, nil, nil)
	ctx := context.Background()
	b := &domain.Board{}

	_, _, err := u.Solve(ctx, b)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Unique(ctx, b)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Generate(ctx, 1, domain.Easy)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Validate(ctx, b)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Hint(ctx, b, domain.StrategySingles)
	require.ErrorIs(t, err, errNotConfigured)
	require.ErrorIs(t, u.Save(ctx, &domain.Puzzle{}), errNotConfigured)
	_, err = u.Load(ctx, "x")
	require.ErrorIs(t, err, errNotConfigured)
	_, err = u.List(ctx)
	require.ErrorIs(t, err, errNotConfigured)
}

func TestCheckPlacementNeedsNoPorts(t *testing.T) {
	u := NewService(solver.NewReducingSolver(), nil, nil, nil, nil)
	b := &domain.Board{}
	b.Values[2][2] = 8

	require.False(t, u.CheckPlacement(b, 2, 6, 8))
	require.True(t, u.CheckPlacement(b, 2, 6, 7))
	require.True(t, u.CheckPlacement(b, 2, 2, 8), "a cell does not conflict with itself")
}
