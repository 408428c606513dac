package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridlock/internal/domain"
)

func solvedBoard() *domain.Board {
	b := &domain.Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8((3*(r%3)+r/3+c)%9) + 1
		}
	}
	return b
}

func TestValidateAcceptsEmptyAndSolvedBoards(t *testing.T) {
	v := New()
	ok, conf, err := v.Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conf)

	ok, conf, err = v.Validate(context.Background(), solvedBoard())
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conf)
}

func TestValidateReportsRowConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[4][1] = 6
	b.Values[4][7] = 6
	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, conf, domain.CellCoord{Row: 4, Col: 7})
}

func TestValidateReportsColumnConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][2] = 3
	b.Values[8][2] = 3
	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, conf, domain.CellCoord{Row: 8, Col: 2})
}

func TestValidateReportsBoxConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[3][3] = 9
	b.Values[5][5] = 9
	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, conf, domain.CellCoord{Row: 5, Col: 5})
}
