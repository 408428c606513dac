// Package validator checks whole boards for row/col/box duplicates.
package validator

import (
	"context"

	"svw.info/gridlock/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit returns the nine coordinates of scan unit i: units 0-8 are rows,
// 9-17 columns, 18-26 boxes.
func unit(i int) [9]domain.CellCoord {
	var out [9]domain.CellCoord
	switch {
	case i < 9:
		for c := 0; c < 9; c++ {
			out[c] = domain.CellCoord{Row: i, Col: c}
		}
	case i < 18:
		for r := 0; r < 9; r++ {
			out[r] = domain.CellCoord{Row: r, Col: i - 9}
		}
	default:
		br, bc := ((i-18)/3)*3, ((i-18)%3)*3
		for k := 0; k < 9; k++ {
			out[k] = domain.CellCoord{Row: br + k/3, Col: bc + k%3}
		}
	}
	return out
}

// Validate scans all 27 units with a seen-digit bitmask and reports the
// cells whose value repeats an earlier cell of the same unit. A board is
// ok when no conflicts were found; empty cells never conflict.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for i := 0; i < 27; i++ {
		m := 0
		for _, cell := range unit(i) {
			val := b.Values[cell.Row][cell.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, cell)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
