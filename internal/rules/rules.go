// Package rules holds the single row/column/box uniqueness predicate the
// solver, generator, and hinter all share.
package rules

// Allowed reports whether placing v at (r, c) keeps the row, column, and
// 3x3 box free of duplicates. The probed cell is excluded from the
// comparison set, so a cell already holding v does not invalidate itself.
func Allowed(values *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != c && values[r][i] == v {
			return false
		}
		if i != r && values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if rr == r && cc == c {
				continue
			}
			if values[rr][cc] == v {
				return false
			}
		}
	}
	return true
}

// Candidates returns the digits legally placeable at the empty cell
// (r, c) as a bitmask (bit v set means digit v fits) plus their count.
// Transient: computed against the current grid, never stored.
func Candidates(values *[9][9]uint8, r, c int) (mask uint16, count int) {
	for v := uint8(1); v <= 9; v++ {
		if Allowed(values, r, c, v) {
			mask |= 1 << v
			count++
		}
	}
	return mask, count
}

// Sole returns the single candidate for (r, c) when exactly one digit
// fits, and false otherwise.
func Sole(values *[9][9]uint8, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if Allowed(values, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
