package domain

import (
	"errors"
	"strings"
)

// ErrBadBoardString reports a malformed 81-character board encoding.
var ErrBadBoardString = errors.New("board string must be 81 cells of 0-9 or '.'")

// Clone returns an independent copy of the board. Arrays copy by value,
// so this exists mostly to make call sites explicit about ownership.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// EmptyCount reports the number of cells still holding 0.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// Complete reports whether every cell holds a digit.
func (b *Board) Complete() bool { return b.EmptyCount() == 0 }

// String encodes the board as 81 characters in row-major order, '.' for
// empty cells. The inverse of ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// ParseBoard decodes an 81-character row-major board string. '0' and '.'
// both denote an empty cell; whitespace is ignored.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	i := 0
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t':
			continue
		case ch == '.' || ch == '0':
			// empty cell
		case ch >= '1' && ch <= '9':
			// digit
		default:
			return nil, ErrBadBoardString
		}
		if i >= 81 {
			return nil, ErrBadBoardString
		}
		if ch >= '1' && ch <= '9' {
			b.Values[i/9][i%9] = uint8(ch - '0')
		}
		i++
	}
	if i != 81 {
		return nil, ErrBadBoardString
	}
	return b, nil
}
