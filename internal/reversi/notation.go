package reversi

import (
	"fmt"
	"strings"
)

// ParseSquare decodes two lowercase letters, row then column, each in
// 'a'..'h'. "cd" is row 2, column 3.
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q must be two letters", ErrBadNotation, s)
	}

	row, col := int(s[0])-'a', int(s[1])-'a'
	if !inBounds(row, col) {
		return Square{}, fmt.Errorf("%w: %q is off the board", ErrBadNotation, s)
	}

	return Square{Row: row, Col: col}, nil
}

func (sq Square) String() string {
	if !inBounds(sq.Row, sq.Col) {
		return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
	}

	return string([]byte{byte('a' + sq.Row), byte('a' + sq.Col)})
}
