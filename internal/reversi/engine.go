package reversi

import "fmt"

// Move is a legal placement together with the pieces it flips.
type Move struct {
	Square
	Flips []Square
}

// scan walks the eight directions from (row, col) for color. Every
// direction that ends on color after at least one opposing piece is a
// capture line. When visit is nil, scan returns true at the first capture
// line found; otherwise visit is called for every captured square and scan
// reports whether any line qualified. The target must be empty.
func scan(b *Board, row, col int, color Color, visit func(Square)) bool {
	own, opponent := color.Cell(), color.Opponent().Cell()
	found := false

	for _, dir := range directions {
		r, c := row+dir.dr, col+dir.dc
		run := 0

		for inBounds(r, c) && b[r][c] == opponent {
			run++
			r += dir.dr
			c += dir.dc
		}

		// An open-ended run, or one stopped by an empty square, captures nothing.
		if run == 0 || !inBounds(r, c) || b[r][c] != own {
			continue
		}

		found = true
		if visit == nil {
			return true
		}
		for i := 1; i <= run; i++ {
			visit(Square{Row: row + i*dir.dr, Col: col + i*dir.dc})
		}
	}

	return found
}

// Flips returns the pieces that would be flipped if color played at
// (row, col). The second result is false when the move is illegal, either
// because the square is occupied or because no line is captured.
func Flips(b *Board, row, col int, color Color) ([]Square, bool) {
	mustColor(color)
	mustInBounds(row, col)
	if b[row][col] != Empty {
		return nil, false
	}

	var flips []Square
	if !scan(b, row, col, color, func(sq Square) { flips = append(flips, sq) }) {
		return nil, false
	}

	return flips, true
}

// IsLegal reports whether color may play at (row, col).
func IsLegal(b *Board, row, col int, color Color) bool {
	mustColor(color)
	mustInBounds(row, col)

	return b[row][col] == Empty && scan(b, row, col, color, nil)
}

// Apply plays color at (row, col). On an illegal move it returns an error
// wrapping ErrIllegalMove and the board is left untouched. An invalid
// colour or off-board square panics.
func Apply(b *Board, row, col int, color Color) error {
	mustColor(color)
	mustInBounds(row, col)
	if b[row][col] != Empty {
		return fmt.Errorf("%w: %s is occupied", ErrIllegalMove, Square{Row: row, Col: col})
	}

	flips, ok := Flips(b, row, col, color)
	if !ok {
		return fmt.Errorf("%w: %s captures nothing for %s", ErrIllegalMove, Square{Row: row, Col: col}, color)
	}

	// Flips were computed against the board before placement.
	for _, sq := range flips {
		b[sq.Row][sq.Col] = color.Cell()
	}
	b[row][col] = color.Cell()

	return nil
}

// HasAnyLegalMove reports whether color can play anywhere on the board.
func HasAnyLegalMove(b *Board, color Color) bool {
	mustColor(color)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == Empty && scan(b, row, col, color, nil) {
				return true
			}
		}
	}

	return false
}

// ValidMoves returns a list of valid moves for the specified player
func ValidMoves(b *Board, color Color) []Move {
	mustColor(color)
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if flips, ok := Flips(b, row, col, color); ok {
				moves = append(moves, Move{Square: Square{Row: row, Col: col}, Flips: flips})
			}
		}
	}

	return moves
}
