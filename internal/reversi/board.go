package reversi

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid, indexed [row][col].
type Board [BoardSize][BoardSize]Cell

// Square is a board coordinate.
type Square struct {
	Row, Col int
}

// NewBoard initializes the board with starting positions
func NewBoard() *Board {
	b := &Board{}
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = WhiteCell, WhiteCell
	b[mid-1][mid], b[mid][mid-1] = BlackCell, BlackCell

	return b
}

// Copy creates a deep copy of the board
func (b *Board) Copy() *Board {
	newBoard := *b

	return &newBoard
}

// At returns the cell at (row, col). Out-of-range coordinates panic.
func (b *Board) At(row, col int) Cell {
	mustInBounds(row, col)

	return b[row][col]
}

// Set places a cell. It exists for tests and position setup; games mutate
// the board only through Apply.
func (b *Board) Set(row, col int, c Cell) {
	mustInBounds(row, col)
	b[row][col] = c
}

// Count returns the number of pieces of each colour.
func (b *Board) Count() Score {
	var s Score

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case BlackCell:
				s.Black++
			case WhiteCell:
				s.White++
			}
		}
	}

	return s
}

// Render returns a header line of column letters followed by one line per
// row, prefixed with the row letter.
func (b *Board) Render() []string {
	lines := make([]string, 0, BoardSize+1)

	var header strings.Builder
	header.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		header.WriteByte(byte('a' + col))
	}
	lines = append(lines, header.String())

	for row := 0; row < BoardSize; row++ {
		var line strings.Builder
		line.WriteByte(byte('a' + row))
		line.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			line.WriteByte(cellSymbol(b[row][col]))
		}
		lines = append(lines, line.String())
	}

	return lines
}

func (b *Board) String() string {
	return strings.Join(b.Render(), "\n") + "\n"
}

func cellSymbol(c Cell) byte {
	switch c {
	case BlackCell:
		return 'B'
	case WhiteCell:
		return 'W'
	default:
		return '.'
	}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func mustInBounds(row, col int) {
	if !inBounds(row, col) {
		panic(fmt.Sprintf("reversi: square (%d, %d) is off the board", row, col))
	}
}
