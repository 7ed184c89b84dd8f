package reversi

import "fmt"

// BoardSize is the width and height of the board.
const BoardSize = 8

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	BlackCell
	WhiteCell
)

// Color is a player colour. Only Black and White are valid values, so a
// Color can never be confused with an empty square.
type Color uint8

const (
	Black Color = iota + 1 // moves first
	White
)

// Valid reports whether c is Black or White. The zero Color is neither.
func (c Color) Valid() bool {
	return c == Black || c == White
}

// Cell returns the cell value a piece of this colour occupies. It panics
// on an invalid colour so a colour can never stand in for Empty.
func (c Color) Cell() Cell {
	mustColor(c)

	return Cell(c)
}

// Opponent returns the other colour.
func (c Color) Opponent() Color {
	mustColor(c)
	if c == Black {
		return White
	}

	return Black
}

// Symbol is the single-letter name used in prompts and rendering.
func (c Color) Symbol() string {
	if c == Black {
		return "B"
	}

	return "W"
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "none"
	}
}

// Color reports the colour occupying the cell, if any.
func (c Cell) Color() (Color, bool) {
	switch c {
	case BlackCell:
		return Black, true
	case WhiteCell:
		return White, true
	default:
		return 0, false
	}
}

func mustColor(c Color) {
	if !c.Valid() {
		panic(fmt.Sprintf("reversi: invalid colour %d", uint8(c)))
	}
}

// Directions for scanning capture lines
var directions = [8]struct{ dr, dc int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Error is a game error. All values are comparable with errors.Is.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrIllegalMove Error = "illegal move"
	ErrBadNotation Error = "bad square notation"
	ErrGameOver    Error = "game is over"
)
