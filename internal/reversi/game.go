package reversi

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Score is the number of pieces each colour holds.
type Score struct {
	Black, White int
}

// Result is the outcome of a finished game.
type Result struct {
	Score  Score
	Draw   bool
	Winner Color // unset on a draw
	Margin int
}

// Tally counts the pieces on the board. Empty squares are not scored.
func Tally(b *Board) Score {
	return b.Count()
}

// Result compares the counts and names the winner and margin.
func (s Score) Result() Result {
	switch {
	case s.Black > s.White:
		return Result{Score: s, Winner: Black, Margin: s.Black - s.White}
	case s.White > s.Black:
		return Result{Score: s, Winner: White, Margin: s.White - s.Black}
	default:
		return Result{Score: s, Draw: true}
	}
}

func (r Result) String() string {
	if r.Draw {
		return fmt.Sprintf("draw %d-%d", r.Score.Black, r.Score.White)
	}

	return fmt.Sprintf("%s wins %d-%d by %d", r.Winner, r.Score.Black, r.Score.White, r.Margin)
}

// State is what the caller must do next.
type State struct {
	Turn   Color // colour to move; meaningless once Over
	Passed Color // colour that just passed, zero if none
	Over   bool
	Result Result
}

// Game represents the game state
type Game struct {
	id      string
	board   *Board
	current Color
	over    bool
	logger  *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from a copy of b instead of the opening position.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		g.board = b.Copy()
	}
}

// WithTurn sets the colour to move first. It panics on an invalid colour.
func WithTurn(c Color) Option {
	mustColor(c)

	return func(g *Game) {
		g.current = c
	}
}

// WithLogger sets the logger game events are written to.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// NewGame initializes a new game with the starting position
func NewGame(opts ...Option) *Game {
	g := &Game{
		id:      uuid.NewString(),
		board:   NewBoard(),
		current: Black,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("game_id", g.id)

	return g
}

// ID is the random identifier attached to every log record of the game.
func (g *Game) ID() string {
	return g.id
}

// Board returns a copy of the current position.
func (g *Game) Board() *Board {
	return g.board.Copy()
}

// Turn returns the colour to move.
func (g *Game) Turn() Color {
	return g.current
}

// Over reports whether Next has found that neither colour can move.
func (g *Game) Over() bool {
	return g.over
}

// Result tallies the current board. It is valid at any time, not only
// after the game ends.
func (g *Game) Result() Result {
	return Tally(g.board).Result()
}

// Next evaluates the pass rule for the colour to move. If it has no legal
// move it passes; if its opponent has none either at the same position,
// the game is over.
func (g *Game) Next() State {
	if g.over {
		return State{Over: true, Result: g.Result()}
	}

	if HasAnyLegalMove(g.board, g.current) {
		return State{Turn: g.current}
	}

	passed := g.current
	if !HasAnyLegalMove(g.board, passed.Opponent()) {
		g.over = true
		res := g.Result()
		g.logger.Info("game_over",
			"black", res.Score.Black,
			"white", res.Score.White,
			"draw", res.Draw,
			"margin", res.Margin,
		)

		return State{Over: true, Result: res}
	}

	g.switchTurn()
	g.logger.Info("pass", "color", passed.String())

	return State{Turn: g.current, Passed: passed}
}

// Play applies a move for the colour to move and hands the turn over. An
// illegal move leaves the game unchanged so the caller can ask again.
func (g *Game) Play(row, col int) error {
	if g.over {
		return ErrGameOver
	}

	mover := g.current
	if err := Apply(g.board, row, col, mover); err != nil {
		g.logger.Debug("illegal move", "color", mover.String(), "square", Square{Row: row, Col: col}.String(), "err", err)

		return err
	}

	g.switchTurn()
	score := g.board.Count()
	g.logger.Debug("move",
		"color", mover.String(),
		"square", Square{Row: row, Col: col}.String(),
		"black", score.Black,
		"white", score.White,
	)

	return nil
}

// switchTurn switches the current player. Only Next (on a pass) and Play
// (after a legal move) may hand the turn over.
func (g *Game) switchTurn() {
	g.current = g.current.Opponent()
}
