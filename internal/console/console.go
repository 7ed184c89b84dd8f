// Package console plays a game over a line-oriented text stream: it prints
// the board, prompts for two-letter moves and re-prompts on bad input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/Jesse-Na/reversi/internal/reversi"
)

const invalidMoveMsg = "Invalid move. Try again."

// Console reads moves line by line from in and writes prompts and boards
// to out.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger rejected input is reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) {
		c.logger = l
	}
}

// New returns a Console over in and out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run drives g until it ends. A colour keeps being asked for a move until
// it enters a legal one. Running out of input before the end is an error.
func (c *Console) Run(g *reversi.Game) (reversi.Result, error) {
	c.printBoard(g)

	for {
		st := g.Next()
		if st.Passed != 0 {
			fmt.Fprintf(c.out, "Colour %s has no legal moves and passes.\n", st.Passed.Symbol())
		}
		if st.Over {
			c.printResult(st.Result)

			return st.Result, nil
		}

		if err := c.readMove(g, st.Turn); err != nil {
			return g.Result(), err
		}
		c.printBoard(g)
	}
}

// readMove prompts until color plays a legal move.
func (c *Console) readMove(g *reversi.Game, color reversi.Color) error {
	for {
		fmt.Fprintf(c.out, "Enter move for colour %s (RowCol): ", color.Symbol())

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("reading move: %w", err)
			}
			fmt.Fprintln(c.out)

			return fmt.Errorf("reading move for %s: %w", color, io.ErrUnexpectedEOF)
		}

		line := c.in.Text()
		sq, err := reversi.ParseSquare(line)
		if err == nil {
			err = g.Play(sq.Row, sq.Col)
		}
		if err == nil {
			return nil
		}

		c.logger.Debug("rejected input", "color", color.String(), "input", line, "err", err)
		fmt.Fprintln(c.out, invalidMoveMsg)
		c.printBoard(g)
	}
}

func (c *Console) printBoard(g *reversi.Game) {
	for _, line := range g.Board().Render() {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) printResult(res reversi.Result) {
	fmt.Fprintf(c.out, "Game over. B: %d, W: %d\n", res.Score.Black, res.Score.White)
	if res.Draw {
		fmt.Fprintln(c.out, "Draw.")

		return
	}
	fmt.Fprintf(c.out, "Colour %s wins by %d.\n", res.Winner.Symbol(), res.Margin)
}
