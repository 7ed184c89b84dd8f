package reversi

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScoreResult(t *testing.T) {
	tests := []struct {
		score  Score
		draw   bool
		winner Color
		margin int
	}{
		{Score{Black: 13, White: 0}, false, Black, 13},
		{Score{Black: 30, White: 34}, false, White, 4},
		{Score{Black: 32, White: 32}, true, 0, 0},
		{Score{}, true, 0, 0},
	}

	for _, tt := range tests {
		res := tt.score.Result()
		if res.Draw != tt.draw || res.Winner != tt.winner || res.Margin != tt.margin {
			t.Errorf("%+v.Result() = %+v, want draw=%v winner=%v margin=%d", tt.score, res, tt.draw, tt.winner, tt.margin)
		}
	}
}

func TestGamePlayAlternates(t *testing.T) {
	g := NewGame(WithLogger(quietLogger()))

	if st := g.Next(); st.Over || st.Turn != Black || st.Passed != 0 {
		t.Fatalf("opening state = %+v, want Black to move", st)
	}
	if err := g.Play(2, 3); err != nil {
		t.Fatalf("Play(cd) = %v", err)
	}
	if g.Turn() != White {
		t.Fatalf("Turn() after black move = %s, want White", g.Turn())
	}
	if s := g.Result().Score; s.Black != 4 || s.White != 1 {
		t.Fatalf("score = %+v, want 4/1", s)
	}
}

// The turn only moves on a legal move or a real pass.
func TestGameTurnHeldWhileMovesRemain(t *testing.T) {
	g := NewGame(WithLogger(quietLogger()))

	for i := 0; i < 3; i++ {
		if st := g.Next(); st.Turn != Black || st.Passed != 0 {
			t.Fatalf("Next() #%d = %+v, want Black to keep the move", i, st)
		}
	}
	if err := g.Play(0, 0); err == nil {
		t.Fatalf("Play(aa) succeeded on the opening position")
	}
	if g.Turn() != Black {
		t.Fatalf("Turn() = %s after a rejected move, want Black", g.Turn())
	}
}

func TestGameIllegalMoveKeepsTurn(t *testing.T) {
	g := NewGame(WithLogger(quietLogger()))
	before := g.Board()

	err := g.Play(3, 3)
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("Play(dd) = %v, want ErrIllegalMove", err)
	}
	if g.Turn() != Black {
		t.Fatalf("turn changed after illegal move")
	}
	if *g.Board() != *before {
		t.Fatalf("board changed after illegal move")
	}
}

func TestGameBoardIsACopy(t *testing.T) {
	g := NewGame(WithLogger(quietLogger()))
	g.Board().Set(0, 0, BlackCell)

	if g.Board().At(0, 0) != Empty {
		t.Fatalf("Board() exposed the game's own board")
	}
}

func TestGamePassWithoutForfeit(t *testing.T) {
	b := boardFromRows(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	g := NewGame(WithBoard(b), WithTurn(White), WithLogger(quietLogger()))

	st := g.Next()
	if st.Over {
		t.Fatalf("game ended although Black can move")
	}
	if st.Passed != White || st.Turn != Black {
		t.Fatalf("state = %+v, want White to pass and Black to move", st)
	}

	// A second evaluation at the same position does not pass again.
	if again := g.Next(); again.Passed != 0 || again.Turn != Black {
		t.Fatalf("repeated Next() = %+v", again)
	}

	if err := g.Play(0, 2); err != nil {
		t.Fatalf("Play(ac) = %v", err)
	}
	end := g.Next()
	if !end.Over {
		t.Fatalf("state after wipe-out = %+v, want game over", end)
	}
	if end.Result.Winner != Black || end.Result.Margin != 3 {
		t.Fatalf("result = %+v, want Black by 3", end.Result)
	}
}

func TestGameOverWhenBothBlocked(t *testing.T) {
	tests := []struct {
		name   string
		board  *Board
		draw   bool
		winner Color
		margin int
	}{
		{
			name: "draw",
			board: boardFromRows(
				"B.......",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				".......W",
			),
			draw: true,
		},
		{
			name: "white ahead",
			board: boardFromRows(
				"B.......",
				"........",
				"........",
				"........",
				"........",
				"........",
				"......W.",
				"......WW",
			),
			winner: White,
			margin: 2,
		},
		{
			name:  "full board",
			board: fullBoard(),
			draw:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(WithBoard(tt.board), WithLogger(quietLogger()))
			st := g.Next()
			if !st.Over {
				t.Fatalf("Next() = %+v, want game over", st)
			}
			if st.Result.Draw != tt.draw || st.Result.Winner != tt.winner || st.Result.Margin != tt.margin {
				t.Fatalf("result = %+v, want draw=%v winner=%v margin=%d", st.Result, tt.draw, tt.winner, tt.margin)
			}
			if err := g.Play(1, 1); !errors.Is(err, ErrGameOver) {
				t.Fatalf("Play after game over = %v, want ErrGameOver", err)
			}
		})
	}
}

// The shortest possible game: Black wipes White out in nine moves.
func TestGameNineMoveWipeOut(t *testing.T) {
	g := NewGame(WithLogger(quietLogger()))

	for i, mv := range []string{"ef", "fd", "ec", "df", "ge", "ff", "eg", "fe", "ce"} {
		st := g.Next()
		if st.Over || st.Passed != 0 {
			t.Fatalf("move %d: unexpected state %+v", i, st)
		}
		sq, err := ParseSquare(mv)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", mv, err)
		}
		if err := g.Play(sq.Row, sq.Col); err != nil {
			t.Fatalf("move %d %s: %v\n%s", i, mv, err, g.Board())
		}
	}

	st := g.Next()
	if !st.Over {
		t.Fatalf("game not over after wipe-out\n%s", g.Board())
	}
	if st.Result.Score != (Score{Black: 13, White: 0}) || st.Result.Winner != Black || st.Result.Margin != 13 {
		t.Fatalf("result = %+v, want Black 13-0", st.Result)
	}
}
