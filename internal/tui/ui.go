// Package tui is an interactive terminal front end built on tview: pick a
// cell in the board table to play it.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Jesse-Na/reversi/internal/reversi"
)

// UI owns the tview application and starts a fresh game from its start
// screen each time the user asks for one.
type UI struct {
	app       *tview.Application
	logger    *slog.Logger
	showHints bool
}

// Option configures a UI.
type Option func(*UI)

// WithLogger sets the logger handed to every game the UI starts.
func WithLogger(l *slog.Logger) Option {
	return func(u *UI) {
		u.logger = l
	}
}

// WithHints sets the initial state of the "Show valid moves" checkbox.
func WithHints(show bool) Option {
	return func(u *UI) {
		u.showHints = show
	}
}

// New builds a UI with hints enabled and the default logger.
func New(opts ...Option) *UI {
	u := &UI{
		app:       tview.NewApplication(),
		logger:    slog.Default(),
		showHints: true,
	}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Run shows the start screen and blocks until the user quits.
func (u *UI) Run() error {
	u.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC || event.Rune() == 'q' {
			u.app.Stop()

			return nil
		}

		return event
	})

	u.showStartScreen()

	return u.app.Run()
}

func (u *UI) showStartScreen() {
	form := tview.NewForm()
	form.
		AddCheckbox("Show valid moves", u.showHints, func(checked bool) {
			u.showHints = checked
		}).
		AddButton("Start Game", u.startGame).
		AddButton("Quit", u.app.Stop)
	form.SetBorder(true).SetTitle("Reversi").SetTitleAlign(tview.AlignCenter)

	u.app.SetRoot(form, true).SetFocus(form)
}

func (u *UI) startGame() {
	g := reversi.NewGame(reversi.WithLogger(u.logger))
	v := newView(g, u.showHints, u.showGameOver)

	flex := tview.NewFlex().
		AddItem(v.table, 0, 1, true).
		AddItem(v.scoreBox, 30, 1, false)

	u.app.SetRoot(flex, true).SetFocus(v.table)
	v.advance()
}

func (u *UI) showGameOver(res reversi.Result) {
	text := fmt.Sprintf("Game Over!\nDraw!\nBlack: %d\nWhite: %d", res.Score.Black, res.Score.White)
	if !res.Draw {
		text = fmt.Sprintf("Game Over!\n%s wins by %d!\nBlack: %d\nWhite: %d",
			res.Winner, res.Margin, res.Score.Black, res.Score.White)
	}

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"New Game", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "New Game" {
				u.showStartScreen()
			} else {
				u.app.Stop()
			}
		})

	u.app.SetRoot(modal, false).SetFocus(modal)
}

// view is the game screen for one game: the board table and the score box.
type view struct {
	game      *reversi.Game
	showHints bool
	onOver    func(reversi.Result)

	table    *tview.Table
	scoreBox *tview.TextView
	notice   string
}

func newView(g *reversi.Game, showHints bool, onOver func(reversi.Result)) *view {
	v := &view{
		game:      g,
		showHints: showHints,
		onOver:    onOver,
		table:     tview.NewTable(),
		scoreBox:  tview.NewTextView(),
	}

	v.table.SetSelectable(true, true)
	v.table.SetBorder(true)
	v.table.SetTitleAlign(tview.AlignLeft)
	v.table.SetTitleColor(tcell.ColorGreen)
	v.table.SetBorderColor(tcell.ColorGreen)
	v.table.SetBorders(true)
	v.table.SetSelectedFunc(func(row, column int) {
		v.selectSquare(row, column)
	})

	v.scoreBox.SetBorder(true)
	v.scoreBox.SetTitle("Score")

	v.refresh()

	return v
}

func (v *view) refresh() {
	b := v.game.Board()
	turn := v.game.Turn()

	hints := make(map[reversi.Square]bool)
	if v.showHints && !v.game.Over() {
		for _, m := range reversi.ValidMoves(b, turn) {
			hints[m.Square] = true
		}
	}

	for row := 0; row < reversi.BoardSize; row++ {
		for col := 0; col < reversi.BoardSize; col++ {
			cell := tview.NewTableCell(pieceSymbol(b.At(row, col)))
			cell.SetAlign(tview.AlignCenter)

			// Highlight valid moves
			if hints[reversi.Square{Row: row, Col: col}] {
				cell.SetText(hintSymbol)
				cell.SetTextColor(tcell.ColorGreen)
			}

			v.table.SetCell(row, col, cell)
		}
	}

	if v.game.Over() {
		v.table.SetTitle(" Reversi - game over ")
	} else {
		v.table.SetTitle(fmt.Sprintf(" Reversi - %s's turn ", turn))
	}

	score := reversi.Tally(b)
	text := fmt.Sprintf("Black: %d\nWhite: %d", score.Black, score.White)
	if v.notice != "" {
		text += "\n\n" + v.notice
	}
	v.scoreBox.SetText(text)
}

// selectSquare plays the selected cell for the colour to move. Illegal
// selections are ignored and reported as false.
func (v *view) selectSquare(row, col int) bool {
	if v.game.Over() || row < 0 || row >= reversi.BoardSize || col < 0 || col >= reversi.BoardSize {
		return false
	}

	if err := v.game.Play(row, col); err != nil {
		return false
	}

	v.notice = ""
	v.advance()

	return true
}

// advance applies the pass rule and redraws.
func (v *view) advance() {
	st := v.game.Next()
	if st.Passed != 0 {
		v.notice = fmt.Sprintf("%s has no valid moves and passes.", st.Passed)
	}

	v.refresh()

	if st.Over && v.onOver != nil {
		v.onOver(st.Result)
	}
}

const hintSymbol = "· "

func pieceSymbol(c reversi.Cell) string {
	switch c {
	case reversi.BlackCell:
		return " ⚫ "
	case reversi.WhiteCell:
		return " ⚪ "
	default:
		return "    "
	}
}
