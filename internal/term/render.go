// Package term draws the game on a tcell screen and turns terminal events
// into game input.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/grid"
	"gridsnake/internal/palette"
)

// View is the read-only face of the game the renderer needs.
type View interface {
	State() game.State
	Session() *game.Session
	Menu() *game.Menu
}

// Styles are the tcell styles derived from the palette.
type Styles struct {
	Background tcell.Style
	Board      tcell.Style
	Frame      tcell.Style
	Head       tcell.Style
	Body       tcell.Style
	Food       tcell.Style
	Button     tcell.Style
	Text       tcell.Style
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// NewStyles maps parsed colours onto tcell styles.
func NewStyles(c palette.Colors) Styles {
	bg := tcell.StyleDefault.Background(rgb(c.Background))
	board := tcell.StyleDefault.Background(rgb(c.Board))
	return Styles{
		Background: bg,
		Board:      board,
		Frame:      bg.Foreground(rgb(c.ButtonBorder)),
		Head:       board.Foreground(rgb(c.Head)),
		Body:       board.Foreground(rgb(c.Body)),
		Food:       board.Foreground(rgb(c.Food)),
		Button:     tcell.StyleDefault.Background(rgb(c.Button)).Foreground(rgb(c.Text)),
		Text:       bg.Foreground(rgb(c.ButtonBorder)).Bold(true),
	}
}

const (
	// terminal columns per board cell, to keep cells roughly square
	cellCols = 2

	menuTitleRow = 2
	menuFirstRow = 5
	menuRowStep  = 2
)

const (
	glyphHead = '█'
	glyphBody = '▓'
	glyphFood = tcell.RuneDiamond
)

// Renderer draws a fixed-size board frame at the screen origin.
type Renderer struct {
	board grid.Board
	st    Styles
}

// NewRenderer returns a renderer for board.
func NewRenderer(board grid.Board, st Styles) *Renderer {
	return &Renderer{board: board, st: st}
}

// Size is the frame size in terminal cells, border included.
func (r *Renderer) Size() (w, h int) {
	return r.board.Size*cellCols + 2, r.board.Size + 2
}

// CellAt is the terminal position of the left column of board cell c.
func (r *Renderer) CellAt(c grid.Cell) (x, y int) {
	h := r.board.Half()
	return 1 + (c.X+h)*cellCols, 1 + (h - c.Y)
}

// Draw renders v. The caller calls Show.
func (r *Renderer) Draw(s tcell.Screen, v View) {
	s.Clear()
	w, h := r.Size()
	fill(s, 0, 0, w, h, ' ', r.st.Background)

	if menu := v.Menu(); menu != nil {
		r.drawMenu(s, menu)
		return
	}
	if sess := v.Session(); sess != nil {
		r.drawSession(s, sess)
	}
}

func (r *Renderer) drawSession(s tcell.Screen, sess *game.Session) {
	w, h := r.Size()
	drawFrame(s, 0, 0, w-1, h-1, r.st.Frame)
	fill(s, 1, 1, w-2, h-2, ' ', r.st.Board)

	r.put(s, sess.Food, glyphFood, r.st.Food)
	for _, c := range sess.Body {
		r.put(s, c, glyphBody, r.st.Body)
	}
	r.put(s, sess.Head, glyphHead, r.st.Head)
}

func (r *Renderer) put(s tcell.Screen, c grid.Cell, glyph rune, style tcell.Style) {
	if !r.board.Contains(c) {
		return
	}
	x, y := r.CellAt(c)
	second := glyph
	if glyph == glyphFood {
		second = ' '
	}
	s.SetContent(x, y, glyph, nil, style)
	s.SetContent(x+1, y, second, nil, style)
}

func (r *Renderer) drawMenu(s tcell.Screen, menu *game.Menu) {
	w, _ := r.Size()
	drawText(s, (w-len(menu.Title))/2, menuTitleRow, menu.Title, r.st.Text)
	for i, b := range menu.Buttons {
		x, y, _ := r.buttonRect(menu, i)
		drawText(s, x, y, buttonLabel(b), r.st.Button)
	}
}

// ButtonAt hit-tests a click at terminal position (x, y).
func (r *Renderer) ButtonAt(menu *game.Menu, x, y int) (game.Button, bool) {
	if menu == nil {
		return game.ButtonNone, false
	}
	for i, b := range menu.Buttons {
		bx, by, bw := r.buttonRect(menu, i)
		if y == by && x >= bx && x < bx+bw {
			return b.Action, true
		}
	}
	return game.ButtonNone, false
}

func (r *Renderer) buttonRect(menu *game.Menu, i int) (x, y, w int) {
	fw, _ := r.Size()
	w = len([]rune(buttonLabel(menu.Buttons[i])))
	return (fw - w) / 2, menuFirstRow + i*menuRowStep, w
}

func buttonLabel(b game.MenuButton) string {
	return "[ " + b.Label + " ]"
}

func fill(s tcell.Screen, x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, r, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawFrame(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}
