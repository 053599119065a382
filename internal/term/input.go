package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// Terminals report key presses, not held keys. A key pressed since the last
// frame counts as held for that frame.
var arrowKeys = map[tcell.Key]game.Heading{
	tcell.KeyUp:    game.Up,
	tcell.KeyLeft:  game.Left,
	tcell.KeyDown:  game.Down,
	tcell.KeyRight: game.Right,
}

var letterKeys = map[rune]game.Heading{
	'w': game.Up,
	'a': game.Left,
	's': game.Down,
	'd': game.Right,
}

// Collector accumulates terminal events into one frame of game input.
type Collector struct {
	r         *Renderer
	in        game.Input
	mouseDown bool
}

// NewCollector returns a collector hit-testing clicks with r.
func NewCollector(r *Renderer) *Collector {
	return &Collector{r: r}
}

// Handle records ev. menu is the menu currently on screen, if any.
func (c *Collector) Handle(ev tcell.Event, menu *game.Menu) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev, menu)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !c.mouseDown {
			x, y := ev.Position()
			if b, ok := c.r.ButtonAt(menu, x, y); ok {
				c.in.Button = b
			}
		}
		c.mouseDown = down
	}
}

func (c *Collector) handleKey(ev *tcell.EventKey, menu *game.Menu) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.in.Exit = true
		return
	case tcell.KeyEnter:
		if menu != nil && len(menu.Buttons) > 0 {
			c.in.Button = menu.Buttons[0].Action
		}
		return
	case tcell.KeyRune:
		if h, ok := letterKeys[unicode.ToLower(ev.Rune())]; ok {
			c.in.Held = c.in.Held.Press(h)
		}
		return
	}
	if h, ok := arrowKeys[ev.Key()]; ok {
		c.in.Held = c.in.Held.Press(h)
	}
}

// Drain returns the input gathered since the previous call and resets it.
func (c *Collector) Drain() game.Input {
	in := c.in
	c.in = game.Input{}
	return in
}
