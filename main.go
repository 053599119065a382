package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gridsnake/internal/game"
	"gridsnake/internal/grid"
	"gridsnake/internal/palette"
	"gridsnake/internal/sound"
)

const (
	marginW = 200
	marginH = 50

	buttonW      = 150
	buttonH      = 65
	buttonGap    = 10
	buttonBorder = 5

	// ebitenutil debug font
	glyphW = 6
	glyphH = 16
)

// Letter and arrow keys drive the same logical direction.
var bindings = map[ebiten.Key]game.Heading{
	ebiten.KeyW:          game.Up,
	ebiten.KeyArrowUp:    game.Up,
	ebiten.KeyA:          game.Left,
	ebiten.KeyArrowLeft:  game.Left,
	ebiten.KeyS:          game.Down,
	ebiten.KeyArrowDown:  game.Down,
	ebiten.KeyD:          game.Right,
	ebiten.KeyArrowRight: game.Right,
}

type Game struct {
	machine       *game.Machine
	board         grid.Board
	colors        palette.Colors
	width, height int

	audioCtx       *audio.Context
	eatPlayer      *audio.Player
	gameOverPlayer *audio.Player
	bgPlayer       *audio.Player
}

func NewGame(m *game.Machine, colors palette.Colors) (*Game, error) {
	board := m.Config().Board
	bw, bh := board.ScreenSize()
	g := &Game{
		machine: m,
		board:   board,
		colors:  colors,
		width:   bw + marginW,
		height:  bh + marginH,
	}

	g.audioCtx = audio.NewContext(int(sound.SampleRate))
	g.eatPlayer = g.audioCtx.NewPlayerFromBytes(sound.PCM(sound.Eat()))
	g.gameOverPlayer = g.audioCtx.NewPlayerFromBytes(sound.PCM(sound.Crash()))

	melody := sound.PCM(sound.Melody())
	loop := audio.NewInfiniteLoop(bytes.NewReader(melody), int64(len(melody)))
	player, err := g.audioCtx.NewPlayer(loop)
	if err != nil {
		return nil, err
	}
	g.bgPlayer = player
	return g, nil
}

func heldKeys() game.Keys {
	var keys game.Keys
	for k, h := range bindings {
		if ebiten.IsKeyPressed(k) {
			keys = keys.Press(h)
		}
	}
	return keys
}

// buttonRects lays the menu out as a centred column.
func (g *Game) buttonRects(menu *game.Menu) []image.Rectangle {
	n := len(menu.Buttons)
	total := n*buttonH + (n-1)*buttonGap
	x := (g.width - buttonW) / 2
	y := (g.height - total) / 2

	rects := make([]image.Rectangle, n)
	for i := range rects {
		rects[i] = image.Rect(x, y, x+buttonW, y+buttonH)
		y += buttonH + buttonGap
	}
	return rects
}

func (g *Game) clickedButton() game.Button {
	menu := g.machine.Menu()
	if menu == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return game.ButtonNone
	}
	pt := image.Pt(ebiten.CursorPosition())
	for i, r := range g.buttonRects(menu) {
		if pt.In(r) {
			return menu.Buttons[i].Action
		}
	}
	return game.ButtonNone
}

func (g *Game) Update() error {
	in := game.Input{
		Held:   heldKeys(),
		Button: g.clickedButton(),
		Exit:   ebiten.IsKeyPressed(ebiten.KeyEscape),
	}

	ev, err := g.machine.Update(time.Second/time.Duration(ebiten.TPS()), in)
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	g.cue(ev)
	return nil
}

func (g *Game) cue(ev game.Events) {
	if ev.Has(game.EventAte) {
		replay(g.eatPlayer)
	}
	if !ev.Has(game.EventStateChanged) {
		return
	}
	switch g.machine.State() {
	case game.StatePlaying:
		replay(g.bgPlayer)
	case game.StateGameOver:
		g.bgPlayer.Pause()
		replay(g.gameOverPlayer)
	}
}

func replay(p *audio.Player) {
	if err := p.SetPosition(0); err != nil {
		log.Warn().Err(err).Msg("rewind audio")
	}
	p.Play()
}

// origin is the top-left pixel of the board, centred in the window.
func (g *Game) origin() (x, y float32) {
	bw, bh := g.board.ScreenSize()
	return float32(g.width-bw) / 2, float32(g.height-bh) / 2
}

func (g *Game) drawCell(screen *ebiten.Image, c grid.Cell, clr color.Color) {
	ox, oy := g.origin()
	x, y := g.board.ToScreen(c)
	size := float32(g.board.CellSize)
	vector.DrawFilledRect(screen, ox+float32(x), oy+float32(y), size, size, clr, false)
}

func (g *Game) drawSession(screen *ebiten.Image, s *game.Session) {
	ox, oy := g.origin()
	bw, bh := g.board.ScreenSize()
	vector.DrawFilledRect(screen, ox, oy, float32(bw), float32(bh), g.colors.Board, false)

	half := float32(g.board.CellSize) / 2
	fx, fy := g.board.ToScreen(s.Food)
	vector.DrawFilledCircle(screen, ox+float32(fx)+half, oy+float32(fy)+half, half, g.colors.Food, true)

	for _, c := range s.Body {
		g.drawCell(screen, c, g.colors.Body)
	}
	g.drawCell(screen, s.Head, g.colors.Head)
}

func (g *Game) drawMenu(screen *ebiten.Image, menu *game.Menu) {
	rects := g.buttonRects(menu)
	if len(rects) > 0 {
		x := (g.width - len(menu.Title)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, menu.Title, x, rects[0].Min.Y-2*glyphH)
	}

	for i, r := range rects {
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, g.colors.Button, false)
		vector.StrokeRect(screen, x, y, w, h, buttonBorder, g.colors.ButtonBorder, false)

		label := menu.Buttons[i].Label
		lx := r.Min.X + (r.Dx()-len(label)*glyphW)/2
		ly := r.Min.Y + (r.Dy()-glyphH)/2
		ebitenutil.DebugPrintAt(screen, label, lx, ly)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.Background)

	if menu := g.machine.Menu(); menu != nil {
		g.drawMenu(screen, menu)
		return
	}
	if s := g.machine.Session(); s != nil {
		g.drawSession(screen, s)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	colors, err := palette.Default().Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid palette")
	}

	m, err := game.New(game.DefaultConfig(),
		game.WithLogger(log.Logger),
		game.WithSeed(uint64(time.Now().UnixNano())))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game config")
	}

	g, err := NewGame(m, colors)
	if err != nil {
		log.Fatal().Err(err).Msg("audio setup failed")
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Snake")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
