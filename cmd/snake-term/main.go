// Command snake-term plays the snake game in a terminal.
package main

import (
	"bytes"
	"errors"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gridsnake/internal/game"
	"gridsnake/internal/palette"
	"gridsnake/internal/sound"
	"gridsnake/internal/term"
)

const frame = time.Second / 30

func main() {
	// the screen owns stdout while running; logs are flushed after Fini
	var logs bytes.Buffer
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: &logs, NoColor: true})
	err := run()
	if err != nil {
		log.Error().Err(err).Msg("snake-term stopped")
	}
	os.Stderr.Write(logs.Bytes())
	if err != nil {
		os.Exit(1)
	}
}

func run() error {
	colors, err := palette.Default().Parse()
	if err != nil {
		return err
	}
	m, err := game.New(game.DefaultConfig(),
		game.WithLogger(log.Logger),
		game.WithSeed(uint64(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	audioOn := true
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/10)); err != nil {
		// non-fatal, the game runs silent
		log.Warn().Err(err).Msg("audio unavailable")
		audioOn = false
	}
	play := func(s beep.Streamer) {
		if audioOn {
			speaker.Play(sound.Quieter(s, 1))
		}
	}

	renderer := term.NewRenderer(m.Config().Board, term.NewStyles(colors))
	input := term.NewCollector(renderer)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			input.Handle(ev, m.Menu())

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			ev, err := m.Update(dt, input.Drain())
			if errors.Is(err, game.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			if ev.Has(game.EventAte) {
				play(sound.Eat())
			}
			if ev.Has(game.EventStateChanged) && m.State() == game.StateGameOver {
				play(sound.Crash())
			}

			renderer.Draw(screen, m)
			screen.Show()
		}
	}
}
