// Package game is the snake simulation: heading resolution, the movement
// tick, collision and food handling, and the Start/Playing/GameOver state
// machine that owns them. Frontends call Machine.Update once per frame and
// render whatever State, Session and Menu expose.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// State is the lifecycle stage of the application.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Events reports what happened during one Update.
type Events uint8

const (
	EventStepped Events = 1 << iota
	EventAte
	EventCollided
	EventStateChanged
)

// Has reports whether every bit of e2 is set.
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// Machine drives the game lifecycle. It is not safe for concurrent use; a
// frontend owns it and calls Update from its frame loop.
type Machine struct {
	cfg     Config
	state   State
	menu    *Menu
	session *Session
	spawner *Spawner
	rng     *rand.Rand
	log     zerolog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Machine) {
		m.log = l
	}
}

// WithSeed fixes the random source used for food placement.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// New validates cfg and returns a machine sitting in the Start menu.
func New(cfg Config, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	m.spawner = NewSpawner(cfg.Board, m.rng, cfg.MaxPlacementAttempts, m.log)

	m.state = StateStart
	m.menu = startMenu()
	return m, nil
}

// State is the active lifecycle stage.
func (m *Machine) State() State { return m.state }

// Session is the running round, nil outside Playing.
func (m *Machine) Session() *Session { return m.session }

// Menu is the active menu, nil while Playing.
func (m *Machine) Menu() *Menu { return m.menu }

// Config returns the configuration the machine was built with.
func (m *Machine) Config() Config { return m.cfg }

// Update runs one frame. dt is the time since the previous frame. It returns
// ErrQuit once the player asked to leave.
func (m *Machine) Update(dt time.Duration, in Input) (Events, error) {
	if in.Exit {
		m.log.Info().Stringer("state", m.state).Msg("exit key pressed")
		return 0, ErrQuit
	}

	switch m.state {
	case StateStart, StateGameOver:
		return m.updateMenu(in)
	case StatePlaying:
		return m.updatePlaying(dt, in)
	}
	return 0, nil
}

func (m *Machine) updateMenu(in Input) (Events, error) {
	switch in.Button {
	case ButtonPlay:
		if err := m.transition(StatePlaying); err != nil {
			return 0, err
		}
		return EventStateChanged, nil
	case ButtonQuit:
		m.log.Info().Stringer("state", m.state).Msg("exit button pressed")
		return 0, ErrQuit
	}
	return 0, nil
}

func (m *Machine) updatePlaying(dt time.Duration, in Input) (Events, error) {
	var ev Events
	s := m.session

	s.Turn(in.Held)

	if s.Tick(dt) {
		ev |= EventStepped
		m.log.Debug().
			Str("session", s.ID.String()).
			Stringer("head", s.Head).
			Stringer("heading", s.Heading).
			Msg("step")
	}

	collision := DetectCollision(s, m.cfg.Board)

	ate, err := m.spawner.Feed(s, m.cfg.Growth)
	switch {
	case errors.Is(err, ErrNoPlacement):
		m.log.Warn().Err(err).Str("session", s.ID.String()).Msg("board is full")
	case err != nil:
		return ev, err
	}
	if ate {
		ev |= EventAte
	}

	if collision != NoCollision {
		ev |= EventCollided
		m.log.Info().
			Str("session", s.ID.String()).
			Stringer("collision", collision).
			Stringer("head", s.Head).
			Msg("collision")
	}

	if collision != NoCollision || err != nil {
		if err := m.transition(StateGameOver); err != nil {
			return ev, err
		}
		ev |= EventStateChanged
	}
	return ev, nil
}

// transition tears down the current state's entities before building the
// next state's.
func (m *Machine) transition(to State) error {
	from := m.state
	logger := m.log.Info().Stringer("from", from).Stringer("to", to)
	if m.session != nil {
		logger = logger.Str("session", m.session.ID.String()).Int("length", m.session.Len())
	}

	m.exit(from)
	if err := m.enter(to); err != nil {
		logger.Discard()
		_ = m.enter(from)
		return fmt.Errorf("enter %s: %w", to, err)
	}
	m.state = to

	logger.Msg("state transition")
	return nil
}

func (m *Machine) exit(s State) {
	switch s {
	case StateStart, StateGameOver:
		m.menu = nil
	case StatePlaying:
		m.session = nil
	}
}

func (m *Machine) enter(s State) error {
	switch s {
	case StateStart:
		m.menu = startMenu()
	case StateGameOver:
		m.menu = gameOverMenu()
	case StatePlaying:
		session := NewSession(m.cfg.InitialHeading, m.cfg.InitialBodyLen, m.cfg.TickInterval)
		if err := m.spawner.Seed(session); err != nil {
			return err
		}
		m.session = session
	}
	return nil
}
