package game

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"gridsnake/internal/grid"
)

// Board
const (
	BoardSize = 21
	CellSize  = 30
)

// Snake
const (
	TickInterval   = time.Second
	InitialBodyLen = 2
	InitialHeading = Right
)

// Food: random draws per board cell before falling back to a scan.
const placementAttemptsPerCell = 4

// Config holds the fixed session parameters.
type Config struct {
	Board                grid.Board
	TickInterval         time.Duration
	InitialBodyLen       int
	InitialHeading       Heading
	Growth               GrowthRule
	MaxPlacementAttempts int
}

// DefaultConfig is the configuration the game ships with.
func DefaultConfig() Config {
	board := grid.Board{Size: BoardSize, CellSize: CellSize}
	return Config{
		Board:                board,
		TickInterval:         TickInterval,
		InitialBodyLen:       InitialBodyLen,
		InitialHeading:       InitialHeading,
		Growth:               GrowAtFood,
		MaxPlacementAttempts: placementAttemptsPerCell * board.Count(),
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var merr *multierror.Error
	bad := func(format string, args ...any) {
		merr = multierror.Append(merr, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Board.Size < 3 || c.Board.Size%2 == 0 {
		bad("board size %d must be odd and at least 3", c.Board.Size)
	}
	if c.Board.CellSize <= 0 {
		bad("cell size %d must be positive", c.Board.CellSize)
	}
	if c.TickInterval <= 0 {
		bad("tick interval %v must be positive", c.TickInterval)
	}
	if !c.InitialHeading.valid() {
		bad("initial heading %d is not a direction", c.InitialHeading)
	}
	if c.InitialBodyLen < 0 || c.InitialBodyLen > c.Board.Half() {
		bad("initial body length %d must be between 0 and %d", c.InitialBodyLen, c.Board.Half())
	}
	if c.Growth != GrowAtFood && c.Growth != GrowAtTail {
		bad("unknown growth rule %d", c.Growth)
	}
	if c.MaxPlacementAttempts < 0 {
		bad("placement attempts %d must not be negative", c.MaxPlacementAttempts)
	}

	return merr.ErrorOrNil()
}
