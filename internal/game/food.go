package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"gridsnake/internal/grid"
)

// GrowthRule decides where the segment gained by eating is placed.
type GrowthRule int

const (
	// GrowAtFood puts the new segment on the relocated food cell. The segment
	// joins the chain on the following step.
	GrowAtFood GrowthRule = iota
	// GrowAtTail puts the new segment on the cell the tail just vacated.
	GrowAtTail
)

func (r GrowthRule) String() string {
	switch r {
	case GrowAtFood:
		return "food"
	case GrowAtTail:
		return "tail"
	}
	return "unknown"
}

// Spawner places food on free cells.
type Spawner struct {
	board       grid.Board
	rng         grid.Intner
	maxAttempts int
	log         zerolog.Logger
}

// NewSpawner returns a spawner that tries maxAttempts random draws before
// scanning the board for a free cell.
func NewSpawner(board grid.Board, rng grid.Intner, maxAttempts int, log zerolog.Logger) *Spawner {
	return &Spawner{
		board:       board,
		rng:         rng,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// Place draws a board cell that is not in exclude. Random draws are rejected
// while they hit an excluded cell; once the attempt budget is spent, a free
// cell is picked from a full scan. ErrNoPlacement means no cell is free.
func (sp *Spawner) Place(exclude map[grid.Cell]struct{}) (grid.Cell, error) {
	for i := 0; i < sp.maxAttempts; i++ {
		c := sp.board.Random(sp.rng)
		if _, taken := exclude[c]; !taken {
			return c, nil
		}
	}

	var free []grid.Cell
	for _, c := range sp.board.Cells() {
		if _, taken := exclude[c]; !taken {
			free = append(free, c)
		}
	}
	sp.log.Warn().
		Int("attempts", sp.maxAttempts).
		Int("free", len(free)).
		Msg("food placement fell back to board scan")
	if len(free) == 0 {
		return grid.Cell{}, ErrNoPlacement
	}
	return free[sp.rng.Intn(len(free))], nil
}

// Seed places the first food of a session.
func (sp *Spawner) Seed(s *Session) error {
	food, err := sp.Place(s.Occupied())
	if err != nil {
		return fmt.Errorf("seed food: %w", err)
	}
	s.Food = food
	return nil
}

// Feed handles the head reaching the food: the food moves to a cell free in
// both the pre-step and the current chain, and the chain grows by one
// segment according to rule. It reports whether food was eaten.
func (sp *Spawner) Feed(s *Session, rule GrowthRule) (bool, error) {
	if s.Head != s.Food {
		return false, nil
	}

	exclude := s.PreviousOccupied()
	for c := range s.Occupied() {
		exclude[c] = struct{}{}
	}

	food, err := sp.Place(exclude)
	if err != nil {
		return false, fmt.Errorf("relocate food: %w", err)
	}

	eaten := s.Food
	s.Food = food
	switch rule {
	case GrowAtTail:
		s.grow(s.vacated())
	default:
		s.grow(food)
	}

	sp.log.Debug().
		Str("session", s.ID.String()).
		Stringer("eaten", eaten).
		Stringer("food", food).
		Int("length", s.Len()).
		Msg("food eaten")
	return true, nil
}
