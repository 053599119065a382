package game

import (
	"time"

	"github.com/google/uuid"

	"gridsnake/internal/grid"
)

// Session is the state of one round of play: the chain, the food and the
// tick clock. It exists only while the machine is Playing.
type Session struct {
	ID      uuid.UUID
	Head    grid.Cell
	Body    []grid.Cell // second segment first, tail last
	Food    grid.Cell
	Heading Heading
	Clock   Clock

	// chain as it stood before the latest movement step
	prev []grid.Cell
}

// NewSession lays out the starting chain: head at the origin and the body
// trailing behind it, opposite to heading. Food is not placed.
func NewSession(heading Heading, bodyLen int, interval time.Duration) *Session {
	s := &Session{
		ID:      uuid.New(),
		Heading: heading,
		Clock:   NewClock(interval),
		Body:    make([]grid.Cell, 0, bodyLen),
	}
	back := heading.Opposite().Delta()
	at := s.Head
	for i := 0; i < bodyLen; i++ {
		at = at.Add(back)
		s.Body = append(s.Body, at)
	}
	s.prev = s.Chain()
	return s
}

// Chain returns a copy of the occupied cells, head first.
func (s *Session) Chain() []grid.Cell {
	chain := make([]grid.Cell, 0, len(s.Body)+1)
	chain = append(chain, s.Head)
	return append(chain, s.Body...)
}

// Len is the number of segments including the head.
func (s *Session) Len() int {
	return len(s.Body) + 1
}

// Occupied is the set of cells held by the chain right now.
func (s *Session) Occupied() map[grid.Cell]struct{} {
	return cellSet(s.Chain())
}

// PreviousOccupied is the set of cells the chain held before the latest
// movement step.
func (s *Session) PreviousOccupied() map[grid.Cell]struct{} {
	return cellSet(s.prev)
}

// Turn applies the resolved heading for this frame.
func (s *Session) Turn(held Keys) bool {
	h, ok := Resolve(s.Heading, held)
	if ok {
		s.Heading = h
	}
	return ok
}

// Tick advances the clock and moves the snake when a step is due.
func (s *Session) Tick(dt time.Duration) bool {
	if !s.Clock.Advance(dt) {
		return false
	}
	s.Step()
	return true
}

// Step moves the head one cell along the heading and shifts every body
// segment into the cell its predecessor held before the step. The old tail
// cell is vacated; length is unchanged.
func (s *Session) Step() {
	s.prev = s.Chain()
	last := s.Head
	s.Head = s.Head.Add(s.Heading.Delta())
	for i := range s.Body {
		s.Body[i], last = last, s.Body[i]
	}
}

// grow appends one segment at c.
func (s *Session) grow(c grid.Cell) {
	s.Body = append(s.Body, c)
}

// vacated is the tail cell given up by the latest step.
func (s *Session) vacated() grid.Cell {
	return s.prev[len(s.prev)-1]
}

func cellSet(cells []grid.Cell) map[grid.Cell]struct{} {
	set := make(map[grid.Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}
