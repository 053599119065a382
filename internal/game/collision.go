package game

import "gridsnake/internal/grid"

// Collision is the kind of fatal contact found for the head.
type Collision int

const (
	NoCollision Collision = iota
	SelfCollision
	BoundaryCollision
)

func (c Collision) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case BoundaryCollision:
		return "boundary"
	}
	return "none"
}

// DetectCollision checks the head against the body and the board extent.
// It only reads the session.
func DetectCollision(s *Session, board grid.Board) Collision {
	for _, seg := range s.Body {
		if seg == s.Head {
			return SelfCollision
		}
	}
	if !board.Contains(s.Head) {
		return BoundaryCollision
	}
	return NoCollision
}
