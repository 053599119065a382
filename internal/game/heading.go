package game

import "gridsnake/internal/grid"

// Heading is the snake's direction of travel.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta is the one-cell move for h. Up is +Y.
func (h Heading) Delta() grid.Cell {
	switch h {
	case Up:
		return grid.Cell{X: 0, Y: 1}
	case Down:
		return grid.Cell{X: 0, Y: -1}
	case Left:
		return grid.Cell{X: -1, Y: 0}
	default:
		return grid.Cell{X: 1, Y: 0}
	}
}

func (h Heading) valid() bool {
	return h >= Up && h <= Right
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
