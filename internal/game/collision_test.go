package game

import (
	"testing"
	"time"

	"gridsnake/internal/grid"
)

func TestDetectCollision(t *testing.T) {
	board := grid.Board{Size: 21, CellSize: 30}

	tests := []struct {
		name string
		head grid.Cell
		want Collision
	}{
		{"free cell", grid.Cell{X: 5, Y: 5}, NoCollision},
		{"on body", grid.Cell{X: -2, Y: 0}, SelfCollision},
		{"edge is inside", grid.Cell{X: 10, Y: -10}, NoCollision},
		{"past right edge", grid.Cell{X: 11, Y: 0}, BoundaryCollision},
		{"past left edge", grid.Cell{X: -11, Y: 0}, BoundaryCollision},
		{"past top edge", grid.Cell{X: 0, Y: 11}, BoundaryCollision},
		{"past bottom edge", grid.Cell{X: 3, Y: -11}, BoundaryCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(Right, 2, time.Second)
			s.Head = tt.head
			if got := DetectCollision(s, board); got != tt.want {
				t.Errorf("DetectCollision with head %v = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}

func TestDetectCollisionAfterTightLoop(t *testing.T) {
	board := grid.Board{Size: 21, CellSize: 30}
	s := NewSession(Right, 4, time.Second)

	for _, h := range []Heading{Up, Left, Down} {
		s.Turn(keys(h))
		s.Step()
	}

	if got := DetectCollision(s, board); got != SelfCollision {
		t.Errorf("head %v in chain %v: got %v, want self", s.Head, s.Chain(), got)
	}
}
