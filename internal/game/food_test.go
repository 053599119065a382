package game

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"gridsnake/internal/grid"
)

var smallBoard = grid.Board{Size: 3, CellSize: 10}

func newTestSpawner(board grid.Board, seed uint64, attempts int) *Spawner {
	return NewSpawner(board, rand.New(rand.NewSource(seed)), attempts, zerolog.Nop())
}

func allBut(board grid.Board, keep grid.Cell) map[grid.Cell]struct{} {
	set := make(map[grid.Cell]struct{})
	for _, c := range board.Cells() {
		if c != keep {
			set[c] = struct{}{}
		}
	}
	return set
}

func TestPlaceAvoidsExcluded(t *testing.T) {
	board := grid.Board{Size: 21, CellSize: 30}
	exclude := NewSession(Right, 2, time.Second).Occupied()

	for seed := uint64(1); seed <= 200; seed++ {
		c, err := newTestSpawner(board, seed, 100).Place(exclude)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if _, taken := exclude[c]; taken {
			t.Errorf("seed %d: food placed on occupied cell %v", seed, c)
		}
		if !board.Contains(c) {
			t.Errorf("seed %d: food placed off the board at %v", seed, c)
		}
	}
}

func TestPlaceFallsBackToScan(t *testing.T) {
	keep := grid.Cell{X: 1, Y: -1}
	exclude := allBut(smallBoard, keep)

	for _, attempts := range []int{0, 1, 50} {
		c, err := newTestSpawner(smallBoard, 3, attempts).Place(exclude)
		if err != nil {
			t.Fatalf("attempts %d: %v", attempts, err)
		}
		if c != keep {
			t.Errorf("attempts %d: got %v, want the only free cell %v", attempts, c, keep)
		}
	}
}

func TestPlaceFullBoard(t *testing.T) {
	exclude := allBut(smallBoard, grid.Cell{X: 99, Y: 99})

	_, err := newTestSpawner(smallBoard, 1, 10).Place(exclude)
	if !errors.Is(err, ErrNoPlacement) {
		t.Errorf("got %v, want ErrNoPlacement", err)
	}
}

func TestFeedGrowsAtFood(t *testing.T) {
	board := grid.Board{Size: 21, CellSize: 30}
	s := NewSession(Right, 2, time.Second)
	s.Food = grid.Cell{X: 1, Y: 0}
	before := s.Occupied()

	s.Step()
	ate, err := newTestSpawner(board, 5, 100).Feed(s, GrowAtFood)
	if err != nil {
		t.Fatal(err)
	}
	if !ate {
		t.Fatal("food under the head was not eaten")
	}

	if s.Len() != 4 {
		t.Errorf("length = %d, want 4", s.Len())
	}
	if _, taken := before[s.Food]; taken {
		t.Errorf("new food %v is in the pre-move chain", s.Food)
	}
	if s.Food == s.Head {
		t.Errorf("new food %v is under the head", s.Food)
	}
	if tail := s.Body[len(s.Body)-1]; tail != s.Food {
		t.Errorf("new segment at %v, want it on the new food %v", tail, s.Food)
	}
}

func TestFeedGrowsAtTail(t *testing.T) {
	board := grid.Board{Size: 21, CellSize: 30}
	s := NewSession(Right, 2, time.Second)
	s.Food = grid.Cell{X: 1, Y: 0}

	s.Step()
	if _, err := newTestSpawner(board, 5, 100).Feed(s, GrowAtTail); err != nil {
		t.Fatal(err)
	}

	assertChain(t, s.Chain(), []grid.Cell{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0}})
}

func TestFeedWithoutFood(t *testing.T) {
	s := NewSession(Right, 2, time.Second)
	s.Food = grid.Cell{X: 5, Y: 5}

	ate, err := newTestSpawner(smallBoard, 1, 10).Feed(s, GrowAtFood)
	if ate || err != nil {
		t.Errorf("Feed = %v, %v; want false, nil", ate, err)
	}
	if s.Len() != 3 {
		t.Errorf("length changed to %d", s.Len())
	}
}

func TestFeedOnFullBoard(t *testing.T) {
	s := NewSession(Right, 0, time.Second)
	for c := range allBut(smallBoard, s.Head) {
		s.Body = append(s.Body, c)
	}
	s.Food = s.Head
	s.prev = s.Chain()

	ate, err := newTestSpawner(smallBoard, 1, 10).Feed(s, GrowAtFood)
	if ate {
		t.Error("reported food eaten with no cell to relocate it to")
	}
	if !errors.Is(err, ErrNoPlacement) {
		t.Errorf("got %v, want ErrNoPlacement", err)
	}
}
