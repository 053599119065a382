// Package grid converts between integer board cells and screen space.
//
// The board is a square of Size×Size cells centred on the origin: cell (0,0)
// is the middle of the board, X grows to the right and Y grows upwards. With
// an odd Size the extent along each axis is [-Half, Half].
package grid

import (
	"fmt"
	"math"
)

// Cell is one discrete board position. Cells compare with ==.
type Cell struct{ X, Y int }

// Add returns c translated by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Intner is the slice of a random source the board needs.
type Intner interface {
	Intn(n int) int
}

// Board describes the fixed square playfield.
type Board struct {
	Size     int // cells per side
	CellSize int // pixels per cell side
}

// Half is the largest coordinate magnitude still on the board.
func (b Board) Half() int {
	return b.Size / 2
}

// Contains reports whether c lies inside the board extent.
func (b Board) Contains(c Cell) bool {
	h := b.Half()
	return c.X >= -h && c.X <= h && c.Y >= -h && c.Y <= h
}

// Count is the number of cells on the board.
func (b Board) Count() int {
	return b.Size * b.Size
}

// Cells lists every board cell, top row first, left to right.
func (b Board) Cells() []Cell {
	h := b.Half()
	cells := make([]Cell, 0, b.Count())
	for y := h; y >= -h; y-- {
		for x := -h; x <= h; x++ {
			cells = append(cells, Cell{x, y})
		}
	}
	return cells
}

// Random draws a cell uniformly from the whole board.
func (b Board) Random(r Intner) Cell {
	h := b.Half()
	return Cell{r.Intn(b.Size) - h, r.Intn(b.Size) - h}
}

// ScreenSize is the board size in pixels.
func (b Board) ScreenSize() (w, h int) {
	return b.Size * b.CellSize, b.Size * b.CellSize
}

// ToScreen returns the top-left pixel of c, relative to the board's
// top-left corner. Screen Y grows downwards.
func (b Board) ToScreen(c Cell) (x, y float64) {
	h := b.Half()
	return float64((c.X + h) * b.CellSize), float64((h - c.Y) * b.CellSize)
}

// FromScreen maps a pixel relative to the board's top-left corner back to a
// cell. ok is false when the pixel is off the board.
func (b Board) FromScreen(x, y float64) (c Cell, ok bool) {
	if b.CellSize <= 0 {
		return Cell{}, false
	}
	h := b.Half()
	col := int(math.Floor(x / float64(b.CellSize)))
	row := int(math.Floor(y / float64(b.CellSize)))
	c = Cell{col - h, h - row}
	return c, b.Contains(c)
}
