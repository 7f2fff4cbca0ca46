package render

import (
	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

// Buffer is an off-screen cell grid renderers draw into; the orchestrator
// flushes it to the terminal once per frame
type Buffer struct {
	width, height int
	cells         []cell
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize reallocates the grid
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height
	b.cells = make([]cell, width*height)
	b.Clear()
}

// Clear resets every cell to a blank
func (b *Buffer) Clear() {
	blank := cell{r: ' ', style: tcell.StyleDefault}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, style: style}
}

// SetString writes a run of cells left to right
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		b.Set(x+i, y, r, style)
	}
}

// Get reads one cell, for tests
func (b *Buffer) Get(x, y int) (rune, tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, tcell.StyleDefault
	}
	c := b.cells[y*b.width+x]
	return c.r, c.style
}

// Flush writes the grid to the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
}
