package matrix

import (
	"strings"

	"github.com/valerio/go-chaser/chaser/game"
)

// Frame is what an eye integrates over one full refresh: every element that
// was driven at least once.
type Frame struct {
	lit [game.Rows][game.Columns]bool
}

// NewFrame returns a dark frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Clear darkens every element.
func (f *Frame) Clear() {
	f.lit = [game.Rows][game.Columns]bool{}
}

// Observe records the element lit by d, if any.
func (f *Frame) Observe(m Mapping, d Drive) {
	index, ok := m.Decode(d)
	if !ok {
		return
	}
	if p, ok := m.Coordinate(index); ok {
		f.Set(p, true)
	}
}

// Set lights or darkens the element at p.
func (f *Frame) Set(p game.Position, v bool) {
	if p.X < 0 || p.X >= game.Columns || p.Y < 0 || p.Y >= game.Rows {
		return
	}
	f.lit[p.Y][p.X] = v
}

// Lit reports whether the element at p was lit.
func (f *Frame) Lit(p game.Position) bool {
	if p.X < 0 || p.X >= game.Columns || p.Y < 0 || p.Y >= game.Rows {
		return false
	}
	return f.lit[p.Y][p.X]
}

// Count returns the number of lit elements.
func (f *Frame) Count() int {
	c := 0
	for y := range f.lit {
		for x := range f.lit[y] {
			if f.lit[y][x] {
				c++
			}
		}
	}
	return c
}

// String renders the frame one row per line, '#' for lit and '.' for dark.
func (f *Frame) String() string {
	var sb strings.Builder
	for y := range f.lit {
		for x := range f.lit[y] {
			if f.lit[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
