package matrix

import (
	"github.com/valerio/go-chaser/chaser/config"
	"github.com/valerio/go-chaser/chaser/game"
)

// Pair is the wire pair that lights one element: current flows from Anode
// (driven high) to Cathode (driven low).
type Pair struct {
	Cathode int
	Anode   int
}

// Mapping holds the pure index -> coordinate and index -> wire pair
// functions for one matrix geometry.
type Mapping struct {
	wires    int
	columns  int
	elements int
}

// NewMapping builds the mapping for a validated configuration.
func NewMapping(cfg config.Config) Mapping {
	return Mapping{
		wires:    cfg.Wires,
		columns:  cfg.Columns,
		elements: cfg.Elements,
	}
}

// Wires returns the number of wires.
func (m Mapping) Wires() int { return m.wires }

// Elements returns the number of wired elements.
func (m Mapping) Elements() int { return m.elements }

func (m Mapping) valid(index int) bool {
	return index >= 0 && index < m.elements
}

// Coordinate maps a scan index to its grid cell, row-major.
func (m Mapping) Coordinate(index int) (game.Position, bool) {
	if !m.valid(index) {
		return game.Position{}, false
	}
	return game.Position{X: index % m.columns, Y: index / m.columns}, true
}

// Index is the inverse of Coordinate.
func (m Mapping) Index(p game.Position) (int, bool) {
	if p.X < 0 || p.X >= m.columns || p.Y < 0 {
		return 0, false
	}
	index := p.Y*m.columns + p.X
	return index, m.valid(index)
}

// PinPair maps a scan index to its wire pair. Elements are grouped N-1 to a
// cathode; within a group the anodes count up and skip the cathode's own
// wire, so the two never coincide.
func (m Mapping) PinPair(index int) (Pair, bool) {
	if !m.valid(index) || m.wires < 2 {
		return Pair{}, false
	}

	group := index / (m.wires - 1)
	pos := index % (m.wires - 1)

	anode := pos
	if pos >= group {
		anode++
	}
	return Pair{Cathode: group, Anode: anode}, true
}

// Drive returns the outputs that light the element at index, or an idle
// drive when the index has no mapping.
func (m Mapping) Drive(index int) Drive {
	d := Idle(m.wires)

	pair, ok := m.PinPair(index)
	if !ok {
		return d
	}

	d.Enable.Set(pair.Anode, true)
	d.Value.Set(pair.Anode, true)
	d.Enable.Set(pair.Cathode, true)
	d.Value.Set(pair.Cathode, false)
	return d
}

// Decode recovers the lit element from a drive: exactly two enabled wires,
// one high and one low, forming a wired pair. Anything else lights nothing.
func (m Mapping) Decode(d Drive) (int, bool) {
	if m.wires < 2 || d.Driven() != 2 {
		return 0, false
	}

	anode, cathode := -1, -1
	for i := 0; i < m.wires; i++ {
		if !d.Enable.Get(i) {
			continue
		}
		if d.Value.Get(i) {
			anode = i
		} else {
			cathode = i
		}
	}
	if anode < 0 || cathode < 0 {
		return 0, false
	}

	pos := anode
	if anode > cathode {
		pos--
	}
	index := cathode*(m.wires-1) + pos
	return index, m.valid(index)
}
