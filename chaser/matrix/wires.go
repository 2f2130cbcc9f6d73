package matrix

import (
	"strings"

	"github.com/valerio/go-chaser/chaser/config"
)

// MaxWires is the capacity of a wire vector.
const MaxWires = config.MaxWires

// Wires is a fixed-length vector of wire levels. Only the first Len()
// entries exist; accesses past them are ignored.
type Wires struct {
	n    int
	bits [MaxWires]bool
}

// NewWires returns an all-low vector of n wires, clamped to MaxWires.
func NewWires(n int) Wires {
	if n < 0 {
		n = 0
	}
	if n > MaxWires {
		n = MaxWires
	}
	return Wires{n: n}
}

// Len returns the number of wires.
func (w Wires) Len() int { return w.n }

// Get returns the level of wire i; out of range wires read low.
func (w Wires) Get(i int) bool {
	if i < 0 || i >= w.n {
		return false
	}
	return w.bits[i]
}

// Set drives wire i and reports whether i exists.
func (w *Wires) Set(i int, v bool) bool {
	if i < 0 || i >= w.n {
		return false
	}
	w.bits[i] = v
	return true
}

// Count returns how many wires are high.
func (w Wires) Count() int {
	c := 0
	for i := 0; i < w.n; i++ {
		if w.bits[i] {
			c++
		}
	}
	return c
}

// String renders the vector wire 0 first, e.g. "01000000000".
func (w Wires) String() string {
	var sb strings.Builder
	for i := 0; i < w.n; i++ {
		if w.bits[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Drive is what the core hands to the pin driver: which wires are driven
// (Enable) and at what level (Value). A wire that is not enabled is high
// impedance whatever its Value.
type Drive struct {
	Enable Wires
	Value  Wires
}

// Idle returns a drive with every wire high impedance.
func Idle(n int) Drive {
	return Drive{Enable: NewWires(n), Value: NewWires(n)}
}

// Driven returns the number of enabled wires.
func (d Drive) Driven() int {
	return d.Enable.Count()
}

// IsIdle reports whether no wire is driven.
func (d Drive) IsIdle() bool {
	return d.Driven() == 0
}

func (d Drive) String() string {
	var sb strings.Builder
	for i := 0; i < d.Enable.Len(); i++ {
		switch {
		case !d.Enable.Get(i):
			sb.WriteByte('z')
		case d.Value.Get(i):
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
