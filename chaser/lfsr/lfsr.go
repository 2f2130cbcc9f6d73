// Package lfsr implements the 10-bit linear-feedback shift register used to
// place the target.
//
// Feedback is bit 9 XOR bit 6 shifted into bit 0 (taps of x^10 + x^7 + 1),
// which is maximal length: from any nonzero seed the register walks all 1023
// nonzero values before repeating and never reaches zero.
package lfsr

import "github.com/valerio/go-chaser/chaser/bit"

const (
	Width  = 10
	Mask   = 0x3FF
	Period = 1023

	tapHigh = 9
	tapLow  = 6
)

// Register is the shift register contents. Only the low 10 bits are used.
type Register uint16

// Seeded returns a register loaded with seed.
func Seeded(seed uint16) Register {
	return Register(seed & Mask)
}

// Next returns the register after one shift.
func (r Register) Next() Register {
	v := uint16(r)
	feedback := bit.Value16(tapHigh, v) ^ bit.Value16(tapLow, v)
	return Register(((v << 1) | feedback) & Mask)
}

// X folds the low four bits into a column in [0, 14]. A single conditional
// subtraction, not a modulo: 15 folds to 10, so column 10 is twice as likely.
func (r Register) X() int {
	x := int(bit.ExtractBits16(uint16(r), 3, 0))
	if x >= 15 {
		x -= 5
	}
	return x
}

// Y folds bits 6..4 into a row in [0, 6]. 7 folds to 5.
func (r Register) Y() int {
	y := int(bit.ExtractBits16(uint16(r), 6, 4))
	if y >= 7 {
		y -= 2
	}
	return y
}
