package bit

// IsSet16 will check if the bit at the specified index is set to 1 or not.
func IsSet16(index, value uint16) bool {
	return ((value >> index) & 1) == 1
}

// IsSet64 is IsSet16 for the wide free-running counters.
func IsSet64(index uint8, value uint64) bool {
	return ((value >> index) & 1) == 1
}

// Value16 returns 1 if the bit at the specified index is set, 0 otherwise.
func Value16(index, value uint16) uint16 {
	return (value >> index) & 1
}

// Set16 will return value with the bit at the specified index set to 1.
func Set16(index, value uint16) uint16 {
	return value | (1 << index)
}

// Reset16 will return value with the bit at the specified index set to 0.
func Reset16(index, value uint16) uint16 {
	return value &^ (1 << index)
}

// Mask16 returns a mask with the low width bits set.
func Mask16(width uint16) uint16 {
	if width >= 16 {
		return 0xFFFF
	}
	return (1 << width) - 1
}

// ExtractBits16 extracts bits from highBit to lowBit (inclusive)
// Example: ExtractBits16(0b1101110110, 6, 4) -> 0b101 (extracts bits 6, 5, 4)
func ExtractBits16(value, highBit, lowBit uint16) uint16 {
	return (value >> lowBit) & Mask16(highBit-lowBit+1)
}
