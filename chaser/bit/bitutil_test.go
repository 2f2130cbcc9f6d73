package bit

import (
	"testing"
)

func TestIsSet16(t *testing.T) {
	tests := []struct {
		value    uint16
		index    uint16
		expected bool
	}{
		{0b1010101010, 0, false},
		{0b1010101010, 1, true},
		{0b1010101010, 9, true},
		{0b1010101010, 10, false},
		{0xFFFF, 15, true},
		{0xFFFF, 16, false},
	}

	for _, tt := range tests {
		result := IsSet16(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("IsSet16(%d, %010b) = %v; want %v", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestIsSet64(t *testing.T) {
	tests := []struct {
		value    uint64
		index    uint8
		expected bool
	}{
		{1 << 22, 22, true},
		{1 << 22, 21, false},
		{(1 << 22) - 1, 22, false},
		{1 << 63, 63, true},
	}

	for _, tt := range tests {
		result := IsSet64(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("IsSet64(%d, %X) = %v; want %v", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestValue16(t *testing.T) {
	tests := []struct {
		value    uint16
		index    uint16
		expected uint16
	}{
		{0b1001000000, 9, 1},
		{0b1001000000, 6, 1},
		{0b1001000000, 7, 0},
		{0b0000000000, 0, 0},
	}

	for _, tt := range tests {
		result := Value16(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("Value16(%d, %010b) = %d; want %d", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestSet16(t *testing.T) {
	tests := []struct {
		value    uint16
		index    uint16
		expected uint16
	}{
		{0b1010101010, 0, 0b1010101011},
		{0b1010101010, 1, 0b1010101010},
		{0b0000000000, 9, 0b1000000000},
	}

	for _, tt := range tests {
		result := Set16(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("Set16(%d, %010b) = %010b; want %010b", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestReset16(t *testing.T) {
	tests := []struct {
		value    uint16
		index    uint16
		expected uint16
	}{
		{0b1010101011, 0, 0b1010101010},
		{0b1010101011, 2, 0b1010101011},
		{0b1010101011, 9, 0b0010101011},
	}

	for _, tt := range tests {
		result := Reset16(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("Reset16(%d, %010b) = %010b; want %010b", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestMask16(t *testing.T) {
	tests := []struct {
		width    uint16
		expected uint16
	}{
		{0, 0x0000},
		{3, 0x0007},
		{4, 0x000F},
		{10, 0x03FF},
		{16, 0xFFFF},
		{20, 0xFFFF},
	}

	for _, tt := range tests {
		result := Mask16(tt.width)
		if result != tt.expected {
			t.Errorf("Mask16(%d) = %X; want %X", tt.width, result, tt.expected)
		}
	}
}

func TestExtractBits16(t *testing.T) {
	tests := []struct {
		value           uint16
		highBit, lowBit uint16
		expected        uint16
	}{
		{0b1101110110, 6, 4, 0b111},
		{0b1101110110, 3, 0, 0b0110},
		{0b1111111111, 9, 0, 0b1111111111},
		{0b0001010000, 6, 4, 0b101},
	}

	for _, tt := range tests {
		result := ExtractBits16(tt.value, tt.highBit, tt.lowBit)
		if result != tt.expected {
			t.Errorf("ExtractBits16(%010b, %d, %d) = %b; want %b", tt.value, tt.highBit, tt.lowBit, result, tt.expected)
		}
	}
}
