package event

// Type represents the type of input event
type Type int

const (
	Press   Type = iota // Key went down
	Release             // Key went up
	Hold                // Continuous while pressed
)

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}
