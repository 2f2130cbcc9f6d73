package button

// Button identifies one of the four direction buttons.
type Button uint8

const (
	Up Button = iota
	Down
	Left
	Right

	// Count is the number of buttons on the panel.
	Count = 4
)

var names = [Count]string{"up", "down", "left", "right"}

func (b Button) String() string {
	if int(b) < Count {
		return names[b]
	}
	return "unknown"
}

// Parse returns the button with the given name.
func Parse(name string) (Button, bool) {
	for i, n := range names {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// Levels are raw, active-high button levels.
type Levels [Count]bool

// Panel holds the raw levels of the physical buttons. Front-ends write it,
// the machine samples it at the start of every frame.
type Panel struct {
	levels Levels
}

// NewPanel creates a panel with every button released.
func NewPanel() *Panel {
	return &Panel{}
}

// Press drives the button's line high.
func (p *Panel) Press(b Button) {
	if int(b) < Count {
		p.levels[b] = true
	}
}

// Release drives the button's line low.
func (p *Panel) Release(b Button) {
	if int(b) < Count {
		p.levels[b] = false
	}
}

// ReleaseAll drives every line low.
func (p *Panel) ReleaseAll() {
	p.levels = Levels{}
}

// Levels returns the current raw levels.
func (p *Panel) Levels() Levels {
	return p.levels
}
