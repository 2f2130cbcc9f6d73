package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-chaser/chaser/backend"
	"github.com/valerio/go-chaser/chaser/backend/terminal/render"
	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/debug"
	"github.com/valerio/go-chaser/chaser/game"
	"github.com/valerio/go-chaser/chaser/input"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
	"github.com/valerio/go-chaser/chaser/matrix"
)

const (
	cellWidth = 2

	matrixX        = 2
	matrixY        = 2
	matrixWidth    = game.Columns * cellWidth
	statusY        = matrixY + game.Rows + 1
	dividerX       = matrixX + matrixWidth + 2
	registerHeight = 9
	minTermWidth   = 60
	minTermHeight  = 16

	// keyTimeout is how long a terminal key press holds a board button.
	// Terminals only report key repeats, never releases, so a press must
	// outlast one game period for the board to latch it.
	keyTimeout = 200 * time.Millisecond
)

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen     tcell.Screen
	running    bool
	logBuffer  *render.LogBuffer
	logLevel   slog.Level
	config     backend.BackendConfig
	eventQueue []backend.InputEvent // Collect events to return
	signals    chan os.Signal
	now        func() time.Time

	keyStates  map[action.Action]time.Time // Last time each key was pressed
	activeKeys map[action.Action]bool      // Keys active in previous frame

	// For accessing machine state
	debugProvider backend.DebugDataProvider

	// Snapshot state
	currentFrame *matrix.Frame
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
		now:      time.Now,
	}
}

// NewWithScreen creates a backend drawing on an existing screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	t := New()
	t.screen = screen
	return t
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	t.debugProvider = config.DebugProvider
	t.eventQueue = nil
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.running = true

	t.logBuffer = render.NewLogBuffer(100)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))

	slog.Info("Terminal backend initialized")
	if config.ShowDebug {
		slog.Debug("Debug mode enabled")
	}

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	return nil
}

// Update renders a frame and processes events
func (t *Backend) Update(frame *matrix.Frame) ([]backend.InputEvent, error) {
	var events []backend.InputEvent
	now := t.now()

	select {
	case sig := <-t.signals:
		slog.Info("Signal received, quitting", "signal", sig)
		t.running = false
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: action.SimQuit, Type: event.Press})
	default:
	}

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	currentlyActive := make(map[action.Action]bool)

	for act, lastPressed := range t.keyStates {
		if now.Sub(lastPressed) >= keyTimeout {
			delete(t.keyStates, act)
			continue
		}

		currentlyActive[act] = true
		if !t.activeKeys[act] {
			slog.Debug("Key press", "action", action.GetInfo(act).Description)
			events = append(events, backend.InputEvent{Action: act, Type: event.Press})
		} else {
			events = append(events, backend.InputEvent{Action: act, Type: event.Hold})
		}
	}

	for act := range t.activeKeys {
		if !currentlyActive[act] {
			slog.Debug("Key release", "action", action.GetInfo(act).Description)
			events = append(events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}
	t.activeKeys = currentlyActive

	events = append(events, t.eventQueue...)
	t.eventQueue = nil

	if !t.running {
		return events, nil
	}

	t.currentFrame = frame
	t.render(frame)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// HandleAction processes backend-specific actions
func (t *Backend) HandleAction(act action.Action) {
	switch act {
	case action.SimSnapshot:
		debug.TakeSnapshot(t.currentFrame)
	case action.SimDebugToggle:
		t.config.ShowDebug = !t.config.ShowDebug
		slog.Info("Debug display toggled", "enabled", t.config.ShowDebug)
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

// LogLevel returns the current log pane filter.
func (t *Backend) LogLevel() slog.Level {
	return t.logLevel
}

// ShowDebug reports whether the register panel is visible.
func (t *Backend) ShowDebug() bool {
	return t.config.ShowDebug
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyUp:     "Up",
	tcell.KeyDown:   "Down",
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEscape: "Escape",
	tcell.KeyF10:    "F10",
	tcell.KeyF12:    "F12",
}

// keyMapping maps tcell keys to actions
var keyMapping = buildKeyMapping()

func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.SimQuit
	return mapping
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	act, ok := keyMapping[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		name := string(ev.Rune())
		if ev.Rune() == ' ' {
			name = "Space"
		}
		act, ok = input.GetDefaultMapping(name)
	}
	if !ok {
		return
	}

	if act == action.SimQuit {
		t.running = false
	}

	// Board inputs are held until keyTimeout passes without a repeat.
	// Directions do not clear each other so diagonals can be held.
	if action.GetInfo(act).Category == action.CategoryGameInput {
		t.keyStates[act] = now
		return
	}
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	next := t.logLevel - slog.Level(4*direction)
	if next >= slog.LevelDebug && next <= slog.LevelError {
		t.logLevel = next
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

func (t *Backend) render(frame *matrix.Frame) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		return
	}

	var data *debug.Data
	if t.debugProvider != nil {
		data = t.debugProvider.ExtractDebugData()
	}

	t.drawBorders(termWidth, termHeight)
	t.drawMatrix(frame)
	t.drawStatus(data)

	rightPanelX := dividerX + 2
	rightPanelWidth := termWidth - rightPanelX
	logsY := 0
	if t.config.ShowDebug && data != nil {
		t.drawRegisters(rightPanelX, 1, rightPanelWidth, data)
		logsY = registerHeight + 2
	}
	t.drawLogs(rightPanelX, logsY, rightPanelWidth, termHeight)
}

func (t *Backend) drawBorders(termWidth, termHeight int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	t.drawText(1, 0, dividerX-1, " "+t.title()+" ", titleStyle)

	logsTitleY := 0
	if t.config.ShowDebug && t.debugProvider != nil {
		// title row of the log pane, below the registers
		t.drawText(dividerX+2, 0, termWidth-dividerX-2, " Registers ", titleStyle)
		logsTitleY = registerHeight + 2
		for x := dividerX + 1; x < termWidth; x++ {
			t.screen.SetContent(x, logsTitleY, '─', nil, borderStyle)
		}
		t.screen.SetContent(dividerX, logsTitleY, '├', nil, borderStyle)
	}
	title := fmt.Sprintf(" Logs [%s] (-/+ filter) ", t.logLevel)
	t.drawText(dividerX+2, logsTitleY, termWidth-dividerX-2, title, titleStyle)

	help := " Arrows/WASD=move R=reset SPACE=pause F=frame M=sound F10=debug F12=snapshot Q=quit "
	t.drawText(0, termHeight-1, termWidth, help, borderStyle)
}

func (t *Backend) title() string {
	if t.config.Title != "" {
		return t.config.Title
	}
	return "Chaser"
}

func (t *Backend) drawMatrix(frame *matrix.Frame) {
	litStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	darkStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Columns; x++ {
			ch, style := '·', darkStyle
			if frame != nil && frame.Lit(game.Position{X: x, Y: y}) {
				ch, style = '●', litStyle
			}
			t.screen.SetContent(matrixX+x*cellWidth, matrixY+y, ch, nil, style)
		}
	}
}

func (t *Backend) drawStatus(data *debug.Data) {
	if data == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	t.drawText(matrixX, statusY, matrixWidth, fmt.Sprintf("Catches: %d", data.Catches), style)
	t.drawText(matrixX, statusY+1, matrixWidth, fmt.Sprintf("State:   %s", data.DebuggerState), style)
}

func (t *Backend) drawRegisters(startX, startY, width int, data *debug.Data) {
	lines := []string{
		fmt.Sprintf("Player: %v  Target: %v", data.Player, data.Target),
		fmt.Sprintf("Caught: %t  Blink: %t", data.Caught, data.Blink),
		fmt.Sprintf("LFSR:   0x%03X", data.Random),
		fmt.Sprintf("Scan:   %d", data.ScanIndex),
		fmt.Sprintf("Pins:   %s", data.Outputs),
		"Keys:   " + formatButtons(data.Buttons),
		fmt.Sprintf("Ticks:  %d", data.Ticks),
		fmt.Sprintf("Frames: %d", data.Frames),
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for i, line := range lines {
		if i >= registerHeight {
			break
		}
		t.drawText(startX, startY+i, width, line, style)
	}
}

func formatButtons(levels button.Levels) string {
	s := ""
	for b := button.Button(0); b < button.Count; b++ {
		if levels[b] {
			s += b.String() + " "
		}
	}
	if s == "" {
		return "-"
	}
	return s
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	availableHeight := termHeight - startY - 2
	if width <= 0 || availableHeight <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.Recent(availableHeight, t.logLevel) {
		style := infoStyle
		switch entry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}

		text := render.FormatLogEntry(entry)
		if len(text) > width && width > 3 {
			text = text[:width-3] + "..."
		}
		t.drawText(startX, startY+1+i, width, text, style)
	}
}

// drawText writes s from (x, y), clipped to maxWidth cells.
func (t *Backend) drawText(x, y, maxWidth int, s string, style tcell.Style) {
	i := 0
	for _, ch := range s {
		if i >= maxWidth {
			return
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
