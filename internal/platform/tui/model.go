package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// footerRows is the number of screen rows reserved below the arena.
const footerRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a pong match.
//
// Terminals report key presses but not releases. A control key counts as
// held from its first press until key_delay passes without a repeat, and
// once repeats arrive, until key_hold passes without the next one. Expired
// keys are released at the start of each frame, before any simulation tick
// runs.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	canvas   *ArenaCanvas
	clock    core.FixedStep
	config   core.RuntimeConfig
	terminal config.TerminalConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	held      map[core.Key]heldKey
	now       func() time.Time
	lastFrame time.Time
	quitting  bool
}

// heldKey is the last press of a control key.
type heldKey struct {
	at        time.Time
	repeating bool
}

// NewModel creates a model for a screen of cfg.ScreenW x cfg.ScreenH cells.
// The last row shows the key help; the rest is the arena.
func NewModel(pc config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Seed = cfg.ResolveSeed()

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows)
	canvas := NewArenaCanvas(screen, pc.Terminal.CellWidth, pc.Terminal.CellHeight)

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle

	return Model{
		game: pong.New(pc.Tuning(), canvas.Arena(),
			pong.WithSeed(cfg.Seed),
			pong.WithLogger(logger),
		),
		screen:   screen,
		canvas:   canvas,
		clock:    core.NewFixedStep(cfg.TickRate, cfg.MaxCatchUp),
		config:   cfg,
		terminal: pc.Terminal,
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		held:     make(map[core.Key]heldKey),
		now:      time.Now,
	}
}

// Game returns the match driven by this model.
func (m Model) Game() *pong.Game {
	return m.game
}

// Arena returns the current arena size in arena units.
func (m Model) Arena() core.Size {
	return m.canvas.Arena()
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	k := m.keys.Lookup(msg)
	if k == core.KeyNone {
		return m, nil
	}
	_, repeating := m.held[k]
	if !repeating {
		m.game.KeyEvent(k, true)
	}
	m.held[k] = heldKey{at: m.now(), repeating: repeating}
	return m, nil
}

// handleResize processes window resize events. The match continues; the
// next tick runs in the resized arena.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width

	arena := m.canvas.Arena()
	m.logger.Debug("arena resized", "width", arena.W, "height", arena.H)
	return m, nil
}

// handleFrame releases expired keys and runs every tick owed since the
// previous frame.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	m.releaseExpired(t)

	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = t.Sub(m.lastFrame)
	}
	m.lastFrame = t

	arena := m.canvas.Arena()
	dt := m.clock.Seconds()
	for range m.clock.Advance(elapsed) {
		m.game.Tick(dt, arena)
	}

	return m, frameCmd(m.config.FrameRate)
}

// releaseExpired releases keys whose last press is older than their window.
func (m Model) releaseExpired(t time.Time) {
	for k, h := range m.held {
		window := m.terminal.KeyDelay
		if h.repeating {
			window = m.terminal.KeyHold
		}
		if t.Sub(h.at) > window {
			delete(m.held, k)
			m.game.KeyEvent(k, false)
		}
	}
}

// saveScreenshot saves the current screen to a text file under ~/.pong.
func (m Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(config.HomeDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// render draws the current match into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	m.game.Draw(m.canvas, m.canvas.Arena())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for one match and logs the final score.
func Run(pc config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger, opts ...tea.ProgramOption) error {
	model := NewModel(pc, cfg, logger)
	model.logger.Info("match started", "seed", model.config.Seed, "tick_rate", model.config.TickRate)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		model.logger.Info("match ended", "score", fm.game.ScoreText())
	}
	return nil
}
