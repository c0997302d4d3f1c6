package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/platform/raster"
	"github.com/vovakirdan/invaders/internal/sprites"
	"github.com/vovakirdan/invaders/internal/storage"
)

// helpHeight is the number of rows reserved for the key help footer.
const helpHeight = 1

// Options configures a terminal game session.
type Options struct {
	Settings      invaders.Settings
	Sheet         *sprites.Sheet
	Runtime       core.RuntimeConfig
	Store         *storage.Store // Optional session history
	Frontend      string         // Recorded with the session, "terminal" or "ssh"
	User          string
	Logger        *log.Logger
	Lipgloss      *lipgloss.Renderer // Nil uses the process default
	ScreenshotDir string             // Defaults to ~/.invaders/screenshots
	HoldWindow    time.Duration
}

// termInput is the loop's view of the terminal: held keys plus the key
// events received since the previous tick.
type termInput struct {
	held   *HeldKeys
	events []core.Event
}

func (t *termInput) Counter() uint64 {
	return core.PerformanceCounter()
}

func (t *termInput) Frequency() uint64 {
	return core.PerformanceFrequency()
}

func (t *termInput) Keys() core.KeyState {
	return t.held
}

func (t *termInput) PollEvents() []core.Event {
	evs := t.events
	t.events = nil
	return evs
}

// Model is the Bubble Tea model that drives one game loop per tick.
type Model struct {
	game      *invaders.Game
	raster    *raster.Renderer
	presenter *Presenter
	renderer  *Renderer
	input     *termInput
	keys      KeyMap
	help      help.Model
	helpStyle lipgloss.Style
	opts      Options
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Frontend == "" {
		opts.Frontend = "terminal"
	}
	if opts.Sheet == nil {
		opts.Sheet = sprites.Builtin()
	}

	logical := opts.Settings.Logical
	presenter := NewPresenter(opts.Runtime.ScreenW, core.Max(0, opts.Runtime.ScreenH-helpHeight), logical)
	ras := raster.New(core.NewCanvas(logical.X, logical.Y), opts.Sheet)
	ras.SetGlyph(presenter.Glyph())

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	base := opts.Lipgloss
	if base == nil {
		base = lipgloss.DefaultRenderer()
	}

	return Model{
		game:      invaders.NewGame(opts.Settings, opts.Logger),
		raster:    ras,
		presenter: presenter,
		renderer:  NewRenderer(base),
		input:     &termInput{held: NewHeldKeys(opts.HoldWindow)},
		keys:      DefaultKeyMap(),
		help:      h,
		helpStyle: base.NewStyle().Foreground(lipgloss.Color("241")),
		opts:      opts,
		logger:    opts.Logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next loop iteration.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := saveScreenshot(m.opts.ScreenshotDir, m.presenter.Screen())
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	ev, ok := m.keys.MapEvent(msg)
	if !ok {
		return m, nil
	}
	if ev.Kind == core.EventKeyDown {
		m.input.held.Press(ev.Key)
		// Terminals never report key-up, so the other direction would
		// otherwise stay held for the whole hold window and cancel this one.
		switch ev.Key {
		case core.KeyLeft, core.KeyA:
			m.input.held.Release(core.KeyRight)
			m.input.held.Release(core.KeyD)
		case core.KeyRight, core.KeyD:
			m.input.held.Release(core.KeyLeft)
			m.input.held.Release(core.KeyA)
		}
	}
	m.input.events = append(m.input.events, ev)
	return m, nil
}

// handleResize refits the canvas to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.presenter.Resize(msg.Width, core.Max(0, msg.Height-helpHeight), m.opts.Settings.Logical)
	m.raster.SetGlyph(m.presenter.Glyph())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one loop iteration and composes the frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	quit := m.game.Frame(m.input)
	m.game.Compose(m.raster)
	m.presenter.Present(m.raster.Canvas(), m.raster.Texts())

	if quit {
		m.quitting = true
		m.recordSession()
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordSession stores the run in the session history, if one is open.
func (m Model) recordSession() {
	stats := m.game.Stats()
	m.logger.Info("session finished",
		"frontend", m.opts.Frontend,
		"user", m.opts.User,
		"frames", stats.Frames,
		"peak_fps", stats.PeakFPS,
	)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveSession(storage.Session{
		Frontend: m.opts.Frontend,
		User:     m.opts.User,
		Frames:   int64(stats.Frames),
		PeakFPS:  stats.PeakFPS,
		Seconds:  stats.Seconds,
	})
	if err != nil {
		m.logger.Warn("could not record session", "err", err)
	}
}

// View renders the last presented frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.RenderScreen(m.presenter.Screen()) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Game exposes the running game.
func (m Model) Game() *invaders.Game {
	return m.game
}

// saveScreenshot writes the screen as plain text and returns the file path.
func saveScreenshot(dir string, s *core.Screen) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".invaders", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("invaders_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
