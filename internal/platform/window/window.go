//go:build !nowindow && (cgo || windows || darwin)

package window

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/sprites"
	"github.com/vovakirdan/invaders/internal/storage"
)

// Title is the window caption.
const Title = "Space Invaders"

// debugGlyph is the cell size of ebitenutil's debug font.
var debugGlyph = core.Vec2i{X: 6, Y: 16}

// keyBindings maps platform keys to Ebitengine keys.
var keyBindings = map[core.Key]ebiten.Key{
	core.KeyLeft:   ebiten.KeyArrowLeft,
	core.KeyRight:  ebiten.KeyArrowRight,
	core.KeyA:      ebiten.KeyA,
	core.KeyD:      ebiten.KeyD,
	core.KeySpace:  ebiten.KeySpace,
	core.KeyEscape: ebiten.KeyEscape,
}

// Options configures the window frontend.
type Options struct {
	Settings invaders.Settings
	Sheet    *sprites.Sheet
	Scale    int // Initial window size as a multiple of the logical size
	TickRate int // Updates per second; 0 ties updates to the display refresh
	Store    *storage.Store
	User     string
	Logger   *log.Logger
}

// heldKeys reads live keyboard state.
type heldKeys struct{}

func (heldKeys) Down(k core.Key) bool {
	ek, ok := keyBindings[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// Game adapts the loop to ebiten.Game and implements the game's Platform
// and Renderer on top of Ebitengine.
type Game struct {
	game    *invaders.Game
	sprites *sprites.Cache[*ebiten.Image]
	target  *ebiten.Image // Screen during Draw
	logical core.Vec2i
	opts    Options
	logger  *log.Logger
	pressed []ebiten.Key
}

// New creates the window frontend. The sheet image is uploaded once and
// addressed through cached sub-images.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Sheet == nil {
		opts.Sheet = sprites.Builtin()
	}
	sheet := ebiten.NewImageFromImage(opts.Sheet.Image())
	return &Game{
		game: invaders.NewGame(opts.Settings, opts.Logger),
		sprites: sprites.NewCache(opts.Sheet, func(r image.Rectangle) *ebiten.Image {
			return sheet.SubImage(r).(*ebiten.Image)
		}),
		logical: opts.Settings.Logical,
		opts:    opts,
		logger:  opts.Logger,
	}
}

// Counter returns the monotonic performance counter.
func (g *Game) Counter() uint64 {
	return core.PerformanceCounter()
}

// Frequency returns counter ticks per second.
func (g *Game) Frequency() uint64 {
	return core.PerformanceFrequency()
}

// Keys returns live keyboard state.
func (g *Game) Keys() core.KeyState {
	return heldKeys{}
}

// PollEvents reports keys pressed since the previous update and a close
// request from the window manager.
func (g *Game) PollEvents() []core.Event {
	var evs []core.Event
	if ebiten.IsWindowBeingClosed() {
		evs = append(evs, core.Event{Kind: core.EventQuit})
	}
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, ek := range g.pressed {
		for k, bound := range keyBindings {
			if bound == ek {
				evs = append(evs, core.Event{Kind: core.EventKeyDown, Key: k})
			}
		}
	}
	return evs
}

// Update runs one loop iteration.
func (g *Game) Update() error {
	if g.game.Frame(g) {
		g.recordSession()
		return ebiten.Termination
	}
	return nil
}

// Draw composes the current state onto the logical screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.target = screen
	g.game.Compose(g)
	g.target = nil
}

// Layout fixes the logical resolution; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.logical.X, g.logical.Y
}

// Size returns the logical resolution.
func (g *Game) Size() core.Vec2i {
	return g.logical
}

// Clear fills the screen.
func (g *Game) Clear(c core.Color) {
	g.target.Fill(c.RGBA())
}

// DrawSprite draws one sheet cell at pos.
func (g *Game) DrawSprite(cell core.Vec2i, pos core.Vec2) {
	img, err := g.sprites.Get(cell)
	if err != nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	g.target.DrawImage(img, op)
}

// TextSize measures text in the debug font.
func (g *Game) TextSize(text string) (w, h int) {
	return len([]rune(text)) * debugGlyph.X, debugGlyph.Y
}

// DrawText prints text with the debug font, which covers printable ASCII.
func (g *Game) DrawText(x, y int, text string) error {
	for _, c := range text {
		if c < ' ' || c > '~' {
			return fmt.Errorf("%w: %q", invaders.ErrGlyphUnsupported, c)
		}
	}
	ebitenutil.DebugPrintAt(g.target, text, x, y)
	return nil
}

// recordSession stores the run in the session history, if one is open.
func (g *Game) recordSession() {
	stats := g.game.Stats()
	g.logger.Info("session finished", "frames", stats.Frames, "peak_fps", stats.PeakFPS)
	if g.opts.Store == nil {
		return
	}
	if _, err := g.opts.Store.SaveSession(storage.Session{
		Frontend: "window",
		User:     g.opts.User,
		Frames:   int64(stats.Frames),
		PeakFPS:  stats.PeakFPS,
		Seconds:  stats.Seconds,
	}); err != nil {
		g.logger.Warn("could not record session", "err", err)
	}
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(opts Options) error {
	scale := max(1, opts.Scale)
	logical := opts.Settings.Logical

	ebiten.SetWindowSize(logical.X*scale, logical.Y*scale)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(New(opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
