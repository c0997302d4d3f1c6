// Package invaders implements the Space Invaders prototype: frame clock,
// input snapshot, alien store, simulation step, frame composition and the
// main loop. Rendering and input devices are external collaborators reached
// through the Renderer and Platform interfaces.
package invaders

import (
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// Tuning holds the constants the simulation step reads.
type Tuning struct {
	ShipSpeed float64 // Pixels per second
	PhaseStep float64 // Wave phase offset between consecutive aliens
	Smooth    bool    // Drive the wave with continuous instead of whole seconds
	ClampShip bool    // Keep the ship within [0, ShipMaxX]
	ShipMaxX  float64
}

// Settings is everything needed to build a fresh State.
type Settings struct {
	Logical          core.Vec2i // Backbuffer resolution
	SpriteSize       int
	ShipBottomMargin int
	Rows, Cols       int
	Layout           StageLayout
	Tuning           Tuning
}

// DefaultSettings mirrors config.Default.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// SettingsFromConfig converts the YAML configuration into game settings.
func SettingsFromConfig(cfg config.Config) Settings {
	logical := core.Vec2i{X: cfg.Display.LogicalWidth, Y: cfg.Display.LogicalHeight}
	return Settings{
		Logical:          logical,
		SpriteSize:       cfg.Display.SpriteSize,
		ShipBottomMargin: cfg.Ship.BottomMargin,
		Rows:             cfg.Stage.Rows,
		Cols:             cfg.Stage.Cols,
		Layout: StageLayout{
			Origin:  core.Vec2{X: cfg.Stage.OriginX, Y: cfg.Stage.OriginY},
			Spacing: cfg.Stage.Spacing,
		},
		Tuning: Tuning{
			ShipSpeed: cfg.Ship.Speed,
			PhaseStep: cfg.Animation.PhaseStep,
			Smooth:    cfg.Animation.Mode == config.AnimationSmooth,
			ClampShip: cfg.Ship.Clamp,
			ShipMaxX:  float64(logical.X - cfg.Display.SpriteSize),
		},
	}
}

// Ship is the player ship.
type Ship struct {
	Pos core.Vec2
}

// State is the whole mutable game state, owned by one loop.
type State struct {
	Tuning Tuning
	Time   FrameSample // Latest clock sample
	Input  Input       // Latest input snapshot
	Ship   Ship
	Aliens *Store
}

// NewState places the ship at the bottom centre and builds the stage.
func NewState(s Settings) *State {
	return &State{
		Tuning: s.Tuning,
		Ship: Ship{Pos: core.Vec2{
			X: float64(s.Logical.X) / 2,
			Y: float64(s.Logical.Y - s.SpriteSize - s.ShipBottomMargin),
		}},
		Aliens: BuildStage(s.Rows, s.Cols, s.Layout),
	}
}
