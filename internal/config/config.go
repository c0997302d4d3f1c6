// Package config provides YAML-based game configuration loading.
package config

import (
	"errors"
	"fmt"
)

// AnimationMode selects the time base of the alien bobbing animation.
type AnimationMode string

const (
	// AnimationStepped feeds whole elapsed seconds into the wave, so the phase
	// jumps once per second.
	AnimationStepped AnimationMode = "stepped"
	// AnimationSmooth feeds continuous elapsed time into the wave.
	AnimationSmooth AnimationMode = "smooth"
)

// Config contains all configuration for the invaders game.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Assets    AssetsConfig    `yaml:"assets"`
	Ship      ShipConfig      `yaml:"ship"`
	Stage     StageConfig     `yaml:"stage"`
	Animation AnimationConfig `yaml:"animation"`
}

// DisplayConfig defines the backbuffer and frontend pacing.
type DisplayConfig struct {
	LogicalWidth  int `yaml:"logical_width"`  // Backbuffer width in pixels
	LogicalHeight int `yaml:"logical_height"` // Backbuffer height in pixels
	SpriteSize    int `yaml:"sprite_size"`    // Sprite sheet cell size in pixels
	WindowScale   int `yaml:"window_scale"`   // Window size multiplier for the windowed frontend
	TickRate      int `yaml:"tick_rate"`      // Frames per second requested from the terminal frontend
}

// AssetsConfig locates external asset files.
type AssetsConfig struct {
	SpriteSheet string `yaml:"sprite_sheet"` // PNG path; empty uses the built-in sheet
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Speed        float64 `yaml:"speed"`         // Horizontal speed in pixels per second
	BottomMargin int     `yaml:"bottom_margin"` // Gap between ship sprite and bottom edge
	Clamp        bool    `yaml:"clamp"`         // Keep the ship inside the backbuffer
}

// StageConfig defines the alien grid layout.
type StageConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Spacing float64 `yaml:"spacing"`
}

// AnimationConfig defines the alien bobbing wave.
type AnimationConfig struct {
	Mode      AnimationMode `yaml:"mode"`
	PhaseStep float64       `yaml:"phase_step"` // Phase offset between consecutive aliens
}

// FootprintSize is the side, in logical pixels, of every sprite cell and
// entity footprint. sprite_size must equal it.
const FootprintSize = 16

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	switch {
	case c.Display.LogicalWidth <= 0 || c.Display.LogicalHeight <= 0:
		return fmt.Errorf("%w: logical size %dx%d", ErrInvalid, c.Display.LogicalWidth, c.Display.LogicalHeight)
	case c.Display.SpriteSize != FootprintSize:
		return fmt.Errorf("%w: sprite_size %d, entity footprints are %d", ErrInvalid, c.Display.SpriteSize, FootprintSize)
	case c.Display.WindowScale <= 0:
		return fmt.Errorf("%w: window_scale %d", ErrInvalid, c.Display.WindowScale)
	case c.Display.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Display.TickRate)
	case c.Stage.Rows < 0 || c.Stage.Cols < 0:
		return fmt.Errorf("%w: stage %dx%d", ErrInvalid, c.Stage.Rows, c.Stage.Cols)
	case c.Ship.Speed < 0:
		return fmt.Errorf("%w: ship speed %g", ErrInvalid, c.Ship.Speed)
	}

	switch c.Animation.Mode {
	case AnimationStepped, AnimationSmooth:
	default:
		return fmt.Errorf("%w: animation mode %q", ErrInvalid, c.Animation.Mode)
	}
	return nil
}
