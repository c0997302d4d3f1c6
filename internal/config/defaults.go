package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// Default returns the hardcoded invaders configuration.
// It mirrors defaults/invaders.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			LogicalWidth:  224,
			LogicalHeight: 256,
			SpriteSize:    16,
			WindowScale:   3,
			TickRate:      60,
		},
		Ship: ShipConfig{
			Speed:        160.0,
			BottomMargin: 10,
			Clamp:        false,
		},
		Stage: StageConfig{
			Rows:    4,
			Cols:    10,
			OriginX: 10,
			OriginY: 32,
			Spacing: 18,
		},
		Animation: AnimationConfig{
			Mode:      AnimationStepped,
			PhaseStep: 0.15,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
