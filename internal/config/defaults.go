package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: World{
			Width:        600,
			Height:       150,
			PlayerX:      25,
			BirdMinLevel: 3,
			TargetFPS:    60,
		},
		Settings: DefaultSettings(),
		Assets: Assets{
			Font: "builtin:PressStart2P",
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.5,
		},
		Controls: Controls{
			DuckHold: 150 * time.Millisecond,
		},
	}
}

// DefaultSettings returns the stock tuning knobs.
func DefaultSettings() Settings {
	return Settings{
		BgSpeed:           8,
		BirdSpeed:         7.2,
		BirdSpawnRate:     240,
		BirdWingsRate:     15,
		CactiSpawnRate:    50,
		CloudSpawnRate:    200,
		DinoGravity:       0.5,
		DinoGroundOffset:  4,
		DinoLegsRate:      6,
		DinoLift:          10,
		ScoreBlinkRate:    20,
		ScoreIncreaseRate: 6,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
