package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// groundTileHeight is the logical height of the ground sprite.
const groundTileHeight = 14

// LoadDino loads the runner configuration.
// Search order: customPath -> ~/.dino/configs/dino.yaml -> ./configs/dino.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadDino(customPath string) (DinoConfig, error) {
	cfg := DefaultDinoConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("dino.yaml"), filepath.Join("configs", "dino.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDinoYAML, &cfg); err != nil {
		return DefaultDinoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads path over the defaults. Unreadable or unparsable files are
// skipped.
func tryLoad(path string) (DinoConfig, bool) {
	cfg := DefaultDinoConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino", "configs", filename)
}

// ApplyDinoPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	s := &cfg.Settings
	switch preset {
	case DifficultyEasy:
		s.BgSpeed = 6
		s.BirdSpeed = s.BgSpeed * 0.9
		s.CactiSpawnRate = 60
		s.BirdSpawnRate = 300
		cfg.World.BirdMinLevel = 5
	case DifficultyHard:
		s.BgSpeed = 10
		s.BirdSpeed = s.BgSpeed * 0.9
		s.CactiSpawnRate = 40
		s.BirdSpawnRate = 180
		cfg.World.BirdMinLevel = 1
	}
}

// Validate reports every value that would break the game loop.
func (c DinoConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height >= groundTileHeight, "world.height must be at least %d, got %v", groundTileHeight, c.World.Height)
	check(c.World.TargetFPS > 0, "world.target_fps must be positive, got %d", c.World.TargetFPS)

	s := c.Settings
	rates := []struct {
		name  string
		value int
	}{
		{"bird_spawn_rate", s.BirdSpawnRate},
		{"bird_wings_rate", s.BirdWingsRate},
		{"cacti_spawn_rate", s.CactiSpawnRate},
		{"cloud_spawn_rate", s.CloudSpawnRate},
		{"dino_legs_rate", s.DinoLegsRate},
		{"score_blink_rate", s.ScoreBlinkRate},
		{"score_increase_rate", s.ScoreIncreaseRate},
	}
	for _, r := range rates {
		check(r.value > 0, "settings.%s must be positive, got %d", r.name, r.value)
	}
	check(s.BgSpeed > 0, "settings.bg_speed must be positive, got %v", s.BgSpeed)
	check(s.DinoGravity > 0, "settings.dino_gravity must be positive, got %v", s.DinoGravity)
	check(s.DinoLift > 0, "settings.dino_lift must be positive, got %v", s.DinoLift)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	check(c.Controls.DuckHold >= 0, "controls.duck_hold must not be negative, got %v", c.Controls.DuckHold)

	return errors.Join(errs...)
}
