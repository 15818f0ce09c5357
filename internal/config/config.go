package config

import "time"

// DinoConfig contains all configuration for the runner.
type DinoConfig struct {
	World    World    `yaml:"world"`
	Settings Settings `yaml:"settings"`
	Assets   Assets   `yaml:"assets"`
	Audio    Audio    `yaml:"audio"`
	Controls Controls `yaml:"controls"`
}

// World defines the logical play field.
type World struct {
	Width        float64 `yaml:"width"`          // logical pixels
	Height       float64 `yaml:"height"`         // logical pixels
	PlayerX      float64 `yaml:"player_x"`       // player's fixed left edge
	BirdMinLevel int     `yaml:"bird_min_level"` // birds appear above this level
	TargetFPS    int     `yaml:"target_fps"`
}

// Settings are the tuning knobs of a run. A fresh copy is taken on every
// reset and mutated by LevelUp as the run progresses.
//
// Units: rates are frames per action, speeds are pixels per frame.
type Settings struct {
	BgSpeed           float64 `yaml:"bg_speed"`
	BirdSpeed         float64 `yaml:"bird_speed"`
	BirdSpawnRate     int     `yaml:"bird_spawn_rate"`
	BirdWingsRate     int     `yaml:"bird_wings_rate"`
	CactiSpawnRate    int     `yaml:"cacti_spawn_rate"`
	CloudSpawnRate    int     `yaml:"cloud_spawn_rate"`
	DinoGravity       float64 `yaml:"dino_gravity"`
	DinoGroundOffset  float64 `yaml:"dino_ground_offset"` // px
	DinoLegsRate      int     `yaml:"dino_legs_rate"`
	DinoLift          float64 `yaml:"dino_lift"`
	ScoreBlinkRate    int     `yaml:"score_blink_rate"`
	ScoreIncreaseRate int     `yaml:"score_increase_rate"`
}

// Assets names the atlas image and font. An empty atlas or a "builtin:"
// reference selects the assets compiled into the binary.
type Assets struct {
	Atlas string `yaml:"atlas"`
	Font  string `yaml:"font"`
}

// Audio controls sound effects.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Controls tunes input handling.
type Controls struct {
	// DuckHold is how long a terminal duck lasts without a repeat of the
	// key, since terminals do not report key release.
	DuckHold time.Duration `yaml:"duck_hold"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a flag value to a preset. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), true
	case "":
		return "", true
	default:
		return "", false
	}
}
