// dino is a side-scrolling runner for the terminal, the desktop and SSH.
//
// Usage:
//
//	dino play        - Play in the terminal
//	dino window      - Play in a desktop window
//	dino serve       - Start SSH server for remote play
//	dino sprites     - List the sprite atlas
//	dino config      - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: from config, 60)
//	--seed <value>  - Set RNG seed for reproducible spawning
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/audio"
	"github.com/vovakirdan/tui-dino/internal/audio/sfx"
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64

	// Shared by play, window and serve.
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "dino",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino - an endless runner for your terminal",
	Long: `Dino is an endless runner: jump over cacti, duck under birds and
keep going while the world speeds up every hundred points.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sprites  - List the sprite atlas or export it as PNG
  config   - Print the default configuration

Examples:
  dino play
  dino play --difficulty hard
  dino window --mute
  dino serve --ssh :2222
  dino config > ~/.dino/configs/dino.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	for _, c := range []*cobra.Command{playCmd, windowCmd, serveCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	}
	for _, c := range []*cobra.Command{playCmd, windowCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, applies the preset and the global
// flags, and validates the result.
func loadConfig() (config.DinoConfig, error) {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	config.ApplyDinoPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.World.TargetFPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newAudio returns a loading sound player, or silence when muted. The
// returned func releases the device.
func newAudio(cfg config.DinoConfig) (dino.Audio, func()) {
	if flagMute || !cfg.Audio.Enabled {
		return sfx.Silent{}, func() {}
	}
	p := audio.NewPlayer(cfg.Audio.Volume, logger)
	p.LoadAsync()
	return p, p.Close
}
