package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window with the full-resolution sprite atlas.

Controls:
  Space/Up    - Jump (also starts a run)
  Down        - Duck while held
  Touch       - One finger jumps, two fingers duck
  P / N / F   - Pause, step one frame, frame rate readout
  Esc         - Quit

Examples:
  dino window
  dino window --scale 2 --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Device pixels per game pixel (0 = monitor scale)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	sound, closeAudio := newAudio(cfg)
	err = window.Run(window.Options{
		Config: cfg,
		Audio:  sound,
		Logger: logger,
		Seed:   flagSeed,
		Scale:  flagScale,
	})
	closeAudio()
	if err != nil {
		logger.Fatal("window failed", "error", err)
	}
}
