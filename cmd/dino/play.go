package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The world is drawn with half-block
characters and scaled down to fit the window.

Controls:
  Space/Up/W  - Jump (also starts a run)
  Down/S      - Duck
  P           - Pause
  N           - Step one frame while paused
  F           - Toggle the frame rate readout
  Ctrl+S      - Save the picture to ~/.dino/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower world, birds from level 6
  normal - The configured values
  hard   - Faster world, birds from level 2

Examples:
  dino play
  dino play --difficulty easy
  dino play --config ./my-dino.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	sound, closeAudio := newAudio(cfg)
	err = tui.Run(tui.Options{
		Config: cfg,
		Audio:  sound,
		Seed:   flagSeed,
		Width:  width,
		Height: height,

		ScreenshotDir: screenshotDir(),
	})
	closeAudio()
	if err != nil {
		logger.Fatal("game failed", "error", err)
	}
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino", "screenshots")
}
