// Package window is the desktop frontend. It hosts the game in an ebiten
// window at the device's pixel density and feeds it keyboard and touch
// input.
package window

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/runner"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// Options configure the window.
type Options struct {
	Config config.DinoConfig
	Audio  dino.Audio
	Logger *log.Logger

	// Seed drives spawning. Zero picks a time based seed.
	Seed int64

	// Scale is the number of device pixels per logical pixel. Zero asks
	// the monitor.
	Scale float64

	Title string
}

// Window implements ebiten.Game around one dino.Game.
type Window struct {
	game     *dino.Game
	renderer *Renderer
	queue    *runner.TickQueue
	logger   *log.Logger
	started  bool
}

// New creates the window's game. Assets load on the first Update.
func New(opts Options) *Window {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dino-window",
		})
	}

	world := opts.Config.World
	queue := &runner.TickQueue{}
	renderer := NewRenderer(world.Width, world.Height, opts.Scale, sprite.Default)
	game := dino.New(opts.Config, dino.Deps{
		Loader:    assets.NewLoader(sprite.Default),
		Renderer:  renderer,
		Audio:     opts.Audio,
		Scheduler: queue,
		Rand:      rand.New(rand.NewSource(opts.Seed)),
	})

	return &Window{
		game:     game,
		renderer: renderer,
		queue:    queue,
		logger:   opts.Logger,
	}
}

// Game returns the hosted game.
func (w *Window) Game() *dino.Game {
	return w.game
}

// Update starts the game on first use, applies input and fires the frame
// requests queued by the runner.
func (w *Window) Update() error {
	if !w.started {
		w.started = true
		if err := w.game.Start(false); err != nil {
			return err
		}
		w.logger.Debug("assets loaded")
	}

	for _, c := range pollCommands() {
		switch c {
		case commandPause:
			w.game.TogglePause()
		case commandStep:
			w.game.StepFrame()
		case commandFPS:
			w.game.ToggleFPS()
		case commandQuit:
			w.game.Stop()
			return ebiten.Termination
		}
	}
	for _, in := range pollInputs() {
		w.game.OnInput(in)
	}

	w.queue.Fire()
	return nil
}

// Draw shows the last frame the game painted.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(core.Background)
	screen.DrawImage(w.renderer.Image(), nil)
}

// Layout keeps the offscreen size, ebiten scales it into the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.renderer.Size()
}

// monitorScale returns the device scale of m. Monitor can be nil before the
// game loop starts, in which case the scale is 1.
func monitorScale(m *ebiten.MonitorType) float64 {
	if m == nil {
		return 1
	}
	if s := m.DeviceScaleFactor(); s > 0 {
		return s
	}
	return 1
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Scale == 0 {
		opts.Scale = monitorScale(ebiten.Monitor())
	}
	if opts.Title == "" {
		opts.Title = "dino"
	}

	world := opts.Config.World
	ebiten.SetWindowSize(int(world.Width), int(world.Height))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if world.TargetFPS > 0 {
		ebiten.SetTPS(world.TargetFPS)
	}

	w := New(opts)
	defer w.game.Stop()
	return ebiten.RunGame(w)
}
