// Package dino implements a Chrome Dino-style endless runner game.
// The player must jump over cacti and duck under birds while the world
// scrolls faster with every level.
package dino

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-dino/internal/actor"
	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/audio/sfx"
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/runner"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// FontName is the family used for every piece of text.
const FontName = "PressStart2P"

// Score is the run's score and its level-up blink animation.
type Score struct {
	Value       int
	Blinking    bool
	BlinkFrames int
	Blinks      int
}

// Game implements the runner's world: actors, score, level and difficulty.
type Game struct {
	cfg    config.DinoConfig
	deps   Deps
	runner *runner.Runner
	sheet  *actor.Sheet

	settings config.Settings
	player   *actor.Actor
	birds    []*actor.Actor
	cacti    []*actor.Actor
	clouds   []*actor.Actor

	running  bool
	gameOver bool
	level    int
	score    Score
	groundX  float64
	groundY  float64
	showFPS  bool
}

// New creates a game. Nothing is loaded until Start.
func New(cfg config.DinoConfig, deps Deps) *Game {
	if deps.Audio == nil {
		deps.Audio = sfx.Silent{}
	}
	if deps.Clock == nil {
		deps.Clock = runner.NewSystemClock()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = &runner.TickQueue{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		cfg:      cfg,
		deps:     deps,
		settings: cfg.Settings,
	}
	g.runner = runner.New(g, deps.Clock, deps.Scheduler, runner.Config{
		TargetRate: cfg.World.TargetFPS,
		Tolerance:  runner.DefaultConfig().Tolerance,
	})
	return g
}

// Start loads assets on first use and starts the frame loop.
func (g *Game) Start(paused bool) error {
	if err := g.runner.Start(paused); err != nil {
		return fmt.Errorf("dino: cannot start: %w", err)
	}
	return nil
}

// Stop halts the frame loop.
func (g *Game) Stop() {
	g.runner.Stop()
}

// Preload loads the atlas and font concurrently, binds them to the renderer
// and places the player on the ground.
func (g *Game) Preload() error {
	var (
		img  image.Image
		font *assets.Font
		eg   errgroup.Group
	)
	eg.Go(func() error {
		var err error
		img, err = g.deps.Loader.LoadImage(g.cfg.Assets.Atlas)
		return err
	})
	eg.Go(func() error {
		var err error
		font, err = g.deps.Loader.LoadFont(g.cfg.Assets.Font, FontName)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	px, err := g.deps.Loader.DecodePixels(img)
	if err != nil {
		return err
	}
	sheet := actor.NewSheet(sprite.Default, px)
	if err := g.deps.Renderer.Bind(Assets{Atlas: img, Sheet: sheet, Font: font}); err != nil {
		return fmt.Errorf("dino: cannot bind assets: %w", err)
	}

	g.sheet = sheet
	s := g.settings
	g.player = actor.NewPlayer(g.sheet, s.DinoLegsRate, s.DinoLift, s.DinoGravity)
	g.player.X = g.cfg.World.PlayerX
	g.player.SetY(g.cfg.World.Height - s.DinoGroundOffset)
	g.groundY = g.cfg.World.Height - sprite.Default.MustLookup(sprite.Ground).LogicalH()
	return nil
}

// OnFrame advances and paints one frame.
func (g *Game) OnFrame() {
	g.drawBackground()
	if g.showFPS {
		g.drawFPS()
	}
	g.drawGround()
	g.drawClouds()
	g.drawPlayer()
	g.drawScore()

	if !g.running {
		return
	}

	g.drawCacti()
	if g.level > g.cfg.World.BirdMinLevel {
		g.drawBirds()
	}

	if g.player.Hits(first(g.cacti), first(g.birds)) {
		g.deps.Audio.PlaySound(sfx.GameOver)
		g.gameOver = true
	}

	if g.gameOver {
		g.endGame()
	} else {
		g.updateScore()
	}
}

// first returns the oldest actor, which is always the nearest to the player.
func first(actors []*actor.Actor) *actor.Actor {
	if len(actors) == 0 {
		return nil
	}
	return actors[0]
}

// Running reports whether a run is in progress.
func (g *Game) Running() bool { return g.running }

// GameOver reports whether the last run ended in a collision.
func (g *Game) GameOver() bool { return g.gameOver }

// Score returns the current score value.
func (g *Game) Score() int { return g.score.Value }

// ScoreState returns the score with its blink state.
func (g *Game) ScoreState() Score { return g.score }

// Level returns floor(score/100).
func (g *Game) Level() int { return g.level }

// Settings returns the run's current tuning knobs.
func (g *Game) Settings() config.Settings { return g.settings }

// World returns the configured play field.
func (g *Game) World() config.World { return g.cfg.World }

// Player returns the player actor, or nil before preload.
func (g *Game) Player() *actor.Actor { return g.player }

// Birds returns the active birds in spawn order.
func (g *Game) Birds() []*actor.Actor { return g.birds }

// Cacti returns the active cacti in spawn order.
func (g *Game) Cacti() []*actor.Actor { return g.cacti }

// Clouds returns the active clouds in spawn order.
func (g *Game) Clouds() []*actor.Actor { return g.clouds }

// GroundX returns the ground scroll offset.
func (g *Game) GroundX() float64 { return g.groundX }

// Runner returns the frame scheduler.
func (g *Game) Runner() *runner.Runner { return g.runner }
