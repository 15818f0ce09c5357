package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dino/internal/audio/sfx"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

const (
	fontSize       = 12
	scoreDigits    = 5
	maxBlinks      = 7
	gameOverText   = "G A M E  O V E R"
	gameOverPad    = 15
	pointsPerLevel = 100
)

func (g *Game) text(s string, x, y float64, align Align, baseline Baseline) {
	g.deps.Renderer.DrawText(s, x, y, TextOptions{
		Font:     FontName,
		Size:     fontSize,
		Align:    align,
		Baseline: baseline,
		Color:    core.Ink,
	})
}

// updateScore adds a point every ScoreIncreaseRate frames and levels up
// every hundred points.
func (g *Game) updateScore() {
	if !g.due(g.settings.ScoreIncreaseRate) {
		return
	}

	oldLevel := g.level
	g.score.Value++
	g.level = g.score.Value / pointsPerLevel

	if g.level != oldLevel {
		g.deps.Audio.PlaySound(sfx.LevelUp)
		g.increaseDifficulty()
		g.score.Blinking = true
	}
}

// increaseDifficulty ramps the settings and pushes the new speeds onto every
// live actor.
func (g *Game) increaseDifficulty() {
	g.settings.LevelUp(g.level)
	s := g.settings

	for _, b := range g.birds {
		b.Speed = s.BirdSpeed
	}
	for _, c := range g.cacti {
		c.Speed = s.BgSpeed
	}
	for _, c := range g.clouds {
		c.Speed = s.BgSpeed
	}
	g.player.Player.LegsRate = s.DinoLegsRate
}

// drawScore paints the zero-padded score at the top right. While blinking
// after a level-up it alternates between the level's round score and
// nothing.
func (g *Game) drawScore() {
	value := g.score.Value
	show := true

	if g.running && g.score.Blinking {
		sc := &g.score
		sc.BlinkFrames++
		if sc.BlinkFrames%g.settings.ScoreBlinkRate == 0 {
			sc.Blinks++
		}

		if sc.Blinks > maxBlinks {
			sc.BlinkFrames = 0
			sc.Blinks = 0
			sc.Blinking = false
		} else if sc.Blinks%2 == 0 {
			value = value / pointsPerLevel * pointsPerLevel
		} else {
			show = false
		}
	}

	if !show {
		return
	}

	// Cover the old value, endGame paints without a fresh background.
	w := g.cfg.World.Width
	g.deps.Renderer.FillRect(w-fontSize*scoreDigits, 0, fontSize*scoreDigits, fontSize, core.Background)
	g.text(fmt.Sprintf("%0*d", scoreDigits, value), w, 0, AlignRight, BaselineTop)
}

func (g *Game) drawFPS() {
	g.text(fmt.Sprintf("fps: %d", int(math.Round(g.runner.FrameRate()))), 0, 0, AlignLeft, BaselineTop)
}

// endGame paints the game over banner and stops the loop.
func (g *Game) endGame() {
	icon := sprite.Default.MustLookup(sprite.ReplayIcon)
	w, h := g.cfg.World.Width, g.cfg.World.Height

	g.text(gameOverText, w/2, h/2-gameOverPad, AlignCenter, BaselineBottom)
	g.deps.Renderer.DrawSprite(sprite.ReplayIcon, w/2-float64(icon.W)/4, h/2-float64(icon.H)/4+gameOverPad)

	g.running = false
	g.drawScore()
	g.runner.Stop()
}
