package dino

import (
	"github.com/vovakirdan/tui-dino/internal/audio/sfx"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// OnInput applies a player input. Jumping while no run is active starts a
// fresh run. Inputs before the assets are loaded are ignored.
func (g *Game) OnInput(in core.Input) {
	if g.player == nil {
		return
	}

	switch in {
	case core.InputJump:
		if g.running {
			if g.player.Jump() {
				g.deps.Audio.PlaySound(sfx.Jump)
			}
			return
		}
		g.resetGame()
		g.player.Jump()
		g.deps.Audio.PlaySound(sfx.Jump)

	case core.InputDuck:
		if g.running {
			g.player.Duck(true)
		}

	case core.InputStopDuck:
		if g.running {
			g.player.Duck(false)
		}
	}
}

// OnInputName applies the input with the given event name. Unknown names
// are ignored.
func (g *Game) OnInputName(name string) {
	g.OnInput(core.ParseInput(name))
}

// resetGame starts a fresh run. Clouds and the ground keep drifting.
func (g *Game) resetGame() {
	g.player.Reset()
	g.settings = g.cfg.Settings
	g.player.Player.LegsRate = g.settings.DinoLegsRate
	g.birds = nil
	g.cacti = nil
	g.gameOver = false
	g.running = true
	g.level = 0
	g.score = Score{}

	// Preload already succeeded, so Start cannot fail here.
	_ = g.runner.Start(false)
}

// TogglePause pauses or resumes the frame loop.
func (g *Game) TogglePause() {
	if g.runner.Paused() {
		g.runner.Unpause()
	} else {
		g.runner.Pause()
	}
}

// StepFrame runs one frame while paused.
func (g *Game) StepFrame() {
	g.runner.Step(1)
}

// ToggleFPS shows or hides the frame rate readout.
func (g *Game) ToggleFPS() {
	g.showFPS = !g.showFPS
}
