package dino

import (
	"github.com/vovakirdan/tui-dino/internal/actor"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// Spawn geometry.
const (
	cloudMinY     = 20
	cloudMaxY     = 80
	cactusLift    = 2 // px above the bottom edge
	birdClearance = 5 // px above a ducking player
	cloudModMin   = 6 // tenths
	cloudModMax   = 14
)

// due reports whether the current frame is a multiple of rate. A rate that
// has been ramped down to zero never fires.
func (g *Game) due(rate int) bool {
	return rate > 0 && g.runner.FrameCount()%rate == 0
}

// randInt returns an integer in [lo, hi].
func (g *Game) randInt(lo, hi int) int {
	return lo + g.deps.Rand.Intn(hi-lo+1)
}

func (g *Game) coinFlip() bool {
	return g.deps.Rand.Intn(2) == 1
}

func (g *Game) drawBackground() {
	g.deps.Renderer.FillBackground(core.Background)
}

// drawGround paints the ground strip and scrolls it. A second tile is added
// once the first no longer covers the field, and the offset wraps once the
// first tile has fully left.
func (g *Game) drawGround() {
	bg := g.settings.BgSpeed
	groundW := sprite.Default.MustLookup(sprite.Ground).LogicalW()
	width := g.cfg.World.Width

	g.deps.Renderer.DrawSprite(sprite.Ground, g.groundX, g.groundY)
	g.groundX -= bg

	if g.groundX <= -groundW+width {
		g.deps.Renderer.DrawSprite(sprite.Ground, g.groundX+groundW, g.groundY)
		if g.groundX <= -groundW {
			g.groundX = -bg
		}
	}
}

func (g *Game) drawClouds() {
	g.clouds = progress(g.clouds)
	if g.due(g.settings.CloudSpawnRate) {
		mod := float64(g.randInt(cloudModMin, cloudModMax)) / 10
		c := actor.NewCloud(g.sheet, g.settings.BgSpeed, mod)
		c.X = g.cfg.World.Width
		c.SetY(float64(g.randInt(cloudMinY, cloudMaxY)))
		g.clouds = append(g.clouds, c)
	}
	g.paint(g.clouds)
}

func (g *Game) drawPlayer() {
	g.player.Update()
	g.deps.Renderer.DrawSprite(g.player.Sprite(), g.player.X, g.player.Y())
}

// drawCacti never spawns while a bird is on screen.
func (g *Game) drawCacti() {
	g.cacti = progress(g.cacti)
	if g.due(g.settings.CactiSpawnRate) && len(g.birds) == 0 && g.coinFlip() {
		variant := actor.CactusVariants[g.deps.Rand.Intn(len(actor.CactusVariants))]
		c := actor.NewCactus(g.sheet, variant, g.settings.BgSpeed)
		c.X = g.cfg.World.Width
		c.SetY(g.cfg.World.Height - c.Height - cactusLift)
		g.cacti = append(g.cacti, c)
	}
	g.paint(g.cacti)
}

// drawBirds spawns birds high enough to clear a ducking player by a few
// pixels in either wing position.
func (g *Game) drawBirds() {
	g.birds = progress(g.birds)
	if g.due(g.settings.BirdSpawnRate) && g.coinFlip() {
		b := actor.NewBird(g.sheet, g.settings.BirdSpeed, g.settings.BirdWingsRate)
		b.X = g.cfg.World.Width
		duckH := sprite.Default.MustLookup(sprite.DinoDuckLeftLeg).LogicalH()
		b.SetY(g.cfg.World.Height -
			actor.MaxBirdHeight(sprite.Default) -
			actor.WingSpriteYShift -
			birdClearance -
			duckH -
			g.settings.DinoGroundOffset)
		g.birds = append(g.birds, b)
	}
	g.paint(g.birds)
}

// progress advances every actor and drops the ones that have left the
// field. The scan runs backwards so removal never skips an element.
func progress(actors []*actor.Actor) []*actor.Actor {
	for i := len(actors) - 1; i >= 0; i-- {
		a := actors[i]
		a.Update()
		if a.OffScreen() {
			actors = append(actors[:i], actors[i+1:]...)
		}
	}
	return actors
}

func (g *Game) paint(actors []*actor.Actor) {
	for _, a := range actors {
		g.deps.Renderer.DrawSprite(a.Sprite(), a.X, a.Y())
	}
}
