package actor

import "github.com/vovakirdan/tui-dino/internal/sprite"

// WingSpriteYShift is added to or removed from y when the wings flip, so the
// body stays put while the sprite height changes.
const WingSpriteYShift = 6

// MaxBirdHeight is the taller of the two wing sprites, in logical pixels.
func MaxBirdHeight(atlas sprite.Atlas) float64 {
	return max(atlas.MustLookup(sprite.BirdUp).LogicalH(), atlas.MustLookup(sprite.BirdDown).LogicalH())
}

// Wing is the current wing position.
type Wing int

const (
	WingUp Wing = iota
	WingDown
)

// Bird is the flying obstacle's animation state.
type Bird struct {
	Wing       Wing
	WingFrames int
	WingsRate  int
}

// NewBird creates a bird with its wings up.
func NewBird(sheet *Sheet, speed float64, wingsRate int) *Actor {
	a := newActor(KindBird, sheet, true)
	a.Bird = &Bird{WingsRate: wingsRate}
	a.Speed = speed
	a.SetSprite(sprite.BirdUp)
	return a
}

func (a *Actor) updateBird() {
	b := a.Bird
	a.X -= a.Speed

	oldHeight := a.Height
	if b.WingFrames >= b.WingsRate {
		if b.Wing == WingUp {
			b.Wing = WingDown
		} else {
			b.Wing = WingUp
		}
		b.WingFrames = 0
	}

	if b.Wing == WingUp {
		a.SetSprite(sprite.BirdUp)
	} else {
		a.SetSprite(sprite.BirdDown)
	}
	b.WingFrames++

	if a.Height != oldHeight {
		if b.Wing == WingUp {
			a.y -= WingSpriteYShift
		} else {
			a.y += WingSpriteYShift
		}
	}
}
