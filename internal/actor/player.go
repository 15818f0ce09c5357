package actor

import "github.com/vovakirdan/tui-dino/internal/sprite"

// Leg is the leg currently forward in the running animation.
type Leg int

const (
	LegLeft Leg = iota
	LegRight
)

// Player is the dinosaur's state. RelativeY is the offset above BaseY and
// is never positive; zero means grounded.
type Player struct {
	BaseY     float64
	RelativeY float64
	Velocity  float64
	Falling   bool // velocity is set
	Ducking   bool
	Leg       Leg
	LegFrames int

	LegsRate int
	Lift     float64
	Gravity  float64
}

// NewPlayer creates a grounded player showing its left leg.
func NewPlayer(sheet *Sheet, legsRate int, lift, gravity float64) *Actor {
	a := newActor(KindPlayer, sheet, true)
	a.Player = &Player{
		LegsRate: legsRate,
		Lift:     lift,
		Gravity:  gravity,
	}
	a.SetSprite(sprite.DinoLeftLeg)
	return a
}

// Reset returns the player to a grounded, upright, left-leg state.
// BaseY and the tuning constants are kept.
func (a *Actor) Reset() {
	p := a.Player
	p.Ducking = false
	p.LegFrames = 0
	p.Leg = LegLeft
	p.Velocity = 0
	p.Falling = false
	p.RelativeY = 0
	a.SetSprite(sprite.DinoLeftLeg)
}

// Grounded reports whether the player stands on its baseline.
func (a *Actor) Grounded() bool {
	return a.Player.RelativeY == 0
}

// Jump starts a jump if the player is grounded and reports whether it did.
func (a *Actor) Jump() bool {
	p := a.Player
	if p.RelativeY != 0 {
		return false
	}
	p.Velocity = -p.Lift
	p.Falling = true
	return true
}

// Duck sets or clears the ducking overlay.
func (a *Actor) Duck(on bool) {
	a.Player.Ducking = on
}

func (a *Actor) updatePlayer() {
	p := a.Player
	if p.Falling {
		p.Velocity += p.Gravity
		p.RelativeY += p.Velocity
	}

	if p.RelativeY > 0 {
		p.Velocity = 0
		p.Falling = false
		p.RelativeY = 0
	}

	if p.RelativeY < 0 {
		a.SetSprite(sprite.Dino)
		return
	}

	if p.LegFrames >= p.LegsRate {
		if p.Leg == LegLeft {
			p.Leg = LegRight
		} else {
			p.Leg = LegLeft
		}
		p.LegFrames = 0
	}

	switch {
	case p.Ducking && p.Leg == LegLeft:
		a.SetSprite(sprite.DinoDuckLeftLeg)
	case p.Ducking:
		a.SetSprite(sprite.DinoDuckRightLeg)
	case p.Leg == LegLeft:
		a.SetSprite(sprite.DinoLeftLeg)
	default:
		a.SetSprite(sprite.DinoRightLeg)
	}
	p.LegFrames++
}
