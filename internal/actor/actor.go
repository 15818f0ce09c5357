// Package actor implements the moving entities of the runner: the player,
// flying and ground obstacles, and decorative clouds. Every actor shares one
// record with a kind-specific payload, and any two actors can be hit-tested
// against each other with pixel accuracy.
package actor

import (
	"fmt"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// Kind identifies which payload an Actor carries.
type Kind int

const (
	KindPlayer Kind = iota
	KindBird
	KindCactus
	KindCloud
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBird:
		return "bird"
	case KindCactus:
		return "cactus"
	case KindCloud:
		return "cloud"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sheet bundles the atlas table with the decoded atlas pixels and the mask
// cache built from them. One Sheet is shared by every actor of a game.
type Sheet struct {
	Atlas  sprite.Atlas
	Pixels *sprite.PixelBuffer
	Masks  *sprite.MaskCache
}

// NewSheet creates a sheet with an empty mask cache. px may be nil, in which
// case no actor gets a mask and hit tests fall back to bounding boxes.
func NewSheet(atlas sprite.Atlas, px *sprite.PixelBuffer) *Sheet {
	return &Sheet{
		Atlas:  atlas,
		Pixels: px,
		Masks:  sprite.NewMaskCache(atlas),
	}
}

// Actor is a positioned sprite. Width and Height are always half of the
// current sprite's atlas rectangle.
type Actor struct {
	Kind   Kind
	X      float64
	Width  float64
	Height float64
	Speed  float64

	y      float64
	sprite string
	sheet  *Sheet
	masked bool
	mask   sprite.Mask

	Player *Player
	Bird   *Bird
	Cactus *Cactus
	Cloud  *Cloud
}

func newActor(kind Kind, sheet *Sheet, masked bool) *Actor {
	return &Actor{
		Kind:   kind,
		sheet:  sheet,
		masked: masked && sheet.Pixels != nil,
	}
}

// Sprite returns the current sprite name.
func (a *Actor) Sprite() string {
	return a.sprite
}

// SetSprite switches the sprite, resizes the actor and refreshes its mask.
func (a *Actor) SetSprite(name string) {
	r := a.sheet.Atlas.MustLookup(name)
	a.sprite = name
	a.Width = r.LogicalW()
	a.Height = r.LogicalH()
	if a.masked {
		a.mask = a.sheet.Masks.Get(a.sheet.Pixels, name)
	}
}

// Mask returns the actor's opacity mask, or nil when it has none.
func (a *Actor) Mask() sprite.Mask {
	return a.mask
}

// Y returns the top edge. For the player it is derived from the ground
// baseline and the jump offset.
func (a *Actor) Y() float64 {
	if a.Player != nil {
		return a.Player.BaseY - a.Height + a.Player.RelativeY
	}
	return a.y
}

// SetY sets the top edge. For the player it sets the ground baseline.
func (a *Actor) SetY(v float64) {
	if a.Player != nil {
		a.Player.BaseY = v
		return
	}
	a.y = v
}

// Right returns the x coordinate of the right edge.
func (a *Actor) Right() float64 {
	return a.X + a.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (a *Actor) Bottom() float64 {
	return a.Y() + a.Height
}

// Box returns the actor's bounding box in world space.
func (a *Actor) Box() core.Box {
	return core.Box{X: a.X, Y: a.Y(), W: a.Width, H: a.Height}
}

// OffScreen reports whether the actor has scrolled fully past the left edge.
func (a *Actor) OffScreen() bool {
	return a.Right() <= 0
}

// Update advances the actor by one frame.
func (a *Actor) Update() {
	switch a.Kind {
	case KindPlayer:
		a.updatePlayer()
	case KindBird:
		a.updateBird()
	case KindCactus:
		a.X -= a.Speed
	case KindCloud:
		a.X -= a.Speed * a.Cloud.SpeedMod
	}
}

// Hits reports whether a collides with any of the candidates. Nil candidates
// never collide. Overlapping boxes count as a hit unless both actors carry
// masks, in which case some overlapping pixel must be opaque in both.
func (a *Actor) Hits(candidates ...*Actor) bool {
	for _, other := range candidates {
		if other != nil && a.hits(other) {
			return true
		}
	}
	return false
}

func (a *Actor) hits(other *Actor) bool {
	if !a.Box().Intersects(other.Box()) {
		return false
	}

	if a.mask == nil || other.mask == nil {
		return true
	}

	ay, oy := a.Y(), other.Y()
	startY := core.Round(max(ay, oy))
	endY := core.Round(min(a.Bottom(), other.Bottom()))
	startX := core.Round(max(a.X, other.X))
	endX := core.Round(min(a.Right(), other.Right()))
	aX, aY := core.Round(a.X), core.Round(ay)
	oX, oY := core.Round(other.X), core.Round(oy)

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			if !a.mask.Opaque(x-aX, y-aY) {
				continue
			}
			if !other.mask.Opaque(x-oX, y-oY) {
				continue
			}
			return true
		}
	}
	return false
}
