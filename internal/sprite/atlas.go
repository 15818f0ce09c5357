// Package sprite holds the fixed sprite atlas table and derives per-sprite
// opacity masks from decoded atlas pixels.
package sprite

import (
	"fmt"
	"sort"
)

// Sprite names present in the atlas.
const (
	BirdUp           = "birdUp"
	BirdDown         = "birdDown"
	Cactus           = "cactus"
	CactusDouble     = "cactusDouble"
	CactusDoubleB    = "cactusDoubleB"
	CactusTriple     = "cactusTriple"
	Cloud            = "cloud"
	Dino             = "dino"
	DinoDuckLeftLeg  = "dinoDuckLeftLeg"
	DinoDuckRightLeg = "dinoDuckRightLeg"
	DinoLeftLeg      = "dinoLeftLeg"
	DinoRightLeg     = "dinoRightLeg"
	Ground           = "ground"
	ReplayIcon       = "replayIcon"
)

// PixelRatio is the atlas pixel density relative to logical pixels.
// Every logical dimension is the atlas dimension divided by this.
const PixelRatio = 2

// Rect is a sprite's rectangle in atlas pixel space.
type Rect struct {
	X, Y int
	W, H int
}

// LogicalW returns the sprite's on-screen width.
func (r Rect) LogicalW() float64 {
	return float64(r.W) / PixelRatio
}

// LogicalH returns the sprite's on-screen height.
func (r Rect) LogicalH() float64 {
	return float64(r.H) / PixelRatio
}

// Atlas maps sprite names to their rectangles. It is never mutated after
// construction.
type Atlas map[string]Rect

// Default is the hand-authored atlas table.
var Default = Atlas{
	BirdUp:           {X: 708, Y: 31, W: 84, H: 52},
	BirdDown:         {X: 708, Y: 85, W: 84, H: 60},
	Cactus:           {X: 70, Y: 31, W: 46, H: 92},
	CactusDouble:     {X: 118, Y: 31, W: 64, H: 66},
	CactusDoubleB:    {X: 184, Y: 31, W: 80, H: 92},
	CactusTriple:     {X: 266, Y: 31, W: 82, H: 66},
	Cloud:            {X: 794, Y: 31, W: 92, H: 28},
	Dino:             {X: 350, Y: 31, W: 80, H: 86},
	DinoDuckLeftLeg:  {X: 596, Y: 31, W: 110, H: 52},
	DinoDuckRightLeg: {X: 596, Y: 85, W: 110, H: 52},
	DinoLeftLeg:      {X: 432, Y: 31, W: 80, H: 86},
	DinoRightLeg:     {X: 514, Y: 31, W: 80, H: 86},
	Ground:           {X: 0, Y: 2, W: 2400, H: 28},
	ReplayIcon:       {X: 0, Y: 31, W: 68, H: 60},
}

// Lookup returns the rectangle for name.
func (a Atlas) Lookup(name string) (Rect, bool) {
	r, ok := a[name]
	return r, ok
}

// MustLookup returns the rectangle for name and panics if it is missing.
// Sprite names are program constants, so a miss is a programming error.
func (a Atlas) MustLookup(name string) Rect {
	r, ok := a[name]
	if !ok {
		panic(fmt.Sprintf("sprite: unknown sprite %q", name))
	}
	return r
}

// Names returns all sprite names, sorted.
func (a Atlas) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the smallest atlas image size that contains every sprite.
func (a Atlas) Bounds() (w, h int) {
	for _, r := range a {
		if r.X+r.W > w {
			w = r.X + r.W
		}
		if r.Y+r.H > h {
			h = r.Y + r.H
		}
	}
	return w, h
}
