package dino

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tui-dino/internal/actor"
	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/runner"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// Loader fetches and decodes the atlas and font.
type Loader interface {
	LoadImage(ref string) (image.Image, error)
	LoadFont(ref, name string) (*assets.Font, error)
	DecodePixels(img image.Image) (*sprite.PixelBuffer, error)
}

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of drawn text.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineBottom
)

// TextOptions style a DrawText call.
type TextOptions struct {
	Font     string
	Size     float64
	Align    Align
	Baseline Baseline
	Color    color.Color
}

// Assets are the loaded resources a renderer binds to. Sheet is the game's
// own sheet, so a renderer that draws from masks shares the game's cache.
type Assets struct {
	Atlas image.Image
	Sheet *actor.Sheet
	Font  *assets.Font
}

// Renderer paints frames in logical pixels.
type Renderer interface {
	// Bind hands over the loaded assets before the first frame.
	Bind(a Assets) error
	FillBackground(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	// DrawSprite paints the named atlas rect at half scale with its top-left
	// corner at (x, y).
	DrawSprite(name string, x, y float64)
	DrawText(text string, x, y float64, opts TextOptions)
}

// Audio plays named sound effects without blocking.
type Audio interface {
	PlaySound(name string)
}

// Rand is the source of spawn decisions.
type Rand interface {
	Intn(n int) int
}

// Deps are the collaborators a Game is built from. Audio, Clock, Scheduler
// and Rand have working defaults when left nil; Loader and Renderer are
// required.
type Deps struct {
	Loader    Loader
	Renderer  Renderer
	Audio     Audio
	Clock     runner.Clock
	Scheduler runner.Scheduler
	Rand      Rand
}
