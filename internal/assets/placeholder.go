package assets

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// ink is the opaque sprite color; everything else stays transparent.
var ink = color.NRGBA{R: 0x53, G: 0x53, B: 0x53, A: 0xff}

// shapes describes every sprite as filled rectangles in logical pixels,
// relative to the sprite's top-left corner.
var shapes = map[string][]image.Rectangle{
	sprite.Dino:             dinoShape(legBoth),
	sprite.DinoLeftLeg:      dinoShape(legLeftDown),
	sprite.DinoRightLeg:     dinoShape(legRightDown),
	sprite.DinoDuckLeftLeg:  duckShape(legLeftDown),
	sprite.DinoDuckRightLeg: duckShape(legRightDown),
	sprite.BirdUp: {
		rect(0, 10, 8, 4),  // beak
		rect(8, 12, 30, 6), // body
		rect(36, 10, 6, 4), // tail
		rect(16, 0, 8, 12), // wing
	},
	sprite.BirdDown: {
		rect(0, 10, 8, 4),
		rect(8, 12, 30, 6),
		rect(36, 10, 6, 4),
		rect(16, 18, 8, 12),
	},
	sprite.Cactus:        cactusShape(0, 23, 46),
	sprite.CactusDouble:  append(cactusShape(0, 16, 33), cactusShape(16, 16, 33)...),
	sprite.CactusDoubleB: append(cactusShape(0, 20, 46), cactusShape(20, 20, 46)...),
	sprite.CactusTriple:  append(append(cactusShape(0, 14, 33), cactusShape(14, 14, 33)...), cactusShape(28, 13, 33)...),
	sprite.Cloud: {
		rect(14, 0, 16, 4),
		rect(6, 4, 34, 5),
		rect(0, 9, 46, 5),
	},
	sprite.Ground:     groundShape(),
	sprite.ReplayIcon: replayShape(),
}

type legPose int

const (
	legBoth legPose = iota
	legLeftDown
	legRightDown
)

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// dinoShape is the 40x43 standing dinosaur.
func dinoShape(pose legPose) []image.Rectangle {
	r := []image.Rectangle{
		rect(20, 0, 20, 4), // head
		rect(20, 4, 4, 10), // back of head
		rect(28, 4, 12, 10),
		rect(24, 8, 4, 6),
		rect(16, 14, 20, 6), // neck
		rect(6, 18, 26, 12), // body
		rect(0, 14, 6, 10),  // tail
		rect(32, 20, 6, 3),  // arm
	}
	left, right := 13, 13
	switch pose {
	case legLeftDown:
		right = 6
	case legRightDown:
		left = 6
	}
	return append(r, rect(10, 30, 5, left), rect(22, 30, 5, right))
}

// duckShape is the 55x26 ducking dinosaur.
func duckShape(pose legPose) []image.Rectangle {
	r := []image.Rectangle{
		rect(0, 4, 8, 6),    // tail
		rect(8, 6, 32, 12),  // body
		rect(36, 0, 19, 12), // head
	}
	left, right := 8, 8
	switch pose {
	case legLeftDown:
		right = 4
	case legRightDown:
		left = 4
	}
	return append(r, rect(12, 18, 5, left), rect(26, 18, 5, right))
}

// cactusShape is one saguaro of width w and height h at offset x.
func cactusShape(x, w, h int) []image.Rectangle {
	trunk := w / 3
	return []image.Rectangle{
		rect(x+trunk, 0, trunk, h),
		rect(x, h/4, trunk/2+1, h/3),
		rect(x, h/4+h/3-2, trunk, 2),
		rect(x+w-trunk/2-1, h/5, trunk/2+1, h/3),
		rect(x+2*trunk, h/5+h/3-2, w-2*trunk, 2),
	}
}

// groundShape is the 1200x14 ground strip with scattered pebbles.
func groundShape() []image.Rectangle {
	r := []image.Rectangle{rect(0, 1, 1200, 1)}
	for x := 7; x < 1200; x += 23 {
		r = append(r, rect(x, 4+(x%5)*2, 1+x%3, 1))
	}
	return r
}

// replayShape is the 34x30 circular arrow.
func replayShape() []image.Rectangle {
	return []image.Rectangle{
		rect(8, 2, 18, 4),
		rect(4, 6, 4, 18),
		rect(8, 24, 18, 4),
		rect(26, 16, 4, 8),
		rect(22, 6, 10, 4), // arrow head
		rect(26, 0, 4, 14),
	}
}

// Placeholder draws every sprite of atlas into a transparent image at the
// atlas's 2x density. Sprites without a shape are drawn as filled boxes.
func Placeholder(atlas sprite.Atlas) *image.NRGBA {
	w, h := atlas.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := &image.Uniform{C: ink}

	for _, name := range atlas.Names() {
		sr := atlas.MustLookup(name)
		bounds := image.Rect(sr.X, sr.Y, sr.X+sr.W, sr.Y+sr.H)

		parts, ok := shapes[name]
		if !ok {
			parts = []image.Rectangle{rect(0, 0, sr.W/sprite.PixelRatio, sr.H/sprite.PixelRatio)}
		}
		for _, p := range parts {
			dst := image.Rect(
				sr.X+p.Min.X*sprite.PixelRatio, sr.Y+p.Min.Y*sprite.PixelRatio,
				sr.X+p.Max.X*sprite.PixelRatio, sr.Y+p.Max.Y*sprite.PixelRatio,
			).Intersect(bounds)
			draw.Draw(img, dst, src, image.Point{}, draw.Src)
		}
	}
	return img
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
