package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// Renderer is a dino.Renderer that paints into an offscreen image sized
// for the device. Coordinates stay logical; the device scale is applied
// on every draw.
type Renderer struct {
	width  float64
	height float64
	scale  float64

	target *ebiten.Image
	atlas  *ebiten.Image
	table  sprite.Atlas
	face   *text.GoTextFaceSource
}

var _ dino.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for a logical width×height world drawn at
// scale device pixels per logical pixel.
func NewRenderer(width, height, scale float64, table sprite.Atlas) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	w, h := deviceSize(width, height, scale)
	return &Renderer{
		width:  width,
		height: height,
		scale:  scale,
		target: ebiten.NewImage(w, h),
		table:  table,
	}
}

// Size returns the offscreen size in device pixels.
func (r *Renderer) Size() (int, int) {
	return deviceSize(r.width, r.height, r.scale)
}

// Image returns the last painted frame.
func (r *Renderer) Image() *ebiten.Image {
	return r.target
}

// Bind uploads the atlas and builds a face source from the font bytes.
// Sprites come straight from the atlas, so the sheet's masks are not used.
func (r *Renderer) Bind(a dino.Assets) error {
	font := a.Font
	if font == nil {
		return fmt.Errorf("window: no font to bind")
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(font.Data))
	if err != nil {
		return fmt.Errorf("window: cannot load font %s: %w", font.Name, err)
	}
	r.atlas = ebiten.NewImageFromImage(a.Atlas)
	r.face = src
	return nil
}

// FillBackground clears the frame.
func (r *Renderer) FillBackground(c color.Color) {
	r.target.Fill(c)
}

// FillRect paints a filled rectangle.
func (r *Renderer) FillRect(x, y, w, h float64, c color.Color) {
	s := r.scale
	vector.DrawFilledRect(r.target, float32(x*s), float32(y*s), float32(w*s), float32(h*s), c, false)
}

// DrawSprite copies the atlas rect at half its stored size, so one logical
// pixel is one atlas pixel pair.
func (r *Renderer) DrawSprite(name string, x, y float64) {
	if r.atlas == nil {
		return
	}
	rect := r.table.MustLookup(name)
	sub := r.atlas.SubImage(image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.scale/sprite.PixelRatio, r.scale/sprite.PixelRatio)
	op.GeoM.Translate(x*r.scale, y*r.scale)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(sub, op)
}

// DrawText draws a single line anchored at (x, y).
func (r *Renderer) DrawText(s string, x, y float64, opts dino.TextOptions) {
	if r.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*r.scale, y*r.scale)
	op.PrimaryAlign = primaryAlign(opts.Align)
	op.SecondaryAlign = secondaryAlign(opts.Baseline)
	if opts.Color != nil {
		op.ColorScale.ScaleWithColor(opts.Color)
	}
	text.Draw(r.target, s, &text.GoTextFace{
		Source: r.face,
		Size:   opts.Size * r.scale,
	}, op)
}

func primaryAlign(a dino.Align) text.Align {
	switch a {
	case dino.AlignCenter:
		return text.AlignCenter
	case dino.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

func secondaryAlign(b dino.Baseline) text.Align {
	if b == dino.BaselineBottom {
		return text.AlignEnd
	}
	return text.AlignStart
}

func deviceSize(width, height, scale float64) (int, int) {
	return int(width*scale + 0.5), int(height*scale + 0.5)
}
