// Package assets loads the sprite atlas and the score font, falling back to
// a procedurally drawn atlas and the bundled PressStart2P font when no files
// are configured.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // atlas files are PNG
	"io"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// BuiltinPrefix marks references to assets compiled into the binary.
const BuiltinPrefix = "builtin:"

// BuiltinFont is the bundled score font.
const BuiltinFont = BuiltinPrefix + "PressStart2P"

// Font is a parsed TrueType font together with its raw bytes, which some
// renderers need to build their own faces.
type Font struct {
	Name string
	Data []byte
	Face *opentype.Font
}

// Loader reads assets from the filesystem or the builtin set.
type Loader struct {
	atlas sprite.Atlas
}

// NewLoader creates a loader whose builtin atlas follows the given table.
func NewLoader(atlas sprite.Atlas) *Loader {
	return &Loader{atlas: atlas}
}

// LoadImage decodes the atlas image at ref. An empty ref or a builtin
// reference returns the placeholder atlas.
func (l *Loader) LoadImage(ref string) (image.Image, error) {
	if ref == "" || strings.HasPrefix(ref, BuiltinPrefix) {
		return Placeholder(l.atlas), nil
	}

	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open atlas %s: %w", ref, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode atlas %s: %w", ref, err)
	}

	w, h := l.atlas.Bounds()
	if b := img.Bounds(); b.Dx() < w || b.Dy() < h {
		return nil, fmt.Errorf("assets: atlas %s is %dx%d, need at least %dx%d", ref, b.Dx(), b.Dy(), w, h)
	}
	return img, nil
}

// LoadFont reads and parses the font at ref and registers it under name.
func (l *Loader) LoadFont(ref, name string) (*Font, error) {
	var data []byte
	switch {
	case ref == "" || ref == BuiltinFont:
		data = fonts.PressStart2P_ttf
	case strings.HasPrefix(ref, BuiltinPrefix):
		return nil, fmt.Errorf("assets: unknown builtin font %s", ref)
	default:
		var err error
		data, err = os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read font %s: %w", ref, err)
		}
	}

	face, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot parse font %s: %w", ref, err)
	}
	return &Font{Name: name, Data: data, Face: face}, nil
}

// DecodePixels converts img to a tightly packed RGBA buffer anchored at the
// origin. Only the alpha channel is used for masks, so straight alpha is kept.
func (l *Loader) DecodePixels(img image.Image) (*sprite.PixelBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("assets: cannot decode pixels of a nil image")
	}

	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) || nrgba.Stride != 4*b.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	px := &sprite.PixelBuffer{Width: b.Dx(), Height: b.Dy(), Data: nrgba.Pix}
	if err := px.Validate(); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return px, nil
}

// WriteAtlasPNG encodes the placeholder atlas for the given table.
func WriteAtlasPNG(w io.Writer, atlas sprite.Atlas) error {
	if err := encodePNG(w, Placeholder(atlas)); err != nil {
		return fmt.Errorf("assets: cannot encode atlas: %w", err)
	}
	return nil
}
