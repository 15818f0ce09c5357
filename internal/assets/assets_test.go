package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dino/internal/sprite"
)

func TestPlaceholderCoversAtlas(t *testing.T) {
	img := Placeholder(sprite.Default)
	w, h := sprite.Default.Bounds()
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("Placeholder() = %dx%d, expected %dx%d", b.Dx(), b.Dy(), w, h)
	}

	// Outside every sprite rectangle.
	if a := img.NRGBAAt(1, 0).A; a != 0 {
		t.Errorf("alpha at (1,0) = %d, expected transparent", a)
	}
}

func TestPlaceholderMasksAreNotEmpty(t *testing.T) {
	loader := NewLoader(sprite.Default)
	px, err := loader.DecodePixels(Placeholder(sprite.Default))
	if err != nil {
		t.Fatalf("DecodePixels() error = %v", err)
	}
	cache := sprite.NewMaskCache(sprite.Default)

	for _, name := range sprite.Default.Names() {
		m := cache.Get(px, name)
		opaque := 0
		for _, row := range m {
			for _, v := range row {
				opaque += int(v)
			}
		}
		if opaque == 0 {
			t.Errorf("%s mask is fully transparent", name)
		}
		if opaque == m.Width()*m.Height() && name != sprite.Ground {
			t.Errorf("%s mask is a solid box", name)
		}
	}
}

func TestPlaceholderLegsDiffer(t *testing.T) {
	a := shapes[sprite.DinoLeftLeg]
	b := shapes[sprite.DinoRightLeg]
	if a[len(a)-1] == b[len(b)-1] && a[len(a)-2] == b[len(b)-2] {
		t.Error("left and right leg sprites are identical")
	}
}

func TestLoadImage(t *testing.T) {
	loader := NewLoader(sprite.Default)

	for _, ref := range []string{"", "builtin:atlas"} {
		img, err := loader.LoadImage(ref)
		if err != nil || img == nil {
			t.Errorf("LoadImage(%q) = %v, %v", ref, img, err)
		}
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteAtlasPNG(f, sprite.Default); err != nil {
		t.Fatalf("WriteAtlasPNG() error = %v", err)
	}
	f.Close()

	img, err := loader.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage(png) error = %v", err)
	}
	w, h := sprite.Default.Bounds()
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("decoded atlas = %dx%d, expected %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.png")
	f, err := os.Create(small)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteAtlasPNG(f, sprite.Atlas{"dot": {X: 0, Y: 0, W: 2, H: 2}}); err != nil {
		t.Fatal(err)
	}
	f.Close()

	notPNG := filepath.Join(dir, "atlas.txt")
	if err := os.WriteFile(notPNG, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ref  string
		want string
	}{
		{filepath.Join(dir, "missing.png"), "cannot open atlas"},
		{notPNG, "cannot decode atlas"},
		{small, "need at least"},
	}
	loader := NewLoader(sprite.Default)
	for _, tt := range tests {
		_, err := loader.LoadImage(tt.ref)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("LoadImage(%s) error = %v, expected %q", filepath.Base(tt.ref), err, tt.want)
		}
	}
}

func TestLoadFont(t *testing.T) {
	loader := NewLoader(sprite.Default)

	font, err := loader.LoadFont(BuiltinFont, "PressStart2P")
	if err != nil {
		t.Fatalf("LoadFont(builtin) error = %v", err)
	}
	if font.Name != "PressStart2P" || font.Face == nil || len(font.Data) == 0 {
		t.Errorf("LoadFont(builtin) = %+v", font)
	}

	if _, err := loader.LoadFont("builtin:Comic", "x"); err == nil {
		t.Error("LoadFont(unknown builtin) = nil error")
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadFont(bad, "x"); err == nil || !strings.Contains(err.Error(), "cannot parse font") {
		t.Errorf("LoadFont(bad) error = %v", err)
	}
}

func TestDecodePixelsConvertsOffsetImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 1, color.RGBA{A: 0xff})
	sub := src.SubImage(image.Rect(1, 1, 4, 4))

	px, err := NewLoader(sprite.Default).DecodePixels(sub)
	if err != nil {
		t.Fatalf("DecodePixels() error = %v", err)
	}
	if px.Width != 3 || px.Height != 3 || len(px.Data) != 36 {
		t.Fatalf("DecodePixels() = %dx%d with %d bytes", px.Width, px.Height, len(px.Data))
	}
	if px.Alpha(1, 0) != 0xff || px.Alpha(0, 0) != 0 {
		t.Errorf("alpha (1,0)=%d (0,0)=%d, expected 255 and 0", px.Alpha(1, 0), px.Alpha(0, 0))
	}

	if _, err := NewLoader(sprite.Default).DecodePixels(nil); err == nil {
		t.Error("DecodePixels(nil) = nil error")
	}
}
