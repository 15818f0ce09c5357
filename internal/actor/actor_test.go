package actor

import (
	"testing"

	"github.com/vovakirdan/tui-dino/internal/sprite"
)

// maskSheet builds a two-sprite sheet whose cactus and cactusDouble entries
// are 10x10 logical pixels. opaque reports, for a sprite and a logical
// (col, row), whether that pixel is painted.
func maskSheet(opaque func(name string, col, row int) bool) *Sheet {
	atlas := sprite.Atlas{
		sprite.Cactus:       {X: 0, Y: 0, W: 20, H: 20},
		sprite.CactusDouble: {X: 20, Y: 0, W: 20, H: 20},
		sprite.Cloud:        {X: 0, Y: 0, W: 20, H: 20},
	}
	px := &sprite.PixelBuffer{Width: 40, Height: 20, Data: make([]byte, 40*20*4)}
	for _, name := range []string{sprite.Cactus, sprite.CactusDouble} {
		r := atlas[name]
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				if opaque(name, col, row) {
					x, y := r.X+col*2, r.Y+row*2
					px.Data[(y*px.Width+x)*4+3] = 255
				}
			}
		}
	}
	return NewSheet(atlas, px)
}

func placed(a *Actor, x, y float64) *Actor {
	a.X = x
	a.SetY(y)
	return a
}

func TestActorDimensionsAreHalfAtlas(t *testing.T) {
	sheet := NewSheet(sprite.Default, nil)
	for _, name := range CactusVariants {
		a := NewCactus(sheet, name, 8)
		r := sprite.Default.MustLookup(name)
		if a.Width != float64(r.W)/2 || a.Height != float64(r.H)/2 {
			t.Errorf("%s size = %vx%v, expected %vx%v", name, a.Width, a.Height, float64(r.W)/2, float64(r.H)/2)
		}
	}
}

func TestHitsBoundingBoxReject(t *testing.T) {
	sheet := maskSheet(func(string, int, int) bool { return true })
	a := placed(NewCactus(sheet, sprite.Cactus, 0), 0, 0)

	tests := []struct {
		name string
		x, y float64
	}{
		{"right of", 10, 0},
		{"left of", -10, 0},
		{"below", 0, 10},
		{"above", 0, -10},
		{"far away", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := placed(NewCactus(sheet, sprite.CactusDouble, 0), tt.x, tt.y)
			if a.Hits(b) {
				t.Errorf("Hits() = true for boxes that do not overlap")
			}
		})
	}
}

func TestHitsMaskOverlap(t *testing.T) {
	// a spans world x [0,10), b spans [5,15).
	tests := []struct {
		name     string
		opaque   func(name string, col, row int) bool
		expected bool
	}{
		{
			name:     "both opaque",
			opaque:   func(string, int, int) bool { return true },
			expected: true,
		},
		{
			name: "overlap transparent in a",
			opaque: func(name string, col, row int) bool {
				return name != sprite.Cactus || col < 5
			},
			expected: false,
		},
		{
			name: "overlap transparent in b",
			opaque: func(name string, col, row int) bool {
				return name != sprite.CactusDouble || col >= 5
			},
			expected: false,
		},
		{
			name: "single shared pixel",
			opaque: func(name string, col, row int) bool {
				if name == sprite.Cactus {
					return col == 7 && row == 3
				}
				return col == 2 && row == 3
			},
			expected: true,
		},
		{
			name: "opaque pixels on different rows",
			opaque: func(name string, col, row int) bool {
				if name == sprite.Cactus {
					return col == 7 && row == 3
				}
				return col == 2 && row == 4
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := maskSheet(tt.opaque)
			a := placed(NewCactus(sheet, sprite.Cactus, 0), 0, 0)
			b := placed(NewCactus(sheet, sprite.CactusDouble, 0), 5, 0)
			if got := a.Hits(b); got != tt.expected {
				t.Errorf("a.Hits(b) = %v, expected %v", got, tt.expected)
			}
			if got := b.Hits(a); got != tt.expected {
				t.Errorf("b.Hits(a) = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestHitsRoundsFractionalOrigins(t *testing.T) {
	// b at 4.6 rounds to 5, so its column 0 lands on world column 5.
	sheet := maskSheet(func(name string, col, row int) bool {
		if name == sprite.Cactus {
			return col == 5 && row == 0
		}
		return col == 0 && row == 0
	})
	a := placed(NewCactus(sheet, sprite.Cactus, 0), 0, 0)
	b := placed(NewCactus(sheet, sprite.CactusDouble, 0), 4.6, 0.2)
	if !a.Hits(b) {
		t.Error("Hits() = false, expected the rounded pixels to coincide")
	}
}

func TestHitsWithoutMaskUsesBoxes(t *testing.T) {
	sheet := maskSheet(func(string, int, int) bool { return false })
	cactus := placed(NewCactus(sheet, sprite.Cactus, 0), 0, 0)
	cloud := placed(NewCloud(sheet, 0, 1), 5, 5)

	if cloud.Mask() != nil {
		t.Fatal("cloud has a mask")
	}
	if !cactus.Hits(cloud) {
		t.Error("Hits() = false, expected box overlap to count without a mask")
	}
}

func TestHitsNilCandidates(t *testing.T) {
	sheet := maskSheet(func(string, int, int) bool { return true })
	a := placed(NewCactus(sheet, sprite.Cactus, 0), 0, 0)
	b := placed(NewCactus(sheet, sprite.CactusDouble, 0), 5, 0)

	if a.Hits(nil, nil) {
		t.Error("Hits(nil, nil) = true, expected false")
	}
	if !a.Hits(nil, b) {
		t.Error("Hits(nil, b) = false, expected true")
	}
	if a.Hits() {
		t.Error("Hits() with no candidates = true, expected false")
	}
}

func TestCactusAndCloudMovement(t *testing.T) {
	sheet := NewSheet(sprite.Default, nil)
	c := placed(NewCactus(sheet, sprite.CactusTriple, 8), 600, 100)
	cl := placed(NewCloud(sheet, 8, 0.5), 600, 40)

	c.Update()
	cl.Update()

	if c.X != 592 {
		t.Errorf("cactus X = %v, expected 592", c.X)
	}
	if cl.X != 596 {
		t.Errorf("cloud X = %v, expected 596", cl.X)
	}
	if c.Y() != 100 || cl.Y() != 40 {
		t.Errorf("y changed: cactus %v cloud %v", c.Y(), cl.Y())
	}
}

func TestOffScreen(t *testing.T) {
	sheet := NewSheet(sprite.Default, nil)
	c := NewCactus(sheet, sprite.Cactus, 8) // 23 wide
	tests := []struct {
		x        float64
		expected bool
	}{
		{0, false},
		{-22.5, false},
		{-23, true},
		{-40, true},
	}
	for _, tt := range tests {
		c.X = tt.x
		if got := c.OffScreen(); got != tt.expected {
			t.Errorf("OffScreen() at x=%v = %v, expected %v", tt.x, got, tt.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindBird.String() != "bird" || Kind(9).String() != "kind(9)" {
		t.Errorf("unexpected Kind strings %q %q", KindBird, Kind(9))
	}
}
