package sprite

import "errors"

// PixelBuffer is a decoded RGBA image: 4 bytes per pixel, row-major, no
// padding between rows.
type PixelBuffer struct {
	Width  int
	Height int
	Data   []byte
}

// ErrShortBuffer is returned when Data is smaller than Width*Height*4.
var ErrShortBuffer = errors.New("sprite: pixel buffer shorter than its dimensions")

// Validate checks that the buffer holds Width*Height RGBA pixels.
func (p *PixelBuffer) Validate() error {
	if p.Width < 0 || p.Height < 0 || len(p.Data) < p.Width*p.Height*4 {
		return ErrShortBuffer
	}
	return nil
}

// Alpha returns the alpha channel at (x, y). Out-of-range pixels are
// transparent.
func (p *PixelBuffer) Alpha(x, y int) byte {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return p.Data[(y*p.Width+x)*4+3]
}

// Mask is a binary opacity grid at logical resolution: Mask[row][col] is 1
// where the sprite is opaque.
type Mask [][]uint8

// Width returns the number of columns.
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Mask) Height() int {
	return len(m)
}

// Opaque reports whether the mask is opaque at (col, row).
// Coordinates outside the mask are transparent.
func (m Mask) Opaque(col, row int) bool {
	if row < 0 || row >= len(m) || col < 0 || col >= len(m[row]) {
		return false
	}
	return m[row][col] == 1
}

// MaskCache builds masks lazily and keeps them for its whole lifetime.
// Actors that show the same sprite share the same Mask. Each game owns one
// cache and uses it from the goroutine that runs its frames.
type MaskCache struct {
	atlas Atlas
	masks map[string]Mask
}

// NewMaskCache creates an empty cache over the given atlas table.
func NewMaskCache(atlas Atlas) *MaskCache {
	return &MaskCache{
		atlas: atlas,
		masks: make(map[string]Mask),
	}
}

// Get returns the mask for name, scanning px on first use.
// Source pixels are sampled every other pixel on both axes, since the atlas
// is stored at twice the logical density.
func (c *MaskCache) Get(px *PixelBuffer, name string) Mask {
	if m, ok := c.masks[name]; ok {
		return m
	}

	r := c.atlas.MustLookup(name)
	rows := make(Mask, 0, (r.H+1)/PixelRatio)
	for y := r.Y; y < r.Y+r.H; y += PixelRatio {
		line := make([]uint8, 0, (r.W+1)/PixelRatio)
		for x := r.X; x < r.X+r.W; x += PixelRatio {
			if px.Alpha(x, y) == 0 {
				line = append(line, 0)
			} else {
				line = append(line, 1)
			}
		}
		rows = append(rows, line)
	}

	c.masks[name] = rows
	return rows
}

// Len returns the number of cached masks.
func (c *MaskCache) Len() int {
	return len(c.masks)
}
