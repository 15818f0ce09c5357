package tui

import (
	"fmt"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-dino/internal/actor"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

// Half-block glyphs for a cell that carries two vertical pixels.
const (
	glyphEmpty  = ' '
	glyphTop    = '▀'
	glyphBottom = '▄'
	glyphFull   = '█'
)

type overlay struct {
	text     string
	x, y     float64
	align    dino.Align
	baseline dino.Baseline
	color    core.Color
}

// Canvas is a dino.Renderer that paints into a logical pixel grid and
// downsamples it onto a terminal screen. Every terminal cell covers a
// scale×2·scale block of logical pixels and shows its upper and lower half
// with half-block characters. Text is kept as overlays and placed on the
// cell grid as plain characters.
type Canvas struct {
	width  int
	height int
	pixels []core.Color

	sheet *actor.Sheet

	texts []overlay
	scale int
}

var _ dino.Renderer = (*Canvas)(nil)

// NewCanvas creates a canvas for a logical world of width×height pixels.
func NewCanvas(width, height float64) *Canvas {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	return &Canvas{
		width:  w,
		height: h,
		pixels: make([]core.Color, w*h),
		scale:  1,
	}
}

// Fit picks the smallest scale at which the world fits in cols×rows cells.
func (c *Canvas) Fit(cols, rows int) {
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)
	k := core.Max(ceilDiv(c.width, cols), ceilDiv(c.height, 2*rows))
	c.scale = core.Max(k, 1)
}

// Scale returns the logical pixels per cell column.
func (c *Canvas) Scale() int {
	return c.scale
}

// Size returns the cell dimensions of the flushed picture.
func (c *Canvas) Size() (cols, rows int) {
	return ceilDiv(c.width, c.scale), ceilDiv(c.height, 2*c.scale)
}

// Bind takes the game's sheet and paints sprites from its masks. The
// terminal draws text in its own font, so the font is not used.
func (c *Canvas) Bind(a dino.Assets) error {
	if a.Sheet == nil || a.Sheet.Pixels == nil {
		return fmt.Errorf("tui: no sprite sheet to bind")
	}
	c.sheet = a.Sheet
	return nil
}

// FillBackground clears the pixel grid and drops all text.
func (c *Canvas) FillBackground(col color.Color) {
	slot := core.ColorFor(col)
	for i := range c.pixels {
		c.pixels[i] = slot
	}
	c.texts = c.texts[:0]
}

// FillRect paints a rectangle and drops text anchored inside it.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	slot := core.ColorFor(col)
	x0, y0 := core.Round(x), core.Round(y)
	x1, y1 := core.Round(x+w), core.Round(y+h)
	for py := core.Max(y0, 0); py < core.Min(y1, c.height); py++ {
		for px := core.Max(x0, 0); px < core.Min(x1, c.width); px++ {
			c.pixels[py*c.width+px] = slot
		}
	}

	kept := c.texts[:0]
	for _, t := range c.texts {
		inside := t.x >= x && t.x <= x+w && t.y >= y && t.y <= y+h
		if !inside {
			kept = append(kept, t)
		}
	}
	c.texts = kept
}

// DrawSprite paints the opaque pixels of the named sprite.
func (c *Canvas) DrawSprite(name string, x, y float64) {
	if c.sheet == nil {
		return
	}
	mask := c.sheet.Masks.Get(c.sheet.Pixels, name)
	ox, oy := core.Round(x), core.Round(y)
	for row := 0; row < mask.Height(); row++ {
		py := oy + row
		if py < 0 || py >= c.height {
			continue
		}
		for col := 0; col < mask.Width(); col++ {
			px := ox + col
			if px < 0 || px >= c.width || !mask.Opaque(col, row) {
				continue
			}
			c.pixels[py*c.width+px] = core.ColorInk
		}
	}
}

// DrawText records a text overlay for the next Flush. Text always uses the
// text slot; the terminal theme decides its color.
func (c *Canvas) DrawText(text string, x, y float64, opts dino.TextOptions) {
	c.texts = append(c.texts, overlay{
		text:     text,
		x:        x,
		y:        y,
		align:    opts.Align,
		baseline: opts.Baseline,
		color:    core.ColorText,
	})
}

// Pixel returns the slot of a logical pixel. Out of range pixels are
// background.
func (c *Canvas) Pixel(x, y int) core.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return core.ColorDefault
	}
	return c.pixels[y*c.width+x]
}

// Flush resizes s to the canvas's cell size and paints the current frame.
func (c *Canvas) Flush(s *core.Screen) {
	cols, rows := c.Size()
	s.Resize(cols, rows)
	s.Clear()

	k := c.scale
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := c.inked(cx*k, 2*cy*k, k)
			bottom := c.inked(cx*k, (2*cy+1)*k, k)
			switch {
			case top && bottom:
				s.SetColored(cx, cy, glyphFull, core.ColorInk)
			case top:
				s.SetColored(cx, cy, glyphTop, core.ColorInk)
			case bottom:
				s.SetColored(cx, cy, glyphBottom, core.ColorInk)
			default:
				s.Set(cx, cy, glyphEmpty)
			}
		}
	}

	for _, t := range c.texts {
		col, row := c.place(t, cols)
		s.DrawTextColored(col, row, t.text, t.color)
	}
}

// inked reports whether any pixel of the k×k block at (x, y) is painted.
func (c *Canvas) inked(x, y, k int) bool {
	for py := y; py < y+k && py < c.height; py++ {
		for px := x; px < x+k && px < c.width; px++ {
			if c.pixels[py*c.width+px] != core.ColorDefault {
				return true
			}
		}
	}
	return false
}

// place maps a text anchor in logical pixels to its first cell.
func (c *Canvas) place(t overlay, cols int) (col, row int) {
	k := float64(c.scale)
	n := utf8.RuneCountInString(t.text)

	switch t.align {
	case dino.AlignCenter:
		col = int(math.Floor(t.x/k)) - n/2
	case dino.AlignRight:
		col = int(math.Ceil(t.x/k)) - n
	default:
		col = int(math.Floor(t.x / k))
	}
	if col+n > cols {
		col = cols - n
	}
	col = core.Max(col, 0)

	switch t.baseline {
	case dino.BaselineBottom:
		row = int(math.Floor((t.y - 1) / (2 * k)))
	default:
		row = int(math.Floor(t.y / (2 * k)))
	}
	return col, core.Max(row, 0)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
