package core

import "image/color"

// Color is a terminal foreground color slot for a screen cell.
// The platform layer maps each slot to an actual terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorInk           // sprites and ground
	ColorText          // score and messages
	ColorDim           // help footer, fps readout
	ColorAlert         // game over banner
)

// Palette colors used by the game when painting.
var (
	Background = color.RGBA{R: 0xf7, G: 0xf7, B: 0xf7, A: 0xff}
	Ink        = color.RGBA{R: 0x53, G: 0x53, B: 0x53, A: 0xff}
)

// ColorFor maps an RGBA paint color onto the nearest terminal slot.
// Light colors are treated as background and map to ColorDefault.
func ColorFor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	lum := (299*r + 587*g + 114*b) / 1000 >> 8
	if lum > 0xc0 {
		return ColorDefault
	}
	return ColorInk
}
