package heatmap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// paletteSize is the number of discrete colors the heatmaps draw with
const paletteSize = 256

// yellowGreenBlue anchor colors, light to dark. Low cells render pale
// yellow, high cells deep blue.
var anchors = []color.NRGBA{
	{R: 0xff, G: 0xff, B: 0xd9, A: 0xff},
	{R: 0xed, G: 0xf8, B: 0xb1, A: 0xff},
	{R: 0xc7, G: 0xe9, B: 0xb4, A: 0xff},
	{R: 0x7f, G: 0xcd, B: 0xbb, A: 0xff},
	{R: 0x41, G: 0xb6, B: 0xc4, A: 0xff},
	{R: 0x1d, G: 0x91, B: 0xc0, A: 0xff},
	{R: 0x22, G: 0x5e, B: 0xa8, A: 0xff},
	{R: 0x25, G: 0x34, B: 0x94, A: 0xff},
	{R: 0x08, G: 0x1d, B: 0x58, A: 0xff},
}

// ramp is a fixed color list satisfying the plot palette interface
type ramp []color.Color

func (r ramp) Colors() []color.Color { return r }

// yellowGreenBlue builds an n-color sequential palette by linear
// interpolation between the anchor colors
func yellowGreenBlue(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = lerpAnchors(float64(i) / float64(n-1))
	}
	return ramp(colors)
}

// lerpAnchors maps t in [0,1] onto the anchor ramp
func lerpAnchors(t float64) color.Color {
	segments := len(anchors) - 1
	pos := t * float64(segments)
	k := int(pos)
	if k >= segments {
		k = segments - 1
	}
	frac := pos - float64(k)

	a, b := anchors[k], anchors[k+1]
	return color.NRGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 0xff,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
