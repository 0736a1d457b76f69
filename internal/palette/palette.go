// Package palette maps a normalized progress value onto the hue
// gradient of the current scene. Each scene draws one random palette
// and derives every color in the frame from it.
package palette

import (
	"image/color"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the per-scene color mapping: a base hue and a signed hue
// range swept as progress goes from 0 to 1.
type Palette struct {
	BaseHue  float64
	HueRange float64
}

// Random draws a palette from r: base hue anywhere on the wheel, hue
// range magnitude in [0.2, 0.7) with a random direction.
func Random(r *rand.Rand) Palette {
	hueRange := 0.2 + r.Float64()*0.5
	if r.Float64() < 0.5 {
		hueRange = -hueRange
	}
	return Palette{BaseHue: r.Float64(), HueRange: hueRange}
}

// HSB returns the hue/saturation/brightness triple at progress amt with
// an extra hue shift. Hue is always reduced modulo 1; saturation rises
// and brightness falls with progress.
func (p Palette) HSB(amt, shift float64) (h, s, b float64) {
	return mod1(p.BaseHue + amt*p.HueRange + shift), amt, 1 - amt
}

// Color converts the triple at (amt, shift) to an opaque color.
func (p Palette) Color(amt, shift float64) color.NRGBA {
	return p.ColorAlpha(amt, shift, 1)
}

// ColorAlpha is Color with a straight alpha in [0, 1].
func (p Palette) ColorAlpha(amt, shift, alpha float64) color.NRGBA {
	h, s, b := p.HSB(amt, shift)
	return HSV(h, s, b, alpha)
}

// HSV converts a (hue, saturation, value) triple with hue in turns to
// NRGBA. Hue is reduced modulo 1 before conversion.
func HSV(h, s, v, alpha float64) color.NRGBA {
	c := colorful.Hsv(mod1(h)*360, s, v)
	r8, g8, b8 := c.RGB255()
	return color.NRGBA{R: r8, G: g8, B: b8, A: uint8(alpha*255 + 0.5)}
}

func mod1(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
