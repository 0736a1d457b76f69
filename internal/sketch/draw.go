package sketch

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/quasar/internal/palette"
)

func (s *Sketch) drawScene(dst *ebiten.Image) {
	dst.Fill(color.Black)
	s.drawGlow(dst)
	s.drawStars(dst)
	s.drawArcs(dst)
	s.drawPlanets(dst)
}

// drawGlow paints the concentric background rings from the outermost
// inward, so each smaller ring overlays the previous one and the
// center ends up brightest.
func (s *Sketch) drawGlow(dst *ebiten.Image) {
	cx := float32(s.width) / 2
	cy := float32(s.height) / 2
	n := s.scn.NumCircles
	for i := n; i > 0; i-- {
		amt := 0.9 * float64(i) / float64(n)
		clr := s.scn.Palette.Color(amt, 0)
		vector.DrawFilledCircle(dst, cx, cy, float32(float64(i)*s.scn.ArcSize), clr, true)
	}
}

// drawStars renders the twinkle layer additively: each star is a
// plus-shaped cross whose luminance comes from the flicker field.
func (s *Sketch) drawStars(dst *ebiten.Image) {
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}
	base := s.scn.Palette.BaseHue
	for _, st := range s.scn.Stars {
		lum := st.Luminance(s.flick, s.tick)
		clr := palette.HSV(base+st.HueShift, st.Sat, lum, 1)
		s.drawAdditiveBar(dst, st.X-st.Size, st.Y, st.Size*2+1, 1, clr)
		s.drawAdditiveBar(dst, st.X, st.Y-st.Size, 1, st.Size*2+1, clr)
	}
}

func (s *Sketch) drawAdditiveBar(dst *ebiten.Image, x, y, w, h float64, clr color.NRGBA) {
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(s.pixel, op)
}

func (s *Sketch) drawArcs(dst *ebiten.Image) {
	cx := float64(s.width) / 2
	cy := float64(s.height) / 2
	width := float32(s.scn.ArcSize)
	for _, a := range s.scn.Arcs {
		strokeArc(dst, cx, cy, a.Radius, a.Angle, a.Angle+a.Length, width, a.Color)
	}
}

// strokeArc approximates a circular arc with a chain of short chords.
func strokeArc(dst *ebiten.Image, cx, cy, r, a0, a1 float64, width float32, clr color.NRGBA) {
	if r <= 0 {
		return
	}
	const maxChord = 0.05 // radians
	steps := int(math.Ceil((a1 - a0) / maxChord))
	if steps < 1 {
		steps = 1
	}
	px := cx + math.Cos(a0)*r
	py := cy + math.Sin(a0)*r
	for i := 1; i <= steps; i++ {
		t := a0 + (a1-a0)*float64(i)/float64(steps)
		x := cx + math.Cos(t)*r
		y := cy + math.Sin(t)*r
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), width, clr, true)
		px, py = x, y
	}
}

// drawPlanets renders each planet as a stack of nested circles
// scanning from the outer edge inward. The falloff curve
// (1-amt^5)*percent + (1-percent) fakes a soft spherical shade without
// radial blending; planets far from the origin collapse toward a flat
// dim disc. The circles are deliberately unantialiased, hard edges
// included.
func (s *Sketch) drawPlanets(dst *ebiten.Image) {
	if s.scn.Radius <= 0 {
		return
	}
	cx := float64(s.width) / 2
	cy := float64(s.height) / 2

	step := 1.0
	if s.zooming {
		step = 0.5
	}

	for _, p := range s.scn.Planets {
		percent := clamp01(1 - math.Hypot(p.X, p.Y)/s.scn.Radius)
		for d := p.Length; d > 0; d -= step {
			amt := d / p.Length
			dia := d * ((1-math.Pow(amt, 5))*percent + (1 - percent))
			clr := s.scn.Palette.Color(amt, p.HueShift)
			vector.DrawFilledCircle(dst, float32(cx+p.X), float32(cy+p.Y), float32(dia/2), clr, false)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
