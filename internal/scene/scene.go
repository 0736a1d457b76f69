// Package scene builds and advances the randomized quasar scene: the
// glow-ring layout, the arc field, the planet chain and the star field.
// A Scene is one generation epoch; regeneration (startup, resize,
// right-click) discards it wholesale and builds a fresh one.
package scene

import (
	"image/color"
	"math"
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/iburimskiy/quasar/internal/config"
	"github.com/iburimskiy/quasar/internal/palette"
)

// Center marks a planet that orbits the scene origin instead of
// another planet.
const Center = -1

// Nominal length of the pseudo-target at the origin, as a fraction of
// the scene radius. Root planets size themselves against it.
const centerLengthRatio = 0.25

// Arc is one decorative ring segment. Only Angle changes after
// generation; it accumulates Speed every tick and wraps through the
// trig projection at draw time.
type Arc struct {
	Color  color.NRGBA
	Length float64 // angular length, radians
	Angle  float64
	Radius float64
	Speed  float64
}

// Planet orbits either the scene origin or an earlier planet. Parent
// is an index into Scene.Planets, or Center; it always refers
// backwards, so following parents terminates at the origin. X and Y
// are derived from Angle, Orbit and the parent position each tick.
type Planet struct {
	HueShift float64
	Length   float64
	Angle    float64
	Orbit    float64
	Speed    float64
	Parent   int
	X, Y     float64
}

// Star never moves; only its rendered luminance flickers.
type Star struct {
	X, Y     float64
	Size     float64
	HueShift float64
	Sat      float64
	Phase    float64
	Speed    float64
}

// Scene holds everything one generation produced. Arcs and planets are
// in scene coordinates centered on the origin; stars are in canvas
// coordinates.
type Scene struct {
	Width, Height float64

	NumCircles int
	Radius     float64
	ArcSize    float64
	Variance   float64

	Palette palette.Palette
	Arcs    []*Arc
	Planets []*Planet
	Stars   []*Star
}

// Generate builds a complete scene for a w by h canvas from r, with no
// reference to any prior scene. A zero-area canvas yields a degenerate
// but valid scene.
func Generate(r *rand.Rand, w, h float64, cfg *config.Config) *Scene {
	s := &Scene{
		Width:      w,
		Height:     h,
		NumCircles: 70 + r.Intn(50),
		Radius:     0.45 * math.Min(w, h),
		Variance:   0.05 + r.Float64()*0.35,
		Palette:    palette.Random(r),
	}
	s.ArcSize = s.Radius / float64(s.NumCircles)

	s.generateArcs(r, cfg.Arcs)
	s.generatePlanets(r, cfg.MinPlanets, cfg.MaxPlanets)
	s.generateStars(r, cfg.Stars)
	return s
}

func (s *Scene) generateArcs(r *rand.Rand, count int) {
	s.Arcs = make([]*Arc, 0, count)
	for i := 0; i < count; i++ {
		bucket := r.Intn(s.NumCircles)
		amt := clamp01(float64(bucket)/float64(s.NumCircles) + (r.Float64()*2-1)*s.Variance)

		length := r.Float64() * math.Pi / 2
		if bucket > 0 && r.Float64() < 0.2 {
			// near-point sliver: roughly one unit of arc at this ring
			length = 1 / (2 * math.Pi * float64(bucket))
		}

		speed := r.Float64() * 0.3 * 0.02
		if r.Float64() < 0.5 {
			speed = -speed
		}

		s.Arcs = append(s.Arcs, &Arc{
			Color:  s.Palette.ColorAlpha(amt, 0, 0.5),
			Length: length,
			Angle:  r.Float64() * 2 * math.Pi,
			Radius: float64(bucket) * s.ArcSize,
			Speed:  speed,
		})
	}

	// Shorter, more point-like arcs draw last, on top.
	sort.Slice(s.Arcs, func(i, j int) bool { return s.Arcs[i].Length > s.Arcs[j].Length })
}

func (s *Scene) generatePlanets(r *rand.Rand, lo, hi int) {
	span := hi - lo + 1
	if span < 1 {
		span = 1
	}
	n := lo + r.Intn(span)

	s.Planets = make([]*Planet, 0, n)
	for i := 0; i < n; i++ {
		p := &Planet{Parent: Center}
		if i > 0 && r.Float64() < 0.5 {
			p.Parent = r.Intn(i)
		}

		targetLen := s.CenterLength()
		if p.Parent != Center {
			targetLen = s.Planets[p.Parent].Length
		}
		p.Length = targetLen * (0.5 + r.Float64()*0.2)

		if p.Parent != Center {
			// near the target's edge, plus a small random gap
			p.Orbit = (targetLen+p.Length)/2 + r.Float64()*s.ArcSize*4
		} else {
			// linear ramp: later planets tend to sit farther out
			p.Orbit = s.Radius * (0.3 + 0.7*(float64(i)+r.Float64())/float64(n))
		}

		p.Speed = 0.001 + r.Float64()*0.0015
		p.Angle = r.Float64() * 2 * math.Pi
		p.HueShift = (r.Float64()*2 - 1) * 0.15
		s.Planets = append(s.Planets, p)
	}
	placePlanets(s.Planets)
}

func (s *Scene) generateStars(r *rand.Rand, count int) {
	s.Stars = make([]*Star, 0, count)
	for i := 0; i < count; i++ {
		s.Stars = append(s.Stars, &Star{
			X:        r.Float64() * s.Width,
			Y:        r.Float64() * s.Height,
			Size:     2 + r.Float64()*3,
			HueShift: (r.Float64()*2 - 1) * 0.2,
			Sat:      r.Float64() * 0.7,
			Phase:    r.Float64() * 1000,
			Speed:    0.01 + r.Float64()*0.09,
		})
	}
}

// CenterLength is the nominal length of the origin pseudo-target.
func (s *Scene) CenterLength() float64 {
	return centerLengthRatio * s.Radius
}

// Advance applies exactly one tick of motion: every arc and planet
// angle accumulates its speed (unbounded, no wraparound needed) and
// planet positions are recomputed in generation order, so a moon sees
// its target's fresh position within the same tick.
func (s *Scene) Advance() {
	for _, a := range s.Arcs {
		a.Angle += a.Speed
	}
	for _, p := range s.Planets {
		p.Angle += p.Speed
	}
	placePlanets(s.Planets)
}

// placePlanets recomputes derived positions. Planets must be walked in
// slice order: Parent always indexes an earlier planet.
func placePlanets(planets []*Planet) {
	for _, p := range planets {
		var cx, cy float64
		if p.Parent != Center {
			cx, cy = planets[p.Parent].X, planets[p.Parent].Y
		}
		p.X = cx + math.Cos(p.Angle)*p.Orbit
		p.Y = cy + math.Sin(p.Angle)*p.Orbit
	}
}

// Luminance samples the flicker field along this star's phase line.
// The result is in [0, 0.7).
func (st *Star) Luminance(n opensimplex.Noise, tick float64) float64 {
	return 0.7 * n.Eval2(st.Phase, st.Phase+tick*st.Speed)
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
