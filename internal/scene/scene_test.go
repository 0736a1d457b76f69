package scene

import (
	"math"
	"math/rand"
	"testing"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/iburimskiy/quasar/internal/config"
)

func testScene(seed int64) *Scene {
	return Generate(rand.New(rand.NewSource(seed)), 800, 600, config.Default())
}

func TestGenerateCounts(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := testScene(seed)

		if len(s.Arcs) != 2000 {
			t.Errorf("seed %d: expected 2000 arcs, got %d", seed, len(s.Arcs))
		}
		if len(s.Stars) != 1000 {
			t.Errorf("seed %d: expected 1000 stars, got %d", seed, len(s.Stars))
		}
		if n := len(s.Planets); n < 2 || n > 6 {
			t.Errorf("seed %d: expected 2-6 planets, got %d", seed, n)
		}
	}
}

func TestLayoutDerivation(t *testing.T) {
	s := testScene(1)

	if s.Radius != 270 {
		t.Errorf("expected radius 0.45*600=270, got %f", s.Radius)
	}
	if s.NumCircles < 70 || s.NumCircles >= 120 {
		t.Errorf("numCircles out of [70,120): %d", s.NumCircles)
	}
	if want := 270 / float64(s.NumCircles); s.ArcSize != want {
		t.Errorf("expected arcSize %f, got %f", want, s.ArcSize)
	}
	if s.Variance < 0.05 || s.Variance >= 0.4 {
		t.Errorf("variance out of [0.05,0.4): %f", s.Variance)
	}
}

func TestArcInvariants(t *testing.T) {
	s := testScene(2)

	prev := math.Inf(1)
	for i, a := range s.Arcs {
		if a.Length < 0 || a.Length > math.Pi/2 {
			t.Fatalf("arc %d: length out of [0,pi/2]: %f", i, a.Length)
		}
		if a.Length > prev {
			t.Fatalf("arc %d: lengths not non-increasing: %f after %f", i, a.Length, prev)
		}
		prev = a.Length

		if a.Radius < 0 || a.Radius > s.Radius {
			t.Fatalf("arc %d: radius out of [0,%f]: %f", i, s.Radius, a.Radius)
		}
		if math.Abs(a.Speed) > 0.006 {
			t.Fatalf("arc %d: speed magnitude above 0.006: %f", i, a.Speed)
		}
	}
}

func TestPlanetInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := testScene(seed)
		for i, p := range s.Planets {
			if p.Parent != Center && (p.Parent < 0 || p.Parent >= i) {
				t.Fatalf("seed %d planet %d: forward or self parent %d", seed, i, p.Parent)
			}
			if p.Length <= 0 {
				t.Fatalf("seed %d planet %d: non-positive length", seed, i)
			}
			if p.Orbit <= 0 {
				t.Fatalf("seed %d planet %d: non-positive orbit", seed, i)
			}
			if p.Speed < 0.001 || p.Speed >= 0.0025 {
				t.Fatalf("seed %d planet %d: speed out of [0.001,0.0025): %f", seed, i, p.Speed)
			}
			if math.Abs(p.HueShift) > 0.15 {
				t.Fatalf("seed %d planet %d: hue shift out of [-0.15,0.15]: %f", seed, i, p.HueShift)
			}

			// Parent links must reach the center without cycles.
			hops := 0
			for at := i; at != Center; at = s.Planets[at].Parent {
				hops++
				if hops > len(s.Planets) {
					t.Fatalf("seed %d planet %d: parent chain does not terminate", seed, i)
				}
			}
		}
	}
}

func TestStarInvariants(t *testing.T) {
	s := testScene(3)
	for i, st := range s.Stars {
		if st.X < 0 || st.X > s.Width || st.Y < 0 || st.Y > s.Height {
			t.Fatalf("star %d: off canvas (%f,%f)", i, st.X, st.Y)
		}
		if st.Size < 2 || st.Size > 5 {
			t.Fatalf("star %d: size out of [2,5]: %f", i, st.Size)
		}
		if math.Abs(st.HueShift) > 0.2 {
			t.Fatalf("star %d: hue shift out of [-0.2,0.2]: %f", i, st.HueShift)
		}
		if st.Sat < 0 || st.Sat >= 0.7 {
			t.Fatalf("star %d: saturation out of [0,0.7): %f", i, st.Sat)
		}
		if st.Speed < 0.01 || st.Speed >= 0.1 {
			t.Fatalf("star %d: flicker speed out of [0.01,0.1): %f", i, st.Speed)
		}
	}
}

func TestAdvanceIsLinear(t *testing.T) {
	s := testScene(4)

	arcStart := make([]float64, len(s.Arcs))
	for i, a := range s.Arcs {
		arcStart[i] = a.Angle
	}
	planetStart := make([]float64, len(s.Planets))
	for i, p := range s.Planets {
		planetStart[i] = p.Angle
	}

	s.Advance()
	s.Advance()

	for i, a := range s.Arcs {
		want := arcStart[i] + 2*a.Speed
		if math.Abs(a.Angle-want) > 1e-12 {
			t.Fatalf("arc %d: expected angle %f after two ticks, got %f", i, want, a.Angle)
		}
	}
	for i, p := range s.Planets {
		want := planetStart[i] + 2*p.Speed
		if math.Abs(p.Angle-want) > 1e-12 {
			t.Fatalf("planet %d: expected angle %f after two ticks, got %f", i, want, p.Angle)
		}
	}
}

func TestAdvanceDerivesPositions(t *testing.T) {
	s := testScene(5)
	s.Advance()

	for i, p := range s.Planets {
		var cx, cy float64
		if p.Parent != Center {
			cx, cy = s.Planets[p.Parent].X, s.Planets[p.Parent].Y
		}
		wantX := cx + math.Cos(p.Angle)*p.Orbit
		wantY := cy + math.Sin(p.Angle)*p.Orbit
		if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
			t.Fatalf("planet %d: position (%f,%f) does not match target+orbit (%f,%f)",
				i, p.X, p.Y, wantX, wantY)
		}
	}
}

func TestRegenerationIsFresh(t *testing.T) {
	a := testScene(6)
	b := testScene(7)

	// Structurally valid either way, but stochastic in value.
	same := a.NumCircles == b.NumCircles &&
		a.Palette == b.Palette &&
		a.Arcs[0].Angle == b.Arcs[0].Angle
	if same {
		t.Error("two generations with different seeds produced identical scenes")
	}
}

func TestZeroAreaCanvas(t *testing.T) {
	s := Generate(rand.New(rand.NewSource(8)), 0, 0, config.Default())

	if s.Radius != 0 {
		t.Errorf("expected zero radius, got %f", s.Radius)
	}
	for _, a := range s.Arcs {
		if a.Radius != 0 {
			t.Errorf("expected degenerate arc radius, got %f", a.Radius)
		}
	}
	s.Advance() // must not panic
}

func TestStarLuminanceRange(t *testing.T) {
	s := testScene(9)
	n := opensimplex.NewNormalized(9)

	for tick := 0.0; tick < 300; tick++ {
		for _, st := range s.Stars[:25] {
			lum := st.Luminance(n, tick)
			if lum < 0 || lum >= 0.7 {
				t.Fatalf("luminance out of [0,0.7): %f", lum)
			}
		}
	}
}
