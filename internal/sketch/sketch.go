// Package sketch drives the quasar scene: one ebiten.Game that owns
// the live Scene, advances it every tick and redraws the whole frame
// from scratch. Regeneration swaps the entire scene between ticks;
// nothing else mutates it.
package sketch

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/iburimskiy/quasar/internal/config"
	"github.com/iburimskiy/quasar/internal/scene"
)

type Sketch struct {
	cfg   *config.Config
	rng   *rand.Rand
	flick opensimplex.Noise

	scn  *scene.Scene
	tick float64

	width, height      int
	outsideW, outsideH int

	world *ebiten.Image
	pixel *ebiten.Image

	zooming  bool
	showHelp bool
	lastErr  error
}

func New(cfg *config.Config) *Sketch {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Sketch{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		flick:    opensimplex.NewNormalized(seed),
		width:    cfg.Width,
		height:   cfg.Height,
		outsideW: cfg.Width,
		outsideH: cfg.Height,
		showHelp: true,
	}
	s.regenerate()
	return s
}

func (s *Sketch) regenerate() {
	s.scn = scene.Generate(s.rng, float64(s.width), float64(s.height), s.cfg)
}

func (s *Sketch) Update() error {
	// Window resized since the last tick: rebuild at the new size.
	if s.outsideW != s.width || s.outsideH != s.height {
		s.width, s.height = s.outsideW, s.outsideH
		s.world = nil
		s.regenerate()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.regenerate()
	}
	s.zooming = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.showHelp = !s.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := s.saveScreenshot(); err != nil {
			s.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	s.tick++
	s.scn.Advance()
	return nil
}

func (s *Sketch) Draw(screen *ebiten.Image) {
	if s.world == nil {
		s.world = ebiten.NewImage(s.width, s.height)
	}
	s.drawScene(s.world)

	op := &ebiten.DrawImageOptions{}
	if s.zooming {
		mx, my := ebiten.CursorPosition()
		op.GeoM = zoomGeoM(float64(s.width), float64(s.height), float64(mx), float64(my), s.cfg.Zoom)
	}
	screen.DrawImage(s.world, op)

	if s.showHelp {
		status := "Hold left: zoom | Right-click / R: new scene | S: screenshot | H: hide help | Esc/Q: quit"
		if s.lastErr != nil {
			status += " | Error: " + s.lastErr.Error()
		}
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (s *Sketch) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		s.outsideW, s.outsideH = outsideWidth, outsideHeight
	}
	return s.outsideW, s.outsideH
}
