package sketch

import "github.com/hajimehoshi/ebiten/v2"

// zoomGeoM magnifies by factor and re-centers on the pointer, so
// holding the button pans the view toward the cursor. The transform
// lives only for the composite draw of one tick; it never persists
// into scene state.
func zoomGeoM(w, h, mx, my, factor float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-mx, -my)
	g.Scale(factor, factor)
	g.Translate(w/2, h/2)
	return g
}
