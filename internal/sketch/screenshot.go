package sketch

import (
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/ncruces/zenity"
)

// saveScreenshot asks for a destination and writes the current world
// image as PNG. Cancelling the dialog is not an error.
func (s *Sketch) saveScreenshot() error {
	if s.world == nil {
		return nil
	}

	name, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("quasar.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	b := s.world.Bounds()
	img := image.NewRGBA(b)
	s.world.ReadPixels(img.Pix)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
