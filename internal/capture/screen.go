// Package capture grabs the contents of a display.
package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

var ErrNoDisplay = errors.New("no active display")

// Shot is one captured screen.
type Shot struct {
	Image image.Image
	// Origin is the desktop position of the image's top-left pixel.
	Origin image.Point
}

// ToScreen maps a point in Image to desktop coordinates.
func (s Shot) ToScreen(p image.Point) image.Point {
	return p.Sub(s.Image.Bounds().Min).Add(s.Origin)
}

// Screen captures a whole display. The zero value captures the primary one.
type Screen struct {
	Display int
}

func (s Screen) Bounds() (image.Rectangle, error) {
	if n := screenshot.NumActiveDisplays(); s.Display < 0 || s.Display >= n {
		return image.Rectangle{}, fmt.Errorf("%w: display %d of %d", ErrNoDisplay, s.Display, n)
	}
	return screenshot.GetDisplayBounds(s.Display), nil
}

func (s Screen) Capture() (Shot, error) {
	bounds, err := s.Bounds()
	if err != nil {
		return Shot{}, err
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return Shot{}, fmt.Errorf("capturing display %d: %w", s.Display, err)
	}
	return Shot{Image: img, Origin: bounds.Min}, nil
}
