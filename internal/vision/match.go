package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Match is the best normalized correlation score of a template over a frame.
type Match struct {
	Score float32
	// Offset is the top-left corner of the best window within the frame.
	Offset image.Point
}

// Center is the point to click for a match of t.
func (m Match) Center(t *Template) image.Point {
	return m.Offset.Add(image.Pt(t.Width/2, t.Height/2))
}

func (m Match) Found(threshold float32) bool {
	return m.Score >= threshold
}

// Locate computes the TM_CCOEFF_NORMED surface of t over frame and returns its
// global maximum. frame must be single channel 8 bit.
func Locate(frame gocv.Mat, t *Template) (Match, error) {
	if frame.Empty() {
		return Match{}, ErrEmptyImage
	}
	if t.Width > frame.Cols() || t.Height > frame.Rows() {
		return Match{}, fmt.Errorf("%w: %dx%d in %dx%d", ErrTemplateTooLarge, t.Width, t.Height, frame.Cols(), frame.Rows())
	}

	result := gocv.NewMat()
	defer result.Close()
	mask := gocv.NewMat()
	defer mask.Close()

	gocv.MatchTemplate(frame, t.mat, &result, gocv.TmCcoeffNormed, mask)
	_, score, _, loc := gocv.MinMaxLoc(result)

	return Match{Score: score, Offset: loc}, nil
}

// Find converts img and locates t in it.
func Find(img image.Image, t *Template) (Match, error) {
	frame, err := FrameMat(img)
	if err != nil {
		return Match{}, err
	}
	defer frame.Close()
	return Locate(frame, t)
}
