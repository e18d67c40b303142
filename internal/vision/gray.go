package vision

import (
	"image"
	"runtime"

	"github.com/disintegration/gift"
	"gocv.io/x/gocv"
)

var grayscale = gift.New(gift.Grayscale())

// Gray flattens img to 8 bit luminance, origin at 0,0.
func Gray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) && g.Stride == g.Rect.Dx() {
		return g
	}
	dst := image.NewGray(grayscale.Bounds(img.Bounds()))
	grayscale.Draw(dst, img)
	return dst
}

// FrameMat converts a captured image into a single channel Mat. The caller closes it.
func FrameMat(img image.Image) (gocv.Mat, error) {
	if img == nil || img.Bounds().Empty() {
		return gocv.Mat{}, ErrEmptyImage
	}
	g := Gray(img)
	alias, err := gocv.ImageGrayToMatGray(g)
	if err != nil {
		return gocv.Mat{}, err
	}
	// alias may share memory with g.Pix; detach it.
	mat := alias.Clone()
	alias.Close()
	runtime.KeepAlive(g)
	return mat, nil
}
