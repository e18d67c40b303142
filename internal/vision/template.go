// Package vision finds a reference image inside a screen capture.
package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

var (
	ErrEmptyImage        = errors.New("empty image")
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	ErrTemplateTooLarge  = errors.New("template larger than frame")
)

// Template is a grayscale reference image. It is read only once loaded.
type Template struct {
	mat           gocv.Mat
	Width, Height int
}

// DecodeTemplate decodes an encoded image (PNG, JPEG, BMP...) of one, three or
// four 8 bit channels into a grayscale template.
func DecodeTemplate(data []byte) (*Template, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return nil, fmt.Errorf("decoding template: %w", err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("decoding template: %w", ErrEmptyImage)
	}

	gray, err := grayMat(mat)
	if err != nil {
		return nil, err
	}
	return newTemplate(gray), nil
}

func newTemplate(mat gocv.Mat) *Template {
	return &Template{mat: mat, Width: mat.Cols(), Height: mat.Rows()}
}

func (t *Template) Close() error {
	return t.mat.Close()
}

// grayMat returns a new single channel copy of src, which keeps ownership of src with the caller.
func grayMat(src gocv.Mat) (gocv.Mat, error) {
	var code gocv.ColorConversionCode
	switch src.Type() {
	case gocv.MatTypeCV8UC1:
		return src.Clone(), nil
	case gocv.MatTypeCV8UC3:
		code = gocv.ColorBGRToGray
	case gocv.MatTypeCV8UC4:
		code = gocv.ColorBGRAToGray
	default:
		return gocv.Mat{}, fmt.Errorf("%w: %d channels of type %v", ErrUnsupportedFormat, src.Channels(), src.Type())
	}

	dst := gocv.NewMat()
	gocv.CvtColor(src, &dst, code)
	return dst, nil
}
