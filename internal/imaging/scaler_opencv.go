//go:build opencv

package imaging

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// OpenCVScaler resamples through gocv. Area interpolation for shrinking,
// bicubic for enlarging.
type OpenCVScaler struct{}

func newOpenCVScaler() (Scaler, error) {
	return OpenCVScaler{}, nil
}

func (OpenCVScaler) Name() string {
	return "opencv"
}

func (OpenCVScaler) Scale(src image.Image, size image.Point) (image.Image, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", size.X, size.Y)
	}

	mat, err := gocv.ImageToMatRGBA(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer mat.Close()

	interpolation := gocv.InterpolationCubic
	if size.X < mat.Cols() {
		interpolation = gocv.InterpolationArea
	}

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Resize(mat, &dst, size, 0, 0, interpolation)
	if dst.Empty() {
		return nil, fmt.Errorf("resize to %dx%d produced an empty Mat", size.X, size.Y)
	}

	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert Mat to image: %w", err)
	}
	return out, nil
}
