package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Scaler resamples a bitmap to an exact pixel size.
type Scaler interface {
	Scale(src image.Image, size image.Point) (image.Image, error)
	Name() string
}

// DrawScaler resamples with an x/image/draw kernel.
type DrawScaler struct {
	name   string
	kernel draw.Interpolator
}

func NewSmoothScaler() *DrawScaler {
	return &DrawScaler{name: "smooth", kernel: draw.CatmullRom}
}

func NewFastScaler() *DrawScaler {
	return &DrawScaler{name: "fast", kernel: draw.ApproxBiLinear}
}

// NewScaler returns the scaler registered under name. An empty name is smooth.
func NewScaler(name string) (Scaler, error) {
	switch name {
	case "", "smooth":
		return NewSmoothScaler(), nil
	case "fast":
		return NewFastScaler(), nil
	case "opencv":
		return newOpenCVScaler()
	default:
		return nil, fmt.Errorf("unknown scaler %q", name)
	}
}

func (s *DrawScaler) Name() string {
	return s.name
}

func (s *DrawScaler) Scale(src image.Image, size image.Point) (image.Image, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", size.X, size.Y)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	s.kernel.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// ScaleToFit resamples src to the aspect-preserving fit inside bounds.
func ScaleToFit(s Scaler, src image.Image, bounds image.Point) (image.Image, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	target := FitSize(src.Bounds().Size(), bounds)
	if target == (image.Point{}) {
		return nil, fmt.Errorf("cannot fit %v into %v", src.Bounds().Size(), bounds)
	}
	if target == src.Bounds().Size() {
		return src, nil
	}
	return s.Scale(src, target)
}
