package imaging

import (
	"fmt"
	"image"
	"io"

	"github.com/astrogo/fitsio"
)

const fitsMagic = "SIMPLE  ="

func init() {
	image.RegisterFormat("fits", fitsMagic, decodeFITS, decodeFITSConfig)
}

// decodeFITS renders the primary HDU of a FITS stream. fitsio panics on some
// malformed headers (unknown BITPIX, non-numeric BZERO/BSCALE); those come
// back as ErrUnsupportedFormat.
func decodeFITS(r io.Reader) (img image.Image, err error) {
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, p)
		}
	}()

	f, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open FITS stream: %w", err)
	}
	defer f.Close()

	hdu, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return nil, ErrNoImageHDU
	}
	if axes := hdu.Header().Axes(); len(axes) != 2 || axes[0] == 0 || axes[1] == 0 {
		return nil, ErrNoImageHDU
	}

	img = hdu.Image()
	if img == nil {
		return nil, fmt.Errorf("FITS BITPIX %d: %w", hdu.Header().Bitpix(), ErrUnsupportedFormat)
	}
	return img, nil
}

func decodeFITSConfig(r io.Reader) (image.Config, error) {
	img, err := decodeFITS(r)
	if err != nil {
		return image.Config{}, err
	}
	b := img.Bounds()
	return image.Config{ColorModel: img.ColorModel(), Width: b.Dx(), Height: b.Dy()}, nil
}
