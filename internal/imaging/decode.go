package imaging

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"
)

// Decoded is a bitmap together with where it came from.
type Decoded struct {
	Path   string
	Format string
	Image  image.Image
}

// Decode loads the file at path. Every failure is returned as a *DecodeError.
func Decode(path string) (*Decoded, error) {
	format := FormatFromPath(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Format: format, Err: err}
	}
	defer f.Close()

	img, detected, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			err = fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, &DecodeError{Path: path, Format: format, Err: err}
	}

	if img.Bounds().Empty() {
		return nil, &DecodeError{Path: path, Format: detected, Err: ErrEmptyImage}
	}

	return &Decoded{Path: path, Format: detected, Image: img}, nil
}
