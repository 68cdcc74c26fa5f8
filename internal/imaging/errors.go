package imaging

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrEmptyImage        = errors.New("image has no pixels")
	ErrNoImageHDU        = errors.New("primary HDU is not a 2D image")
	ErrScalerUnavailable = errors.New("scaler not available in this build")
)

// DecodeError reports a file that could not be turned into a bitmap.
type DecodeError struct {
	Path   string
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to decode %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
