package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writeImage(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch FormatFromPath(name) {
	case "png":
		require.NoError(t, png.Encode(f, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 90}))
	case "tiff":
		require.NoError(t, tiff.Encode(f, img, nil))
	default:
		t.Fatalf("no encoder for %s", name)
	}
	return path
}

const fitsBlock = 2880

// writeFITS builds an 8-bit 2D primary HDU padded to whole FITS blocks.
func writeFITS(t *testing.T, w, h int) string {
	t.Helper()
	return writeFITSCards(t, w, h, "8")
}

// writeFITSCards is writeFITS with a chosen BITPIX and extra header cards,
// given as key/value pairs.
func writeFITSCards(t *testing.T, w, h int, bitpix string, extra ...string) string {
	t.Helper()
	require.Zero(t, len(extra)%2)
	card := func(key, value string) string {
		return fmt.Sprintf("%-8s= %20s%50s", key, value, "")
	}

	header := card("SIMPLE", "T") +
		card("BITPIX", bitpix) +
		card("NAXIS", "2") +
		card("NAXIS1", strconv.Itoa(w)) +
		card("NAXIS2", strconv.Itoa(h))
	for i := 0; i < len(extra); i += 2 {
		header += card(extra[i], extra[i+1])
	}
	header += fmt.Sprintf("%-80s", "END")
	header += strings.Repeat(" ", fitsBlock-len(header)%fitsBlock)

	pixels := make([]byte, fitsBlock)
	for i := 0; i < w*h && i < len(pixels); i++ {
		pixels[i] = byte(i * 10)
	}

	path := filepath.Join(t.TempDir(), "frame.fits")
	require.NoError(t, os.WriteFile(path, append([]byte(header), pixels...), 0o644))
	return path
}
