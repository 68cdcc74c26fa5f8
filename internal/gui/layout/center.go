package layout

import (
	"image"

	"fyne.io/fyne/v2"
)

// CenterOrigin is the top-left position that centers an object of size inner
// inside an area of size outer: ((W-w)/2, (H-h)/2).
func CenterOrigin(inner, outer fyne.Size) fyne.Position {
	return fyne.NewPos((outer.Width-inner.Width)/2, (outer.Height-inner.Height)/2)
}

// PixelBounds converts a canvas size to whole device pixels at scale.
func PixelBounds(size fyne.Size, scale float32) image.Point {
	if scale <= 0 {
		scale = 1
	}
	return image.Pt(int(size.Width*scale+0.5), int(size.Height*scale+0.5))
}

// CanvasSize converts device pixels back to canvas units at scale.
func CanvasSize(px image.Point, scale float32) fyne.Size {
	if scale <= 0 {
		scale = 1
	}
	return fyne.NewSize(float32(px.X)/scale, float32(px.Y)/scale)
}
