package components

import (
	"image"

	"astro-viewer/internal/gui/layout"
	"astro-viewer/internal/imaging"
	"astro-viewer/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ImageDisplay shows one bitmap scaled to fit its own size. The source is
// kept so every resize rescales from the original pixels.
type ImageDisplay struct {
	widget.BaseWidget

	scaler imaging.Scaler
	logger logger.Logger

	source     image.Image
	scaled     image.Image
	scaledFor  image.Point
	scaledSize image.Point
}

func NewImageDisplay(scaler imaging.Scaler, log logger.Logger) *ImageDisplay {
	d := &ImageDisplay{scaler: scaler, logger: log}
	d.ExtendBaseWidget(d)
	return d
}

// SetImage replaces the source bitmap. The previous scaled copy is dropped.
func (d *ImageDisplay) SetImage(img image.Image) {
	d.source = img
	d.scaled = nil
	d.scaledFor = image.Point{}
	d.scaledSize = image.Point{}
	d.Refresh()
}

func (d *ImageDisplay) Source() image.Image {
	return d.source
}

// Displayed is the bitmap currently drawn, after scaling.
func (d *ImageDisplay) Displayed() image.Image {
	return d.scaled
}

// ScaledSize is the pixel size of Displayed.
func (d *ImageDisplay) ScaledSize() image.Point {
	return d.scaledSize
}

func (d *ImageDisplay) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewImageFromImage(nil)
	raster.FillMode = canvas.ImageFillStretch
	raster.ScaleMode = canvas.ImageScaleSmooth

	return &imageDisplayRenderer{
		display: d,
		raster:  raster,
		objects: []fyne.CanvasObject{raster},
	}
}

func (d *ImageDisplay) canvasScale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(d); c != nil {
		return c.Scale()
	}
	return 1
}

// rescale brings d.scaled up to date for the given widget size.
func (d *ImageDisplay) rescale(size fyne.Size, scale float32) {
	if d.source == nil {
		d.scaled = nil
		return
	}

	bounds := layout.PixelBounds(size, scale)
	if d.scaled != nil && bounds == d.scaledFor {
		return
	}

	scaled, err := imaging.ScaleToFit(d.scaler, d.source, bounds)
	if err != nil {
		d.logger.Debug("ImageDisplay", "skipping rescale", map[string]interface{}{
			"bounds": bounds.String(),
			"reason": err.Error(),
		})
		d.scaled = nil
		d.scaledFor = image.Point{}
		d.scaledSize = image.Point{}
		return
	}

	d.scaled = scaled
	d.scaledFor = bounds
	d.scaledSize = scaled.Bounds().Size()

	d.logger.Debug("ImageDisplay", "image rescaled", map[string]interface{}{
		"source": d.source.Bounds().Size().String(),
		"bounds": bounds.String(),
		"scaled": d.scaledSize.String(),
		"scaler": d.scaler.Name(),
	})
}

type imageDisplayRenderer struct {
	display *ImageDisplay
	raster  *canvas.Image
	objects []fyne.CanvasObject
}

func (r *imageDisplayRenderer) Layout(size fyne.Size) {
	scale := r.display.canvasScale()
	r.display.rescale(size, scale)

	if r.display.scaled == nil {
		r.raster.Image = nil
		r.raster.Hide()
		return
	}

	rasterSize := layout.CanvasSize(r.display.scaledSize, scale)
	r.raster.Image = r.display.scaled
	r.raster.Resize(rasterSize)
	r.raster.Move(layout.CenterOrigin(rasterSize, size))
	r.raster.Show()
}

func (r *imageDisplayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *imageDisplayRenderer) Refresh() {
	r.Layout(r.display.Size())
	r.raster.Refresh()
}

func (r *imageDisplayRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *imageDisplayRenderer) Destroy() {}
