package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	statusReady   = "Ready"
	noImageLoaded = "No image loaded"
)

// StatusBar displays application status and information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	imageInfo   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.statusLabel = widget.NewLabel(statusReady)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.imageInfo = widget.NewLabel(noImageLoaded)

	sb.container = container.NewBorder(nil, nil, nil, sb.imageInfo, sb.statusLabel)
	return sb
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetImageInfo updates the image information display
func (sb *StatusBar) SetImageInfo(width, height int, format string) {
	sb.imageInfo.SetText(fmt.Sprintf("Image: %dx%d, %s", width, height, format))
}

func (sb *StatusBar) GetImageInfo() string {
	return sb.imageInfo.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(statusReady)
	sb.imageInfo.SetText(noImageLoaded)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
