package layout

import (
	"fyne.io/fyne/v2"
)

// FixedSizeLayout centers every object at a fixed size, the way the
// placeholder's 100x60 Open button is pinned regardless of window size.
type FixedSizeLayout struct {
	size fyne.Size
}

func NewFixedSizeLayout(size fyne.Size) *FixedSizeLayout {
	return &FixedSizeLayout{size: size}
}

func (l *FixedSizeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	pos := CenterOrigin(l.size, containerSize)
	for _, obj := range objects {
		obj.Resize(l.size)
		obj.Move(pos)
	}
}

func (l *FixedSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return l.size
}

// MinWidthLayout stacks objects vertically and keeps the column at least
// width wide.
type MinWidthLayout struct {
	width   float32
	padding float32
}

func NewMinWidthLayout(width, padding float32) *MinWidthLayout {
	return &MinWidthLayout{width: width, padding: padding}
}

func (l *MinWidthLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	width := containerSize.Width
	if width < l.width {
		width = l.width
	}

	y := float32(0)
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		height := obj.MinSize().Height
		obj.Resize(fyne.NewSize(width, height))
		obj.Move(fyne.NewPos(0, y))
		y += height + l.padding
	}
}

func (l *MinWidthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	width := l.width
	height := float32(0)
	visible := 0
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		objMin := obj.MinSize()
		if objMin.Width > width {
			width = objMin.Width
		}
		height += objMin.Height
		visible++
	}
	if visible > 1 {
		height += l.padding * float32(visible-1)
	}
	return fyne.NewSize(width, height)
}
