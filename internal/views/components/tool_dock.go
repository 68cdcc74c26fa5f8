package components

import (
	"astro-viewer/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type DockSide string

const (
	DockLeft  DockSide = "left"
	DockRight DockSide = "right"
)

const (
	dockTitle      = "Tools"
	dockMinWidth   = 200
	dockShareRight = 0.75
	dockShareLeft  = 0.25
)

// ToolDock is the movable side panel. It holds one placeholder action.
type ToolDock struct {
	panel      *fyne.Container
	split      *container.Split
	content    fyne.CanvasObject
	testButton *widget.Button
	side       DockSide

	actionHandler func()
}

func NewToolDock(content fyne.CanvasObject, side DockSide) *ToolDock {
	d := &ToolDock{content: content}
	d.testButton = widget.NewButton("Test", func() {
		if d.actionHandler != nil {
			d.actionHandler()
		}
	})

	title := widget.NewLabelWithStyle(dockTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	tools := container.New(layout.NewMinWidthLayout(dockMinWidth, theme.Padding()), d.testButton)
	d.panel = container.NewBorder(
		container.NewVBox(title, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(tools),
	)

	d.split = container.NewHSplit(content, d.panel)
	d.SetSide(side)
	return d
}

// SetSide moves the panel to the given window edge. Unknown sides mean right.
func (d *ToolDock) SetSide(side DockSide) {
	if side != DockLeft {
		side = DockRight
	}
	d.side = side

	if side == DockLeft {
		d.split.Leading, d.split.Trailing = d.panel, d.content
		d.split.SetOffset(dockShareLeft)
	} else {
		d.split.Leading, d.split.Trailing = d.content, d.panel
		d.split.SetOffset(dockShareRight)
	}
	d.split.Refresh()
}

func (d *ToolDock) Side() DockSide {
	return d.side
}

// SetActionHandler wires the placeholder tool button.
func (d *ToolDock) SetActionHandler(handler func()) {
	d.actionHandler = handler
}

func (d *ToolDock) TestButton() *widget.Button {
	return d.testButton
}

func (d *ToolDock) Split() *container.Split {
	return d.split
}

func (d *ToolDock) Panel() *fyne.Container {
	return d.panel
}
