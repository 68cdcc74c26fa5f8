package components

import (
	"fmt"

	"astro-viewer/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynelayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	PlaceholderHint = "Click to select a file"
	OpenButtonLabel = "Open"
)

// Placeholder is the content shown before any image is loaded.
type Placeholder struct {
	container     *fyne.Container
	hintLabel     *widget.Label
	openButton    *widget.Button
	selectedLabel *widget.Label
	errorLabel    *widget.Label

	openHandler func()
}

func NewPlaceholder() *Placeholder {
	p := &Placeholder{}
	p.createComponents()
	p.buildLayout()
	return p
}

func (p *Placeholder) createComponents() {
	p.hintLabel = widget.NewLabelWithStyle(PlaceholderHint, fyne.TextAlignCenter, fyne.TextStyle{})
	p.openButton = widget.NewButton(OpenButtonLabel, func() {
		if p.openHandler != nil {
			p.openHandler()
		}
	})
	p.selectedLabel = widget.NewLabelWithStyle("Selected:", fyne.TextAlignCenter, fyne.TextStyle{})

	p.errorLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	p.errorLabel.Importance = widget.DangerImportance
	p.errorLabel.Wrapping = fyne.TextWrapWord
	p.errorLabel.Hide()
}

func (p *Placeholder) buildLayout() {
	button := container.New(layout.NewFixedSizeLayout(fyne.NewSize(100, 60)), p.openButton)

	p.container = container.NewVBox(
		fynelayout.NewSpacer(),
		p.hintLabel,
		button,
		p.selectedLabel,
		p.errorLabel,
		fynelayout.NewSpacer(),
	)
}

// SetOpenHandler wires the Open button.
func (p *Placeholder) SetOpenHandler(handler func()) {
	p.openHandler = handler
}

// SetSelected updates the "Selected:" line.
func (p *Placeholder) SetSelected(path string) {
	if path == "" {
		p.selectedLabel.SetText("Selected:")
		return
	}
	p.selectedLabel.SetText(fmt.Sprintf("Selected: %s", path))
}

// SetError shows err under the button, or hides the line when err is nil.
func (p *Placeholder) SetError(err error) {
	if err == nil {
		p.errorLabel.SetText("")
		p.errorLabel.Hide()
		return
	}
	p.errorLabel.SetText(err.Error())
	p.errorLabel.Show()
}

func (p *Placeholder) Hint() string {
	return p.hintLabel.Text
}

func (p *Placeholder) Selected() string {
	return p.selectedLabel.Text
}

func (p *Placeholder) ErrorText() string {
	if !p.errorLabel.Visible() {
		return ""
	}
	return p.errorLabel.Text
}

func (p *Placeholder) OpenButton() *widget.Button {
	return p.openButton
}

func (p *Placeholder) GetContainer() *fyne.Container {
	return p.container
}
