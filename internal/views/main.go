package views

import (
	"fmt"
	"path/filepath"

	"astro-viewer/internal/imaging"
	"astro-viewer/internal/logger"
	"astro-viewer/internal/models"
	"astro-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const WindowTitle = "Astro Viewer Main Window"

// MainView owns the window content: one swappable content slot, the tool
// dock around it and a status bar.
type MainView struct {
	window fyne.Window
	logger logger.Logger

	mainContainer *fyne.Container
	contentSlot   *fyne.Container
	placeholder   *components.Placeholder
	imageDisplay  *components.ImageDisplay
	toolDock      *components.ToolDock
	statusBar     *components.StatusBar

	mode      models.ViewMode
	displayed *models.ImageData
}

// NewMainView builds the widget tree and installs it in window.
func NewMainView(window fyne.Window, scaler imaging.Scaler, dockSide components.DockSide, log logger.Logger) *MainView {
	mv := &MainView{
		window: window,
		logger: log,
	}

	mv.placeholder = components.NewPlaceholder()
	mv.imageDisplay = components.NewImageDisplay(scaler, log)
	mv.statusBar = components.NewStatusBar()

	mv.contentSlot = container.NewStack(mv.placeholder.GetContainer())
	mv.toolDock = components.NewToolDock(mv.contentSlot, dockSide)

	mv.mainContainer = container.NewBorder(nil, mv.statusBar.GetContainer(), nil, nil, mv.toolDock.Split())
	mv.window.SetContent(mv.mainContainer)
	mv.window.SetTitle(WindowTitle)

	return mv
}

// Render redraws the window from state. It is the only place the content
// slot changes.
func (mv *MainView) Render(state models.ViewState) {
	switch state.Mode {
	case models.ImageShown:
		if mv.displayed != state.Image {
			mv.imageDisplay.SetImage(state.Image.Image)
			mv.displayed = state.Image
		}
		mv.swapContent(mv.imageDisplay)
		mv.window.SetTitle(fmt.Sprintf("%s - %s", WindowTitle, filepath.Base(state.SelectedPath)))
		mv.statusBar.SetImageInfo(state.Image.Width, state.Image.Height, state.Image.Format)
	default:
		mv.swapContent(mv.placeholder.GetContainer())
		mv.window.SetTitle(WindowTitle)
		mv.statusBar.Reset()
	}

	mv.placeholder.SetSelected(state.AttemptedPath)
	mv.placeholder.SetError(state.Err)

	switch {
	case state.Err != nil:
		mv.statusBar.SetStatus(state.Err.Error())
	case state.Mode == models.ImageShown:
		mv.statusBar.SetStatus(fmt.Sprintf("Selected: %s", state.SelectedPath))
	default:
		mv.statusBar.SetStatus("Ready")
	}

	if mv.mode != state.Mode {
		mv.logger.Debug("MainView", "content switched", map[string]interface{}{
			"from": mv.mode.String(),
			"to":   state.Mode.String(),
		})
	}
	mv.mode = state.Mode
}

func (mv *MainView) swapContent(obj fyne.CanvasObject) {
	if len(mv.contentSlot.Objects) == 1 && mv.contentSlot.Objects[0] == obj {
		return
	}
	mv.contentSlot.Objects = []fyne.CanvasObject{obj}
	mv.contentSlot.Refresh()
}

// SetOpenHandler wires the placeholder's Open button.
func (mv *MainView) SetOpenHandler(handler func()) {
	mv.placeholder.SetOpenHandler(handler)
}

// SetToolActionHandler wires the dock's placeholder action.
func (mv *MainView) SetToolActionHandler(handler func()) {
	mv.toolDock.SetActionHandler(handler)
}

// SetDockSide moves the tool dock.
func (mv *MainView) SetDockSide(side components.DockSide) {
	mv.toolDock.SetSide(side)
}

func (mv *MainView) DockSide() components.DockSide {
	return mv.toolDock.Side()
}

// SetMainMenu installs the window menu.
func (mv *MainView) SetMainMenu(menu *fyne.MainMenu) {
	mv.window.SetMainMenu(menu)
}

// AddShortcut binds a keyboard shortcut on the window canvas.
func (mv *MainView) AddShortcut(shortcut fyne.Shortcut, handler func()) {
	mv.window.Canvas().AddShortcut(shortcut, func(fyne.Shortcut) {
		handler()
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// Mode is the mode of the last render.
func (mv *MainView) Mode() models.ViewMode {
	return mv.mode
}

// Content is what the content slot currently holds.
func (mv *MainView) Content() fyne.CanvasObject {
	if len(mv.contentSlot.Objects) == 0 {
		return nil
	}
	return mv.contentSlot.Objects[0]
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetPlaceholder() *components.Placeholder {
	return mv.placeholder
}

func (mv *MainView) GetImageDisplay() *components.ImageDisplay {
	return mv.imageDisplay
}

func (mv *MainView) GetToolDock() *components.ToolDock {
	return mv.toolDock
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
