package controllers

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"astro-viewer/internal/imaging"
	"astro-viewer/internal/logger"
	"astro-viewer/internal/models"
	"astro-viewer/internal/services"
	"astro-viewer/internal/views"
	"astro-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Command names a user action. Buttons, menu items and shortcuts all
// dispatch through the same table.
type Command string

const (
	CmdOpen       Command = "file.open"
	CmdQuit       Command = "file.quit"
	CmdDockLeft   Command = "view.dock_left"
	CmdDockRight  Command = "view.dock_right"
	CmdToolAction Command = "tools.test"
)

const (
	prefLastDirectory = "last_directory"
	prefDockSide      = "dock_side"
)

// FilePicker asks the user for one file. done gets "" and a nil error on
// cancel.
type FilePicker interface {
	PickImage(dir string, extensions []string, done func(path string, err error))
}

// MainController routes commands to the session and re-renders the view.
type MainController struct {
	ctx        context.Context
	session    *models.Session
	view       *views.MainView
	picker     FilePicker
	images     *services.ImageService
	prefs      fyne.Preferences
	logger     logger.Logger
	extensions []string
	quit       func()

	handlers map[Command]func()
}

// Options carries the controller's collaborators. Loads stop once Context
// is done; nil means context.Background.
type Options struct {
	Context     context.Context
	Session     *models.Session
	View        *views.MainView
	Picker      FilePicker
	Images      *services.ImageService
	Preferences fyne.Preferences
	Logger      logger.Logger
	Extensions  []string
	Quit        func()
}

func NewMainController(opts Options) *MainController {
	mc := &MainController{
		ctx:        opts.Context,
		session:    opts.Session,
		view:       opts.View,
		picker:     opts.Picker,
		images:     opts.Images,
		prefs:      opts.Preferences,
		logger:     opts.Logger,
		extensions: opts.Extensions,
		quit:       opts.Quit,
	}
	if mc.ctx == nil {
		mc.ctx = context.Background()
	}
	if mc.logger == nil {
		mc.logger = logger.NoOpLogger{}
	}
	if mc.images == nil {
		mc.images = services.NewImageService(mc.session, nil, mc.logger)
	}
	if len(mc.extensions) == 0 {
		mc.extensions = imaging.Extensions
	}

	mc.handlers = map[Command]func(){
		CmdOpen:       mc.Open,
		CmdQuit:       mc.Quit,
		CmdDockLeft:   func() { mc.SetDockSide(components.DockLeft) },
		CmdDockRight:  func() { mc.SetDockSide(components.DockRight) },
		CmdToolAction: mc.toolAction,
	}

	mc.bindView()
	return mc
}

func (mc *MainController) bindView() {
	mc.view.SetOpenHandler(mc.handler(CmdOpen))
	mc.view.SetToolActionHandler(mc.handler(CmdToolAction))

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", mc.handler(CmdOpen)),
	)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Dock Tools Left", mc.handler(CmdDockLeft)),
		fyne.NewMenuItem("Dock Tools Right", mc.handler(CmdDockRight)),
	)
	mc.view.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu))

	mc.view.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, mc.handler(CmdOpen))
}

func (mc *MainController) handler(cmd Command) func() {
	return func() {
		if err := mc.Dispatch(cmd); err != nil {
			mc.logger.Error("MainController", err, nil)
		}
	}
}

// Dispatch runs the handler registered for cmd.
func (mc *MainController) Dispatch(cmd Command) error {
	handler, ok := mc.handlers[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd)
	}
	mc.logger.Debug("MainController", "dispatch", map[string]interface{}{
		"command": string(cmd),
	})
	handler()
	return nil
}

// Commands lists the registered commands in name order.
func (mc *MainController) Commands() []Command {
	cmds := make([]Command, 0, len(mc.handlers))
	for cmd := range mc.handlers {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })
	return cmds
}

// Start restores preferences and draws the initial state.
func (mc *MainController) Start() {
	if mc.prefs != nil {
		if side := mc.prefs.String(prefDockSide); side != "" {
			mc.view.SetDockSide(components.DockSide(side))
		}
	}
	mc.Render()
}

// Render draws the current session state.
func (mc *MainController) Render() {
	mc.view.Render(mc.session.State())
}

// Open asks for a file and loads it. Cancelling changes nothing.
func (mc *MainController) Open() {
	mc.picker.PickImage(mc.startDirectory(), mc.extensions, mc.handleSelection)
}

func (mc *MainController) handleSelection(path string, err error) {
	if err != nil {
		mc.logger.Error("MainController", fmt.Errorf("file selection failed: %w", err), nil)
		mc.view.ShowError(err)
		return
	}
	if path == "" {
		mc.logger.Debug("MainController", "file selection cancelled", nil)
		return
	}

	_ = mc.OpenPath(path)
}

// OpenPath decodes path and shows it. On failure the session keeps its
// current mode and the error is surfaced in the view.
func (mc *MainController) OpenPath(path string) error {
	if !imaging.IsSupported(path, mc.extensions) {
		err := &imaging.DecodeError{Path: path, Err: imaging.ErrUnsupportedFormat}
		mc.session.Fail(path, err)
		return mc.openFailed(path, err)
	}

	if _, err := mc.images.LoadImage(mc.ctx, path); err != nil {
		return mc.openFailed(path, err)
	}

	mc.rememberDirectory(path)
	mc.Render()
	return nil
}

func (mc *MainController) openFailed(path string, err error) error {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"path": path,
		"mode": mc.session.Mode().String(),
	})
	mc.Render()
	mc.view.ShowError(err)
	return err
}

// SetDockSide moves the tool dock and remembers the choice.
func (mc *MainController) SetDockSide(side components.DockSide) {
	mc.view.SetDockSide(side)
	if mc.prefs != nil {
		mc.prefs.SetString(prefDockSide, string(mc.view.DockSide()))
	}
}

// Quit ends the event loop.
func (mc *MainController) Quit() {
	if mc.quit != nil {
		mc.quit()
	}
}

func (mc *MainController) toolAction() {
	mc.logger.Debug("MainController", "tool action has no behaviour yet", nil)
}

func (mc *MainController) startDirectory() string {
	if mc.prefs == nil {
		return ""
	}
	return mc.prefs.String(prefLastDirectory)
}

func (mc *MainController) rememberDirectory(path string) {
	if mc.prefs == nil {
		return
	}
	mc.prefs.SetString(prefLastDirectory, filepath.Dir(path))
}

// Shutdown logs the final session state.
func (mc *MainController) Shutdown() {
	stats := mc.session.Stats()
	fields := map[string]interface{}{
		"loads":     stats.Loads,
		"has_image": stats.HasImage,
	}
	if info := mc.images.GetImageInfo(); info.Path != "" {
		fields["last_image"] = info.Path
		fields["last_format"] = info.Format
		fields["shown_for"] = time.Since(info.LoadTime).Round(time.Second).String()
	}
	mc.logger.Info("MainController", "controller shutdown", fields)
}
