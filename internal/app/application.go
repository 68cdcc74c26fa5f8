package app

import (
	"context"
	"fmt"
	"runtime"

	"astro-viewer/internal/config"
	"astro-viewer/internal/controllers"
	"astro-viewer/internal/imaging"
	"astro-viewer/internal/logger"
	"astro-viewer/internal/models"
	"astro-viewer/internal/services"
	"astro-viewer/internal/shutdown"
	"astro-viewer/internal/views"
	"astro-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Astro Viewer"
	AppID      = "io.github.astroviewer"
	AppVersion = "0.3.0"
)

// Exit codes returned by Main.
const (
	ExitOK = iota
	ExitInitFailure
)

// Application wires the session, view and controller to one fyne app.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *config.Config
	logger  logger.Logger

	session    *models.Session
	images     *services.ImageService
	view       *views.MainView
	controller *controllers.MainController
	shutdown   *shutdown.Manager
}

// Main loads config, builds the application and runs it until the window
// closes.
func Main() int {
	cfg, err := config.Load()
	if err != nil {
		logger.NewConsoleLogger(logger.ErrorLevel).Error("Application", fmt.Errorf("configuration failed: %w", err), nil)
		return ExitInitFailure
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := fyneapp.NewWithID(AppID)

	application, err := NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		appLogger.Error("Application", fmt.Errorf("initialization failed: %w", err), nil)
		return ExitInitFailure
	}

	return application.Run(context.Background())
}

// NewApplication builds the main window inside fyneApp.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	scaler, err := imaging.NewScaler(cfg.Scaler)
	if err != nil {
		return nil, fmt.Errorf("failed to create scaler: %w", err)
	}

	window := fyneApp.NewWindow(views.WindowTitle)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	session := models.NewSession()
	view := views.NewMainView(window, scaler, components.DockSide(cfg.DockSide), log)

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		config:   cfg,
		logger:   log,
		session:  session,
		images:   services.NewImageService(session, imaging.Decode, log),
		view:     view,
		shutdown: shutdown.NewManager(log),
	}

	application.controller = controllers.NewMainController(controllers.Options{
		Context:     application.shutdown.Context(),
		Session:     session,
		View:        view,
		Picker:      views.NewFileDialogPicker(window, log),
		Images:      application.images,
		Preferences: fyneApp.Preferences(),
		Logger:      log,
		Extensions:  cfg.Extensions,
		Quit:        fyneApp.Quit,
	})
	application.controller.Start()

	application.shutdown.Register(application.images)
	application.shutdown.Register(application.controller)

	window.SetOnClosed(func() {
		log.Info("Application", "window closed", nil)
	})

	log.Info("Application", "application initialized", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"scaler":      scaler.Name(),
		"dock_side":   string(view.DockSide()),
		"go_version":  runtime.Version(),
	})

	return application, nil
}

// Run shows the window and blocks in the event loop. Cancelling ctx or a
// termination signal quits the loop.
func (a *Application) Run(ctx context.Context) int {
	a.shutdown.Listen(a.quitFromGoroutine)

	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info("Application", "context cancelled, quitting", nil)
			a.quitFromGoroutine()
		case <-a.shutdown.Done():
		}
	}()

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "event loop finished", nil)
	return ExitOK
}

func (a *Application) quitFromGoroutine() {
	fyne.Do(func() {
		a.fyneApp.Quit()
	})
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) Session() *models.Session {
	return a.session
}
