package controllers

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"astro-viewer/internal/imaging"
	"astro-viewer/internal/logger"
	"astro-viewer/internal/models"
	"astro-viewer/internal/services"
	"astro-viewer/internal/views"
	"astro-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePicker answers every PickImage call with a canned result.
type fakePicker struct {
	path  string
	err   error
	dirs  []string
	exts  []string
	calls int
}

func (p *fakePicker) PickImage(dir string, extensions []string, done func(string, error)) {
	p.calls++
	p.dirs = append(p.dirs, dir)
	p.exts = extensions
	done(p.path, p.err)
}

type fixture struct {
	app        fyne.App
	session    *models.Session
	view       *views.MainView
	picker     *fakePicker
	controller *MainController
	quits      int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	a := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(1000, 600))

	f := &fixture{
		app:     a,
		session: models.NewSession(),
		picker:  &fakePicker{},
	}
	f.view = views.NewMainView(w, imaging.NewSmoothScaler(), components.DockRight, logger.NoOpLogger{})
	f.controller = NewMainController(Options{
		Session:     f.session,
		View:        f.view,
		Picker:      f.picker,
		Preferences: a.Preferences(),
		Logger:      logger.NoOpLogger{},
		Quit:        func() { f.quits++ },
	})
	f.controller.Start()
	return f
}

func writePNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return path
}

func TestInitialStateIsPlaceholder(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, models.Placeholder, f.session.Mode())
	assert.Equal(t, models.Placeholder, f.view.Mode())
	assert.Same(t, f.view.GetPlaceholder().GetContainer(), f.view.Content())
	assert.Equal(t, components.PlaceholderHint, f.view.GetPlaceholder().Hint())
	assert.False(t, f.view.GetPlaceholder().OpenButton().Disabled())
}

func TestCancelledDialogChangesNothing(t *testing.T) {
	f := newFixture(t)

	test.Tap(f.view.GetPlaceholder().OpenButton())

	assert.Equal(t, 1, f.picker.calls)
	assert.Equal(t, imaging.Extensions, f.picker.exts)
	assert.Equal(t, models.Placeholder, f.session.Mode())
	assert.Empty(t, f.session.SelectedPath())
	assert.NoError(t, f.session.State().Err)
}

func TestOpenValidImageShowsIt(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	f.picker.path = writePNG(t, dir, "sample.png", 800, 600, color.White)

	require.NoError(t, f.controller.Dispatch(CmdOpen))

	assert.Equal(t, models.ImageShown, f.session.Mode())
	assert.Equal(t, f.picker.path, f.session.SelectedPath())
	assert.Equal(t, models.ImageShown, f.view.Mode())
	assert.Same(t, f.view.GetImageDisplay(), f.view.Content())

	scaled := f.view.GetImageDisplay().ScaledSize()
	require.NotZero(t, scaled.X)
	assert.InDelta(t, 800.0/600.0, float64(scaled.X)/float64(scaled.Y), 0.01)

	assert.Equal(t, dir, f.app.Preferences().String(prefLastDirectory))
}

func TestSecondOpenStartsInLastDirectory(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	f.picker.path = writePNG(t, dir, "a.png", 20, 10, color.White)

	f.controller.Open()
	f.controller.Open()

	require.Len(t, f.picker.dirs, 2)
	assert.Equal(t, dir, f.picker.dirs[1])
}

func TestOpeningSecondImageReplacesFirst(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	first := writePNG(t, dir, "red.png", 100, 100, color.RGBA{R: 255, A: 255})
	second := writePNG(t, dir, "blue.png", 50, 100, color.RGBA{B: 255, A: 255})

	require.NoError(t, f.controller.OpenPath(first))
	firstData := f.session.State().Image
	require.NoError(t, f.controller.OpenPath(second))

	state := f.session.State()
	assert.Equal(t, second, state.SelectedPath)
	assert.NotSame(t, firstData, state.Image)
	assert.Equal(t, 50, state.Image.Width)
	assert.Same(t, state.Image.Image, f.view.GetImageDisplay().Source())

	displayed := f.view.GetImageDisplay().Displayed()
	require.NotNil(t, displayed)
	b := displayed.Bounds()
	r, _, _, _ := displayed.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2).RGBA()
	assert.Zero(t, r>>8)
}

func TestCorruptFileFromPlaceholderStaysPlaceholder(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not a jpeg"), 0o644))
	f.picker.path = path

	f.controller.Open()

	assert.Equal(t, models.Placeholder, f.session.Mode())
	assert.Empty(t, f.session.SelectedPath())

	var decodeErr *imaging.DecodeError
	require.True(t, errors.As(f.session.State().Err, &decodeErr))
	assert.Equal(t, path, decodeErr.Path)
	assert.NotEmpty(t, f.view.GetPlaceholder().ErrorText())
	assert.Equal(t, "Selected: "+path, f.view.GetPlaceholder().Selected())
}

func TestUnsupportedExtensionIsRejectedBeforeDecoding(t *testing.T) {
	f := newFixture(t)
	decoded := 0
	f.controller.images = services.NewImageService(f.session, func(string) (*imaging.Decoded, error) {
		decoded++
		return nil, errors.New("unreachable")
	}, logger.NoOpLogger{})

	err := f.controller.OpenPath("/notes/readme.txt")

	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
	assert.Zero(t, decoded)
	assert.Equal(t, models.Placeholder, f.session.Mode())
	assert.Equal(t, "/notes/readme.txt", f.session.State().AttemptedPath)
	assert.Equal(t, "Selected: /notes/readme.txt", f.view.GetPlaceholder().Selected())
}

func TestOpenPathAfterContextDone(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	f.controller.ctx = ctx
	cancel()

	path := writePNG(t, t.TempDir(), "late.png", 10, 10, color.White)
	err := f.controller.OpenPath(path)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.Placeholder, f.session.Mode())
}

func TestShutdownWithImage(t *testing.T) {
	f := newFixture(t)
	path := writePNG(t, t.TempDir(), "m31.png", 12, 8, color.White)
	require.NoError(t, f.controller.OpenPath(path))

	assert.NotPanics(t, f.controller.Shutdown)
	assert.Equal(t, path, f.controller.images.GetImageInfo().Path)
}

func TestCorruptFileAfterImageKeepsImage(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", 30, 20, color.White)
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))

	require.NoError(t, f.controller.OpenPath(good))
	err := f.controller.OpenPath(bad)

	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
	assert.Equal(t, models.ImageShown, f.session.Mode())
	assert.Equal(t, good, f.session.SelectedPath())
	assert.Same(t, f.view.GetImageDisplay(), f.view.Content())
}

func TestPickerErrorIsNotAStateChange(t *testing.T) {
	f := newFixture(t)
	f.picker.err = errors.New("portal unavailable")

	f.controller.Open()

	assert.Equal(t, models.Placeholder, f.session.Mode())
	assert.NoError(t, f.session.State().Err)
}

func TestDecoderOverride(t *testing.T) {
	f := newFixture(t)
	f.controller.images = services.NewImageService(f.session, func(path string) (*imaging.Decoded, error) {
		return &imaging.Decoded{Path: path, Format: "fits", Image: image.NewGray(image.Rect(0, 0, 8, 4))}, nil
	}, logger.NoOpLogger{})

	require.NoError(t, f.controller.OpenPath("/sky/m42.fits"))

	state := f.session.State()
	assert.Equal(t, "fits", state.Image.Format)
	assert.Equal(t, "/sky/m42.fits", state.SelectedPath)
}

func TestDockCommandsPersistSide(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.controller.Dispatch(CmdDockLeft))
	assert.Equal(t, components.DockLeft, f.view.DockSide())
	assert.Equal(t, "left", f.app.Preferences().String(prefDockSide))

	require.NoError(t, f.controller.Dispatch(CmdDockRight))
	assert.Equal(t, components.DockRight, f.view.DockSide())
}

func TestStartRestoresDockSide(t *testing.T) {
	f := newFixture(t)
	f.app.Preferences().SetString(prefDockSide, "left")

	f.controller.Start()

	assert.Equal(t, components.DockLeft, f.view.DockSide())
}

func TestDispatchTable(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []Command{CmdOpen, CmdQuit, CmdToolAction, CmdDockLeft, CmdDockRight}, f.controller.Commands())
	assert.Error(t, f.controller.Dispatch("file.print"))

	require.NoError(t, f.controller.Dispatch(CmdToolAction))
	assert.Equal(t, models.Placeholder, f.session.Mode())

	require.NoError(t, f.controller.Dispatch(CmdQuit))
	assert.Equal(t, 1, f.quits)
}

func TestToolButtonIsInert(t *testing.T) {
	f := newFixture(t)

	test.Tap(f.view.GetToolDock().TestButton())

	assert.Zero(t, f.picker.calls)
	assert.Equal(t, models.Placeholder, f.session.Mode())
}
