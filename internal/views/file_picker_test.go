package views

import (
	"os"
	"path/filepath"
	"testing"

	"astro-viewer/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPicker(t *testing.T) *FileDialogPicker {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return NewFileDialogPicker(w, logger.NoOpLogger{})
}

func TestStartLocationUsesDirectory(t *testing.T) {
	p := newTestPicker(t)
	dir := t.TempDir()

	location := p.startLocation(dir)
	require.NotNil(t, location)
	assert.Equal(t, dir, location.Path())
}

func TestStartLocationDefaultsToWorkingDirectory(t *testing.T) {
	p := newTestPicker(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	location := p.startLocation("")
	require.NotNil(t, location)
	assert.Equal(t, wd, location.Path())
}

func TestStartLocationUnlistable(t *testing.T) {
	p := newTestPicker(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "frame.fits")
	require.NoError(t, os.WriteFile(file, []byte("SIMPLE"), 0o644))

	assert.Nil(t, p.startLocation(filepath.Join(dir, "gone")))
	assert.Nil(t, p.startLocation(file))
}
