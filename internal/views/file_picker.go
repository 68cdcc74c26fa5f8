package views

import (
	"os"

	"astro-viewer/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// FileDialogPicker asks the user for one image file with fyne's open dialog.
type FileDialogPicker struct {
	window fyne.Window
	logger logger.Logger
}

func NewFileDialogPicker(window fyne.Window, log logger.Logger) *FileDialogPicker {
	return &FileDialogPicker{window: window, logger: log}
}

// PickImage shows the dialog starting in dir. done receives "" on cancel.
func (p *FileDialogPicker) PickImage(dir string, extensions []string, done func(path string, err error)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			done("", err)
			return
		}
		if reader == nil {
			done("", nil)
			return
		}

		path := reader.URI().Path()
		if closeErr := reader.Close(); closeErr != nil {
			p.logger.Warning("FilePicker", "failed to close selection", map[string]interface{}{
				"path":  path,
				"error": closeErr.Error(),
			})
		}
		done(path, nil)
	}, p.window)

	fd.SetFilter(storage.NewExtensionFileFilter(extensions))
	if location := p.startLocation(dir); location != nil {
		fd.SetLocation(location)
	}
	fd.Resize(fyne.NewSize(800, 520))
	fd.Show()
}

func (p *FileDialogPicker) startLocation(dir string) fyne.ListableURI {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}
		dir = wd
	}

	location, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		p.logger.Debug("FilePicker", "start directory not listable", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
		return nil
	}
	return location
}
