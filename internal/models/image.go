package models

import (
	"errors"
	"image"
	"sync"
	"time"
)

// ViewMode is which content the main window shows.
type ViewMode int

const (
	Placeholder ViewMode = iota
	ImageShown
)

func (m ViewMode) String() string {
	switch m {
	case ImageShown:
		return "ImageShown"
	default:
		return "Placeholder"
	}
}

var (
	ErrNoImage = errors.New("opened image has no pixels")
	ErrNoPath  = errors.New("opened image has no source path")
)

// ImageData is the bitmap the session currently owns.
type ImageData struct {
	Path     string
	Format   string
	Image    image.Image
	Width    int
	Height   int
	LoadTime time.Time
}

// NewImageData wraps a decoded bitmap.
func NewImageData(path, format string, img image.Image) *ImageData {
	data := &ImageData{
		Path:     path,
		Format:   format,
		Image:    img,
		LoadTime: time.Now(),
	}
	if img != nil {
		size := img.Bounds().Size()
		data.Width, data.Height = size.X, size.Y
	}
	return data
}

// Empty reports whether there is nothing to draw.
func (d *ImageData) Empty() bool {
	return d == nil || d.Image == nil || d.Width == 0 || d.Height == 0
}

// ViewState is the render input for the main window: a tagged union of
// Placeholder (with optional error) and ImageShown (with the bitmap).
// AttemptedPath is the last path the user picked, whether or not it opened.
type ViewState struct {
	Mode          ViewMode
	SelectedPath  string
	AttemptedPath string
	Image         *ImageData
	Err           error
}

// Session owns the selected path, the displayed image and the view mode.
type Session struct {
	mu            sync.RWMutex
	selectedPath  string
	attemptedPath string
	image         *ImageData
	lastErr       error
	loads         int
}

func NewSession() *Session {
	return &Session{}
}

// State returns a snapshot of the current view state.
func (s *Session) State() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := ViewState{
		SelectedPath:  s.selectedPath,
		AttemptedPath: s.attemptedPath,
		Image:         s.image,
		Err:           s.lastErr,
	}
	if !s.image.Empty() {
		state.Mode = ImageShown
	}
	return state
}

// Mode is shorthand for State().Mode.
func (s *Session) Mode() ViewMode {
	return s.State().Mode
}

// SelectedPath returns the path of the image being shown, or "".
func (s *Session) SelectedPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedPath
}

// Open moves the session to ImageShown with img, replacing any previous
// bitmap. An empty image is rejected and leaves the session unchanged.
func (s *Session) Open(img *ImageData) error {
	if img.Empty() {
		path := ""
		if img != nil {
			path = img.Path
		}
		s.Fail(path, ErrNoImage)
		return ErrNoImage
	}
	if img.Path == "" {
		s.Fail("", ErrNoPath)
		return ErrNoPath
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.image = img
	s.selectedPath = img.Path
	s.attemptedPath = img.Path
	s.lastErr = nil
	s.loads++
	return nil
}

// Fail records a failed attempt to open path. Mode, selected path and image
// stay as they were.
func (s *Session) Fail(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attemptedPath = path
	s.lastErr = err
}

// Stats summarises the session for logging.
func (s *Session) Stats() SessionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := SessionStats{
		HasImage: !s.image.Empty(),
		Loads:    s.loads,
	}
	if stats.HasImage {
		stats.Width, stats.Height = s.image.Width, s.image.Height
		stats.MemoryBytes = int64(s.image.Width) * int64(s.image.Height) * 4
	}
	return stats
}

type SessionStats struct {
	HasImage    bool
	Loads       int
	Width       int
	Height      int
	MemoryBytes int64
}

// Shutdown releases the displayed bitmap.
func (s *Session) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.image = nil
}
