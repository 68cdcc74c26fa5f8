package services

import (
	"context"
	"fmt"
	"time"

	"astro-viewer/internal/imaging"
	"astro-viewer/internal/logger"
	"astro-viewer/internal/models"
)

// Decoder turns a path into a bitmap.
type Decoder func(path string) (*imaging.Decoded, error)

// ImageService loads images from disk into the session.
type ImageService struct {
	decode  Decoder
	session *models.Session
	logger  logger.Logger
}

// NewImageService creates a new image service. A nil decoder means
// imaging.Decode.
func NewImageService(session *models.Session, decode Decoder, log logger.Logger) *ImageService {
	if decode == nil {
		decode = imaging.Decode
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &ImageService{
		decode:  decode,
		session: session,
		logger:  log,
	}
}

// LoadImage decodes path and makes it the session's displayed image. On
// failure the error is recorded on the session and nothing else changes.
func (is *ImageService) LoadImage(ctx context.Context, path string) (*models.ImageData, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	startTime := time.Now()

	decoded, err := is.decode(path)
	if err != nil {
		is.session.Fail(path, err)
		return nil, err
	}

	imageData := models.NewImageData(path, decoded.Format, decoded.Image)
	if err := is.session.Open(imageData); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	is.logger.Info("ImageService", "image loaded", map[string]interface{}{
		"path":     path,
		"format":   imageData.Format,
		"width":    imageData.Width,
		"height":   imageData.Height,
		"duration": time.Since(startTime).String(),
	})

	return imageData, nil
}

// GetImageInfo describes the displayed image.
func (is *ImageService) GetImageInfo() ImageInfo {
	state := is.session.State()
	if state.Image == nil {
		return ImageInfo{}
	}
	return ImageInfo{
		Path:     state.Image.Path,
		Width:    state.Image.Width,
		Height:   state.Image.Height,
		Format:   state.Image.Format,
		LoadTime: state.Image.LoadTime,
	}
}

// ImageInfo contains detailed information about an image
type ImageInfo struct {
	Path     string
	Width    int
	Height   int
	Format   string
	LoadTime time.Time
}

// Shutdown releases the displayed image.
func (is *ImageService) Shutdown() {
	is.session.Shutdown()
}
