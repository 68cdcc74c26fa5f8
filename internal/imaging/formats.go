package imaging

import (
	"path/filepath"
	"strings"
)

// Extensions accepted by the open dialog.
var Extensions = []string{".png", ".jpg", ".jpeg", ".fits", ".tiff", ".tif"}

// FormatFromPath names the format implied by a file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".tiff", ".tif":
		return "tiff"
	case ".fits", ".fit", ".fts":
		return "fits"
	default:
		return ""
	}
}

// IsSupported reports whether path carries one of the given extensions.
func IsSupported(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
