package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appDirName = "astro-viewer"

const (
	DockLeft  = "left"
	DockRight = "right"
)

// Config holds startup settings. Values come from defaults, then the TOML
// file, then the environment.
type Config struct {
	LogLevel     string   `toml:"log_level"`
	JSONLogs     bool     `toml:"json_logs"`
	Scaler       string   `toml:"scaler"`
	WindowWidth  float32  `toml:"window_width"`
	WindowHeight float32  `toml:"window_height"`
	DockSide     string   `toml:"dock_side"`
	Extensions   []string `toml:"extensions"`
}

// Default mirrors the fixed 1000x600 main window and the image filter list.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		Scaler:       "smooth",
		WindowWidth:  1000,
		WindowHeight: 600,
		DockSide:     DockRight,
		Extensions:   []string{".png", ".jpg", ".jpeg", ".fits", ".tiff", ".tif"},
	}
}

// FilePath returns the config file location, honouring ASTRO_CONFIG.
func FilePath() (string, error) {
	if p := os.Getenv("ASTRO_CONFIG"); p != "" {
		return p, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appDirName, "config.toml"), nil
}

// Load reads the config file if present and applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	cfgPath, err := FilePath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(os.Getenv)
	return cfg, cfg.Validate()
}

// LoadFile overlays the TOML file at path on the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("ASTRO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	} else if getenv("ASTRO_DEBUG") == "1" {
		c.LogLevel = "debug"
	}
	if getenv("ASTRO_JSON_LOGS") == "true" {
		c.JSONLogs = true
	}
	if v := getenv("ASTRO_SCALER"); v != "" {
		c.Scaler = v
	}
}

// Validate normalises extensions and rejects values the UI cannot honour.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}

	c.DockSide = strings.ToLower(c.DockSide)
	if c.DockSide != DockLeft && c.DockSide != DockRight {
		return fmt.Errorf("invalid dock side %q", c.DockSide)
	}

	if len(c.Extensions) == 0 {
		return errors.New("no image extensions configured")
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
	return nil
}
