package backend

import (
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

const (
	AppearanceLight = "Light"
	AppearanceDark  = "Dark"
	AppearanceAuto  = "Auto"
)

type AppConfig struct {
	WindowWidth         int
	WindowHeight        int
	LastLaunchedVersion string

	// DataSource is the path or http(s) URL of the portfolio JSON document.
	// Relative paths are resolved against the working directory.
	DataSource          string
	WatchDataFile       bool
	MaxImageCacheSizeMB int
	RemoteImageRetries  int
}

type ThemeConfig struct {
	ThemeFile  string
	Appearance string
}

type Config struct {
	Application AppConfig
	Theme       ThemeConfig
}

func DefaultConfig() *Config {
	return &Config{
		Application: AppConfig{
			WindowWidth:         1280,
			WindowHeight:        800,
			DataSource:          "data.json",
			WatchDataFile:       true,
			MaxImageCacheSizeMB: 50,
			RemoteImageRetries:  3,
		},
		Theme: ThemeConfig{
			Appearance: AppearanceAuto,
		},
	}
}

func ReadConfigFile(filepath string) (*Config, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := DefaultConfig()
	if err := toml.NewDecoder(f).Decode(c); err != nil {
		return nil, err
	}
	c.sanitize()
	return c, nil
}

// sanitize clamps out-of-range values that may have been hand-edited into the file.
func (c *Config) sanitize() {
	c.Application.MaxImageCacheSizeMB = clamp(c.Application.MaxImageCacheSizeMB, 1, 500)
	c.Application.RemoteImageRetries = clamp(c.Application.RemoteImageRetries, 0, 10)
	switch c.Theme.Appearance {
	case AppearanceLight, AppearanceDark, AppearanceAuto:
	default:
		c.Theme.Appearance = AppearanceAuto
	}
	c.Application.DataSource = NormalizeDataSource(c.Application.DataSource)
	if c.Application.DataSource == "" {
		c.Application.DataSource = DefaultConfig().Application.DataSource
	}
}

var writeLock sync.Mutex

func (c *Config) WriteConfigFile(filepath string) error {
	if !writeLock.TryLock() {
		return nil // another write in progress
	}
	defer writeLock.Unlock()

	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, b, 0644)
}

func clamp(i, min, max int) int {
	if i < min {
		i = min
	} else if i > max {
		i = max
	}
	return i
}
