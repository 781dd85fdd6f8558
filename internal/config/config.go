// Package config handles configuration loading for the palette server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	Server    ServerConfig            `yaml:"server"`
	Cache     CacheConfig             `yaml:"cache"`
	Render    RenderConfig            `yaml:"render"`
	Colormaps ColormapConfig          `yaml:"colormaps"`
	Windows   map[string]WindowConfig `yaml:"windows"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// CacheConfig contains caching settings.
type CacheConfig struct {
	ImageSizeMB      int `yaml:"image_size_mb"`
	ImageTTLMinutes  int `yaml:"image_ttl_minutes"`
	PaletteCacheSize int `yaml:"palette_cache_size"`
}

// RenderConfig contains swatch rendering settings.
type RenderConfig struct {
	SwatchWidth     int    `yaml:"swatch_width"`
	SwatchHeight    int    `yaml:"swatch_height"`
	DefaultColormap string `yaml:"default_colormap"`
	DefaultLength   int    `yaml:"default_length"`
}

// ColormapConfig contains colormap loading settings.
type ColormapConfig struct {
	// Dir is scanned at startup for .cmap / .cmap.zst definition files.
	Dir string `yaml:"dir"`
}

// WindowConfig overrides the default sampling window for one colormap.
type WindowConfig struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Cache: CacheConfig{
			ImageSizeMB:      64,
			ImageTTLMinutes:  10,
			PaletteCacheSize: 1000,
		},
		Render: RenderConfig{
			SwatchWidth:     512,
			SwatchHeight:    48,
			DefaultColormap: "viridis",
			DefaultLength:   10,
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = defaults.Server.CORSOrigins
	}
	if cfg.Cache.ImageSizeMB == 0 {
		cfg.Cache.ImageSizeMB = defaults.Cache.ImageSizeMB
	}
	if cfg.Cache.ImageTTLMinutes == 0 {
		cfg.Cache.ImageTTLMinutes = defaults.Cache.ImageTTLMinutes
	}
	if cfg.Cache.PaletteCacheSize == 0 {
		cfg.Cache.PaletteCacheSize = defaults.Cache.PaletteCacheSize
	}
	if cfg.Render.SwatchWidth == 0 {
		cfg.Render.SwatchWidth = defaults.Render.SwatchWidth
	}
	if cfg.Render.SwatchHeight == 0 {
		cfg.Render.SwatchHeight = defaults.Render.SwatchHeight
	}
	if cfg.Render.DefaultColormap == "" {
		cfg.Render.DefaultColormap = defaults.Render.DefaultColormap
	}
	if cfg.Render.DefaultLength == 0 {
		cfg.Render.DefaultLength = defaults.Render.DefaultLength
	}
}

func validate(cfg *Config) error {
	for name, w := range cfg.Windows {
		if w.Start < 0 || w.Start > 1 || w.Stop < 0 || w.Stop > 1 {
			return fmt.Errorf("config: window for %q out of [0, 1]: start=%v stop=%v", name, w.Start, w.Stop)
		}
		if !(w.Start < w.Stop) {
			return fmt.Errorf("config: window for %q: start %v must be less than stop %v", name, w.Start, w.Stop)
		}
	}
	return nil
}
