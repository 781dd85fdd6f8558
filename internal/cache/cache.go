// Package cache provides caching for rendered images and palette
// payloads.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config contains cache configuration.
type Config struct {
	ImageCacheSizeMB int
	ImageTTL         time.Duration
	PaletteCacheSize int
}

// Manager manages image and palette caches.
type Manager struct {
	imageCache   *bigcache.BigCache
	paletteCache *lru.Cache[string, []byte]
}

// NewManager creates a new cache manager.
func NewManager(cfg Config) (*Manager, error) {
	imageCacheConfig := bigcache.Config{
		Shards:             256,
		LifeWindow:         cfg.ImageTTL,
		CleanWindow:        cfg.ImageTTL / 2,
		MaxEntriesInWindow: 10000,
		MaxEntrySize:       256 * 1024, // 256KB per rendered PNG
		HardMaxCacheSize:   cfg.ImageCacheSizeMB,
		Verbose:            false,
	}

	imageCache, err := bigcache.New(context.Background(), imageCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}

	paletteCache, err := lru.New[string, []byte](cfg.PaletteCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create palette cache: %w", err)
	}

	return &Manager{
		imageCache:   imageCache,
		paletteCache: paletteCache,
	}, nil
}

// GetImage retrieves a rendered image from cache.
func (m *Manager) GetImage(key string) ([]byte, bool) {
	data, err := m.imageCache.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetImage stores a rendered image in cache.
func (m *Manager) SetImage(key string, data []byte) error {
	return m.imageCache.Set(key, data)
}

// GetPalette retrieves a palette payload from cache.
func (m *Manager) GetPalette(key string) ([]byte, bool) {
	return m.paletteCache.Get(key)
}

// SetPalette stores a palette payload in cache.
func (m *Manager) SetPalette(key string, data []byte) {
	m.paletteCache.Add(key, data)
}

// SwatchKey generates a cache key for a rendered image. kind
// distinguishes the endpoint (swatch, cycle, demo).
func SwatchKey(kind, name string, n, w, h int, start, stop float64) string {
	return fmt.Sprintf("%s:%s:%d:%dx%d:%g-%g", kind, name, n, w, h, start, stop)
}

// PaletteKey generates a cache key for a palette payload.
func PaletteKey(name string, n int, start, stop float64) string {
	return fmt.Sprintf("palette:%s:%d:%g-%g", name, n, start, stop)
}

// Stats returns cache statistics.
func (m *Manager) Stats() map[string]interface{} {
	return map[string]interface{}{
		"image_cache_len":   m.imageCache.Len(),
		"image_cache_cap":   m.imageCache.Capacity(),
		"palette_cache_len": m.paletteCache.Len(),
	}
}

// Close closes the cache manager.
func (m *Manager) Close() error {
	return m.imageCache.Close()
}
