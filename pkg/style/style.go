// Package style holds plot styling state: a process-wide default
// configuration plus per-axes overrides.
package style

import (
	"image/color"
	"sync"
)

// The stock cycle used when nothing has been installed (matplotlib's
// tab10 ordering).
var stockCycle = []color.RGBA{
	{31, 119, 180, 255},
	{255, 127, 14, 255},
	{44, 160, 44, 255},
	{214, 39, 40, 255},
	{148, 103, 189, 255},
	{140, 86, 75, 255},
	{227, 119, 194, 255},
	{127, 127, 127, 255},
	{188, 189, 34, 255},
	{23, 190, 207, 255},
}

// Config is rc-style plot configuration. The zero value is usable;
// Default is the process-wide instance. A Config may be shared across
// goroutines.
type Config struct {
	mu         sync.RWMutex
	colorCycle []color.RGBA

	// Drawing defaults consulted by renderers.
	LineWidth  float64
	Background color.RGBA
}

// Default is the process-wide configuration, the Go analogue of a
// global rc dictionary.
var Default = New()

// New returns an isolated configuration with stock defaults.
func New() *Config {
	return &Config{
		LineWidth:  2,
		Background: color.RGBA{255, 255, 255, 255},
	}
}

// SetColorCycle replaces the configuration's color cycle.
func (c *Config) SetColorCycle(colors []color.RGBA) {
	cp := make([]color.RGBA, len(colors))
	copy(cp, colors)
	c.mu.Lock()
	c.colorCycle = cp
	c.mu.Unlock()
}

// ColorCycle returns a copy of the active cycle. When none has been
// installed, the stock cycle is returned.
func (c *Config) ColorCycle() []color.RGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src := c.colorCycle
	if len(src) == 0 {
		src = stockCycle
	}
	cp := make([]color.RGBA, len(src))
	copy(cp, src)
	return cp
}

// ColorAt returns the i-th cycle color, wrapping around.
func (c *Config) ColorAt(i int) color.RGBA {
	cycle := c.ColorCycle()
	if i < 0 {
		i = -i
	}
	return cycle[i%len(cycle)]
}

// Axes is one plotting surface. Its local color cycle, once set,
// shadows the owning Config's cycle; otherwise lookups fall through.
type Axes struct {
	cfg *Config

	mu         sync.RWMutex
	colorCycle []color.RGBA
}

// NewAxes returns a surface styled from cfg. A nil cfg uses Default.
func NewAxes(cfg *Config) *Axes {
	if cfg == nil {
		cfg = Default
	}
	return &Axes{cfg: cfg}
}

// SetColorCycle sets the axes-local color cycle, leaving the owning
// Config untouched.
func (a *Axes) SetColorCycle(colors []color.RGBA) {
	cp := make([]color.RGBA, len(colors))
	copy(cp, colors)
	a.mu.Lock()
	a.colorCycle = cp
	a.mu.Unlock()
}

// ColorCycle returns the effective cycle: the local one when set,
// otherwise the owning Config's.
func (a *Axes) ColorCycle() []color.RGBA {
	a.mu.RLock()
	local := a.colorCycle
	a.mu.RUnlock()
	if len(local) == 0 {
		return a.cfg.ColorCycle()
	}
	cp := make([]color.RGBA, len(local))
	copy(cp, local)
	return cp
}

// ColorAt returns the i-th effective cycle color, wrapping around.
func (a *Axes) ColorAt(i int) color.RGBA {
	cycle := a.ColorCycle()
	if i < 0 {
		i = -i
	}
	return cycle[i%len(cycle)]
}

// Config returns the owning configuration.
func (a *Axes) Config() *Config { return a.cfg }
