// Package service provides business logic for the palette server.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"

	"github.com/plotcycle/server/internal/cache"
	"github.com/plotcycle/server/internal/render"
	"github.com/plotcycle/server/pkg/colormap"
	"github.com/plotcycle/server/pkg/cycle"
)

// ErrUnknownColormap reports a colormap name absent from the registry.
var ErrUnknownColormap = errors.New("unknown colormap")

// ErrBadParam reports an unusable caller-supplied parameter.
var ErrBadParam = errors.New("invalid parameter")

// PaletteServiceConfig contains palette service configuration.
type PaletteServiceConfig struct {
	DefaultColormap string
	DefaultLength   int
	Cache           *cache.Manager
	Renderer        *render.SwatchRenderer
}

// PaletteService resolves palette queries against the colormap
// registry, caching JSON payloads and rendered previews.
type PaletteService struct {
	defaultColormap string
	defaultLength   int
	cache           *cache.Manager
	renderer        *render.SwatchRenderer
}

// NewPaletteService creates a new palette service.
func NewPaletteService(cfg PaletteServiceConfig) *PaletteService {
	defaultColormap := cfg.DefaultColormap
	if defaultColormap == "" {
		defaultColormap = "viridis"
	}
	defaultLength := cfg.DefaultLength
	if defaultLength == 0 {
		defaultLength = 10
	}
	return &PaletteService{
		defaultColormap: defaultColormap,
		defaultLength:   defaultLength,
		cache:           cfg.Cache,
		renderer:        cfg.Renderer,
	}
}

// Query identifies one palette: a colormap plus optional length and
// window overrides. Zero Length means the configured default; nil
// Start/Stop keep the colormap's default window bounds.
type Query struct {
	Name   string
	Length int
	Start  *float64
	Stop   *float64
}

// ColormapInfo describes one registered colormap.
type ColormapInfo struct {
	Name  string  `json:"name"`
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
}

// PaletteColor is one cycle color in wire form.
type PaletteColor struct {
	Hex  string     `json:"hex"`
	RGBA [4]float64 `json:"rgba"`
}

type palettePayload struct {
	Name   string         `json:"name"`
	Length int            `json:"length"`
	Start  float64        `json:"start"`
	Stop   float64        `json:"stop"`
	Colors []PaletteColor `json:"colors"`
}

// Colormaps lists all registered colormaps with their default
// sampling windows.
func (s *PaletteService) Colormaps() []ColormapInfo {
	names := colormap.Names()
	infos := make([]ColormapInfo, 0, len(names))
	for _, name := range names {
		w := cycle.DefaultWindow(name)
		infos = append(infos, ColormapInfo{Name: name, Start: w.Start, Stop: w.Stop})
	}
	return infos
}

// Colormap returns metadata for one colormap.
func (s *PaletteService) Colormap(name string) (ColormapInfo, error) {
	cm, ok := colormap.Lookup(name)
	if !ok {
		return ColormapInfo{}, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	w := cycle.DefaultWindow(cm.Name())
	return ColormapInfo{Name: cm.Name(), Start: w.Start, Stop: w.Stop}, nil
}

// Palette returns the JSON payload for a sampled color cycle.
func (s *PaletteService) Palette(q Query) ([]byte, error) {
	cm, n, opts, win, err := s.resolve(q)
	if err != nil {
		return nil, err
	}

	key := cache.PaletteKey(cm.Name(), n, win.Start, win.Stop)
	if data, ok := s.cache.GetPalette(key); ok {
		return data, nil
	}

	colors, err := cycle.Colors(n, colormap.Of(cm), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParam, err)
	}

	payload := palettePayload{
		Name:   cm.Name(),
		Length: n,
		Start:  win.Start,
		Stop:   win.Stop,
		Colors: make([]PaletteColor, len(colors)),
	}
	for i, c := range colors {
		payload.Colors[i] = PaletteColor{
			Hex: colormap.Hex(c),
			RGBA: [4]float64{
				float64(c.R) / 255,
				float64(c.G) / 255,
				float64(c.B) / 255,
				float64(c.A) / 255,
			},
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	s.cache.SetPalette(key, data)
	return data, nil
}

// Swatch renders a continuous gradient preview of a colormap.
func (s *PaletteService) Swatch(name string, w, h int) ([]byte, error) {
	if name == "" {
		name = s.defaultColormap
	}
	cm, ok := colormap.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}

	key := cache.SwatchKey("swatch", cm.Name(), 0, w, h, 0, 1)
	if data, ok := s.cache.GetImage(key); ok {
		return data, nil
	}

	data, err := s.renderer.RenderSwatch(cm, w, h)
	if err != nil {
		return nil, classifyRenderErr(err)
	}
	s.cache.SetImage(key, data)
	return data, nil
}

// CycleImage renders a discrete block preview of a sampled cycle.
func (s *PaletteService) CycleImage(q Query, w, h int) ([]byte, error) {
	return s.renderCycle("cycle", q, w, h, s.renderer.RenderCycle)
}

// DemoImage renders a line-plot preview that cycles through the
// sampled colors.
func (s *PaletteService) DemoImage(q Query, w, h int) ([]byte, error) {
	return s.renderCycle("demo", q, w, h, s.renderer.RenderDemo)
}

// Stats exposes cache statistics.
func (s *PaletteService) Stats() map[string]interface{} {
	return s.cache.Stats()
}

func (s *PaletteService) renderCycle(kind string, q Query, w, h int, draw func([]color.RGBA, int, int) ([]byte, error)) ([]byte, error) {
	cm, n, opts, win, err := s.resolve(q)
	if err != nil {
		return nil, err
	}

	key := cache.SwatchKey(kind, cm.Name(), n, w, h, win.Start, win.Stop)
	if data, ok := s.cache.GetImage(key); ok {
		return data, nil
	}

	colors, err := cycle.Colors(n, colormap.Of(cm), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParam, err)
	}

	data, err := draw(colors, w, h)
	if err != nil {
		return nil, classifyRenderErr(err)
	}
	s.cache.SetImage(key, data)
	return data, nil
}

func (s *PaletteService) resolve(q Query) (colormap.Colormap, int, []cycle.Option, cycle.Window, error) {
	name := q.Name
	if name == "" {
		name = s.defaultColormap
	}
	cm, ok := colormap.Lookup(name)
	if !ok {
		return nil, 0, nil, cycle.Window{}, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}

	n := q.Length
	if n == 0 {
		n = s.defaultLength
	}
	if n < 1 {
		return nil, 0, nil, cycle.Window{}, fmt.Errorf("%w: length %d", ErrBadParam, n)
	}

	// The effective window only feeds cache keys; cycle.Colors
	// revalidates the bounds itself.
	win := cycle.DefaultWindow(cm.Name())
	var opts []cycle.Option
	if q.Start != nil {
		win.Start = *q.Start
		opts = append(opts, cycle.Start(*q.Start))
	}
	if q.Stop != nil {
		win.Stop = *q.Stop
		opts = append(opts, cycle.Stop(*q.Stop))
	}
	return cm, n, opts, win, nil
}

func classifyRenderErr(err error) error {
	if errors.Is(err, render.ErrBadSize) {
		return fmt.Errorf("%w: %v", ErrBadParam, err)
	}
	return err
}
