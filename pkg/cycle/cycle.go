// Package cycle builds color cycles and value-to-color mappers from
// colormaps, and installs cycles into plot styling state.
package cycle

import (
	"fmt"
	"image/color"

	"github.com/plotcycle/server/pkg/colormap"
	"github.com/plotcycle/server/pkg/style"
)

// Range is the parameter domain a mapper accepts, Min < Max.
type Range struct {
	Min float64
	Max float64
}

func (r Range) validate() error {
	if !(r.Min < r.Max) {
		return fmt.Errorf("cycle: invalid parameter range [%v, %v]: min must be less than max", r.Min, r.Max)
	}
	return nil
}

// Window is a start/stop sub-range of a colormap's index domain.
// Sequential maps with light extremes use a narrowed window so cycle
// colors stay readable on a white background.
type Window struct {
	Start float64
	Stop  float64
}

func (w Window) validate() error {
	if w.Start < 0 || w.Start > 1 || w.Stop < 0 || w.Stop > 1 {
		return fmt.Errorf("cycle: window [%v, %v] out of [0, 1]", w.Start, w.Stop)
	}
	if !(w.Start < w.Stop) {
		return fmt.Errorf("cycle: window [%v, %v]: start must be less than stop", w.Start, w.Stop)
	}
	return nil
}

// Option overrides one bound of the sampling window.
type Option func(*Window)

// Start overrides the window's start bound.
func Start(v float64) Option { return func(w *Window) { w.Start = v } }

// Stop overrides the window's stop bound.
func Stop(v float64) Option { return func(w *Window) { w.Stop = v } }

// Func maps a parameter value to a color. Values outside the mapper's
// parameter range are rejected.
type Func func(v float64) (color.RGBA, error)

// Mapper returns a function mapping values in pr to colors from the
// referenced colormap. The colormap index runs linearly from the
// window start at pr.Min to the window stop at pr.Max; the window
// defaults to the full [0, 1] domain.
func Mapper(pr Range, src colormap.Ref, opts ...Option) (Func, error) {
	if err := pr.validate(); err != nil {
		return nil, err
	}
	cm, err := src.Resolve()
	if err != nil {
		return nil, err
	}

	win := Window{Start: 0, Stop: 1}
	for _, opt := range opts {
		opt(&win)
	}
	if err := win.validate(); err != nil {
		return nil, err
	}

	scale := (win.Stop - win.Start) / (pr.Max - pr.Min)
	return func(v float64) (color.RGBA, error) {
		if v < pr.Min || v > pr.Max {
			return color.RGBA{}, fmt.Errorf("cycle: value %v outside parameter range [%v, %v]", v, pr.Min, pr.Max)
		}
		return cm.At(win.Start + (v-pr.Min)*scale), nil
	}, nil
}

// Colors samples the referenced colormap at length evenly spaced
// points across its sampling window and returns the colors in order.
// The window defaults to the colormap's entry in the default-window
// table (full domain for unlisted maps); Start/Stop options override
// individual bounds. A single sample is taken at the window start.
//
// Adjacent colors become hard to tell apart for large lengths
// (roughly above 10).
func Colors(length int, src colormap.Ref, opts ...Option) ([]color.RGBA, error) {
	if length < 1 {
		return nil, fmt.Errorf("cycle: length must be at least 1, got %d", length)
	}
	cm, err := src.Resolve()
	if err != nil {
		return nil, err
	}

	// Copy of the table entry, so overrides never touch shared state.
	win := DefaultWindow(cm.Name())
	for _, opt := range opts {
		opt(&win)
	}
	if err := win.validate(); err != nil {
		return nil, err
	}

	colors := make([]color.RGBA, length)
	if length == 1 {
		colors[0] = cm.At(win.Start)
		return colors, nil
	}
	step := (win.Stop - win.Start) / float64(length-1)
	for i := range colors {
		colors[i] = cm.At(win.Start + float64(i)*step)
	}
	return colors, nil
}

// Target is a plotting surface with a local color cycle.
type Target interface {
	SetColorCycle([]color.RGBA)
}

// Install builds a color cycle via Colors and installs it. A nil
// target mutates the process-wide style.Default; otherwise only the
// given target's cycle changes.
func Install(length int, src colormap.Ref, target Target, opts ...Option) error {
	colors, err := Colors(length, src, opts...)
	if err != nil {
		return err
	}
	if target == nil {
		style.Default.SetColorCycle(colors)
		return nil
	}
	target.SetColorCycle(colors)
	return nil
}
