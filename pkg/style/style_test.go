package style

import (
	"image/color"
	"testing"
)

func TestStockCycleWhenUnset(t *testing.T) {
	t.Parallel()

	cfg := New()
	cycle := cfg.ColorCycle()
	if len(cycle) != 10 {
		t.Fatalf("stock cycle length = %d, want 10", len(cycle))
	}
	if cycle[0] != (color.RGBA{31, 119, 180, 255}) {
		t.Errorf("unexpected first stock color: %#v", cycle[0])
	}
}

func TestSetColorCycleCopies(t *testing.T) {
	t.Parallel()

	cfg := New()
	in := []color.RGBA{{1, 2, 3, 255}, {4, 5, 6, 255}}
	cfg.SetColorCycle(in)

	// Mutating the caller's slice must not reach the config.
	in[0] = color.RGBA{99, 99, 99, 255}
	if got := cfg.ColorAt(0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("cycle aliased caller slice: %#v", got)
	}

	// Mutating the returned slice must not reach the config either.
	out := cfg.ColorCycle()
	out[1] = color.RGBA{88, 88, 88, 255}
	if got := cfg.ColorAt(1); got != (color.RGBA{4, 5, 6, 255}) {
		t.Errorf("cycle aliased returned slice: %#v", got)
	}
}

func TestColorAtWraps(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.SetColorCycle([]color.RGBA{{1, 0, 0, 255}, {0, 1, 0, 255}, {0, 0, 1, 255}})

	if got, want := cfg.ColorAt(3), cfg.ColorAt(0); got != want {
		t.Errorf("ColorAt(3) = %#v, want wrap to %#v", got, want)
	}
	if got, want := cfg.ColorAt(7), cfg.ColorAt(1); got != want {
		t.Errorf("ColorAt(7) = %#v, want wrap to %#v", got, want)
	}
}

func TestAxesFallsThroughToConfig(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.SetColorCycle([]color.RGBA{{10, 20, 30, 255}})

	ax := NewAxes(cfg)
	if got := ax.ColorAt(0); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("axes did not inherit config cycle: %#v", got)
	}
}

func TestAxesShadowsConfig(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.SetColorCycle([]color.RGBA{{10, 20, 30, 255}})

	ax := NewAxes(cfg)
	ax.SetColorCycle([]color.RGBA{{7, 7, 7, 255}})

	if got := ax.ColorAt(0); got != (color.RGBA{7, 7, 7, 255}) {
		t.Errorf("axes cycle not used: %#v", got)
	}
	if got := cfg.ColorAt(0); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("config mutated by axes: %#v", got)
	}
}

func TestNewAxesNilConfigUsesDefault(t *testing.T) {
	ax := NewAxes(nil)
	if ax.Config() != Default {
		t.Error("expected nil config to resolve to Default")
	}
}
