package cycle

import (
	"image/color"
	"math"
	"testing"

	"github.com/plotcycle/server/pkg/colormap"
	"github.com/plotcycle/server/pkg/style"
)

// ramp runs black to white, so channel values expose the sampled
// colormap index directly.
var ramp = colormap.NewLinear("ramp", []color.RGBA{
	{0, 0, 0, 255},
	{255, 255, 255, 255},
})

// closeRGBA tolerates one count per channel; sampling positions are
// floats and a half-count landing may truncate either way.
func closeRGBA(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		v := int(x) - int(y)
		if v < 0 {
			v = -v
		}
		return v
	}
	return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1 && d(a.A, b.A) <= 1
}

func TestMapperEndpoints(t *testing.T) {
	t.Parallel()

	m, err := Mapper(Range{Min: 0, Max: 1}, colormap.Of(colormap.Viridis))
	if err != nil {
		t.Fatalf("mapper: %v", err)
	}

	got, err := m(0)
	if err != nil {
		t.Fatalf("m(0): %v", err)
	}
	if want := colormap.Viridis.At(0); got != want {
		t.Errorf("m(0) = %#v, want cmap start %#v", got, want)
	}

	got, err = m(1)
	if err != nil {
		t.Fatalf("m(1): %v", err)
	}
	if want := colormap.Viridis.At(1); got != want {
		t.Errorf("m(1) = %#v, want cmap stop %#v", got, want)
	}
}

func TestMapperWindowed(t *testing.T) {
	t.Parallel()

	m, err := Mapper(Range{Min: 10, Max: 20}, colormap.Of(colormap.Viridis), Start(0.1), Stop(0.9))
	if err != nil {
		t.Fatalf("mapper: %v", err)
	}

	got, err := m(10)
	if err != nil {
		t.Fatalf("m(10): %v", err)
	}
	if want := colormap.Viridis.At(0.1); got != want {
		t.Errorf("m(pmin) = %#v, want cmap(start) %#v", got, want)
	}

	got, err = m(20)
	if err != nil {
		t.Fatalf("m(20): %v", err)
	}
	if want := colormap.Viridis.At(0.9); !closeRGBA(got, want) {
		t.Errorf("m(pmax) = %#v, want cmap(stop) %#v", got, want)
	}
}

func TestMapperMonotonic(t *testing.T) {
	t.Parallel()

	m, err := Mapper(Range{Min: -5, Max: 5}, colormap.Of(ramp))
	if err != nil {
		t.Fatalf("mapper: %v", err)
	}

	prev := -1
	for v := -5.0; v <= 5; v += 0.5 {
		c, err := m(v)
		if err != nil {
			t.Fatalf("m(%v): %v", v, err)
		}
		if int(c.R) < prev {
			t.Fatalf("index decreased at v=%v: %d < %d", v, c.R, prev)
		}
		prev = int(c.R)
	}
}

func TestMapperRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	m, err := Mapper(Range{Min: 0, Max: 1}, colormap.Of(ramp))
	if err != nil {
		t.Fatalf("mapper: %v", err)
	}
	if _, err := m(1.01); err == nil {
		t.Error("expected error for v > max")
	}
	if _, err := m(-0.01); err == nil {
		t.Error("expected error for v < min")
	}
}

func TestMapperPreconditions(t *testing.T) {
	t.Parallel()

	if _, err := Mapper(Range{Min: 1, Max: 1}, colormap.Of(ramp)); err == nil {
		t.Error("expected error for empty range")
	}
	if _, err := Mapper(Range{Min: 2, Max: 1}, colormap.Of(ramp)); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := Mapper(Range{Min: 0, Max: 1}, colormap.Of(ramp), Start(0.8), Stop(0.2)); err == nil {
		t.Error("expected error for start > stop")
	}
	if _, err := Mapper(Range{Min: 0, Max: 1}, colormap.Of(ramp), Stop(1.5)); err == nil {
		t.Error("expected error for stop > 1")
	}
	if _, err := Mapper(Range{Min: 0, Max: 1}, colormap.Named("bogus")); err == nil {
		t.Error("expected error for unknown colormap")
	}
}

func TestColorsLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 50} {
		colors, err := Colors(n, colormap.Named("viridis"))
		if err != nil {
			t.Fatalf("Colors(%d): %v", n, err)
		}
		if len(colors) != n {
			t.Errorf("Colors(%d) returned %d colors", n, len(colors))
		}
	}

	if _, err := Colors(0, colormap.Named("viridis")); err == nil {
		t.Error("expected error for length 0")
	}
}

func TestColorsEvenSpacing(t *testing.T) {
	t.Parallel()

	colors, err := Colors(5, colormap.Of(ramp), Start(0.2), Stop(0.8))
	if err != nil {
		t.Fatalf("colors: %v", err)
	}

	want := []float64{0.2, 0.35, 0.5, 0.65, 0.8}
	for i, pos := range want {
		got := float64(colors[i].R) / 255
		if math.Abs(got-pos) > 1.5/255 {
			t.Errorf("color %d sampled at %v, want %v", i, got, pos)
		}
	}
}

func TestColorsSingleSampleAtStart(t *testing.T) {
	t.Parallel()

	colors, err := Colors(1, colormap.Of(colormap.Viridis), Start(0.3))
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	if colors[0] != colormap.Viridis.At(0.3) {
		t.Errorf("single color = %#v, want sample at start", colors[0])
	}
}

func TestColorsDefaultWindows(t *testing.T) {
	t.Parallel()

	// viridis has no table entry: full domain.
	colors, err := Colors(3, colormap.Named("viridis"))
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	if colors[0] != colormap.Viridis.At(0) || colors[2] != colormap.Viridis.At(1) {
		t.Error("expected full-domain window for unlisted colormap")
	}

	// YlOrBr narrows to (0.15, 0.95).
	colors, err = Colors(3, colormap.Named("YlOrBr"))
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	if colors[0] != colormap.YlOrBr.At(0.15) {
		t.Error("expected first YlOrBr color at window start 0.15")
	}
	if !closeRGBA(colors[2], colormap.YlOrBr.At(0.95)) {
		t.Error("expected last YlOrBr color at window stop 0.95")
	}
}

func TestColorsOverrideDoesNotLeak(t *testing.T) {
	t.Parallel()

	before := DefaultWindow("YlOrBr")
	if _, err := Colors(3, colormap.Named("YlOrBr"), Start(0.5)); err != nil {
		t.Fatalf("colors: %v", err)
	}
	if after := DefaultWindow("YlOrBr"); after != before {
		t.Errorf("default window changed from %+v to %+v", before, after)
	}
}

func TestColorsBadWindow(t *testing.T) {
	t.Parallel()

	if _, err := Colors(3, colormap.Named("viridis"), Start(-0.1)); err == nil {
		t.Error("expected error for start < 0")
	}
	if _, err := Colors(3, colormap.Named("viridis"), Start(0.9), Stop(0.1)); err == nil {
		t.Error("expected error for start > stop")
	}
}

func TestInstallDefault(t *testing.T) {
	old := style.Default
	style.Default = style.New()
	defer func() { style.Default = old }()

	if err := Install(4, colormap.Named("plasma"), nil); err != nil {
		t.Fatalf("install: %v", err)
	}

	want, err := Colors(4, colormap.Named("plasma"))
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	got := style.Default.ColorCycle()
	if len(got) != len(want) {
		t.Fatalf("cycle length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cycle[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestInstallTargetLeavesDefaultAlone(t *testing.T) {
	old := style.Default
	style.Default = style.New()
	defer func() { style.Default = old }()

	globalBefore := style.Default.ColorCycle()

	ax := style.NewAxes(style.Default)
	if err := Install(3, colormap.Named("magma"), ax); err != nil {
		t.Fatalf("install: %v", err)
	}

	globalAfter := style.Default.ColorCycle()
	if len(globalBefore) != len(globalAfter) {
		t.Fatal("global cycle length changed")
	}
	for i := range globalBefore {
		if globalBefore[i] != globalAfter[i] {
			t.Fatal("global cycle mutated by targeted install")
		}
	}

	want, err := Colors(3, colormap.Named("magma"))
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	got := ax.ColorCycle()
	if len(got) != 3 || got[0] != want[0] || got[2] != want[2] {
		t.Errorf("axes cycle = %#v, want %#v", got, want)
	}
}

func TestInstallPropagatesErrors(t *testing.T) {
	t.Parallel()

	if err := Install(0, colormap.Named("viridis"), nil); err == nil {
		t.Error("expected error for length 0")
	}
	if err := Install(3, colormap.Named("bogus"), nil); err == nil {
		t.Error("expected error for unknown colormap")
	}
}

func TestSetDefaultWindow(t *testing.T) {
	if err := SetDefaultWindow("TestOnlyMap", Window{Start: 0.25, Stop: 0.75}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := DefaultWindow("testonlymap"); got != (Window{Start: 0.25, Stop: 0.75}) {
		t.Errorf("window = %+v", got)
	}
	if err := SetDefaultWindow("x", Window{Start: 0.9, Stop: 0.1}); err == nil {
		t.Error("expected error for inverted window")
	}
}
