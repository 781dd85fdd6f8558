package colormap

import (
	"image/color"
	"testing"
)

func TestViridisEndpoints(t *testing.T) {
	t.Parallel()

	if got := Viridis.At(0); got != (color.RGBA{R: 68, G: 1, B: 84, A: 255}) {
		t.Fatalf("unexpected Viridis.At(0): %#v", got)
	}
	if got := Viridis.At(1); got != (color.RGBA{R: 253, G: 231, B: 37, A: 255}) {
		t.Fatalf("unexpected Viridis.At(1): %#v", got)
	}
}

func TestLinearClampsOutOfRange(t *testing.T) {
	t.Parallel()

	if got := Autumn.At(-0.5); got != Autumn.At(0) {
		t.Errorf("At(-0.5) = %#v, want clamp to At(0)", got)
	}
	if got := Autumn.At(1.5); got != Autumn.At(1) {
		t.Errorf("At(1.5) = %#v, want clamp to At(1)", got)
	}
}

func TestLinearInterpolatesMidpoint(t *testing.T) {
	t.Parallel()

	// Autumn runs (255,0,0) to (255,255,0); halfway the green channel
	// should sit near 127.
	mid := Autumn.At(0.5)
	if mid.R != 255 || mid.B != 0 {
		t.Fatalf("unexpected channels at midpoint: %#v", mid)
	}
	if mid.G < 126 || mid.G > 128 {
		t.Errorf("midpoint green = %d, want ~127", mid.G)
	}
}

func TestLinearAtIndexWraps(t *testing.T) {
	t.Parallel()

	n := len(Viridis.stops)
	if got, want := Viridis.AtIndex(n), Viridis.AtIndex(0); got != want {
		t.Errorf("AtIndex(%d) = %#v, want %#v", n, got, want)
	}
}

func TestCategoricalBuckets(t *testing.T) {
	t.Parallel()

	if got, want := Tab20.At(0), Tab20.AtIndex(0); got != want {
		t.Errorf("At(0) = %#v, want first color %#v", got, want)
	}
	if got, want := Tab20.At(1), Tab20.AtIndex(19); got != want {
		t.Errorf("At(1) = %#v, want last color %#v", got, want)
	}
	// Position 0.5 lands in bucket 10 of 20.
	if got, want := Tab20.At(0.5), Tab20.AtIndex(10); got != want {
		t.Errorf("At(0.5) = %#v, want %#v", got, want)
	}
}

func TestNewLinearHex(t *testing.T) {
	t.Parallel()

	cm := NewLinearHex("test", "#ff0000", "#0000ff")
	if got := cm.At(0); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("unexpected start stop: %#v", got)
	}
	if got := cm.At(1); got != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("unexpected end stop: %#v", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	if got := Hex(color.RGBA{R: 254, G: 196, B: 79, A: 255}); got != "#fec44f" {
		t.Errorf("Hex = %q, want #fec44f", got)
	}
}
