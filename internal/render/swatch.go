// Package render draws colormap swatches and cycle previews using
// fogleman/gg.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/fogleman/gg"

	"github.com/plotcycle/server/pkg/colormap"
	"github.com/plotcycle/server/pkg/style"
)

// Config contains renderer configuration.
type Config struct {
	// Default canvas size; contexts of this size are pooled.
	Width  int
	Height int

	// Style supplies background and line defaults. Nil means
	// style.Default.
	Style *style.Config
}

// MaxDim bounds requested canvas dimensions.
const MaxDim = 4096

// ErrBadSize reports an unusable canvas size.
var ErrBadSize = errors.New("render: invalid canvas size")

// SwatchRenderer renders colormap previews.
type SwatchRenderer struct {
	config      Config
	style       *style.Config
	contextPool sync.Pool
	bufferPool  sync.Pool
}

// NewSwatchRenderer creates a new swatch renderer.
func NewSwatchRenderer(cfg Config) *SwatchRenderer {
	st := cfg.Style
	if st == nil {
		st = style.Default
	}
	return &SwatchRenderer{
		config: cfg,
		style:  st,
		contextPool: sync.Pool{
			New: func() interface{} {
				return gg.NewContext(cfg.Width, cfg.Height)
			},
		},
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 32*1024))
			},
		},
	}
}

// RenderSwatch renders a continuous gradient strip of the colormap.
func (r *SwatchRenderer) RenderSwatch(cm colormap.Colormap, w, h int) ([]byte, error) {
	w, h, err := r.clampSize(w, h)
	if err != nil {
		return nil, err
	}

	dc, release := r.context(w, h)
	defer release()

	// One column per pixel; gradients are cheap at this size.
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w-1)
		dc.SetColor(cm.At(t))
		dc.DrawRectangle(float64(x), 0, 1, float64(h))
		dc.Fill()
	}

	return r.encodeContext(dc)
}

// RenderCycle renders a discrete block per cycle color.
func (r *SwatchRenderer) RenderCycle(colors []color.RGBA, w, h int) ([]byte, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("render: empty color cycle")
	}
	w, h, err := r.clampSize(w, h)
	if err != nil {
		return nil, err
	}

	dc, release := r.context(w, h)
	defer release()

	blockW := float64(w) / float64(len(colors))
	for i, c := range colors {
		dc.SetColor(c)
		dc.DrawRectangle(float64(i)*blockW, 0, blockW, float64(h))
		dc.Fill()
	}

	return r.encodeContext(dc)
}

// RenderDemo renders a family of sine curves drawn through an axes
// whose local cycle is the given colors, the usual way a color cycle
// is previewed.
func (r *SwatchRenderer) RenderDemo(colors []color.RGBA, w, h int) ([]byte, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("render: empty color cycle")
	}
	w, h, err := r.clampSize(w, h)
	if err != nil {
		return nil, err
	}

	dc, release := r.context(w, h)
	defer release()

	ax := style.NewAxes(r.style)
	ax.SetColorCycle(colors)

	mid := float64(h) / 2
	amp := float64(h) * 0.4
	dc.SetLineWidth(r.style.LineWidth)

	for i := range colors {
		phase := math.Pi * float64(i) / float64(len(colors))
		dc.SetColor(ax.ColorAt(i))
		for x := 0; x < w; x++ {
			fx := float64(x)
			fy := mid - amp*math.Sin(4*math.Pi*fx/float64(w)-phase)
			if x == 0 {
				dc.MoveTo(fx, fy)
			} else {
				dc.LineTo(fx, fy)
			}
		}
		dc.Stroke()
	}

	return r.encodeContext(dc)
}

func (r *SwatchRenderer) clampSize(w, h int) (int, int, error) {
	if w == 0 {
		w = r.config.Width
	}
	if h == 0 {
		h = r.config.Height
	}
	if w < 2 || h < 1 || w > MaxDim || h > MaxDim {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	return w, h, nil
}

// context returns a cleared drawing context. Contexts of the default
// size come from the pool; other sizes are allocated fresh.
func (r *SwatchRenderer) context(w, h int) (*gg.Context, func()) {
	if w == r.config.Width && h == r.config.Height {
		dc := r.contextPool.Get().(*gg.Context)
		dc.SetColor(r.style.Background)
		dc.Clear()
		return dc, func() { r.contextPool.Put(dc) }
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(r.style.Background)
	dc.Clear()
	return dc, func() {}
}

func (r *SwatchRenderer) encodeContext(dc *gg.Context) ([]byte, error) {
	buf := r.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		r.bufferPool.Put(buf)
	}()

	// Use fast PNG encoder
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(buf, dc.Image()); err != nil {
		return nil, err
	}

	// Copy buffer contents (buffer will be reused)
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
