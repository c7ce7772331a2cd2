// Package render rasterizes trapezoid chains into PNG images.
//
// Coordinates are converted to float32 once, so images are approximate by
// construction and nothing here feeds back into exact queries.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
	"github.com/katalvlaran/trapseq/trapezoid"
)

var (
	// ErrEmptyChain is returned when there is nothing to draw.
	ErrEmptyChain = errors.New("render: empty chain")
	// ErrBadSize is returned for a canvas the margin does not fit.
	ErrBadSize = errors.New("render: bad canvas size")
)

// Options sizes the canvas. Margin is the blank border in pixels.
type Options struct {
	Width, Height, Margin int
	// Inset shrinks each filled trapezoid toward its centroid, leaving the
	// outline colour visible. 0 draws solid tiles.
	Inset float32
}

// Background and Outline colours.
var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Outline    = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// Palette colours trapezoids by type.
var Palette = [trapezoid.Types]color.RGBA{
	{0xe4, 0x1a, 0x1c, 0xff},
	{0x37, 0x7e, 0xb8, 0xff},
	{0x4d, 0xaf, 0x4a, 0xff},
	{0x98, 0x4e, 0xa3, 0xff},
	{0xff, 0x7f, 0x00, 0xff},
	{0xa6, 0x56, 0x28, 0xff},
}

// transform maps chain coordinates onto the canvas, flipping y.
type transform struct {
	scale  float64
	origin geom.Rect
	dx, dy float64
	height float64
}

func newTransform(b geom.Rect, o Options) transform {
	w, h := float64(o.Width-2*o.Margin), float64(o.Height-2*o.Margin)
	s := math.Min(w/math.Max(b.Width(), 1e-9), h/math.Max(b.Height(), 1e-9))

	return transform{
		scale:  s,
		origin: b,
		dx:     float64(o.Margin) + (w-s*b.Width())/2,
		dy:     float64(o.Margin) + (h-s*b.Height())/2,
		height: float64(o.Height),
	}
}

func (t transform) apply(x, y float64) f32.Vec2 {
	px := t.dx + (x-t.origin.X0)*t.scale
	py := t.dy + (y-t.origin.Y0)*t.scale

	return f32.Vec2{float32(px), float32(t.height - py)}
}

func (o Options) validate() error {
	if o.Width < 1 || o.Height < 1 || o.Margin < 0 || 2*o.Margin >= min(o.Width, o.Height) {
		return ErrBadSize
	}
	if o.Inset < 0 || o.Inset >= 1 {
		return ErrBadSize
	}

	return nil
}

// Image draws chain onto a new RGBA canvas.
func Image[S exact.Scalar[S]](chain []trapezoid.Trapezoid[S], o Options) (*image.RGBA, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	bounds := geom.EmptyRect()
	for _, tr := range chain {
		bounds = bounds.Union(tr.Bounds())
	}
	t := newTransform(bounds, o)

	dst := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(o.Width, o.Height)
	for _, tr := range chain {
		var pts [4]f32.Vec2
		var c f32.Vec2
		for i, v := range tr.V {
			pts[i] = t.apply(v.Float64s())
			c[0] += pts[i][0] / 4
			c[1] += pts[i][1] / 4
		}
		if o.Inset > 0 {
			fill(r, dst, pts, Outline)
			for i := range pts {
				pts[i][0] = c[0] + (pts[i][0]-c[0])*(1-o.Inset)
				pts[i][1] = c[1] + (pts[i][1]-c[1])*(1-o.Inset)
			}
		}
		fill(r, dst, pts, Palette[tr.Type%trapezoid.Types])
	}

	return dst, nil
}

// fill rasterizes the closed polygon pts in colour c over dst.
func fill(r *vector.Rasterizer, dst draw.Image, pts [4]f32.Vec2, c color.RGBA) {
	b := dst.Bounds()
	r.Reset(b.Dx(), b.Dy())
	r.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// PNG draws chain and writes it to w as a PNG.
func PNG[S exact.Scalar[S]](w io.Writer, chain []trapezoid.Trapezoid[S], o Options) error {
	img, err := Image(chain, o)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
