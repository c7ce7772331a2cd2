package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
	"github.com/katalvlaran/trapseq/render"
	"github.com/katalvlaran/trapseq/trapezoid"
)

func chain(t *testing.T, n int) []trapezoid.Trapezoid[exact.Quadratic] {
	t.Helper()
	s, err := trapezoid.New(n, geom.Pt(exact.Q(0, 0), exact.Q(0, 0)))
	require.NoError(t, err)

	return s.Trapezoids()
}

// A single base trapezoid on a 100x100 canvas scales by 20 and is centred,
// so its centroid lands on pixel (50, 50).
func TestImage_SingleTrapezoid(t *testing.T) {
	img, err := render.Image(chain(t, 1), render.Options{Width: 100, Height: 100, Margin: 10})
	require.NoError(t, err)

	assert.Equal(t, render.Palette[0], img.RGBAAt(50, 50))
	assert.Equal(t, render.Background, img.RGBAAt(2, 2))
	assert.Equal(t, render.Background, img.RGBAAt(50, 20))
}

func TestImage_Inset(t *testing.T) {
	img, err := render.Image(chain(t, 1), render.Options{Width: 100, Height: 100, Margin: 10, Inset: 0.2})
	require.NoError(t, err)

	assert.Equal(t, render.Palette[0], img.RGBAAt(50, 50))
	assert.Equal(t, render.Outline, img.RGBAAt(20, 66))
}

func TestPNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, chain(t, 49), render.Options{Width: 64, Height: 48, Margin: 4}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestPNG_Float(t *testing.T) {
	s, err := trapezoid.New(7, geom.Pt(exact.Float(0), exact.Float(0)))
	require.NoError(t, err)
	assert.NoError(t, render.PNG(&bytes.Buffer{}, s.Trapezoids(), render.Options{Width: 32, Height: 32}))
}

func TestImage_Errors(t *testing.T) {
	_, err := render.Image[exact.Quadratic](nil, render.Options{Width: 10, Height: 10})
	assert.ErrorIs(t, err, render.ErrEmptyChain)

	c := chain(t, 3)
	for _, o := range []render.Options{
		{Width: 0, Height: 10},
		{Width: 10, Height: -1},
		{Width: 10, Height: 10, Margin: 5},
		{Width: 10, Height: 10, Margin: -1},
		{Width: 10, Height: 10, Inset: 1},
	} {
		_, err := render.Image(c, o)
		assert.ErrorIs(t, err, render.ErrBadSize, "%+v", o)
	}
}
