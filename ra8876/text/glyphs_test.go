package text

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876/bte"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

func TestMeasure(t *testing.T) {
	g := NewGlyphs(nil)
	assert.Equal(t, bte.Size{Width: 21, Height: 13}, g.Measure("abc"))
	assert.Equal(t, bte.Size{Width: 7, Height: 13}, g.Measure("é"))
	assert.Equal(t, bte.Size{Width: 0, Height: 13}, g.Measure(""))
}

func TestRasterize(t *testing.T) {
	g := NewGlyphs(nil)

	space, size := g.Rasterize(" ")
	assert.Equal(t, bte.Size{Width: 7, Height: 13}, size)
	assert.Len(t, space, 13)
	for _, b := range space {
		assert.Zero(t, b)
	}

	h, _ := g.Rasterize("H")
	assert.NotEqual(t, space, h)

	// two glyphs spill into a second byte per row
	hh, size := g.Rasterize("HH")
	assert.Equal(t, 14, size.Width)
	assert.Len(t, hh, 2*13)
	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			assert.Equal(t, bit(h, 7, x, y), bit(hh, 14, x+7, y), "(%d,%d)", x, y)
		}
	}
}

func TestRasterize_MissingRuneUsesFallback(t *testing.T) {
	g := NewGlyphs(nil)
	want, _ := g.Rasterize(string(Fallback))
	got, _ := g.Rasterize("☃")
	assert.Equal(t, want, got)
}

func TestDrawString(t *testing.T) {
	c, dev := newTestDevice(t, nil)
	g := NewGlyphs(nil)
	screen := dev.Screen()

	adv, err := g.DrawString(context.Background(), dev.BTE(), screen.At(10, 20), "H ", canvas.White, canvas.Black, false)
	require.NoError(t, err)
	assert.Equal(t, 14, adv)

	data, size := g.Rasterize("H ")
	lit := 0
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			want := px(canvas.Black)
			if bit(data, size.Width, x, y) {
				want = px(canvas.White)
				lit++
			}
			assert.Equal(t, want, c.Pixel(0, 800, 10+x, 20+y), "(%d,%d)", x, y)
		}
	}
	assert.Positive(t, lit)
}

func TestDrawString_Transparent(t *testing.T) {
	c, dev := newTestDevice(t, nil)
	ctx := context.Background()
	require.NoError(t, dev.Clear(ctx, canvas.Red))
	g := NewGlyphs(nil)

	_, err := g.DrawString(ctx, dev.BTE(), dev.Screen().At(0, 0), "A", canvas.White, canvas.Black, true)
	require.NoError(t, err)

	data, size := g.Rasterize("A")
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			want := px(canvas.Red)
			if bit(data, size.Width, x, y) {
				want = px(canvas.White)
			}
			assert.Equal(t, want, c.Pixel(0, 800, x, y), "(%d,%d)", x, y)
		}
	}
}

func TestDrawString_ClipsAtEdge(t *testing.T) {
	_, dev := newTestDevice(t, nil)
	g := NewGlyphs(nil)

	adv, err := g.DrawString(context.Background(), dev.BTE(), dev.Screen().At(795, 0), "HH", canvas.White, canvas.Black, false)
	require.NoError(t, err)
	assert.Equal(t, 14, adv)
}

func TestDrawString_Empty(t *testing.T) {
	c, dev := newTestDevice(t, nil)
	adv, err := NewGlyphs(nil).DrawString(context.Background(), dev.BTE(), dev.Screen(), "", canvas.White, canvas.Black, false)
	require.NoError(t, err)
	assert.Zero(t, adv)
	assert.Zero(t, c.BTEOps())
}
