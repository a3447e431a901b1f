package draw

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

const screenW = 800

// newTestEngine returns an engine on an 800x600 RGB565 canvas.
func newTestEngine(t *testing.T, opts *Options) (*sim.Controller, *canvas.Addresser, *Engine) {
	t.Helper()
	c := sim.New(nil)
	a := canvas.New(c, nil)
	require.NoError(t, a.SetCanvas(canvas.Descriptor{Width: screenW, Height: 600, Mode: canvas.RGB565}))
	return c, a, New(a, opts)
}

// lit reports whether the screen pixel at (x, y) holds col.
func lit(c *sim.Controller, x, y int, col canvas.Color) bool {
	return string(c.Pixel(0, screenW, x, y)) == string(col.Encode(canvas.RGB565))
}
