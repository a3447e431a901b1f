package bte

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

const (
	screenW = 800
	screenH = 600
	// offscreen surfaces start after the screen
	offBase = uint32(screenW * screenH * 2)
)

var screen = Surface(0, screenW, screenH)

// newTestEngine returns an engine on an 800x600 RGB565 canvas.
func newTestEngine(t *testing.T, opts *Options) (*sim.Controller, *Engine) {
	t.Helper()
	c := sim.New(nil)
	a := canvas.New(c, nil)
	require.NoError(t, a.SetCanvas(canvas.Descriptor{Width: screenW, Height: screenH, Mode: canvas.RGB565}))
	return c, New(a, opts)
}

func px(c canvas.Color) []byte {
	return c.Encode(canvas.RGB565)
}

func setPx(c *sim.Controller, r Region, x, y int, col canvas.Color) {
	off := int(r.Addr) + (y*r.Stride+x)*2
	copy(c.Memory()[off:], px(col))
}

func getPx(c *sim.Controller, r Region, x, y int) []byte {
	return c.Pixel(r.Addr, r.Stride, x, y)
}
