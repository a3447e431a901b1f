package text

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

// newTestDevice returns a device on an 800x600 RGB565 canvas. A nil opts
// uses ra8876.DefaultOptions.
func newTestDevice(t *testing.T, opts *ra8876.Options) (*sim.Controller, *ra8876.Device) {
	t.Helper()
	c := sim.New(nil)
	dev, err := ra8876.New(c, opts)
	require.NoError(t, err)
	require.NoError(t, dev.SetCanvas(canvas.Descriptor{Width: 800, Height: 600, Mode: canvas.RGB565}))
	return c, dev
}

func px(col canvas.Color) []byte {
	return col.Encode(canvas.RGB565)
}

// bit reports whether pixel (x, y) is set in a 1 bpp MSB-first bitmap.
func bit(data []byte, width, x, y int) bool {
	row := (width + 7) / 8
	return data[y*row+x/8]&(0x80>>(x%8)) != 0
}
