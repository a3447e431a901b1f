package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

func newTestDevice(t *testing.T) (*sim.Controller, *ra8876.Device) {
	t.Helper()
	c := sim.New(nil)
	dev, err := ra8876.New(c, nil)
	require.NoError(t, err)
	require.NoError(t, dev.SetCanvas(canvas.Descriptor{Width: 800, Height: 600, Mode: canvas.RGB565}))
	return c, dev
}

func px(col canvas.Color) []byte {
	return col.Encode(canvas.RGB565)
}

func pixel(c *sim.Controller, b *Bitmap, x, y int) []byte {
	return c.Pixel(b.Addr(), b.Width(), x, y)
}

func setPixel(c *sim.Controller, b *Bitmap, x, y int, col canvas.Color) {
	off := int(b.Addr()) + (y*b.Width()+x)*2
	copy(c.Memory()[off:], px(col))
}
