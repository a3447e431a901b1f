package ra8876

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

func newTestDevice(t *testing.T, opts *Options) (*sim.Controller, *Device) {
	t.Helper()
	c := sim.New(nil)
	dev, err := New(c, opts)
	require.NoError(t, err)
	require.NoError(t, dev.SetCanvas(canvas.Descriptor{Width: 800, Height: 600, Mode: canvas.RGB565}))
	return c, dev
}
