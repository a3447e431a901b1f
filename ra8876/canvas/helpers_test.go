package canvas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

// newTestAddresser returns an 800x600 RGB565 canvas on a fresh simulator.
func newTestAddresser(t *testing.T) (*sim.Controller, *Addresser) {
	t.Helper()
	c := sim.New(nil)
	a := New(c, nil)
	require.NoError(t, a.SetCanvas(Descriptor{Width: 800, Height: 600, Mode: RGB565}))
	return c, a
}

func positionRegs(c *sim.Controller) []byte {
	var out []byte
	for r := 0x50; r <= 0x62; r++ {
		if r == 0x5E {
			continue
		}
		out = append(out, c.Reg(byte(r)))
	}
	return out
}
