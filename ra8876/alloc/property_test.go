package alloc

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAllocationProperties drives random allocate/free sequences under each
// policy and checks the table after every step.
func TestAllocationProperties(t *testing.T) {
	for _, p := range []Policy{PolicyForward, PolicyBackward, PolicyBySize} {
		t.Run(p.String(), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, uint64(p)))
			a := newTestAllocator(t, 64, withPolicy(p), func(c *Config) { c.LargeThreshold = 2 * testBlock })
			live := map[uint32]uint32{}

			for step := range 2000 {
				if len(live) > 0 && rng.IntN(3) == 0 {
					for off := range live {
						require.NoError(t, a.Free(off))
						delete(live, off)
						break
					}
				} else {
					size := uint32(rng.IntN(6*testBlock) + 1)
					off, err := a.Allocate(size)
					if err != nil {
						require.ErrorIs(t, err, ErrOutOfMemory, "step %d", step)
						continue
					}
					require.Zero(t, off%testBlock)
					n := (size + testBlock - 1) / testBlock
					require.Equal(t, n, a.Table()[off/testBlock], "run length stamp")
					live[off] = size
				}
				requireNoOverlap(t, a)
			}
		})
	}
}

// TestAllocationDeterminism verifies that the same sequence of calls yields
// the same offsets.
func TestAllocationDeterminism(t *testing.T) {
	run := func() []uint32 {
		a := newTestAllocator(t, 32)
		var out []uint32
		for _, size := range []uint32{4096, 9000, 100, 20000} {
			off, err := a.Allocate(size)
			require.NoError(t, err)
			out = append(out, off)
		}
		require.NoError(t, a.Free(out[1]))
		off, err := a.Allocate(9000)
		require.NoError(t, err)
		return append(out, off)
	}

	first := run()
	require.Equal(t, first, run())
	require.Equal(t, first[1], first[4], "free then equal-size allocate returns the same offset")
}
