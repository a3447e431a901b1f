package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testBlock = 4096

// newTestAllocator returns an allocator with blocks × 4096-byte blocks.
func newTestAllocator(t *testing.T, blocks int, opts ...func(*Config)) *Allocator {
	t.Helper()
	cfg := Config{MemSize: uint32(blocks * testBlock), BlockSize: testBlock}
	for _, o := range opts {
		o(&cfg)
	}
	a, err := New(cfg)
	require.NoError(t, err)
	return a
}

func withPolicy(p Policy) func(*Config) {
	return func(c *Config) { c.Policy = p }
}

func withStart(b int) func(*Config) {
	return func(c *Config) { c.StartBlock = b }
}

// requireNoOverlap asserts that the table stamps are consistent with runs and
// that no two runs share a block.
func requireNoOverlap(t *testing.T, a *Allocator) {
	t.Helper()
	owner := make([]int, a.Blocks())
	for i := range owner {
		owner[i] = -1
	}
	for ri, r := range a.Runs() {
		for b := r.Block; b < r.Block+r.Blocks; b++ {
			require.Equal(t, -1, owner[b], "block %d claimed twice", b)
			owner[b] = ri
		}
	}
	for i, v := range a.Table() {
		if v == 0 {
			require.Equal(t, -1, owner[i], "free block %d inside a run", i)
		} else {
			require.NotEqual(t, -1, owner[i], "stamped block %d outside a run", i)
		}
	}
}
