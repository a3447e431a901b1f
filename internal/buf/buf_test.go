package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	assert.Equal(t, uint16(0x2301), U16LE(data))
	assert.Equal(t, uint32(0x67452301), U32LE(data))

	short := []byte{0xAA}
	assert.Zero(t, U16LE(short))
	assert.Zero(t, U32LE(short))
}

func TestSplitRoundTrip(t *testing.T) {
	b16 := Split16(0xBEEF)
	assert.Equal(t, [2]byte{0xEF, 0xBE}, b16)
	assert.Equal(t, uint16(0xBEEF), U16LE(b16[:]))

	b32 := Split32(0x01F40000)
	assert.Equal(t, [4]byte{0x00, 0x00, 0xF4, 0x01}, b32)
	assert.Equal(t, uint32(0x01F40000), U32LE(b32[:]))
}

func TestWindow(t *testing.T) {
	img := make([]byte, 16)

	w, ok := Window(img, 4, 8)
	require.True(t, ok)
	assert.Len(t, w, 8)

	w, ok = Window(img, 0, 16)
	require.True(t, ok)
	assert.Len(t, w, 16)

	w, ok = Window(img, 16, 0)
	require.True(t, ok)
	assert.Empty(t, w)

	for _, tc := range []struct {
		addr uint32
		n    int
	}{
		{12, 8},
		{0, 17},
		{17, 0},
		{0, -1},
		{math.MaxUint32, 2},
	} {
		_, ok := Window(img, tc.addr, tc.n)
		assert.False(t, ok, "addr %d n %d", tc.addr, tc.n)
	}
}
