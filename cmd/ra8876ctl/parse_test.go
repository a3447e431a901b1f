package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/ra8876/alloc"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		err  bool
	}{
		{"4096", 4096, false},
		{"0x1000", 4096, false},
		{"64k", 64 << 10, false},
		{"2M", 2 << 20, false},
		{" 12 ", 12, false},
		{"4096m", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseByte(t *testing.T) {
	for in, want := range map[string]byte{"0x12": 0x12, "12h": 0x12, "18": 18, "FFh": 0xFF} {
		got, err := parseByte(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseByte("100h")
	require.Error(t, err)
	_, err = parseByte("zz")
	require.Error(t, err)
}

func TestParseModeAndPolicy(t *testing.T) {
	m, err := parseMode("rgb888")
	require.NoError(t, err)
	assert.Equal(t, canvas.RGB888, m)
	_, err = parseMode("yuv")
	require.Error(t, err)

	p, err := parsePolicy("backward")
	require.NoError(t, err)
	assert.Equal(t, alloc.PolicyBackward, p)
	_, err = parsePolicy("sideways")
	require.Error(t, err)
}
