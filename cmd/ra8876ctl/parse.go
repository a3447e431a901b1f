package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/ra8876kit/ra8876/alloc"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

// parseSize accepts decimal or 0x-prefixed byte counts with an optional
// k or m suffix (binary multiples).
func parseSize(s string) (uint32, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	mult := uint64(1)
	switch {
	case strings.HasSuffix(t, "k"):
		mult, t = 1<<10, strings.TrimSuffix(t, "k")
	case strings.HasSuffix(t, "m"):
		mult, t = 1<<20, strings.TrimSuffix(t, "m")
	}
	v, err := strconv.ParseUint(t, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	v *= mult
	if v > 1<<32-1 {
		return 0, fmt.Errorf("size %q overflows 32 bits", s)
	}
	return uint32(v), nil
}

// parseByte accepts 0x12, 12h or decimal.
func parseByte(s string) (byte, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.HasSuffix(t, "h") {
		t = "0x" + strings.TrimSuffix(t, "h")
	}
	v, err := strconv.ParseUint(t, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q", s)
	}
	return byte(v), nil
}

func parseMode(s string) (canvas.ColorMode, error) {
	for _, m := range []canvas.ColorMode{canvas.RGB332, canvas.RGB565, canvas.RGB888, canvas.ARGB2222, canvas.ARGB4444} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown color mode %q (want rgb332, rgb565, rgb888, argb2222 or argb4444)", s)
}

func parsePolicy(s string) (alloc.Policy, error) {
	for _, p := range []alloc.Policy{alloc.PolicyBySize, alloc.PolicyForward, alloc.PolicyBackward} {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q (want by-size, forward or backward)", s)
}
