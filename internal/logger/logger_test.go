package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWritesAtLevel(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var out bytes.Buffer
	Init(Options{Enabled: true, Output: &out, Level: slog.LevelWarn})

	Info("dropped")
	Warn("poll timeout", "op", "bte")

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "poll timeout")
	assert.Contains(t, out.String(), "op=bte")
}

func TestInitJSON(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	var out bytes.Buffer
	Init(Options{Enabled: true, Output: &out, JSON: true})
	Error("bus write failed", "reg", 0x90)

	assert.Contains(t, out.String(), `"msg":"bus write failed"`)
}

func TestDisabledDiscards(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: false, Output: &out})
	Error("nothing")
	assert.Empty(t, out.String())
}
