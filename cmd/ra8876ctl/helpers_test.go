package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String(), fnErr
}

// withFlags sets the global output flags for the duration of the test.
func withFlags(t *testing.T, json, color bool) {
	t.Helper()
	oldJSON, oldColor, oldQuiet := jsonOut, noColor, quiet
	jsonOut, noColor, quiet = json, !color, false
	t.Cleanup(func() {
		jsonOut, noColor, quiet = oldJSON, oldColor, oldQuiet
	})
}
