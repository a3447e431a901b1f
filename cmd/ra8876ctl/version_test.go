package main

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_Text(t *testing.T) {
	withFlags(t, false, false)
	out, err := captureOutput(t, func() error { return versionCmd.RunE(versionCmd, nil) })
	require.NoError(t, err)
	assert.Contains(t, out, "ra8876ctl ")
	assert.Contains(t, out, runtime.Version())
}

func TestVersion_JSON(t *testing.T) {
	withFlags(t, true, false)
	out, err := captureOutput(t, func() error { return versionCmd.RunE(versionCmd, nil) })
	require.NoError(t, err)

	var v versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, runtime.Version(), v.Go)
	assert.Equal(t, commit, v.Commit)
	assert.Equal(t, rootCmd.Version, v.Version)
}
