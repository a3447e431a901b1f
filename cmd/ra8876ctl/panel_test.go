package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

func TestPanel_Backlight(t *testing.T) {
	withFlags(t, false, false)
	c := sim.New(nil)
	useSim(t, c)

	out, err := captureOutput(t, func() error { return runBacklight([]string{"60"}) })
	require.NoError(t, err)
	assert.Equal(t, "Backlight 60%\n", out)
	assert.Equal(t, byte(0x48), c.Reg(regs.PMUXR))
	assert.Equal(t, byte(0x30), c.Reg(regs.PCFGR)&0x30)

	_, err = captureOutput(t, func() error { return runBacklight([]string{"0"}) })
	require.NoError(t, err)
	assert.Zero(t, c.Reg(regs.PCFGR)&0x10, "pwm1 stopped")
}

func TestPanel_BacklightInvalid(t *testing.T) {
	withFlags(t, false, false)
	useSim(t, sim.New(nil))

	_, err := captureOutput(t, func() error { return runBacklight([]string{"bright"}) })
	require.Error(t, err)
	_, err = captureOutput(t, func() error { return runBacklight([]string{"101"}) })
	require.ErrorIs(t, err, ra8876.ErrInvalidArgument)
}

func TestPanel_ColorBar(t *testing.T) {
	withFlags(t, true, false)
	c := sim.New(nil)
	useSim(t, c)

	out, err := captureOutput(t, func() error { return runColorBar([]string{"on"}) })
	require.NoError(t, err)
	var st panelState
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	require.NotNil(t, st.ColorBar)
	assert.True(t, *st.ColorBar)
	assert.Equal(t, byte(regs.DPCRColorBar), c.Reg(regs.DPCR)&regs.DPCRColorBar)

	_, err = captureOutput(t, func() error { return runColorBar([]string{"off"}) })
	require.NoError(t, err)
	assert.Zero(t, c.Reg(regs.DPCR)&regs.DPCRColorBar)

	_, err = captureOutput(t, func() error { return runColorBar([]string{"maybe"}) })
	require.Error(t, err)
}
