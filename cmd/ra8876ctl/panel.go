package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
)

func init() {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Control the panel backlight and test pattern",
		Long: `The panel command drives the PWM1 backlight output and the built-in
color bar. It shares the transport flags of the reg command.

Example:
  ra8876ctl panel backlight 60 --spidev /dev/spidev0.0
  ra8876ctl panel colorbar on --spidev /dev/spidev0.0`,
	}
	addTransportFlags(cmd)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "backlight <percent>",
			Short: "Set the backlight duty cycle, 0 turns it off",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBacklight(args)
			},
		},
		&cobra.Command{
			Use:       "colorbar <on|off>",
			Short:     "Show or hide the color bar test pattern",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(cmd *cobra.Command, args []string) error {
				return runColorBar(args)
			},
		},
	)
	rootCmd.AddCommand(cmd)
}

type panelState struct {
	Backlight *int  `json:"backlight,omitempty"`
	ColorBar  *bool `json:"color_bar,omitempty"`
}

func withDevice(fn func(d *ra8876.Device) error) error {
	return withBus(func(b bus.Bus) error {
		d, err := ra8876.New(b, nil)
		if err != nil {
			return err
		}
		return fn(d)
	})
}

func runBacklight(args []string) error {
	pct, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid percent %q", args[0])
	}
	err = withDevice(func(d *ra8876.Device) error { return d.SetBacklight(pct) })
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(panelState{Backlight: &pct})
	}
	printInfo("Backlight %d%%\n", pct)
	return nil
}

func runColorBar(args []string) error {
	var on bool
	switch args[0] {
	case "on":
		on = true
	case "off":
	default:
		return fmt.Errorf("colorbar takes on or off, got %q", args[0])
	}
	if err := withDevice(func(d *ra8876.Device) error { return d.DisplayColorBar(on) }); err != nil {
		return err
	}
	if jsonOut {
		return printJSON(panelState{ColorBar: &on})
	}
	printInfo("Color bar %s\n", args[0])
	return nil
}
