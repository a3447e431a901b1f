package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
	"github.com/joshuapare/ra8876kit/ra8876/spidev"
)

var (
	regSpidev string
	regSpeed  uint32
	regMode   uint8
)

// openBus returns the transport selected by the reg flags. Tests replace it
// to share one simulated controller across commands.
var openBus = func() (bus.Bus, func() error, error) {
	if regSpidev == "" {
		printVerbose("Using simulated controller\n")
		return sim.New(nil), func() error { return nil }, nil
	}
	printVerbose("Opening %s at %d Hz, mode %d\n", regSpidev, regSpeed, regMode)
	opts := spidev.DefaultOptions()
	opts.SpeedHz = regSpeed
	opts.Mode = regMode
	b, err := spidev.Open(regSpidev, opts)
	if err != nil {
		return nil, nil, err
	}
	return b, b.Close, nil
}

func init() {
	cmd := &cobra.Command{
		Use:   "reg",
		Short: "Read and write controller registers",
		Long: `The reg command gives raw register access. Without --spidev it runs
against a fresh simulated controller, which is useful for checking syntax.

Example:
  ra8876ctl reg read 12h --spidev /dev/spidev0.0
  ra8876ctl reg write 0x12 0x40 --spidev /dev/spidev0.0
  ra8876ctl reg status --spidev /dev/spidev0.0`,
	}
	addTransportFlags(cmd)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "read <addr>",
			Short: "Read one register",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRegRead(args)
			},
		},
		&cobra.Command{
			Use:   "write <addr> <value>",
			Short: "Write one register",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRegWrite(args)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Read and decode the status register",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRegStatus()
			},
		},
	)
	rootCmd.AddCommand(cmd)
}

// addTransportFlags registers the flags read by openBus on cmd.
func addTransportFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&regSpidev, "spidev", "", "spidev device node (e.g. /dev/spidev0.0); simulator when empty")
	pf.Uint32Var(&regSpeed, "speed", spidev.DefaultOptions().SpeedHz, "SPI clock in Hz")
	pf.Uint8Var(&regMode, "spi-mode", 0, "SPI mode 0-3")
}

type regValue struct {
	Addr  byte `json:"addr"`
	Value byte `json:"value"`
}

func withBus(fn func(b bus.Bus) error) (err error) {
	b, closeFn, err := openBus()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(b)
}

func runRegRead(args []string) error {
	addr, err := parseByte(args[0])
	if err != nil {
		return err
	}
	return withBus(func(b bus.Bus) error {
		v, err := b.ReadReg(addr)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(regValue{Addr: addr, Value: v})
		}
		printInfo("REG[%02Xh] = %02Xh\n", addr, v)
		return nil
	})
}

func runRegWrite(args []string) error {
	addr, err := parseByte(args[0])
	if err != nil {
		return err
	}
	val, err := parseByte(args[1])
	if err != nil {
		return err
	}
	return withBus(func(b bus.Bus) error {
		if err := b.WriteReg(addr, val); err != nil {
			return err
		}
		if jsonOut {
			return printJSON(regValue{Addr: addr, Value: val})
		}
		printInfo("REG[%02Xh] <- %02Xh\n", addr, val)
		return nil
	})
}

var statusBits = []struct {
	mask byte
	name string
}{
	{regs.StatusWriteFIFOFull, "write-fifo-full"},
	{regs.StatusWriteFIFOEmpty, "write-fifo-empty"},
	{regs.StatusReadFIFOFull, "read-fifo-full"},
	{regs.StatusReadFIFOEmpty, "read-fifo-empty"},
	{regs.StatusCoreBusy, "core-busy"},
	{regs.StatusSDRAMReady, "sdram-ready"},
	{regs.StatusInhibit, "inhibit"},
}

type statusValue struct {
	Value byte     `json:"value"`
	Flags []string `json:"flags"`
}

func decodeStatus(s byte) []string {
	flags := []string{}
	for _, b := range statusBits {
		if s&b.mask != 0 {
			flags = append(flags, b.name)
		}
	}
	return flags
}

func runRegStatus() error {
	return withBus(func(b bus.Bus) error {
		s, err := b.Status()
		if err != nil {
			return err
		}
		flags := decodeStatus(s)
		if jsonOut {
			return printJSON(statusValue{Value: s, Flags: flags})
		}
		printInfo("STATUS = %02Xh [%s]\n", s, strings.Join(flags, " "))
		return nil
	})
}
