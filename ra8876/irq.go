package ra8876

import (
	"context"
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/logger"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Interrupt sources for EnableIRQ, QueryIRQ and ResetIRQ.
const (
	IRQWakeup  = regs.IRQWakeup
	IRQExtern  = regs.IRQExtern
	IRQIIC     = regs.IRQIIC
	IRQVsync   = regs.IRQVsync
	IRQPWM1    = regs.IRQPWM1
	IRQPWM0    = regs.IRQPWM0
	IRQCoreEnd = regs.IRQCoreEnd
	IRQSerial  = regs.IRQSerial
)

// EnableIRQ enables or disables the interrupt sources in mask.
func (d *Device) EnableIRQ(mask byte, on bool) error {
	if on {
		return bus.Modify(d.bus, regs.INTEN, 0, mask)
	}
	return bus.Modify(d.bus, regs.INTEN, mask, 0)
}

// HandleIRQ records that the interrupt line fired. It does no bus traffic
// and may be called from any goroutine.
func (d *Device) HandleIRQ() {
	d.irq.Store(true)
}

// QueryIRQ returns the interrupt flags when HandleIRQ ran since the last
// query, or 0.
func (d *Device) QueryIRQ() (byte, error) {
	if !d.irq.CompareAndSwap(true, false) {
		return 0, nil
	}
	return d.bus.ReadReg(regs.INTF)
}

// ResetIRQ clears the flags in mask.
func (d *Device) ResetIRQ(mask byte) error {
	return d.bus.WriteReg(regs.INTF, mask)
}

// WaitVsync blocks until a vsync interrupt is reported, then clears its
// flag. The vsync source must be enabled with EnableIRQ.
func (d *Device) WaitVsync(ctx context.Context) error {
	err := poll.Until(ctx, d.opts.Vsync, func() (bool, error) {
		f, err := d.QueryIRQ()
		return f&regs.IRQVsync != 0, err
	})
	if err != nil {
		logger.Debug("ra8876: no vsync", "error", err)
		return fmt.Errorf("ra8876: vsync: %w", err)
	}
	return d.ResetIRQ(regs.IRQVsync)
}
