package ra8876

import (
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/logger"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
)

// PWMChannel selects one of the two PWM timers.
type PWMChannel int

const (
	PWM0 PWMChannel = iota
	PWM1 // drives the backlight on the reference boards
)

// PWM configures one timer. The timer counts Period clocks and switches its
// output when the count reaches Duty.
type PWM struct {
	// Prescaler sets the time base of both timers to Fcore / (Prescaler+1).
	Prescaler uint8

	// Divider further divides this timer's clock by 1, 2, 4 or 8 (0–3).
	Divider uint8

	Period uint16
	Duty   uint16
	Invert bool
}

// per-channel bit layout of PMUXR and PCFGR
type pwmBits struct {
	divShift, pinShift uint
	start, reload, inv byte
}

var pwmLayout = map[PWMChannel]pwmBits{
	PWM0: {divShift: 4, pinShift: 0, start: 0x01, reload: 0x02, inv: 0x04},
	PWM1: {divShift: 6, pinShift: 2, start: 0x10, reload: 0x20, inv: 0x40},
}

// StartPWM programs channel ch with p in auto-reload mode, routes it to its
// output pin and starts it. The other channel keeps its settings apart from
// the shared prescaler.
func (d *Device) StartPWM(ch PWMChannel, p PWM) error {
	l, ok := pwmLayout[ch]
	if !ok {
		return fmt.Errorf("%w: pwm channel %d", ErrInvalidArgument, ch)
	}
	if p.Divider > 3 || p.Period == 0 || p.Duty > p.Period {
		return fmt.Errorf("%w: pwm %+v", ErrInvalidArgument, p)
	}
	count, cmp := regs.TCNTB0L, regs.TCMPB0L
	if ch == PWM1 {
		count, cmp = regs.TCNTB1L, regs.TCMPB1L
	}

	if err := d.bus.WriteReg(regs.PSCLR, p.Prescaler); err != nil {
		return err
	}
	mux := p.Divider<<l.divShift | regs.PMUXTimerOutput<<l.pinShift
	if err := bus.Modify(d.bus, regs.PMUXR, 0x03<<l.divShift|0x03<<l.pinShift, mux); err != nil {
		return err
	}
	if err := bus.Write16(d.bus, count, p.Period); err != nil {
		return err
	}
	if err := bus.Write16(d.bus, cmp, p.Duty); err != nil {
		return err
	}
	cfg := l.start | l.reload
	if p.Invert {
		cfg |= l.inv
	}
	logger.Debug("ra8876: pwm start", "channel", ch, "period", p.Period, "duty", p.Duty)
	return bus.Modify(d.bus, regs.PCFGR, l.start|l.reload|l.inv, cfg)
}

// StopPWM stops channel ch.
func (d *Device) StopPWM(ch PWMChannel) error {
	l, ok := pwmLayout[ch]
	if !ok {
		return fmt.Errorf("%w: pwm channel %d", ErrInvalidArgument, ch)
	}
	return bus.Modify(d.bus, regs.PCFGR, l.start, 0)
}

// SetBacklight drives the backlight on PWM1 at percent duty, 0–100.
// 0 stops the timer.
func (d *Device) SetBacklight(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: backlight %d%%", ErrInvalidArgument, percent)
	}
	if percent == 0 {
		return d.StopPWM(PWM1)
	}
	return d.StartPWM(PWM1, PWM{
		Prescaler: 3,
		Divider:   1,
		Period:    100,
		Duty:      uint16(percent - 1),
	})
}

// DisplayColorBar switches the controller's built-in test pattern on or off.
// The pattern replaces the main window on the panel without touching SDRAM.
func (d *Device) DisplayColorBar(on bool) error {
	if on {
		return bus.Modify(d.bus, regs.DPCR, 0, regs.DPCRColorBar)
	}
	return bus.Modify(d.bus, regs.DPCR, regs.DPCRColorBar, 0)
}
