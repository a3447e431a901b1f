//go:build linux

package spidev

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl requests from linux/spi/spidev.h, _IOW('k', nr, size).
const (
	iocWrMode        = 0x40016B01
	iocWrBitsPerWord = 0x40016B03
	iocWrMaxSpeedHz  = 0x40046B04
	iocMessage1      = 0x40206B00 // SPI_IOC_MESSAGE(1)
)

// iocTransfer mirrors struct spi_ioc_transfer.
type iocTransfer struct {
	txBuf       uint64
	rxBuf       uint64
	length      uint32
	speedHz     uint32
	delayUsecs  uint16
	bitsPerWord uint8
	csChange    uint8
	txNbits     uint8
	rxNbits     uint8
	wordDelay   uint8
	_           uint8
}

type port struct {
	f     *os.File
	speed uint32
}

// Open opens the spidev node at path (see Path) and configures it.
// A nil opts uses DefaultOptions.
func Open(path string, opts *Options) (*Bus, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("spidev: open: %w", err)
	}
	p := &port{f: f, speed: opts.SpeedHz}
	mode, bits, speed := opts.Mode, uint8(8), opts.SpeedHz
	setup := []struct {
		name string
		req  uintptr
		arg  unsafe.Pointer
	}{
		{"mode", iocWrMode, unsafe.Pointer(&mode)},
		{"bits per word", iocWrBitsPerWord, unsafe.Pointer(&bits)},
		{"max speed", iocWrMaxSpeedHz, unsafe.Pointer(&speed)},
	}
	for _, s := range setup {
		if err := p.ioctl(s.req, s.arg); err != nil {
			f.Close()
			return nil, fmt.Errorf("spidev: set %s: %w", s.name, err)
		}
	}
	return NewBus(p, opts)
}

func (p *port) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, p.f.Fd(), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Transfer implements Transferer.
func (p *port) Transfer(tx, rx []byte) error {
	if len(tx) == 0 {
		return nil
	}
	tr := iocTransfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&tx[0]))),
		length:      uint32(len(tx)),
		speedHz:     p.speed,
		bitsPerWord: 8,
	}
	if rx != nil {
		if len(rx) < len(tx) {
			return fmt.Errorf("%w: rx %d < tx %d", ErrInvalidArgument, len(rx), len(tx))
		}
		tr.rxBuf = uint64(uintptr(unsafe.Pointer(&rx[0])))
	}
	err := p.ioctl(iocMessage1, unsafe.Pointer(&tr))
	runtime.KeepAlive(tx)
	runtime.KeepAlive(rx)
	return err
}

// Close implements Transferer.
func (p *port) Close() error {
	return p.f.Close()
}
