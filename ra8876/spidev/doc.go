// Package spidev is a bus.Bus transport for an RA8876 wired to a Linux SPI
// controller through the spidev character device.
//
// The controller's 4-wire SPI interface frames every access with a leading
// cycle byte:
//
//	00h reg   select register (command write)
//	80h val…  write the selected register; consecutive bytes in one frame
//	          stream through the memory data port
//	C0h --    read the selected register
//	40h --    read the status register
//
// Bus implements the framing on top of any Transferer, so it can be driven
// by something other than /dev/spidev. Open is only available on Linux.
package spidev
