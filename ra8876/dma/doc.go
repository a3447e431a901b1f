// Package dma loads pictures from the serial flash attached to the RA8876
// into SDRAM.
//
// Block transfers place a (possibly cropped) picture at (X, Y) on the current
// canvas; crops are always anchored at the picture origin. Linear transfers
// copy a byte count to a flat SDRAM address, switching the canvas to linear
// addressing for the duration of the call. Both block until the controller
// reports the transfer done or the busy budget runs out.
//
// Flash parts larger than 16 MiB need 4-byte addressing; EnterFourByteMode
// sends the enter command through the controller's SPI master.
package dma
