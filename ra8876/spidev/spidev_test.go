package spidev

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

// wire decodes frames the way the controller's SPI slave does and drives a
// simulated controller with them.
type wire struct {
	c      *sim.Controller
	sel    byte
	frames [][]byte
	fail   error
	closed bool
}

func newWire() *wire {
	return &wire{c: sim.New(nil)}
}

func (w *wire) Transfer(tx, rx []byte) error {
	if w.fail != nil {
		return w.fail
	}
	w.frames = append(w.frames, append([]byte(nil), tx...))
	switch tx[0] {
	case CmdWrite:
		w.sel = tx[1]
	case DataWrite:
		for _, v := range tx[1:] {
			_ = w.c.WriteReg(w.sel, v)
		}
	case DataRead:
		for i := 1; i < len(tx); i++ {
			rx[i], _ = w.c.ReadReg(w.sel)
		}
	case StatusRead:
		rx[1], _ = w.c.Status()
	}
	return nil
}

func (w *wire) Close() error {
	w.closed = true
	return nil
}

func newTestBus(t *testing.T, opts *Options) (*wire, *Bus) {
	t.Helper()
	w := newWire()
	b, err := NewBus(w, opts)
	require.NoError(t, err)
	return w, b
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/dev/spidev0.1", Path(0, 1))
	assert.Equal(t, "/dev/spidev2.0", Path(2, 0))
}

func TestNewBus_InvalidOptions(t *testing.T) {
	_, err := NewBus(nil, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	for _, o := range []Options{
		{Mode: 4, SpeedHz: 1, MaxTransfer: 16},
		{SpeedHz: 0, MaxTransfer: 16},
		{SpeedHz: 1, MaxTransfer: 1},
	} {
		_, err := NewBus(newWire(), &o)
		require.ErrorIs(t, err, ErrInvalidArgument, "%+v", o)
	}
}

func TestWriteReg_Frames(t *testing.T) {
	w, b := newTestBus(t, nil)

	require.NoError(t, b.WriteReg(regs.DPCR, 0x40))

	assert.Equal(t, [][]byte{{CmdWrite, regs.DPCR}, {DataWrite, 0x40}}, w.frames)
	assert.Equal(t, byte(0x40), w.c.Reg(regs.DPCR))
}

func TestReadReg_Frames(t *testing.T) {
	w, b := newTestBus(t, nil)
	require.NoError(t, w.c.WriteReg(regs.FLDR, 0x5A))

	v, err := b.ReadReg(regs.FLDR)
	require.NoError(t, err)
	assert.Equal(t, byte(0x5A), v)
	assert.Equal(t, [][]byte{{CmdWrite, regs.FLDR}, {DataRead, 0}}, w.frames)
}

func TestStatus_Frame(t *testing.T) {
	w, b := newTestBus(t, nil)

	s, err := b.Status()
	require.NoError(t, err)
	assert.NotZero(t, s&regs.StatusWriteFIFOEmpty)
	assert.Equal(t, [][]byte{{StatusRead, 0}}, w.frames)
}

func TestWriteData_Chunks(t *testing.T) {
	w, b := newTestBus(t, &Options{SpeedHz: 1, MaxTransfer: 4})

	require.NoError(t, b.WriteData([]byte{1, 2, 3, 4, 5, 6, 7}))

	assert.Equal(t, [][]byte{
		{CmdWrite, regs.MRWDP},
		{DataWrite, 1, 2, 3},
		{DataWrite, 4, 5, 6},
		{DataWrite, 7},
	}, w.frames)
}

func TestReadData_OneByteFrames(t *testing.T) {
	w, b := newTestBus(t, nil)

	p := make([]byte, 3)
	require.NoError(t, b.ReadData(p))
	require.Len(t, w.frames, 4)
	assert.Equal(t, []byte{CmdWrite, regs.MRWDP}, w.frames[0])
	for _, f := range w.frames[1:] {
		assert.Equal(t, []byte{DataRead, 0}, f)
	}
}

func TestEmptyStreams(t *testing.T) {
	w, b := newTestBus(t, nil)
	require.NoError(t, b.WriteData(nil))
	require.NoError(t, b.ReadData(nil))
	assert.Empty(t, w.frames)
}

func TestTransferError(t *testing.T) {
	w, b := newTestBus(t, nil)
	boom := errors.New("boom")
	w.fail = boom

	require.ErrorIs(t, b.WriteReg(0, 0), boom)
	_, err := b.Status()
	require.ErrorIs(t, err, boom)
}

func TestClose(t *testing.T) {
	w, b := newTestBus(t, nil)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.True(t, w.closed)

	require.ErrorIs(t, b.WriteReg(0, 0), ErrClosed)
	_, err := b.ReadReg(0)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, b.WriteData([]byte{1}), ErrClosed)
}

func TestCanvasOverSPI(t *testing.T) {
	w, b := newTestBus(t, &Options{SpeedHz: 1, MaxTransfer: 64})
	a := canvas.New(b, nil)
	require.NoError(t, a.SetCanvas(canvas.Descriptor{Width: 320, Height: 240, Mode: canvas.RGB565}))
	ctx := context.Background()

	require.NoError(t, a.PutPixel(ctx, 10, 5, canvas.Red, 0))
	assert.Equal(t, canvas.Red.Encode(canvas.RGB565), w.c.Pixel(0, 320, 10, 5))

	line := canvas.Blue.Fill(canvas.RGB565, 320)
	require.NoError(t, a.Write(ctx, line, 2))
	got := make([]byte, len(line))
	require.NoError(t, a.Read(ctx, got, 2))
	assert.Equal(t, line, got)
}
