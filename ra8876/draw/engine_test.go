package draw

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

func TestLine(t *testing.T) {
	c, _, e := newTestEngine(t, nil)
	ctx := context.Background()

	require.NoError(t, e.Line(ctx, Pt(10, 10), Pt(20, 10), canvas.Red))
	for x := 10; x <= 20; x++ {
		assert.True(t, lit(c, x, 10, canvas.Red), "x=%d", x)
	}
	assert.False(t, lit(c, 21, 10, canvas.Red))
	assert.False(t, lit(c, 9, 10, canvas.Red))

	require.NoError(t, e.Line(ctx, Pt(5, 40), Pt(0, 35), canvas.Green))
	for i := 0; i <= 5; i++ {
		assert.True(t, lit(c, i, 35+i, canvas.Green), "i=%d", i)
	}
	assert.Equal(t, 2, c.DrawOps())
}

func TestRect(t *testing.T) {
	c, _, e := newTestEngine(t, nil)
	ctx := context.Background()

	require.NoError(t, e.Rect(ctx, Pt(20, 15), Pt(10, 10), canvas.Blue))
	for _, p := range []Point{{10, 10}, {20, 15}, {15, 10}, {10, 12}, {20, 12}, {15, 15}} {
		assert.True(t, lit(c, p.X, p.Y, canvas.Blue), "%v", p)
	}
	assert.False(t, lit(c, 15, 12, canvas.Blue), "outline leaves the inside alone")

	require.NoError(t, e.FillRect(ctx, Pt(100, 100), Pt(110, 105), canvas.Blue))
	assert.True(t, lit(c, 105, 102, canvas.Blue))
	assert.False(t, lit(c, 111, 102, canvas.Blue))
}

func TestRoundRect(t *testing.T) {
	c, _, e := newTestEngine(t, nil)
	ctx := context.Background()

	require.NoError(t, e.FillRoundRect(ctx, Pt(10, 10), Pt(40, 30), 5, 5, canvas.Red))
	assert.True(t, lit(c, 25, 20, canvas.Red))
	assert.True(t, lit(c, 10, 20, canvas.Red), "straight edge")
	assert.False(t, lit(c, 10, 10, canvas.Red), "corner is rounded off")
	assert.False(t, lit(c, 40, 30, canvas.Red))

	require.NoError(t, e.RoundRect(ctx, Pt(100, 10), Pt(140, 30), 5, 5, canvas.Green))
	assert.True(t, lit(c, 120, 10, canvas.Green))
	assert.False(t, lit(c, 120, 20, canvas.Green))
}

func TestEllipse(t *testing.T) {
	c, _, e := newTestEngine(t, nil)
	ctx := context.Background()

	require.NoError(t, e.Circle(ctx, Pt(50, 50), 10, canvas.Red))
	assert.True(t, lit(c, 60, 50, canvas.Red))
	assert.True(t, lit(c, 50, 40, canvas.Red))
	assert.False(t, lit(c, 50, 50, canvas.Red))
	assert.False(t, lit(c, 61, 50, canvas.Red))

	require.NoError(t, e.FillCircle(ctx, Pt(150, 50), 10, canvas.Red))
	assert.True(t, lit(c, 150, 50, canvas.Red))
	assert.True(t, lit(c, 157, 57, canvas.Red))
	assert.False(t, lit(c, 158, 58, canvas.Red))

	require.NoError(t, e.Ellipse(ctx, Pt(300, 50), 20, 5, canvas.Blue))
	assert.True(t, lit(c, 320, 50, canvas.Blue))
	assert.True(t, lit(c, 300, 55, canvas.Blue))
	assert.False(t, lit(c, 300, 50, canvas.Blue))

	require.NoError(t, e.FillEllipse(ctx, Pt(300, 150), 20, 5, canvas.Blue))
	assert.True(t, lit(c, 315, 150, canvas.Blue))
	assert.False(t, lit(c, 300, 157, canvas.Blue))
}

func TestTriangle(t *testing.T) {
	c, _, e := newTestEngine(t, nil)
	ctx := context.Background()

	require.NoError(t, e.Triangle(ctx, Pt(0, 0), Pt(20, 0), Pt(0, 20), canvas.Green))
	assert.True(t, lit(c, 10, 0, canvas.Green))
	assert.True(t, lit(c, 0, 10, canvas.Green))
	assert.True(t, lit(c, 10, 10, canvas.Green), "hypotenuse")
	assert.False(t, lit(c, 5, 5, canvas.Green))

	require.NoError(t, e.FillTriangle(ctx, Pt(100, 0), Pt(120, 0), Pt(100, 20), canvas.Green))
	assert.True(t, lit(c, 105, 5, canvas.Green))
	assert.False(t, lit(c, 115, 15, canvas.Green))
}

func TestSubmit_ClipsToActiveWindow(t *testing.T) {
	c, a, e := newTestEngine(t, nil)
	p := a.Default()
	p.Window = canvas.Window{Width: 50, Height: 600}

	err := a.WithPosition(p, func() error {
		return e.Line(context.Background(), Pt(40, 5), Pt(60, 5), canvas.Red)
	})
	require.NoError(t, err)
	assert.True(t, lit(c, 49, 5, canvas.Red))
	assert.False(t, lit(c, 50, 5, canvas.Red))
	assert.Equal(t, a.Default(), a.Position())
}

func TestSubmit_OffscreenBase(t *testing.T) {
	c, a, e := newTestEngine(t, nil)
	base := uint32(800 * 600 * 2)
	p := canvas.Position{Base: base, Width: 64, Window: canvas.Window{Width: 64, Height: 64}}

	require.NoError(t, a.WithPosition(p, func() error {
		return e.FillRect(context.Background(), Pt(2, 3), Pt(2, 3), canvas.Red)
	}))
	assert.Equal(t, canvas.Red.Encode(canvas.RGB565), c.Pixel(base, 64, 2, 3))
	assert.False(t, lit(c, 2, 3, canvas.Red))
}

func TestSubmit_ControlWrittenLast(t *testing.T) {
	c, _, e := newTestEngine(t, nil)
	c.ResetTrace()

	require.NoError(t, e.FillRoundRect(context.Background(), Pt(1, 2), Pt(30, 40), 4, 6, canvas.White))
	w := c.Writes()
	require.NotEmpty(t, w)
	assert.Equal(t, sim.RegWrite{Addr: regs.DCR1, Val: 0xF0}, w[len(w)-1])
	assert.Equal(t, 1, c.Reg16(regs.DLHSR0))
	assert.Equal(t, 2, c.Reg16(regs.DLVSR0))
	assert.Equal(t, 30, c.Reg16(regs.DLHER0))
	assert.Equal(t, 40, c.Reg16(regs.DLVER0))
	assert.Equal(t, 4, c.Reg16(regs.ELLA0))
	assert.Equal(t, 6, c.Reg16(regs.ELLB0))
	assert.Equal(t, byte(0xF8), c.Reg(regs.FGCR))
	v, err := c.ReadReg(regs.DCR1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x70), v, "start bit reads back clear when idle")
}

func TestSubmit_ControlCodes(t *testing.T) {
	tests := []struct {
		name string
		s    Shape
		reg  byte
		val  byte
	}{
		{"line", Shape{Kind: KindLine, P1: Pt(1, 1)}, regs.DCR0, 0x80},
		{"triangle", Shape{Kind: KindTriangle, P1: Pt(4, 0), P2: Pt(0, 4)}, regs.DCR0, 0x82},
		{"triangle fill", Shape{Kind: KindTriangle, P1: Pt(4, 0), P2: Pt(0, 4), Fill: true}, regs.DCR0, 0xA2},
		{"rect", Shape{Kind: KindRect, P1: Pt(4, 4)}, regs.DCR1, 0xA0},
		{"rect fill", Shape{Kind: KindRect, P1: Pt(4, 4), Fill: true}, regs.DCR1, 0xE0},
		{"round rect", Shape{Kind: KindRoundRect, P1: Pt(8, 8), RX: 2, RY: 2}, regs.DCR1, 0xB0},
		{"ellipse", Shape{Kind: KindEllipse, P0: Pt(8, 8), RX: 2, RY: 3}, regs.DCR1, 0x80},
		{"ellipse fill", Shape{Kind: KindEllipse, P0: Pt(8, 8), RX: 2, RY: 3, Fill: true}, regs.DCR1, 0xC0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, e := newTestEngine(t, nil)
			c.ResetTrace()
			require.NoError(t, e.Submit(context.Background(), tt.s))
			w := c.Writes()
			assert.Equal(t, sim.RegWrite{Addr: tt.reg, Val: tt.val}, w[len(w)-1])
		})
	}
}

func TestSubmit_Invalid(t *testing.T) {
	c, _, e := newTestEngine(t, nil)
	ctx := context.Background()
	c.ResetTrace()

	bad := []Shape{
		{Kind: KindLine, P0: Pt(-1, 0)},
		{Kind: KindLine, P1: Pt(0x10000, 0)},
		{Kind: KindLine, Fill: true},
		{Kind: KindRoundRect, P1: Pt(10, 10), RX: 6, RY: 2},
		{Kind: KindRoundRect, P1: Pt(10, 10)},
		{Kind: KindEllipse, P0: Pt(10, 10), RX: 0, RY: 3},
		{Kind: Kind(9)},
	}
	for _, s := range bad {
		require.ErrorIs(t, e.Submit(ctx, s), ErrInvalidArgument, "%+v", s)
	}
	assert.Empty(t, c.Writes())
}

func TestSubmit_NoCanvas(t *testing.T) {
	e := New(canvas.New(sim.New(nil), nil), nil)
	require.ErrorIs(t, e.Line(context.Background(), Pt(0, 0), Pt(1, 1), canvas.Red), canvas.ErrNoCanvas)
}

func TestSubmit_StuckBusy(t *testing.T) {
	c, _, e := newTestEngine(t, &Options{Busy: poll.Budget{Timeout: 5 * time.Millisecond}})
	ctx := context.Background()

	c.SetStuckBusy(true)
	require.ErrorIs(t, e.Line(ctx, Pt(0, 0), Pt(3, 0), canvas.Red), poll.ErrTimeout)

	c.ResetTrace()
	require.ErrorIs(t, e.Line(ctx, Pt(0, 1), Pt(3, 1), canvas.Red), poll.ErrTimeout)
	assert.Empty(t, c.Writes(), "a pending draw blocks reprogramming")

	c.SetStuckBusy(false)
	require.NoError(t, e.Line(ctx, Pt(0, 1), Pt(3, 1), canvas.Red))
	assert.True(t, lit(c, 3, 1, canvas.Red))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "round-rect", KindRoundRect.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
