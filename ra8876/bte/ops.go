package bte

import (
	"context"

	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

// CopyWithROP combines src0 with src1 into dst. A nil src1 uses dst.
func (e *Engine) CopyWithROP(ctx context.Context, src0 Region, src1 *Region, dst Region, size Size, rop ROP) (Result, error) {
	return e.Submit(ctx, Descriptor{Op: OpCopyROP, Source0: &src0, Source1: src1, Dest: dst, Size: size, ROP: rop})
}

// CopyWithChromaKey copies src into dst, leaving destination pixels where the
// source equals key.
func (e *Engine) CopyWithChromaKey(ctx context.Context, src, dst Region, size Size, key canvas.Color) (Result, error) {
	return e.Submit(ctx, Descriptor{Op: OpCopyChroma, Source0: &src, Dest: dst, Size: size, Key: &key})
}

// CopyWithOpacity blends src0 and src1 into dst with alpha in 1/32 steps.
// Alpha outside [0, 32] is clamped.
func (e *Engine) CopyWithOpacity(ctx context.Context, src0, src1, dst Region, size Size, alpha int) (Result, error) {
	return e.Submit(ctx, Descriptor{Op: OpCopyOpacity, Source0: &src0, Source1: &src1, Dest: dst, Size: size, Alpha: alpha})
}

// SolidFill paints dst with c.
func (e *Engine) SolidFill(ctx context.Context, dst Region, size Size, c canvas.Color) (Result, error) {
	return e.Submit(ctx, Descriptor{Op: OpSolidFill, Dest: dst, Size: size, Foreground: c})
}

// PatternFill tiles the pattern at tile over dst. A non-nil key makes matching
// pattern pixels transparent; otherwise rop combines pattern and destination.
func (e *Engine) PatternFill(ctx context.Context, p Pattern, tile, dst Region, size Size, rop ROP, key *canvas.Color) (Result, error) {
	d := Descriptor{Op: OpPatternFill, Source0: &tile, Dest: dst, Size: size, ROP: rop, Pattern: p}
	if key != nil {
		d.Op, d.Key = OpPatternFillChroma, key
	}
	return e.Submit(ctx, d)
}

// MPUWriteWithROP streams data as source 0 and combines it with src1.
// A nil src1 uses dst. data holds size.Width × size.Height pixels.
func (e *Engine) MPUWriteWithROP(ctx context.Context, src1 *Region, dst Region, size Size, rop ROP, data []byte) (Result, error) {
	return e.Submit(ctx, Descriptor{Op: OpMPUWriteROP, Source1: src1, Dest: dst, Size: size, ROP: rop, Data: data})
}

// MPUWriteWithChromaKey streams data into dst, skipping pixels equal to key.
func (e *Engine) MPUWriteWithChromaKey(ctx context.Context, dst Region, size Size, key canvas.Color, data []byte) (Result, error) {
	return e.Submit(ctx, Descriptor{Op: OpMPUWriteChroma, Dest: dst, Size: size, Key: &key, Data: data})
}

// MPUWriteColorExpansion expands a 1 bpp MSB-first bitmap into dst. Each row
// occupies (size.Width+7)/8 bytes. Set bits draw fg; clear bits draw bg, or
// nothing when chroma is true.
func (e *Engine) MPUWriteColorExpansion(ctx context.Context, dst Region, size Size, fg, bg canvas.Color, chroma bool, data []byte) (Result, error) {
	op := OpColorExpansion
	if chroma {
		op = OpColorExpansionChroma
	}
	return e.Submit(ctx, Descriptor{Op: op, Dest: dst, Size: size, Foreground: fg, Background: bg, Data: data})
}
