package bitmap

import (
	"context"

	"github.com/joshuapare/ra8876kit/ra8876/bte"
)

// Blit copies the w×h area at (sx, sy) of src to (dx, dy) of dst.
func Blit(ctx context.Context, src, dst *Bitmap, sx, sy, dx, dy, w, h int) error {
	if err := live(src, dst); err != nil {
		return err
	}
	_, err := dst.dev.BTE().CopyWithROP(ctx, src.Region(sx, sy), nil, dst.Region(dx, dy),
		bte.Size{Width: w, Height: h}, bte.RopS0)
	return err
}

// MaskedBlit is Blit that leaves destination pixels where the source is
// MaskColor.
func MaskedBlit(ctx context.Context, src, dst *Bitmap, sx, sy, dx, dy, w, h int) error {
	if err := live(src, dst); err != nil {
		return err
	}
	_, err := dst.dev.BTE().CopyWithChromaKey(ctx, src.Region(sx, sy), dst.Region(dx, dy),
		bte.Size{Width: w, Height: h}, MaskColor)
	return err
}

// AlphaBlit blends src over dst. alpha is the source weight in 1/32 steps:
// 0 keeps dst, 32 copies src.
func AlphaBlit(ctx context.Context, src, dst *Bitmap, sx, sy, dx, dy, w, h, alpha int) error {
	if err := live(src, dst); err != nil {
		return err
	}
	d := dst.Region(dx, dy)
	_, err := dst.dev.BTE().CopyWithOpacity(ctx, d, src.Region(sx, sy), d,
		bte.Size{Width: w, Height: h}, alpha)
	return err
}

func live(bs ...*Bitmap) error {
	for _, b := range bs {
		if b.destroyed {
			return ErrDestroyed
		}
	}
	return nil
}
