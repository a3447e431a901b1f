package bitmap

import (
	"context"
	"errors"
	"fmt"
)

// Sprite draws frames cut from a sheet bitmap laid out left to right, top
// to bottom.
type Sprite struct {
	sheet  *Bitmap
	bgsave *Bitmap
	w, h   int
	frame  int
	x, y   int
}

// NewSprite returns a sprite of w×h frames from sheet. It allocates a
// bitmap for the saved background.
func NewSprite(sheet *Bitmap, w, h int) (*Sprite, error) {
	if w <= 0 || h <= 0 || w > sheet.w || h > sheet.h {
		return nil, fmt.Errorf("%w: frame %dx%d on sheet %dx%d", ErrInvalidArgument, w, h, sheet.w, sheet.h)
	}
	bg, err := Create(sheet.dev, w, h)
	if err != nil {
		return nil, err
	}
	return &Sprite{sheet: sheet, bgsave: bg, w: w, h: h}, nil
}

// Frames returns the number of frames on the sheet.
func (s *Sprite) Frames() int {
	return (s.sheet.w / s.w) * (s.sheet.h / s.h)
}

// SetFrame selects the frame drawn next.
func (s *Sprite) SetFrame(n int) error {
	if n < 0 || n >= s.Frames() {
		return fmt.Errorf("%w: frame %d of %d", ErrInvalidArgument, n, s.Frames())
	}
	s.frame = n
	return nil
}

// Position returns where the sprite was last drawn.
func (s *Sprite) Position() (x, y int) { return s.x, s.y }

func (s *Sprite) origin() (int, int) {
	cols := s.sheet.w / s.w
	return (s.frame % cols) * s.w, (s.frame / cols) * s.h
}

// Draw saves the area of bg under (x, y) and draws the current frame there,
// skipping MaskColor pixels.
func (s *Sprite) Draw(ctx context.Context, bg *Bitmap, x, y int) error {
	if err := Blit(ctx, bg, s.bgsave, x, y, 0, 0, s.w, s.h); err != nil {
		return err
	}
	fx, fy := s.origin()
	if err := MaskedBlit(ctx, s.sheet, bg, fx, fy, x, y, s.w, s.h); err != nil {
		return err
	}
	s.x, s.y = x, y
	return nil
}

// DrawTrans is Draw with the frame blended over bg at alpha (0–32, source
// weight). MaskColor pixels stay fully transparent.
func (s *Sprite) DrawTrans(ctx context.Context, bg *Bitmap, x, y, alpha int) (err error) {
	if err := Blit(ctx, bg, s.bgsave, x, y, 0, 0, s.w, s.h); err != nil {
		return err
	}
	tmp, err := Create(s.sheet.dev, s.w, s.h)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, tmp.Destroy())
	}()

	fx, fy := s.origin()
	// composite the masked frame onto the background, keep it, then restore
	// the background and blend the composite over it
	if err := MaskedBlit(ctx, s.sheet, bg, fx, fy, x, y, s.w, s.h); err != nil {
		return err
	}
	if err := Blit(ctx, bg, tmp, x, y, 0, 0, s.w, s.h); err != nil {
		return err
	}
	if err := Blit(ctx, s.bgsave, bg, 0, 0, x, y, s.w, s.h); err != nil {
		return err
	}
	if err := AlphaBlit(ctx, tmp, bg, 0, 0, x, y, s.w, s.h, alpha); err != nil {
		return err
	}
	s.x, s.y = x, y
	return nil
}

// Erase restores the background saved by the last draw.
func (s *Sprite) Erase(ctx context.Context, bg *Bitmap) error {
	return Blit(ctx, s.bgsave, bg, 0, 0, s.x, s.y, s.w, s.h)
}

// Destroy frees the saved background. The sheet is left to the caller.
func (s *Sprite) Destroy() error {
	return s.bgsave.Destroy()
}
