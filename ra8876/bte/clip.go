package bte

import "github.com/joshuapare/ra8876kit/internal/regs"

// Clip resolves the size a descriptor will actually transfer. ok is false
// when an origin lies outside its surface and the call must be skipped.
func Clip(d Descriptor) (Size, bool) {
	for _, r := range []*Region{d.Source0, d.Source1, &d.Dest} {
		if r != nil && !r.contains() {
			return Size{}, false
		}
	}
	w := min(d.Size.Width, d.Dest.Stride-d.Dest.X)
	h := d.Size.Height
	if d.Dest.Height > 0 {
		h = min(h, d.Dest.Height-d.Dest.Y)
	}
	if w <= 0 || h <= 0 {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

func (r *Region) contains() bool {
	if r.X < 0 || r.Y < 0 || r.X > r.Stride {
		return false
	}
	return r.Height <= 0 || r.Y <= r.Height
}

// fits reports whether r can be programmed without truncation. Origins past
// a bounded surface are left to contains.
func (r *Region) fits() bool {
	if r.Stride > regs.MaxCoord || r.Height > regs.MaxCoord {
		return false
	}
	return r.Height > 0 || r.Y <= regs.MaxCoord
}
