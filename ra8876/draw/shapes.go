package draw

import (
	"context"

	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

// Line draws a one-pixel line from p0 to p1, both ends included.
func (e *Engine) Line(ctx context.Context, p0, p1 Point, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindLine, P0: p0, P1: p1, Color: c})
}

// Triangle outlines the triangle p0, p1, p2.
func (e *Engine) Triangle(ctx context.Context, p0, p1, p2 Point, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindTriangle, P0: p0, P1: p1, P2: p2, Color: c})
}

// FillTriangle fills the triangle p0, p1, p2.
func (e *Engine) FillTriangle(ctx context.Context, p0, p1, p2 Point, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindTriangle, P0: p0, P1: p1, P2: p2, Fill: true, Color: c})
}

// Rect outlines the rectangle with corners p0 and p1.
func (e *Engine) Rect(ctx context.Context, p0, p1 Point, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindRect, P0: p0, P1: p1, Color: c})
}

// FillRect fills the rectangle with corners p0 and p1.
func (e *Engine) FillRect(ctx context.Context, p0, p1 Point, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindRect, P0: p0, P1: p1, Fill: true, Color: c})
}

// RoundRect outlines a rectangle whose corners are quarter ellipses of
// radii rx × ry.
func (e *Engine) RoundRect(ctx context.Context, p0, p1 Point, rx, ry int, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindRoundRect, P0: p0, P1: p1, RX: rx, RY: ry, Color: c})
}

// FillRoundRect fills a rounded rectangle.
func (e *Engine) FillRoundRect(ctx context.Context, p0, p1 Point, rx, ry int, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindRoundRect, P0: p0, P1: p1, RX: rx, RY: ry, Fill: true, Color: c})
}

// Circle outlines the circle of radius r around center.
func (e *Engine) Circle(ctx context.Context, center Point, r int, c canvas.Color) error {
	return e.Ellipse(ctx, center, r, r, c)
}

// FillCircle fills the circle of radius r around center.
func (e *Engine) FillCircle(ctx context.Context, center Point, r int, c canvas.Color) error {
	return e.FillEllipse(ctx, center, r, r, c)
}

// Ellipse outlines the ellipse with radii rx × ry around center.
func (e *Engine) Ellipse(ctx context.Context, center Point, rx, ry int, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindEllipse, P0: center, RX: rx, RY: ry, Color: c})
}

// FillEllipse fills the ellipse with radii rx × ry around center.
func (e *Engine) FillEllipse(ctx context.Context, center Point, rx, ry int, c canvas.Color) error {
	return e.Submit(ctx, Shape{Kind: KindEllipse, P0: center, RX: rx, RY: ry, Fill: true, Color: c})
}
