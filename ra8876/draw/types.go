package draw

import (
	"fmt"

	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

// Point is a canvas coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{x, y} }

// Kind selects the primitive.
type Kind uint8

const (
	KindLine Kind = iota
	KindTriangle
	KindRect
	KindRoundRect
	KindEllipse
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindTriangle:
		return "triangle"
	case KindRect:
		return "rect"
	case KindRoundRect:
		return "round-rect"
	case KindEllipse:
		return "ellipse"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is a complete draw request.
//
//	line       P0 → P1
//	triangle   P0, P1, P2
//	rect       corners P0 and P1, inclusive
//	round-rect corners P0 and P1, corner radii RX × RY
//	ellipse    center P0, radii RX × RY
type Shape struct {
	Kind       Kind
	P0, P1, P2 Point
	RX, RY     int
	Fill       bool
	Color      canvas.Color
}
