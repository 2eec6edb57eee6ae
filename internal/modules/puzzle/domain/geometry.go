package domain

import "math"

type Point struct {
	X float64
	Y float64
}

// Curve is a cubic Bézier from From to To whose control points pull
// horizontally by half the horizontal distance.
type Curve struct {
	From     Point
	Control1 Point
	Control2 Point
	To       Point
}

func NewCurve(from, to Point) Curve {
	offset := math.Abs(to.X-from.X) * 0.5
	return Curve{
		From:     from,
		Control1: Point{X: from.X + offset, Y: from.Y},
		Control2: Point{X: to.X - offset, Y: to.Y},
		To:       to,
	}
}

// At evaluates the curve at t in [0,1].
func (c Curve) At(t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return Point{
		X: a*c.From.X + b*c.Control1.X + d*c.Control2.X + e*c.To.X,
		Y: a*c.From.Y + b*c.Control1.Y + d*c.Control2.Y + e*c.To.Y,
	}
}
