package valueobject

import "math"

// Circle is a query region centered on (CX, CY). Build it with NewCircle so the
// squared radius is cached.
type Circle struct {
	CX     float64
	CY     float64
	Radius float64

	rSquared float64
}

func NewCircle(cx, cy, radius float64) Circle {
	return Circle{
		CX:       cx,
		CY:       cy,
		Radius:   radius,
		rSquared: radius * radius,
	}
}

func (c Circle) IsValid() bool {
	return isFinite(c.CX) && isFinite(c.CY) && isFinite(c.Radius) && c.Radius >= 0
}

// Contains reports whether p is within the circle, boundary inclusive.
func (c Circle) Contains(p Point) bool {
	dx := p.X - c.CX
	dy := p.Y - c.CY
	return dx*dx+dy*dy <= c.rSquared
}

// Intersects reports whether the circle overlaps bb. Far-apart and axis-overlap
// cases are decided without the corner distance.
func (c Circle) Intersects(bb BoundingBox) bool {
	xDist := math.Abs(bb.CX - c.CX)
	yDist := math.Abs(bb.CY - c.CY)

	if xDist > c.Radius+bb.HalfW || yDist > c.Radius+bb.HalfH {
		return false
	}

	if xDist <= bb.HalfW || yDist <= bb.HalfH {
		return true
	}

	dx := xDist - bb.HalfW
	dy := yDist - bb.HalfH
	return dx*dx+dy*dy <= c.rSquared
}

// Bounds returns the smallest box enclosing the circle.
func (c Circle) Bounds() BoundingBox {
	return NewBoundingBox(c.CX, c.CY, c.Radius, c.Radius)
}
