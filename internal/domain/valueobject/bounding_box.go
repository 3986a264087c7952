package valueobject

// BoundingBox is an axis-aligned box described by its center and half-extents.
type BoundingBox struct {
	CX    float64
	CY    float64
	HalfW float64
	HalfH float64
}

func NewBoundingBox(cx, cy, halfW, halfH float64) BoundingBox {
	return BoundingBox{
		CX:    cx,
		CY:    cy,
		HalfW: halfW,
		HalfH: halfH,
	}
}

func (bb BoundingBox) IsValid() bool {
	return isFinite(bb.CX) && isFinite(bb.CY) &&
		isFinite(bb.HalfW) && isFinite(bb.HalfH) &&
		bb.HalfW >= 0 && bb.HalfH >= 0
}

// Contains reports whether p lies inside the box. Edges are inclusive.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.CX-bb.HalfW && p.X <= bb.CX+bb.HalfW &&
		p.Y >= bb.CY-bb.HalfH && p.Y <= bb.CY+bb.HalfH
}

// Intersects reports whether the two boxes overlap. Touching edges count.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return !(other.CX-other.HalfW > bb.CX+bb.HalfW ||
		other.CX+other.HalfW < bb.CX-bb.HalfW ||
		other.CY-other.HalfH > bb.CY+bb.HalfH ||
		other.CY+other.HalfH < bb.CY-bb.HalfH)
}

// MinX, MinY, MaxX and MaxY return the box corners.
func (bb BoundingBox) MinX() float64 { return bb.CX - bb.HalfW }
func (bb BoundingBox) MinY() float64 { return bb.CY - bb.HalfH }
func (bb BoundingBox) MaxX() float64 { return bb.CX + bb.HalfW }
func (bb BoundingBox) MaxY() float64 { return bb.CY + bb.HalfH }
