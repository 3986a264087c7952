package valueobject

import (
	"math"
	"strconv"
)

// Point is an immutable 2D coordinate. Two points with equal coordinates are
// still distinct entries when stored in an index.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) IsValid() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
