package quadtree

import "github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"

// MinSubdivideExtent is the half-extent floor. A node whose half-width or
// half-height is at or below it never subdivides, which bounds tree depth by
// the root boundary size.
const MinSubdivideExtent = 4.0

// maxPrealloc caps the point slots reserved up front; capacity is only a limit.
const maxPrealloc = 8

// Region is any query shape the tree can be searched with.
type Region interface {
	Contains(p valueobject.Point) bool
	Intersects(bb valueobject.BoundingBox) bool
}

// node owns up to capacity points and, once subdivided, four children. Points
// are never moved after placement, so a divided node keeps its own points.
type node struct {
	boundary valueobject.BoundingBox
	capacity int
	points   []valueobject.Point

	divided bool
	nw      *node
	ne      *node
	sw      *node
	se      *node
}

func newNode(boundary valueobject.BoundingBox, capacity int) *node {
	return &node{
		boundary: boundary,
		capacity: capacity,
		points:   make([]valueobject.Point, 0, min(capacity, maxPrealloc)),
	}
}

func (n *node) canSubdivide() bool {
	return n.boundary.HalfW > MinSubdivideExtent && n.boundary.HalfH > MinSubdivideExtent
}

func (n *node) insert(p valueobject.Point) bool {
	if !n.boundary.Contains(p) {
		return false
	}

	if !n.divided && len(n.points) < n.capacity {
		n.points = append(n.points, p)
		return true
	}

	if !n.canSubdivide() {
		return false
	}

	n.subdivide()

	// NE, NW, SE, SW. Edge points go to the first child that accepts them.
	return n.ne.insert(p) ||
		n.nw.insert(p) ||
		n.se.insert(p) ||
		n.sw.insert(p)
}

// subdivide creates the four quadrants once. North is toward smaller y.
func (n *node) subdivide() {
	if n.divided {
		return
	}

	x := n.boundary.CX
	y := n.boundary.CY
	w := n.boundary.HalfW / 2
	h := n.boundary.HalfH / 2

	n.nw = newNode(valueobject.NewBoundingBox(x-w, y-h, w, h), n.capacity)
	n.ne = newNode(valueobject.NewBoundingBox(x+w, y-h, w, h), n.capacity)
	n.sw = newNode(valueobject.NewBoundingBox(x-w, y+h, w, h), n.capacity)
	n.se = newNode(valueobject.NewBoundingBox(x+w, y+h, w, h), n.capacity)
	n.divided = true
}

// query appends every point in the subtree contained by r to found.
func (n *node) query(r Region, found []valueobject.Point) []valueobject.Point {
	if !r.Intersects(n.boundary) {
		return found
	}

	for _, p := range n.points {
		if r.Contains(p) {
			found = append(found, p)
		}
	}

	if n.divided {
		found = n.nw.query(r, found)
		found = n.ne.query(r, found)
		found = n.sw.query(r, found)
		found = n.se.query(r, found)
	}

	return found
}

func (n *node) walk(depth int, fn func(NodeInfo)) {
	fn(NodeInfo{
		Boundary: n.boundary,
		Depth:    depth,
		Points:   len(n.points),
		Divided:  n.divided,
	})

	if n.divided {
		n.nw.walk(depth+1, fn)
		n.ne.walk(depth+1, fn)
		n.sw.walk(depth+1, fn)
		n.se.walk(depth+1, fn)
	}
}
