// Package quadtree implements a region quadtree: a point index that answers
// range queries over boxes and circles by recursively quartering space.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must serialize inserts and keep queries out of their way.
package quadtree

import (
	"fmt"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
)

// Tree owns the root node of a quadtree.
type Tree struct {
	root *node
	size int
}

// NodeInfo describes one node as seen by Walk.
type NodeInfo struct {
	Boundary valueobject.BoundingBox
	Depth    int
	Points   int
	Divided  bool
}

// New returns an empty tree covering boundary whose nodes hold up to capacity
// points each before subdividing.
func New(boundary valueobject.BoundingBox, capacity int) (*Tree, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, domain.ErrInvalidCapacity)
	}
	if !boundary.IsValid() {
		return nil, fmt.Errorf("boundary %+v: %w", boundary, domain.ErrInvalidBoundingBox)
	}

	return &Tree{root: newNode(boundary, capacity)}, nil
}

// Insert stores p and reports whether it was placed. It returns false when p
// lies outside the tree boundary or lands in a full node that is too small to
// subdivide; in both cases the tree is left unchanged.
func (t *Tree) Insert(p valueobject.Point) bool {
	if !t.root.insert(p) {
		return false
	}
	t.size++
	return true
}

// Query returns every stored point contained by r. Points held by the same
// node come back in insertion order.
func (t *Tree) Query(r Region) []valueobject.Point {
	return t.root.query(r, make([]valueobject.Point, 0))
}

// QueryAppend appends the points contained by r to dst and returns the
// extended slice. dst is neither cleared nor deduplicated.
func (t *Tree) QueryAppend(r Region, dst []valueobject.Point) []valueobject.Point {
	return t.root.query(r, dst)
}

// Walk visits every node depth-first, parents before children.
func (t *Tree) Walk(fn func(NodeInfo)) {
	t.root.walk(0, fn)
}

func (t *Tree) Len() int {
	return t.size
}

func (t *Tree) Boundary() valueobject.BoundingBox {
	return t.root.boundary
}

func (t *Tree) Capacity() int {
	return t.root.capacity
}
