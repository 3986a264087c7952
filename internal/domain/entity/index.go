package entity

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/quadtree-backend/internal/quadtree"
)

var indexNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Index is a named quadtree. The tree itself is single-writer; Index holds the
// lock that lets handlers share it.
type Index struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time

	mu       sync.RWMutex
	tree     *quadtree.Tree
	rejected int
}

type IndexStats struct {
	Count    int
	Rejected int
	Nodes    int
	Depth    int
}

func NewIndex(name string, boundary valueobject.BoundingBox, capacity int) (*Index, error) {
	if !IsValidIndexName(name) {
		return nil, fmt.Errorf("name %q: %w", name, domain.ErrInvalidIndexName)
	}

	tree, err := quadtree.New(boundary, capacity)
	if err != nil {
		return nil, err
	}

	return &Index{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		tree:      tree,
	}, nil
}

func IsValidIndexName(name string) bool {
	return indexNamePattern.MatchString(name)
}

func (i *Index) Boundary() valueobject.BoundingBox {
	return i.tree.Boundary()
}

func (i *Index) Capacity() int {
	return i.tree.Capacity()
}

// Insert places each point and reports per point whether it was accepted.
func (i *Index) Insert(points []valueobject.Point) []bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	results := make([]bool, len(points))
	for n, p := range points {
		results[n] = i.tree.Insert(p)
		if !results[n] {
			i.rejected++
		}
	}
	return results
}

func (i *Index) Query(r quadtree.Region) []valueobject.Point {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.tree.Query(r)
}

func (i *Index) Nodes() []quadtree.NodeInfo {
	i.mu.RLock()
	defer i.mu.RUnlock()

	var nodes []quadtree.NodeInfo
	i.tree.Walk(func(n quadtree.NodeInfo) {
		nodes = append(nodes, n)
	})
	return nodes
}

func (i *Index) Stats() IndexStats {
	i.mu.RLock()
	defer i.mu.RUnlock()

	stats := IndexStats{
		Count:    i.tree.Len(),
		Rejected: i.rejected,
	}
	i.tree.Walk(func(n quadtree.NodeInfo) {
		stats.Nodes++
		if n.Depth > stats.Depth {
			stats.Depth = n.Depth
		}
	})
	return stats
}
