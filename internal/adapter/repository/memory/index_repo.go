package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/entity"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/pagination"
)

// IndexRepo keeps indexes in process memory, keyed by name.
type IndexRepo struct {
	mu      sync.RWMutex
	indexes map[string]*entity.Index
}

func NewIndexRepo() *IndexRepo {
	return &IndexRepo{indexes: make(map[string]*entity.Index)}
}

func (r *IndexRepo) Create(ctx context.Context, idx *entity.Index) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indexes[idx.Name]; exists {
		return domain.ErrIndexAlreadyExists
	}
	r.indexes[idx.Name] = idx
	return nil
}

func (r *IndexRepo) GetByName(ctx context.Context, name string) (*entity.Index, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.indexes[name]
	if !ok {
		return nil, domain.ErrIndexNotFound
	}
	return idx, nil
}

func (r *IndexRepo) List(ctx context.Context, params pagination.Params) ([]*entity.Index, *pagination.Info, error) {
	r.mu.RLock()
	all := make([]*entity.Index, 0, len(r.indexes))
	for _, idx := range r.indexes {
		all = append(all, idx)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	start, end := params.Window(len(all))
	return all[start:end], pagination.NewInfo(params, len(all)), nil
}

func (r *IndexRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.indexes[name]; !ok {
		return domain.ErrIndexNotFound
	}
	delete(r.indexes, name)
	return nil
}
