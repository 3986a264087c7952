package repository

import (
	"context"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain/entity"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type IndexRepository interface {
	Create(ctx context.Context, idx *entity.Index) error
	GetByName(ctx context.Context, name string) (*entity.Index, error)
	List(ctx context.Context, params pagination.Params) ([]*entity.Index, *pagination.Info, error)
	Delete(ctx context.Context, name string) error
}
