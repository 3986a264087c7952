package handler

import (
	"context"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain/entity"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/quadtree-backend/internal/quadtree"
	"github.com/marcos-nsantos/quadtree-backend/internal/usecase/index"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type IndexService interface {
	Create(ctx context.Context, input index.CreateInput) (*entity.Index, error)
	Get(ctx context.Context, name string) (*entity.Index, error)
	List(ctx context.Context, page, perPage int) ([]*entity.Index, *pagination.Info, error)
	Delete(ctx context.Context, name string) error
	Insert(ctx context.Context, input index.InsertInput) (*index.InsertResult, error)
	Seed(ctx context.Context, input index.SeedInput) (*index.InsertResult, error)
	QueryBox(ctx context.Context, name string, box valueobject.BoundingBox) (*index.QueryResult, error)
	QueryCircle(ctx context.Context, name string, circle valueobject.Circle) (*index.QueryResult, error)
	Nodes(ctx context.Context, name string) ([]quadtree.NodeInfo, error)
}
