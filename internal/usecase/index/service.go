package index

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/entity"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/quadtree-backend/internal/quadtree"
)

const (
	ShapeBox    = "box"
	ShapeCircle = "circle"
)

type Metrics interface {
	PointsInserted(index string, accepted, rejected int)
	QueryServed(index, shape string, results int, elapsed time.Duration)
	IndexDeleted(index string)
}

type Config struct {
	DefaultCapacity int
	MaxCapacity     int
	MaxBatchPoints  int
	MaxSeedPoints   int
}

type Service struct {
	indexRepo repository.IndexRepository
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config
}

func NewService(indexRepo repository.IndexRepository, metrics Metrics, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		indexRepo: indexRepo,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
	}
}

type CreateInput struct {
	Name     string
	Boundary valueobject.BoundingBox
	Capacity int
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Index, error) {
	capacity := input.Capacity
	if capacity == 0 {
		capacity = s.cfg.DefaultCapacity
	}
	if capacity > s.cfg.MaxCapacity {
		return nil, fmt.Errorf("capacity %d exceeds limit %d: %w", capacity, s.cfg.MaxCapacity, domain.ErrInvalidCapacity)
	}

	idx, err := entity.NewIndex(input.Name, input.Boundary, capacity)
	if err != nil {
		return nil, err
	}

	if err := s.indexRepo.Create(ctx, idx); err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	s.logger.Info("index created",
		zap.String("index", idx.Name),
		zap.String("id", idx.ID.String()),
		zap.Int("capacity", capacity),
	)

	return idx, nil
}

func (s *Service) Get(ctx context.Context, name string) (*entity.Index, error) {
	return s.indexRepo.GetByName(ctx, name)
}

func (s *Service) List(ctx context.Context, page, perPage int) ([]*entity.Index, *pagination.Info, error) {
	indexes, info, err := s.indexRepo.List(ctx, pagination.NewParams(page, perPage))
	if err != nil {
		return nil, nil, fmt.Errorf("listing indexes: %w", err)
	}
	return indexes, info, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.indexRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("deleting index: %w", err)
	}
	s.metrics.IndexDeleted(name)

	s.logger.Info("index deleted", zap.String("index", name))
	return nil
}

type InsertInput struct {
	Name   string
	Points []valueobject.Point
}

type InsertResult struct {
	Accepted int
	Rejected int
	Results  []bool
}

func (s *Service) Insert(ctx context.Context, input InsertInput) (*InsertResult, error) {
	if len(input.Points) > s.cfg.MaxBatchPoints {
		return nil, fmt.Errorf("%d points exceeds batch limit %d: %w",
			len(input.Points), s.cfg.MaxBatchPoints, domain.ErrTooManyPoints)
	}

	idx, err := s.indexRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	return s.insert(idx, input.Points), nil
}

type SeedInput struct {
	Name  string
	Count int
	// Seed makes the generated points reproducible. Nil picks a random seed.
	Seed *uint64
}

// Seed fills the index with Count points drawn uniformly from its boundary.
func (s *Service) Seed(ctx context.Context, input SeedInput) (*InsertResult, error) {
	if input.Count > s.cfg.MaxSeedPoints {
		return nil, fmt.Errorf("%d points exceeds seed limit %d: %w",
			input.Count, s.cfg.MaxSeedPoints, domain.ErrTooManyPoints)
	}

	idx, err := s.indexRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	seed := rand.Uint64()
	if input.Seed != nil {
		seed = *input.Seed
	}

	count := max(input.Count, 0)
	result := s.insert(idx, UniformPoints(rand.New(rand.NewPCG(seed, seed)), idx.Boundary(), count))
	result.Results = nil
	return result, nil
}

func (s *Service) insert(idx *entity.Index, points []valueobject.Point) *InsertResult {
	results := idx.Insert(points)

	accepted := 0
	for _, ok := range results {
		if ok {
			accepted++
		}
	}
	rejected := len(results) - accepted

	s.metrics.PointsInserted(idx.Name, accepted, rejected)
	s.logger.Debug("points inserted",
		zap.String("index", idx.Name),
		zap.Int("accepted", accepted),
		zap.Int("rejected", rejected),
	)

	return &InsertResult{
		Accepted: accepted,
		Rejected: rejected,
		Results:  results,
	}
}

type QueryResult struct {
	Points  []valueobject.Point
	Elapsed time.Duration
}

func (s *Service) QueryBox(ctx context.Context, name string, box valueobject.BoundingBox) (*QueryResult, error) {
	if !box.IsValid() {
		return nil, domain.ErrInvalidBoundingBox
	}
	return s.query(ctx, name, ShapeBox, box)
}

func (s *Service) QueryCircle(ctx context.Context, name string, circle valueobject.Circle) (*QueryResult, error) {
	if !circle.IsValid() {
		return nil, domain.ErrInvalidCircle
	}
	return s.query(ctx, name, ShapeCircle, circle)
}

func (s *Service) query(ctx context.Context, name, shape string, region quadtree.Region) (*QueryResult, error) {
	idx, err := s.indexRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	points := idx.Query(region)
	elapsed := time.Since(start)

	s.metrics.QueryServed(idx.Name, shape, len(points), elapsed)

	return &QueryResult{
		Points:  points,
		Elapsed: elapsed,
	}, nil
}

func (s *Service) Nodes(ctx context.Context, name string) ([]quadtree.NodeInfo, error) {
	idx, err := s.indexRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return idx.Nodes(), nil
}

// UniformPoints draws n points uniformly from [min, max) of bb on both axes.
func UniformPoints(r *rand.Rand, bb valueobject.BoundingBox, n int) []valueobject.Point {
	points := make([]valueobject.Point, n)
	for i := range points {
		points[i] = valueobject.NewPoint(
			bb.MinX()+r.Float64()*bb.HalfW*2,
			bb.MinY()+r.Float64()*bb.HalfH*2,
		)
	}
	return points
}
