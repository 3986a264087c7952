package request

import "github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"

type BoundaryRequest struct {
	CX    *float64 `json:"cx" binding:"required"`
	CY    *float64 `json:"cy" binding:"required"`
	HalfW *float64 `json:"half_w" binding:"required,min=0"`
	HalfH *float64 `json:"half_h" binding:"required,min=0"`
}

func (r BoundaryRequest) BoundingBox() valueobject.BoundingBox {
	return valueobject.NewBoundingBox(*r.CX, *r.CY, *r.HalfW, *r.HalfH)
}

type CreateIndexRequest struct {
	Name     string           `json:"name" binding:"required,max=64"`
	Boundary *BoundaryRequest `json:"boundary" binding:"required"`
	Capacity int              `json:"capacity" binding:"omitempty,min=1"`
}

type ListIndexesRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type PointRequest struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
}

type InsertPointsRequest struct {
	Points []PointRequest `json:"points" binding:"required,min=1,dive"`
}

func (r InsertPointsRequest) ToPoints() []valueobject.Point {
	points := make([]valueobject.Point, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, valueobject.NewPoint(*p.X, *p.Y))
	}
	return points
}

type SeedRequest struct {
	Count int     `json:"count" binding:"required,min=1"`
	Seed  *uint64 `json:"seed"`
}

type QueryBoxRequest struct {
	CX     *float64 `form:"cx" binding:"required"`
	CY     *float64 `form:"cy" binding:"required"`
	HalfW  *float64 `form:"half_w" binding:"required,min=0"`
	HalfH  *float64 `form:"half_h" binding:"required,min=0"`
	Format string   `form:"format" binding:"omitempty,oneof=json geojson"`
}

func (r QueryBoxRequest) BoundingBox() valueobject.BoundingBox {
	return valueobject.NewBoundingBox(*r.CX, *r.CY, *r.HalfW, *r.HalfH)
}

type QueryCircleRequest struct {
	CX     *float64 `form:"cx" binding:"required"`
	CY     *float64 `form:"cy" binding:"required"`
	Radius *float64 `form:"radius" binding:"required,min=0"`
	Format string   `form:"format" binding:"omitempty,oneof=json geojson"`
}

func (r QueryCircleRequest) Circle() valueobject.Circle {
	return valueobject.NewCircle(*r.CX, *r.CY, *r.Radius)
}
