package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain/entity"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/quadtree-backend/internal/usecase/index"
)

type BoundaryResponse struct {
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	HalfW float64 `json:"half_w"`
	HalfH float64 `json:"half_h"`
}

type IndexResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Boundary  BoundaryResponse `json:"boundary"`
	Capacity  int              `json:"capacity"`
	Count     int              `json:"count"`
	Rejected  int              `json:"rejected"`
	Nodes     int              `json:"nodes"`
	Depth     int              `json:"depth"`
	CreatedAt time.Time        `json:"created_at"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type InsertResponse struct {
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
	Results  []bool `json:"results,omitempty"`
}

type QueryResponse struct {
	Count     int             `json:"count"`
	Points    []PointResponse `json:"points"`
	ElapsedUS int64           `json:"elapsed_us"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type IndexListResponse struct {
	Indexes    []IndexResponse    `json:"indexes"`
	Pagination PaginationResponse `json:"pagination"`
}

func BoundaryFromValue(bb valueobject.BoundingBox) BoundaryResponse {
	return BoundaryResponse{
		CX:    bb.CX,
		CY:    bb.CY,
		HalfW: bb.HalfW,
		HalfH: bb.HalfH,
	}
}

func IndexFromEntity(idx *entity.Index) IndexResponse {
	stats := idx.Stats()
	return IndexResponse{
		ID:        idx.ID,
		Name:      idx.Name,
		Boundary:  BoundaryFromValue(idx.Boundary()),
		Capacity:  idx.Capacity(),
		Count:     stats.Count,
		Rejected:  stats.Rejected,
		Nodes:     stats.Nodes,
		Depth:     stats.Depth,
		CreatedAt: idx.CreatedAt,
	}
}

func IndexesFromEntities(indexes []*entity.Index) []IndexResponse {
	result := make([]IndexResponse, 0, len(indexes))
	for _, idx := range indexes {
		result = append(result, IndexFromEntity(idx))
	}
	return result
}

func InsertFromResult(r *index.InsertResult) InsertResponse {
	return InsertResponse{
		Accepted: r.Accepted,
		Rejected: r.Rejected,
		Results:  r.Results,
	}
}

func QueryFromResult(r *index.QueryResult) QueryResponse {
	points := make([]PointResponse, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, PointResponse{X: p.X, Y: p.Y})
	}
	return QueryResponse{
		Count:     len(points),
		Points:    points,
		ElapsedUS: r.Elapsed.Microseconds(),
	}
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
