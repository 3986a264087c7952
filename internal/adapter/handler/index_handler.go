package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/quadtree-backend/internal/usecase/index"
)

const formatGeoJSON = "geojson"

type IndexHandler struct {
	indexSvc IndexService
}

func NewIndexHandler(indexSvc IndexService) *IndexHandler {
	return &IndexHandler{indexSvc: indexSvc}
}

func (h *IndexHandler) Create(c *gin.Context) {
	var req request.CreateIndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	idx, err := h.indexSvc.Create(c.Request.Context(), index.CreateInput{
		Name:     req.Name,
		Boundary: req.Boundary.BoundingBox(),
		Capacity: req.Capacity,
	})
	if err != nil {
		handleIndexError(c, err)
		return
	}

	httputil.Created(c, response.IndexFromEntity(idx))
}

func (h *IndexHandler) List(c *gin.Context) {
	var req request.ListIndexesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	indexes, pageInfo, err := h.indexSvc.List(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		handleIndexError(c, err)
		return
	}

	httputil.OK(c, response.IndexListResponse{
		Indexes:    response.IndexesFromEntities(indexes),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *IndexHandler) Get(c *gin.Context) {
	idx, err := h.indexSvc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleIndexError(c, err)
		return
	}

	httputil.OK(c, response.IndexFromEntity(idx))
}

func (h *IndexHandler) Delete(c *gin.Context) {
	if err := h.indexSvc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		handleIndexError(c, err)
		return
	}

	httputil.NoContent(c)
}

// InsertPoints reports points outside the boundary, or dropped by a full node
// at the size floor, as rejected.
func (h *IndexHandler) InsertPoints(c *gin.Context) {
	var req request.InsertPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.indexSvc.Insert(c.Request.Context(), index.InsertInput{
		Name:   c.Param("name"),
		Points: req.ToPoints(),
	})
	if err != nil {
		handleIndexError(c, err)
		return
	}

	httputil.OK(c, response.InsertFromResult(result))
}

func (h *IndexHandler) Seed(c *gin.Context) {
	var req request.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.indexSvc.Seed(c.Request.Context(), index.SeedInput{
		Name:  c.Param("name"),
		Count: req.Count,
		Seed:  req.Seed,
	})
	if err != nil {
		handleIndexError(c, err)
		return
	}

	httputil.OK(c, response.InsertFromResult(result))
}

func (h *IndexHandler) QueryBox(c *gin.Context) {
	var req request.QueryBoxRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.indexSvc.QueryBox(c.Request.Context(), c.Param("name"), req.BoundingBox())
	if err != nil {
		handleIndexError(c, err)
		return
	}

	h.renderQuery(c, req.Format, result)
}

func (h *IndexHandler) QueryCircle(c *gin.Context) {
	var req request.QueryCircleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.indexSvc.QueryCircle(c.Request.Context(), c.Param("name"), req.Circle())
	if err != nil {
		handleIndexError(c, err)
		return
	}

	h.renderQuery(c, req.Format, result)
}

func (h *IndexHandler) renderQuery(c *gin.Context, format string, result *index.QueryResult) {
	if format == formatGeoJSON {
		httputil.OK(c, response.PointsToFeatureCollection(result.Points))
		return
	}
	httputil.OK(c, response.QueryFromResult(result))
}

// Nodes returns the node boundaries as GeoJSON polygons.
func (h *IndexHandler) Nodes(c *gin.Context) {
	nodes, err := h.indexSvc.Nodes(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleIndexError(c, err)
		return
	}

	httputil.OK(c, response.NodesToFeatureCollection(nodes))
}
