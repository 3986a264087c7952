package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/quadtree-backend/internal/domain"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/httputil"
)

func handleIndexError(c *gin.Context, err error) {
	httputil.HandleError(c, toAppError(err))
}

func toAppError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrIndexNotFound):
		return apperror.NotFound("index")
	case errors.Is(err, domain.ErrIndexAlreadyExists):
		return apperror.Conflict("index already exists")
	case errors.Is(err, domain.ErrInvalidIndexName):
		return apperror.Invalid("INVALID_NAME", "index name must match [a-z0-9][a-z0-9_-]{0,63}", err)
	case errors.Is(err, domain.ErrInvalidCapacity):
		return apperror.Invalid("INVALID_CAPACITY", "capacity must be a positive integer", err)
	case errors.Is(err, domain.ErrInvalidBoundingBox):
		return apperror.Invalid("INVALID_BBOX", "invalid bounding box", err)
	case errors.Is(err, domain.ErrInvalidCircle):
		return apperror.Invalid("INVALID_CIRCLE", "invalid circle", err)
	case errors.Is(err, domain.ErrTooManyPoints):
		return apperror.TooLarge("TOO_MANY_POINTS", "too many points in one request", err)
	default:
		return apperror.Internal(err)
	}
}
