package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/httputil"
)

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		c.Set("request_id", "req-1")
		handler(c)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHandleError(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		w := serve(func(c *gin.Context) {
			httputil.HandleError(c, apperror.Invalid("INVALID_BBOX", "invalid bounding box", nil))
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid bounding box","code":"INVALID_BBOX","request_id":"req-1"}`, w.Body.String())
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		w := serve(func(c *gin.Context) {
			httputil.HandleError(c, errors.New("boom"))
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestNoContent(t *testing.T) {
	w := serve(httputil.NoContent)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
