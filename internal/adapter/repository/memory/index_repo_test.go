package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/entity"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/quadtree-backend/internal/pkg/pagination"
)

func newIndex(t *testing.T, name string) *entity.Index {
	t.Helper()
	idx, err := entity.NewIndex(name, valueobject.NewBoundingBox(0, 0, 100, 100), 4)
	require.NoError(t, err)
	return idx
}

func TestIndexRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates index", func(t *testing.T) {
		repo := memory.NewIndexRepo()
		idx := newIndex(t, "points")

		require.NoError(t, repo.Create(ctx, idx))

		found, err := repo.GetByName(ctx, "points")
		require.NoError(t, err)
		assert.Same(t, idx, found)
	})

	t.Run("returns error for duplicate name", func(t *testing.T) {
		repo := memory.NewIndexRepo()
		require.NoError(t, repo.Create(ctx, newIndex(t, "points")))

		err := repo.Create(ctx, newIndex(t, "points"))
		assert.ErrorIs(t, err, domain.ErrIndexAlreadyExists)
	})
}

func TestIndexRepo_GetByName(t *testing.T) {
	repo := memory.NewIndexRepo()

	found, err := repo.GetByName(context.Background(), "missing")

	assert.Nil(t, found)
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
}

func TestIndexRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIndexRepo()
	for i := 5; i >= 1; i-- {
		require.NoError(t, repo.Create(ctx, newIndex(t, fmt.Sprintf("idx-%d", i))))
	}

	t.Run("returns sorted first page", func(t *testing.T) {
		indexes, info, err := repo.List(ctx, pagination.NewParams(1, 2))

		require.NoError(t, err)
		require.Len(t, indexes, 2)
		assert.Equal(t, "idx-1", indexes[0].Name)
		assert.Equal(t, "idx-2", indexes[1].Name)
		assert.Equal(t, 5, info.TotalItems)
		assert.Equal(t, 3, info.TotalPages)
		assert.True(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})

	t.Run("returns partial last page", func(t *testing.T) {
		indexes, info, err := repo.List(ctx, pagination.NewParams(3, 2))

		require.NoError(t, err)
		require.Len(t, indexes, 1)
		assert.Equal(t, "idx-5", indexes[0].Name)
		assert.False(t, info.HasNext)
	})

	t.Run("returns empty page past the end", func(t *testing.T) {
		indexes, _, err := repo.List(ctx, pagination.NewParams(10, 2))

		require.NoError(t, err)
		assert.Empty(t, indexes)
	})
}

func TestIndexRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIndexRepo()
	require.NoError(t, repo.Create(ctx, newIndex(t, "points")))

	require.NoError(t, repo.Delete(ctx, "points"))

	_, err := repo.GetByName(ctx, "points")
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "points"), domain.ErrIndexNotFound)
}
