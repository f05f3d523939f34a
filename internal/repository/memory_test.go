package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDocuments_CreateAndGet(t *testing.T) {
	repo := NewMemoryDocuments[*models.EmergencyContact]()
	ctx := context.Background()
	contact := &models.EmergencyContact{ID: "c-1", Name: "Mom", Phone: "+91-9876543210", Priority: 1}

	require.NoError(t, repo.Create(ctx, contact))

	got, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, contact, got)
}

func TestMemoryDocuments_Duplicate(t *testing.T) {
	repo := NewMemoryDocuments[*models.SOSAlert]()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.SOSAlert{ID: "a-1"}))
	err := repo.Create(ctx, &models.SOSAlert{ID: "a-1"})

	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestMemoryDocuments_NotFound(t *testing.T) {
	repo := NewMemoryDocuments[*models.RouteData]()

	route, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, route)
}

func TestMemoryDocuments_ListOrderAndLimit(t *testing.T) {
	repo := NewMemoryDocuments[*models.EmergencyContact]()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.EmergencyContact{ID: fmt.Sprintf("c-%d", i)}))
	}

	all, err := repo.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "c-0", all[0].ID)
	assert.Equal(t, "c-4", all[4].ID)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "c-1", limited[1].ID)
}

func TestMemoryDocuments_ListEmpty(t *testing.T) {
	repo := NewMemoryDocuments[*models.EmergencyContact]()

	docs, err := repo.List(context.Background(), 10)

	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryDocuments_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryDocuments[*models.SOSAlert]()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &models.SOSAlert{ID: fmt.Sprintf("a-%d", i)})
		}(i)
	}
	wg.Wait()

	docs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 50)
}

func TestNewMemoryRepositories(t *testing.T) {
	repos := NewMemoryRepositories()
	ctx := context.Background()

	require.NoError(t, repos.Routes.Create(ctx, &models.RouteData{ID: "r-1"}))
	_, err := repos.Alerts.GetByID(ctx, "r-1")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRouteCacheKey(t *testing.T) {
	assert.Equal(t, "route:abc", routeCacheKey("abc"))
}
