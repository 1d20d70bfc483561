package document_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/domain/repository"
	"github.com/poi-catalog/internal/repository/document"
	"github.com/poi-catalog/internal/repository/memory"
)

func newRepo() repository.POIRepository {
	return document.NewPOIRepository(memory.NewDocumentStore(), zap.NewNop())
}

func sample(id, poiType string) *domain.POIEntity {
	desc := "a place"
	return &domain.POIEntity{
		ID:          id,
		Name:        "Sample",
		Latitude:    41.4,
		Longitude:   2.17,
		Type:        poiType,
		Description: &desc,
		Tags:        []string{"x", "y"},
		CreatedAt:   1700000000000,
		UpdatedAt:   1700000000001,
		Verified:    true,
		Source:      "api_sync",
	}
}

func TestPOIRepository_SaveAndFindByID(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, sample("poi_1", "museum"))
	assert.NoError(t, err)
	assert.Equal(t, "poi_1", saved.ID)

	// a fetch returns field-identical values
	loaded, err := repo.FindByID(ctx, "poi_1")
	assert.NoError(t, err)
	assert.Equal(t, sample("poi_1", "museum"), loaded)
}

func TestPOIRepository_FindByIDAbsent(t *testing.T) {
	repo := newRepo()

	loaded, err := repo.FindByID(context.Background(), "poi_missing")
	assert.NoError(t, err) // absence is not an error
	assert.Nil(t, loaded)
}

func TestPOIRepository_SaveOverwrites(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	_, err := repo.Save(ctx, sample("poi_1", "museum"))
	assert.NoError(t, err)

	updated := sample("poi_1", "museum")
	updated.Name = "Renamed"
	_, err = repo.Save(ctx, updated)
	assert.NoError(t, err)

	loaded, err := repo.FindByID(ctx, "poi_1")
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", loaded.Name)

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPOIRepository_FindByType(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	_, _ = repo.Save(ctx, sample("poi_1", "museum"))
	_, _ = repo.Save(ctx, sample("poi_2", "park"))
	_, _ = repo.Save(ctx, sample("poi_3", "museum"))

	museums, err := repo.FindByType(ctx, "museum")
	assert.NoError(t, err)
	assert.Len(t, museums, 2)
	for _, poi := range museums {
		assert.Equal(t, "museum", poi.Type)
	}

	hotels, err := repo.FindByType(ctx, "hotel")
	assert.NoError(t, err)
	assert.Empty(t, hotels)
}

func TestPOIRepository_Delete(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	_, _ = repo.Save(ctx, sample("poi_1", "museum"))

	deleted, err := repo.Delete(ctx, "poi_1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	// deleting a missing id reports false, not an error
	deleted, err = repo.Delete(ctx, "poi_1")
	assert.NoError(t, err)
	assert.False(t, deleted)
}
