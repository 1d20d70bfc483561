package repository

import (
	"context"

	"github.com/poi-catalog/internal/domain"
)

// POIRepository определяет методы для работы с точками интереса
type POIRepository interface {
	// Save upserts the POI by id and returns it unchanged
	Save(ctx context.Context, poi *domain.POIEntity) (*domain.POIEntity, error)

	// FindByID returns the POI or (nil, nil) when absent
	FindByID(ctx context.Context, id string) (*domain.POIEntity, error)

	// FindAll returns every POI, order unspecified
	FindAll(ctx context.Context) ([]*domain.POIEntity, error)

	// FindByType returns POIs of the given type (exact match)
	FindByType(ctx context.Context, poiType string) ([]*domain.POIEntity, error)

	// Delete removes the POI if present and reports whether it existed
	Delete(ctx context.Context, id string) (bool, error)
}
