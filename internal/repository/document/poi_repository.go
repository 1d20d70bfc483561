package document

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	poisCollection = "pois"

	// opTimeout bounds every store call; exceeding it surfaces as an
	// infrastructure failure, never a domain one.
	opTimeout = 10 * time.Second
)

type poiRepository struct {
	store  repository.DocumentStore
	logger *zap.Logger
}

// NewPOIRepository - адаптер POI поверх пятиоперационного документного
// хранилища
func NewPOIRepository(store repository.DocumentStore, logger *zap.Logger) repository.POIRepository {
	return &poiRepository{
		store:  store,
		logger: logger,
	}
}

func (r *poiRepository) Save(ctx context.Context, poi *domain.POIEntity) (*domain.POIEntity, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc, err := json.Marshal(poi)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal poi: %w", err)
	}

	if err := r.store.Set(ctx, poisCollection, poi.ID, doc); err != nil {
		r.logger.Error("Failed to save POI", zap.String("id", poi.ID), zap.Error(err))
		return nil, err
	}
	return poi, nil
}

func (r *poiRepository) FindByID(ctx context.Context, id string) (*domain.POIEntity, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc, err := r.store.Get(ctx, poisCollection, id)
	if err != nil {
		r.logger.Error("Failed to load POI", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	var poi domain.POIEntity
	if err := json.Unmarshal(doc, &poi); err != nil {
		return nil, fmt.Errorf("failed to unmarshal poi %s: %w", id, err)
	}
	return &poi, nil
}

func (r *poiRepository) FindAll(ctx context.Context) ([]*domain.POIEntity, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	docs, err := r.store.Scan(ctx, poisCollection)
	if err != nil {
		r.logger.Error("Failed to scan POIs", zap.Error(err))
		return nil, err
	}
	return decodeAll(docs)
}

func (r *poiRepository) FindByType(ctx context.Context, poiType string) ([]*domain.POIEntity, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	docs, err := r.store.Query(ctx, poisCollection, "type", poiType)
	if err != nil {
		r.logger.Error("Failed to query POIs by type",
			zap.String("type", poiType),
			zap.Error(err),
		)
		return nil, err
	}
	return decodeAll(docs)
}

func (r *poiRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	deleted, err := r.store.Delete(ctx, poisCollection, id)
	if err != nil {
		r.logger.Error("Failed to delete POI", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return deleted, nil
}

func decodeAll(docs [][]byte) ([]*domain.POIEntity, error) {
	pois := make([]*domain.POIEntity, 0, len(docs))
	for _, doc := range docs {
		var poi domain.POIEntity
		if err := json.Unmarshal(doc, &poi); err != nil {
			return nil, fmt.Errorf("failed to unmarshal poi: %w", err)
		}
		pois = append(pois, &poi)
	}
	return pois, nil
}
