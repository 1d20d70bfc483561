package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/domain/repository"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/pkg/utils"
	"github.com/poi-catalog/internal/pkg/validator"
	"github.com/poi-catalog/internal/usecase/dto"
	"go.uber.org/zap"
)

// MediaProvider supplies the media attachments embedded into projections
// and drops them when their POI is deleted.
type MediaProvider interface {
	FindByPOI(poiID string) []domain.MediaItem
	RemoveForPOI(poiID string)
}

type POIUseCase struct {
	poiRepo   repository.POIRepository
	cacheRepo repository.CacheRepository
	media     MediaProvider
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewPOIUseCase(
	poiRepo repository.POIRepository,
	cacheRepo repository.CacheRepository,
	media MediaProvider,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *POIUseCase {
	return &POIUseCase{
		poiRepo:   poiRepo,
		cacheRepo: cacheRepo,
		media:     media,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Create persists a new POI. Interactive creation trusts the typed request:
// the service generates the id, stamps both timestamps to now and defaults
// the source to manual curation.
func (uc *POIUseCase) Create(ctx context.Context, req dto.POICreateRequest) (*dto.POIResponse, error) {
	now := time.Now().UnixMilli()
	entity := &domain.POIEntity{
		ID:          "poi_" + uuid.NewString(),
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Type:        req.Type,
		Description: req.Description,
		Address:     req.Address,
		Tags:        req.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
		Source:      string(domain.SourceManualCuration),
	}

	if _, err := uc.poiRepo.Save(ctx, entity); err != nil {
		uc.logger.Error("Failed to create POI", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	resp := uc.toResponse(entity)
	return &resp, nil
}

// FindByID returns the projection or NOT_FOUND. Reads go cache-aside: the
// cached value is the entity, media is always attached live.
func (uc *POIUseCase) FindByID(ctx context.Context, id string) (*dto.POIResponse, error) {
	entity, err := uc.cachedEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.ErrPOINotFound
	}

	resp := uc.toResponse(entity)
	return &resp, nil
}

// List returns one page of projections, optionally narrowed by type (pushed
// down to the store) and by verified flag (filtered in memory).
func (uc *POIUseCase) List(ctx context.Context, req dto.ListPOIRequest) (*dto.PaginatedPOIResponse, error) {
	var (
		entities []*domain.POIEntity
		err      error
	)
	if req.Type != "" {
		entities, err = uc.poiRepo.FindByType(ctx, req.Type)
	} else {
		entities, err = uc.poiRepo.FindAll(ctx)
	}
	if err != nil {
		uc.logger.Error("Failed to list POIs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	filtered := make([]dto.POIResponse, 0, len(entities))
	for _, e := range entities {
		if req.Verified != nil && e.Verified != *req.Verified {
			continue
		}
		filtered = append(filtered, uc.toResponse(e))
	}

	page, pagination := utils.Paginate(filtered, req.Page, req.Limit)
	return &dto.PaginatedPOIResponse{POIs: page, Pagination: pagination}, nil
}

// Update merges only the fields present in the request over the stored
// entity. createdAt is untouched, updatedAt is stamped to now.
func (uc *POIUseCase) Update(ctx context.Context, id string, req dto.POIUpdateRequest) (*dto.POIResponse, error) {
	entity, err := uc.poiRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load POI for update", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if entity == nil {
		return nil, errors.ErrPOINotFound
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Latitude != nil {
		entity.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		entity.Longitude = *req.Longitude
	}
	if req.Type != nil {
		entity.Type = *req.Type
	}
	if req.Description != nil {
		entity.Description = req.Description
	}
	if req.Address != nil {
		entity.Address = req.Address
	}
	if req.Tags != nil {
		entity.Tags = req.Tags
	}
	entity.UpdatedAt = time.Now().UnixMilli()

	if _, err := uc.poiRepo.Save(ctx, entity); err != nil {
		uc.logger.Error("Failed to update POI", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	uc.invalidate(ctx, id)

	resp := uc.toResponse(entity)
	return &resp, nil
}

// Delete removes the POI and its media; NOT_FOUND when nothing existed.
func (uc *POIUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.poiRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete POI", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if !deleted {
		return errors.ErrPOINotFound
	}

	uc.media.RemoveForPOI(id)
	uc.invalidate(ctx, id)
	return nil
}

// Search filters by case-insensitive substring over name/description, then
// keeps entities sharing at least one requested tag, then paginates exactly
// like List. Lat/Lng/Radius are accepted but never filter.
func (uc *POIUseCase) Search(ctx context.Context, req dto.SearchPOIRequest) (*dto.PaginatedPOIResponse, error) {
	entities, err := uc.poiRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to search POIs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	query := strings.ToLower(req.Query)
	filtered := make([]dto.POIResponse, 0, len(entities))
	for _, e := range entities {
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		if len(req.Tags) > 0 && !hasAnyTag(e.Tags, req.Tags) {
			continue
		}
		filtered = append(filtered, uc.toResponse(e))
	}

	page, pagination := utils.Paginate(filtered, req.Page, req.Limit)
	return &dto.PaginatedPOIResponse{POIs: page, Pagination: pagination}, nil
}

// BulkImport creates each item independently, in input order. A failed item
// is recorded and never aborts its siblings; nothing is rolled back.
func (uc *POIUseCase) BulkImport(ctx context.Context, req dto.BulkImportRequest) (*dto.BulkImportResult, error) {
	result := &dto.BulkImportResult{
		Results: make([]dto.ImportResult, 0, len(req.POIs)),
	}

	for _, item := range req.POIs {
		if err := validator.Validate(&item); err != nil {
			result.Failed++
			result.Results = append(result.Results, dto.ImportResult{
				Name:   item.Name,
				Status: dto.ImportStatusFailed,
				Error:  validator.Message(err),
			})
			continue
		}

		created, err := uc.Create(ctx, item)
		if err != nil {
			result.Failed++
			result.Results = append(result.Results, dto.ImportResult{
				Name:   item.Name,
				Status: dto.ImportStatusFailed,
				Error:  err.Error(),
			})
			continue
		}

		result.Created++
		result.Results = append(result.Results, dto.ImportResult{
			Name:   item.Name,
			Status: dto.ImportStatusCreated,
			ID:     created.ID,
		})
	}

	uc.logger.Info("Bulk import completed",
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func matchesQuery(e *domain.POIEntity, query string) bool {
	if strings.Contains(strings.ToLower(e.Name), query) {
		return true
	}
	return e.Description != nil && strings.Contains(strings.ToLower(*e.Description), query)
}

func hasAnyTag(tags, requested []string) bool {
	for _, t := range tags {
		for _, r := range requested {
			if t == r {
				return true
			}
		}
	}
	return false
}

func (uc *POIUseCase) cachedEntity(ctx context.Context, id string) (*domain.POIEntity, error) {
	key := "poi:" + id

	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var entity domain.POIEntity
		if err := json.Unmarshal(data, &entity); err == nil {
			return &entity, nil
		}
		uc.logger.Warn("Dropping corrupt cache entry", zap.String("key", key))
	}

	entity, err := uc.poiRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load POI", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if entity == nil {
		return nil, nil
	}

	if data, err := json.Marshal(entity); err == nil {
		// cache failures are logged by the repository and never fail reads
		_ = uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL)
	}
	return entity, nil
}

func (uc *POIUseCase) invalidate(ctx context.Context, id string) {
	if err := uc.cacheRepo.Delete(ctx, "poi:"+id); err != nil {
		uc.logger.Warn("Failed to invalidate cache", zap.String("id", id), zap.Error(err))
	}
}

func (uc *POIUseCase) toResponse(e *domain.POIEntity) dto.POIResponse {
	return dto.POIResponse{
		ID:          e.ID,
		Name:        e.Name,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		Type:        e.Type,
		Description: e.Description,
		Address:     e.Address,
		Tags:        e.Tags,
		Media:       uc.media.FindByPOI(e.ID),
		Metadata: dto.POIMetadata{
			CreatedAt: time.UnixMilli(e.CreatedAt).UTC(),
			UpdatedAt: time.UnixMilli(e.UpdatedAt).UTC(),
			Verified:  e.Verified,
			Source:    e.Source,
		},
	}
}
