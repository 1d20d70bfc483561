package usecase

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/poi-catalog/internal/domain"
	"go.uber.org/zap"
)

// MediaUseCase ведёт метаданные вложений в памяти процесса. Бинарники не
// хранятся: URL детерминированно собирается из poiId и mediaId. Счётчик
// монотонный на время жизни процесса; содержимое не переживает рестарт.
type MediaUseCase struct {
	baseURL string
	logger  *zap.Logger

	counter atomic.Int64

	mu    sync.RWMutex
	byPOI map[string][]domain.MediaItem
}

func NewMediaUseCase(baseURL string, logger *zap.Logger) *MediaUseCase {
	return &MediaUseCase{
		baseURL: baseURL,
		logger:  logger,
		byPOI:   make(map[string][]domain.MediaItem),
	}
}

// Upload registers a media item for the POI and returns it. Concurrent
// uploads never lose items or reuse ids.
func (uc *MediaUseCase) Upload(poiID string, mediaType domain.MediaType, caption *string) domain.MediaItem {
	id := fmt.Sprintf("media_%d", uc.counter.Add(1))

	item := domain.MediaItem{
		ID:         id,
		POIID:      poiID,
		Type:       mediaType,
		URL:        fmt.Sprintf("%s/%s/%s", uc.baseURL, poiID, id),
		Caption:    caption,
		UploadedAt: time.Now().UTC(),
	}
	if mediaType == domain.MediaTypeImage {
		thumb := fmt.Sprintf("%s/%s/%s_thumb", uc.baseURL, poiID, id)
		item.ThumbnailURL = &thumb
	}

	uc.mu.Lock()
	uc.byPOI[poiID] = append(uc.byPOI[poiID], item)
	uc.mu.Unlock()

	uc.logger.Info("Media uploaded",
		zap.String("poi_id", poiID),
		zap.String("media_id", id),
		zap.String("type", string(mediaType)),
	)
	return item
}

// Delete detaches a single media item and reports whether it existed.
func (uc *MediaUseCase) Delete(poiID, mediaID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items, ok := uc.byPOI[poiID]
	if !ok {
		return false
	}
	for i, item := range items {
		if item.ID == mediaID {
			uc.byPOI[poiID] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// FindByPOI returns a copy of the POI's media list, empty when none.
func (uc *MediaUseCase) FindByPOI(poiID string) []domain.MediaItem {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := uc.byPOI[poiID]
	out := make([]domain.MediaItem, len(items))
	copy(out, items)
	return out
}

// RemoveForPOI drops every media item of a deleted POI.
func (uc *MediaUseCase) RemoveForPOI(poiID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.byPOI, poiID)
}
