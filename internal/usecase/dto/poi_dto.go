package dto

import (
	"time"

	"github.com/poi-catalog/internal/domain"
	"github.com/poi-catalog/internal/pkg/utils"
)

// POICreateRequest - запрос на создание POI
type POICreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Latitude    float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64  `json:"longitude" validate:"min=-180,max=180"`
	Type        string   `json:"type" validate:"required,oneof=monument museum park restaurant hotel landmark historical religious natural other"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// POIUpdateRequest - частичное обновление; незаполненные поля сохраняют
// прежние значения
type POIUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=monument museum park restaurant hotel landmark historical religious natural other"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ListPOIRequest - параметры листинга
type ListPOIRequest struct {
	Page     int
	Limit    int
	Type     string
	Verified *bool
}

// SearchPOIRequest - параметры поиска. Lat/Lng/Radius принимаются, но
// дистанционная фильтрация не выполняется.
type SearchPOIRequest struct {
	Page   int
	Limit  int
	Query  string
	Tags   []string
	Lat    *float64
	Lng    *float64
	Radius *int
}

// BulkImportRequest - пакет запросов на создание; каждый элемент
// обрабатывается независимо
type BulkImportRequest struct {
	POIs []POICreateRequest `json:"pois" validate:"required,min=1"`
}

// POIMetadata - денормализованный суб-объект ответа
type POIMetadata struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Verified  bool      `json:"verified"`
	Source    string    `json:"source"`
}

// POIResponse - проекция сущности для ответа
type POIResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Type        string             `json:"type"`
	Description *string            `json:"description,omitempty"`
	Address     *string            `json:"address,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Media       []domain.MediaItem `json:"media"`
	Metadata    POIMetadata        `json:"metadata"`
}

// PaginatedPOIResponse - страница проекций с метаданными пагинации
type PaginatedPOIResponse struct {
	POIs       []POIResponse    `json:"pois"`
	Pagination utils.Pagination `json:"pagination"`
}

// Import statuses for bulk import results.
const (
	ImportStatusCreated = "created"
	ImportStatusFailed  = "failed"
)

// ImportResult - исход одного элемента bulk import
type ImportResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// BulkImportResult - агрегат bulk import, порядок results совпадает с входом
type BulkImportResult struct {
	Created int            `json:"created"`
	Failed  int            `json:"failed"`
	Results []ImportResult `json:"results"`
}
