package domain

import "time"

// MediaType - тип вложения
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// IsValidMediaType reports whether s belongs to the closed media type set.
func IsValidMediaType(s string) bool {
	switch MediaType(s) {
	case MediaTypeImage, MediaTypeVideo:
		return true
	}
	return false
}

// Dimensions - размеры изображения в пикселях
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MediaItem belongs to exactly one POI. The URL is fabricated from the
// owning POI id and the media id; thumbnails exist only for images.
type MediaItem struct {
	ID           string      `json:"id"`
	POIID        string      `json:"-"`
	Type         MediaType   `json:"type"`
	URL          string      `json:"url"`
	ThumbnailURL *string     `json:"thumbnail_url,omitempty"`
	Caption      *string     `json:"caption,omitempty"`
	FileSize     *int64      `json:"file_size,omitempty"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	UploadedAt   time.Time   `json:"uploaded_at"`
}
