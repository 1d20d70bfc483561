package domain

import (
	"fmt"
	"strings"
)

// Source - происхождение записи POI
type Source string

const (
	SourceManualCuration Source = "manual_curation"
	SourceBulkImport     Source = "bulk_import"
	SourceAPISync        Source = "api_sync"
)

// POI types form a closed set; unknown values are rejected at the boundary.
const (
	POITypeMonument   = "monument"
	POITypeMuseum     = "museum"
	POITypePark       = "park"
	POITypeRestaurant = "restaurant"
	POITypeHotel      = "hotel"
	POITypeLandmark   = "landmark"
	POITypeHistorical = "historical"
	POITypeReligious  = "religious"
	POITypeNatural    = "natural"
	POITypeOther      = "other"
)

var validPOITypes = map[string]struct{}{
	POITypeMonument:   {},
	POITypeMuseum:     {},
	POITypePark:       {},
	POITypeRestaurant: {},
	POITypeHotel:      {},
	POITypeLandmark:   {},
	POITypeHistorical: {},
	POITypeReligious:  {},
	POITypeNatural:    {},
	POITypeOther:      {},
}

// IsValidPOIType reports whether s belongs to the closed POI type set.
func IsValidPOIType(s string) bool {
	_, ok := validPOITypes[s]
	return ok
}

// IsValidSource reports whether s belongs to the closed source set.
func IsValidSource(s string) bool {
	switch Source(s) {
	case SourceManualCuration, SourceBulkImport, SourceAPISync:
		return true
	}
	return false
}

// POIEntity - персистентная форма точки интереса.
// Timestamps are milliseconds since epoch; createdAt is set once and never
// mutated, updatedAt is refreshed on every successful mutation.
type POIEntity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Type        string   `json:"type"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
	Verified    bool     `json:"verified"`
	Source      string   `json:"source"`
}

// Validate checks a candidate record against the persistence rules in fixed
// order. The first violated rule wins; callers report exactly that message.
func (p *POIEntity) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("POI ID is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("POI name is required")
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("Invalid latitude: %v", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("Invalid longitude: %v", p.Longitude)
	}
	if !IsValidPOIType(p.Type) {
		return fmt.Errorf("Invalid POI type: %s", p.Type)
	}
	if p.CreatedAt <= 0 {
		return fmt.Errorf("Invalid createdAt timestamp")
	}
	if p.UpdatedAt <= 0 {
		return fmt.Errorf("Invalid updatedAt timestamp")
	}
	return nil
}
