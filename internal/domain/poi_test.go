package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEntity() POIEntity {
	return POIEntity{
		ID:        "poi_1",
		Name:      "Sagrada Família",
		Latitude:  41.4036,
		Longitude: 2.1744,
		Type:      POITypeLandmark,
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000000,
		Source:    string(SourceManualCuration),
	}
}

func TestPOIEntity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*POIEntity)
		wantErr string
	}{
		{"valid record", func(p *POIEntity) {}, ""},
		{"blank id", func(p *POIEntity) { p.ID = "  " }, "POI ID is required"},
		{"blank name", func(p *POIEntity) { p.Name = "" }, "POI name is required"},
		{"latitude above range", func(p *POIEntity) { p.Latitude = 200 }, "Invalid latitude: 200"},
		{"latitude below range", func(p *POIEntity) { p.Latitude = -90.5 }, "Invalid latitude: -90.5"},
		{"longitude out of range", func(p *POIEntity) { p.Longitude = -181 }, "Invalid longitude: -181"},
		{"unknown type", func(p *POIEntity) { p.Type = "castle" }, "Invalid POI type: castle"},
		{"zero createdAt", func(p *POIEntity) { p.CreatedAt = 0 }, "Invalid createdAt timestamp"},
		{"negative updatedAt", func(p *POIEntity) { p.UpdatedAt = -1 }, "Invalid updatedAt timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validEntity()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

// The rule order is a contract: callers report the FIRST violated rule.
func TestPOIEntity_Validate_FirstViolationWins(t *testing.T) {
	p := validEntity()
	p.ID = ""
	p.Name = ""
	p.Latitude = 500
	assert.EqualError(t, p.Validate(), "POI ID is required")

	p = validEntity()
	p.Name = ""
	p.Longitude = 500
	assert.EqualError(t, p.Validate(), "POI name is required")

	p = validEntity()
	p.Latitude = 200
	p.Type = "castle"
	assert.EqualError(t, p.Validate(), "Invalid latitude: 200")
}

func TestIsValidPOIType(t *testing.T) {
	for _, typ := range []string{
		POITypeMonument, POITypeMuseum, POITypePark, POITypeRestaurant,
		POITypeHotel, POITypeLandmark, POITypeHistorical, POITypeReligious,
		POITypeNatural, POITypeOther,
	} {
		assert.True(t, IsValidPOIType(typ), typ)
	}
	assert.False(t, IsValidPOIType(""))
	assert.False(t, IsValidPOIType("Monument"))
}

func TestIsValidSource(t *testing.T) {
	assert.True(t, IsValidSource("manual_curation"))
	assert.True(t, IsValidSource("bulk_import"))
	assert.True(t, IsValidSource("api_sync"))
	assert.False(t, IsValidSource("scraper"))
}

func TestIsValidMediaType(t *testing.T) {
	assert.True(t, IsValidMediaType("image"))
	assert.True(t, IsValidMediaType("video"))
	assert.False(t, IsValidMediaType("audio"))
}
